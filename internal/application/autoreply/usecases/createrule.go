package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/application/autoreply/dto"
	"replydesk/internal/domain/autoreply"
	"replydesk/internal/domain/client"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type CreateRuleCommand struct {
	ClientSID string
	Keyword   string
	MatchMode string
	ReplyBody string
	Priority  int
}

type CreateRuleUseCase struct {
	clientRepo client.Repository
	ruleRepo   autoreply.Repository
	logger     logger.Interface
}

func NewCreateRuleUseCase(
	clientRepo client.Repository,
	ruleRepo autoreply.Repository,
	logger logger.Interface,
) *CreateRuleUseCase {
	return &CreateRuleUseCase{
		clientRepo: clientRepo,
		ruleRepo:   ruleRepo,
		logger:     logger,
	}
}

func (uc *CreateRuleUseCase) Execute(ctx context.Context, cmd CreateRuleCommand) (*dto.RuleDTO, error) {
	clientEntity, err := uc.clientRepo.GetBySID(ctx, cmd.ClientSID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "sid", cmd.ClientSID)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if clientEntity == nil {
		return nil, errors.NewNotFoundError("client not found")
	}

	rule, err := autoreply.NewRule(clientEntity.ID(), cmd.Keyword,
		autoreply.MatchMode(cmd.MatchMode), cmd.ReplyBody, cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		uc.logger.Errorw("failed to persist rule", "error", err, "client_id", clientEntity.ID())
		return nil, fmt.Errorf("failed to persist rule: %w", err)
	}

	uc.logger.Infow("auto reply rule created", "rule_id", rule.ID(), "client_id", clientEntity.ID())
	return dto.ToRuleDTO(rule), nil
}
