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

type ListRulesUseCase struct {
	clientRepo client.Repository
	ruleRepo   autoreply.Repository
	logger     logger.Interface
}

func NewListRulesUseCase(
	clientRepo client.Repository,
	ruleRepo autoreply.Repository,
	logger logger.Interface,
) *ListRulesUseCase {
	return &ListRulesUseCase{
		clientRepo: clientRepo,
		ruleRepo:   ruleRepo,
		logger:     logger,
	}
}

func (uc *ListRulesUseCase) Execute(ctx context.Context, clientSID string) ([]*dto.RuleDTO, error) {
	clientEntity, err := uc.clientRepo.GetBySID(ctx, clientSID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "sid", clientSID)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if clientEntity == nil {
		return nil, errors.NewNotFoundError("client not found")
	}

	rules, err := uc.ruleRepo.ListByClientID(ctx, clientEntity.ID())
	if err != nil {
		uc.logger.Errorw("failed to list rules", "error", err, "client_id", clientEntity.ID())
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}

	return dto.ToRuleDTOs(rules), nil
}
