package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/domain/autoreply"
	"replydesk/internal/domain/client"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type DeleteRuleCommand struct {
	SID       string
	ClientSID string
}

type DeleteRuleUseCase struct {
	clientRepo client.Repository
	ruleRepo   autoreply.Repository
	logger     logger.Interface
}

func NewDeleteRuleUseCase(
	clientRepo client.Repository,
	ruleRepo autoreply.Repository,
	logger logger.Interface,
) *DeleteRuleUseCase {
	return &DeleteRuleUseCase{
		clientRepo: clientRepo,
		ruleRepo:   ruleRepo,
		logger:     logger,
	}
}

func (uc *DeleteRuleUseCase) Execute(ctx context.Context, cmd DeleteRuleCommand) error {
	clientEntity, err := uc.clientRepo.GetBySID(ctx, cmd.ClientSID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "sid", cmd.ClientSID)
		return fmt.Errorf("failed to get client: %w", err)
	}
	if clientEntity == nil {
		return errors.NewNotFoundError("client not found")
	}

	rule, err := uc.ruleRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get rule", "error", err, "sid", cmd.SID)
		return fmt.Errorf("failed to get rule: %w", err)
	}
	if rule == nil || rule.ClientID() != clientEntity.ID() {
		return errors.NewNotFoundError("auto reply rule not found")
	}

	if err := uc.ruleRepo.Delete(ctx, rule.ID()); err != nil {
		uc.logger.Errorw("failed to delete rule", "error", err, "rule_id", rule.ID())
		return fmt.Errorf("failed to delete rule: %w", err)
	}

	uc.logger.Infow("auto reply rule deleted", "rule_id", rule.ID())
	return nil
}
