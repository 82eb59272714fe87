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

type UpdateRuleCommand struct {
	SID       string
	ClientSID string
	Keyword   *string
	MatchMode *string
	ReplyBody *string
	Priority  *int
	IsActive  *bool
}

type UpdateRuleUseCase struct {
	clientRepo client.Repository
	ruleRepo   autoreply.Repository
	logger     logger.Interface
}

func NewUpdateRuleUseCase(
	clientRepo client.Repository,
	ruleRepo autoreply.Repository,
	logger logger.Interface,
) *UpdateRuleUseCase {
	return &UpdateRuleUseCase{
		clientRepo: clientRepo,
		ruleRepo:   ruleRepo,
		logger:     logger,
	}
}

func (uc *UpdateRuleUseCase) Execute(ctx context.Context, cmd UpdateRuleCommand) (*dto.RuleDTO, error) {
	clientEntity, err := uc.clientRepo.GetBySID(ctx, cmd.ClientSID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "sid", cmd.ClientSID)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if clientEntity == nil {
		return nil, errors.NewNotFoundError("client not found")
	}

	rule, err := uc.ruleRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get rule", "error", err, "sid", cmd.SID)
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}
	// Rules are only reachable through their owning client's routes.
	if rule == nil || rule.ClientID() != clientEntity.ID() {
		return nil, errors.NewNotFoundError("auto reply rule not found")
	}

	keyword := rule.Keyword()
	if cmd.Keyword != nil {
		keyword = *cmd.Keyword
	}
	matchMode := rule.MatchMode()
	if cmd.MatchMode != nil {
		matchMode = autoreply.MatchMode(*cmd.MatchMode)
	}
	replyBody := rule.ReplyBody()
	if cmd.ReplyBody != nil {
		replyBody = *cmd.ReplyBody
	}
	priority := rule.Priority()
	if cmd.Priority != nil {
		priority = *cmd.Priority
	}

	if err := rule.Update(keyword, matchMode, replyBody, priority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			rule.Activate()
		} else {
			rule.Deactivate()
		}
	}

	if err := uc.ruleRepo.Update(ctx, rule); err != nil {
		uc.logger.Errorw("failed to update rule", "error", err, "rule_id", rule.ID())
		return nil, fmt.Errorf("failed to update rule: %w", err)
	}

	uc.logger.Infow("auto reply rule updated", "rule_id", rule.ID())
	return dto.ToRuleDTO(rule), nil
}
