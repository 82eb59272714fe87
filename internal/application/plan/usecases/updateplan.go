package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/application/plan/dto"
	"replydesk/internal/domain/plan"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type UpdatePlanCommand struct {
	SID           string
	Name          *string
	Description   *string
	Price         *uint64
	ClearPrice    bool
	AllowSelfEdit *bool
}

type UpdatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	entity, err := uc.planRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "sid", cmd.SID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}

	if cmd.Name != nil {
		if err := entity.UpdateName(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		entity.UpdateDescription(*cmd.Description)
	}
	if cmd.ClearPrice {
		entity.UpdatePrice(nil)
	} else if cmd.Price != nil {
		entity.UpdatePrice(cmd.Price)
	}
	if cmd.AllowSelfEdit != nil {
		entity.SetAllowSelfEdit(*cmd.AllowSelfEdit)
	}

	if err := uc.planRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", entity.ID())
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan updated", "plan_id", entity.ID(), "name", entity.Name())
	return dto.ToPlanDTO(entity), nil
}
