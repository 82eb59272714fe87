package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/application/plan/dto"
	"replydesk/internal/domain/plan"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type CreatePlanCommand struct {
	Name          string
	Description   string
	Price         *uint64
	AllowSelfEdit bool
}

type CreatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	entity, err := plan.NewPlan(cmd.Name, cmd.Description, cmd.Price)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	entity.SetAllowSelfEdit(cmd.AllowSelfEdit)

	if err := uc.planRepo.Create(ctx, entity); err != nil {
		uc.logger.Errorw("failed to persist plan", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to persist plan: %w", err)
	}

	uc.logger.Infow("plan created", "plan_id", entity.ID(), "name", entity.Name())
	return dto.ToPlanDTO(entity), nil
}
