package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/application/plan/dto"
	"replydesk/internal/domain/plan"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type GetPlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewGetPlanUseCase(planRepo plan.Repository, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *GetPlanUseCase) Execute(ctx context.Context, sid string) (*dto.PlanDTO, error) {
	entity, err := uc.planRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}

	return dto.ToPlanDTO(entity), nil
}
