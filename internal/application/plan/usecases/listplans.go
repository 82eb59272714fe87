package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/application/plan/dto"
	"replydesk/internal/domain/plan"
	"replydesk/internal/shared/logger"
)

type ListPlansCommand struct {
	Page     int
	PageSize int
}

type ListPlansResult struct {
	Plans []*dto.PlanDTO
	Total int64
}

type ListPlansUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo plan.Repository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, cmd ListPlansCommand) (*ListPlansResult, error) {
	plans, total, err := uc.planRepo.List(ctx, plan.Filter{
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return &ListPlansResult{
		Plans: dto.ToPlanDTOs(plans),
		Total: total,
	}, nil
}
