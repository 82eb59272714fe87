package usecases

import (
	"context"
	"fmt"

	featuredto "replydesk/internal/application/feature/dto"
	"replydesk/internal/domain/feature"
	"replydesk/internal/domain/plan"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type ListPlanFeaturesUseCase struct {
	planRepo    plan.Repository
	featureRepo feature.Repository
	bindingRepo plan.BindingRepository
	logger      logger.Interface
}

func NewListPlanFeaturesUseCase(
	planRepo plan.Repository,
	featureRepo feature.Repository,
	bindingRepo plan.BindingRepository,
	logger logger.Interface,
) *ListPlanFeaturesUseCase {
	return &ListPlanFeaturesUseCase{
		planRepo:    planRepo,
		featureRepo: featureRepo,
		bindingRepo: bindingRepo,
		logger:      logger,
	}
}

// Execute returns the features bound to the plan in stable id order.
// Bindings pointing at deleted features are skipped silently.
func (uc *ListPlanFeaturesUseCase) Execute(ctx context.Context, planSID string) ([]*featuredto.FeatureDTO, error) {
	planEntity, err := uc.planRepo.GetBySID(ctx, planSID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "sid", planSID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if planEntity == nil {
		return nil, errors.NewNotFoundError("plan not found")
	}

	featureIDs, err := uc.bindingRepo.ListFeatureIDs(ctx, planEntity.ID())
	if err != nil {
		uc.logger.Errorw("failed to list plan bindings", "error", err, "plan_id", planEntity.ID())
		return nil, fmt.Errorf("failed to list plan bindings: %w", err)
	}
	if len(featureIDs) == 0 {
		return []*featuredto.FeatureDTO{}, nil
	}

	features, err := uc.featureRepo.GetByIDs(ctx, featureIDs)
	if err != nil {
		uc.logger.Errorw("failed to load bound features", "error", err, "plan_id", planEntity.ID())
		return nil, fmt.Errorf("failed to load bound features: %w", err)
	}

	return featuredto.ToFeatureDTOs(features), nil
}
