package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/domain/feature"
	"replydesk/internal/domain/plan"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type SetPlanFeatureCommand struct {
	PlanSID    string
	FeatureSID string
	Enabled    bool
}

// SetPlanFeatureUseCase toggles a feature on a plan. Both directions are
// idempotent: enabling an enabled feature and disabling a disabled one
// succeed without touching other rows. Disabling never deletes client
// settings for the feature.
type SetPlanFeatureUseCase struct {
	planRepo    plan.Repository
	featureRepo feature.Repository
	bindingRepo plan.BindingRepository
	logger      logger.Interface
}

func NewSetPlanFeatureUseCase(
	planRepo plan.Repository,
	featureRepo feature.Repository,
	bindingRepo plan.BindingRepository,
	logger logger.Interface,
) *SetPlanFeatureUseCase {
	return &SetPlanFeatureUseCase{
		planRepo:    planRepo,
		featureRepo: featureRepo,
		bindingRepo: bindingRepo,
		logger:      logger,
	}
}

func (uc *SetPlanFeatureUseCase) Execute(ctx context.Context, cmd SetPlanFeatureCommand) error {
	planEntity, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "sid", cmd.PlanSID)
		return fmt.Errorf("failed to get plan: %w", err)
	}
	if planEntity == nil {
		return errors.NewNotFoundError("plan not found")
	}

	featureEntity, err := uc.featureRepo.GetBySID(ctx, cmd.FeatureSID)
	if err != nil {
		uc.logger.Errorw("failed to get feature", "error", err, "sid", cmd.FeatureSID)
		return fmt.Errorf("failed to get feature: %w", err)
	}
	if featureEntity == nil {
		return errors.NewNotFoundError("feature not found")
	}

	if cmd.Enabled {
		if err := uc.bindingRepo.EnableFeature(ctx, planEntity.ID(), featureEntity.ID()); err != nil {
			return fmt.Errorf("failed to enable feature: %w", err)
		}
	} else {
		if err := uc.bindingRepo.DisableFeature(ctx, planEntity.ID(), featureEntity.ID()); err != nil {
			return fmt.Errorf("failed to disable feature: %w", err)
		}
	}

	uc.logger.Infow("plan feature toggled",
		"plan_id", planEntity.ID(),
		"feature_id", featureEntity.ID(),
		"enabled", cmd.Enabled)
	return nil
}
