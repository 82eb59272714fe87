package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/domain/feature"
	"replydesk/internal/domain/plan"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type DeleteFeatureCommand struct {
	SID string
}

// DeleteFeatureUseCase removes a feature and its plan bindings. Client
// settings rows referencing the feature are left in place; they simply stop
// being rendered because no plan binds the feature anymore.
type DeleteFeatureUseCase struct {
	featureRepo feature.Repository
	bindingRepo plan.BindingRepository
	logger      logger.Interface
}

func NewDeleteFeatureUseCase(
	featureRepo feature.Repository,
	bindingRepo plan.BindingRepository,
	logger logger.Interface,
) *DeleteFeatureUseCase {
	return &DeleteFeatureUseCase{
		featureRepo: featureRepo,
		bindingRepo: bindingRepo,
		logger:      logger,
	}
}

func (uc *DeleteFeatureUseCase) Execute(ctx context.Context, cmd DeleteFeatureCommand) error {
	entity, err := uc.featureRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get feature", "error", err, "sid", cmd.SID)
		return fmt.Errorf("failed to get feature: %w", err)
	}
	if entity == nil {
		return errors.NewNotFoundError("feature not found")
	}

	if err := uc.bindingRepo.DeleteByFeatureID(ctx, entity.ID()); err != nil {
		uc.logger.Errorw("failed to delete feature bindings", "error", err, "feature_id", entity.ID())
		return fmt.Errorf("failed to delete feature bindings: %w", err)
	}

	if err := uc.featureRepo.Delete(ctx, entity.ID()); err != nil {
		uc.logger.Errorw("failed to delete feature", "error", err, "feature_id", entity.ID())
		return fmt.Errorf("failed to delete feature: %w", err)
	}

	uc.logger.Infow("feature deleted", "feature_id", entity.ID(), "slug", entity.Slug())
	return nil
}
