package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"replydesk/internal/domain/plan"
	"replydesk/internal/infrastructure/persistence/models"
	"replydesk/internal/shared/logger"
)

// PlanFeatureRepository implements the plan binding repository interface
type PlanFeatureRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewPlanFeatureRepository creates a new plan feature binding repository
func NewPlanFeatureRepository(db *gorm.DB, logger logger.Interface) plan.BindingRepository {
	return &PlanFeatureRepository{
		db:     db,
		logger: logger,
	}
}

// EnableFeature inserts the binding row if it does not exist. The conflict
// clause makes re-enabling an already enabled feature a no-op rather than a
// duplicate key error.
func (r *PlanFeatureRepository) EnableFeature(ctx context.Context, planID, featureID uint) error {
	model := &models.PlanFeatureModel{
		PlanID:    planID,
		FeatureID: featureID,
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "plan_id"}, {Name: "feature_id"}},
			DoNothing: true,
		}).
		Create(model).Error; err != nil {
		r.logger.Errorw("failed to enable feature for plan", "plan_id", planID, "feature_id", featureID, "error", err)
		return fmt.Errorf("failed to enable feature: %w", err)
	}

	r.logger.Infow("feature enabled for plan", "plan_id", planID, "feature_id", featureID)
	return nil
}

// DisableFeature removes the binding row. Disabling a feature that was never
// enabled deletes zero rows and is not an error.
func (r *PlanFeatureRepository) DisableFeature(ctx context.Context, planID, featureID uint) error {
	if err := r.db.WithContext(ctx).
		Where("plan_id = ? AND feature_id = ?", planID, featureID).
		Delete(&models.PlanFeatureModel{}).Error; err != nil {
		r.logger.Errorw("failed to disable feature for plan", "plan_id", planID, "feature_id", featureID, "error", err)
		return fmt.Errorf("failed to disable feature: %w", err)
	}

	r.logger.Infow("feature disabled for plan", "plan_id", planID, "feature_id", featureID)
	return nil
}

func (r *PlanFeatureRepository) IsEnabled(ctx context.Context, planID, featureID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PlanFeatureModel{}).
		Where("plan_id = ? AND feature_id = ?", planID, featureID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check feature binding: %w", err)
	}
	return count > 0, nil
}

// ListFeatureIDs returns the feature ids bound to the plan, ordered by
// feature id for a stable presentation order.
func (r *PlanFeatureRepository) ListFeatureIDs(ctx context.Context, planID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&models.PlanFeatureModel{}).
		Where("plan_id = ?", planID).
		Order("feature_id ASC").
		Pluck("feature_id", &ids).Error; err != nil {
		r.logger.Errorw("failed to list feature bindings for plan", "plan_id", planID, "error", err)
		return nil, fmt.Errorf("failed to list feature bindings: %w", err)
	}
	return ids, nil
}

func (r *PlanFeatureRepository) DeleteByPlanID(ctx context.Context, planID uint) error {
	if err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Delete(&models.PlanFeatureModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete bindings for plan", "plan_id", planID, "error", err)
		return fmt.Errorf("failed to delete plan bindings: %w", err)
	}
	return nil
}

func (r *PlanFeatureRepository) DeleteByFeatureID(ctx context.Context, featureID uint) error {
	if err := r.db.WithContext(ctx).
		Where("feature_id = ?", featureID).
		Delete(&models.PlanFeatureModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete bindings for feature", "feature_id", featureID, "error", err)
		return fmt.Errorf("failed to delete feature bindings: %w", err)
	}
	return nil
}
