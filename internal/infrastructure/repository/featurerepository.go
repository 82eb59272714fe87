package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"replydesk/internal/domain/feature"
	"replydesk/internal/infrastructure/persistence/mappers"
	"replydesk/internal/infrastructure/persistence/models"
	"replydesk/internal/shared/logger"
)

// FeatureRepository implements the feature repository interface
type FeatureRepository struct {
	db     *gorm.DB
	mapper mappers.FeatureMapper
	logger logger.Interface
}

// NewFeatureRepository creates a new feature repository
func NewFeatureRepository(db *gorm.DB, logger logger.Interface) feature.Repository {
	return &FeatureRepository{
		db:     db,
		mapper: mappers.NewFeatureMapper(),
		logger: logger,
	}
}

func (r *FeatureRepository) Create(ctx context.Context, entity *feature.Feature) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map feature entity to model", "error", err)
		return fmt.Errorf("failed to map feature entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create feature in database", "error", err, "slug", entity.Slug())
		return fmt.Errorf("failed to create feature: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set feature ID: %w", err)
	}

	r.logger.Infow("feature created", "id", model.ID, "slug", model.Slug)
	return nil
}

func (r *FeatureRepository) GetByID(ctx context.Context, featureID uint) (*feature.Feature, error) {
	var model models.FeatureModel

	if err := r.db.WithContext(ctx).First(&model, featureID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get feature by ID", "id", featureID, "error", err)
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *FeatureRepository) GetBySID(ctx context.Context, sid string) (*feature.Feature, error) {
	var model models.FeatureModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get feature by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *FeatureRepository) GetBySlug(ctx context.Context, slug string) (*feature.Feature, error) {
	var model models.FeatureModel

	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get feature by slug", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByIDs retrieves the features whose id is in the given set, ordered by id
// so repeated calls over the same data yield the same ordering.
func (r *FeatureRepository) GetByIDs(ctx context.Context, ids []uint) ([]*feature.Feature, error) {
	if len(ids) == 0 {
		return []*feature.Feature{}, nil
	}

	var featureModels []*models.FeatureModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&featureModels).Error; err != nil {
		r.logger.Errorw("failed to get features by IDs", "ids", ids, "error", err)
		return nil, fmt.Errorf("failed to get features by IDs: %w", err)
	}

	return r.mapper.ToEntities(featureModels)
}

func (r *FeatureRepository) List(ctx context.Context, filter feature.Filter) ([]*feature.Feature, int64, error) {
	var featureModels []*models.FeatureModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.FeatureModel{})

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count features", "error", err)
		return nil, 0, fmt.Errorf("failed to count features: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	if err := query.Order("id ASC").Find(&featureModels).Error; err != nil {
		r.logger.Errorw("failed to list features", "error", err)
		return nil, 0, fmt.Errorf("failed to list features: %w", err)
	}

	entities, err := r.mapper.ToEntities(featureModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *FeatureRepository) Update(ctx context.Context, entity *feature.Feature) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map feature entity to model", "error", err)
		return fmt.Errorf("failed to map feature entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.FeatureModel{}).
		Where("id = ?", entity.ID()).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
			"fields":      model.Fields,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update feature", "id", entity.ID(), "error", result.Error)
		return fmt.Errorf("failed to update feature: %w", result.Error)
	}

	return nil
}

func (r *FeatureRepository) Delete(ctx context.Context, featureID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.FeatureModel{}, featureID).Error; err != nil {
		r.logger.Errorw("failed to delete feature", "id", featureID, "error", err)
		return fmt.Errorf("failed to delete feature: %w", err)
	}

	r.logger.Infow("feature deleted", "id", featureID)
	return nil
}

func (r *FeatureRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.FeatureModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}
	return count > 0, nil
}
