package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"replydesk/internal/domain/plan"
	"replydesk/internal/infrastructure/persistence/mappers"
	"replydesk/internal/infrastructure/persistence/models"
	"replydesk/internal/shared/logger"
)

// PlanRepository implements the plan repository interface
type PlanRepository struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *gorm.DB, logger logger.Interface) plan.Repository {
	return &PlanRepository{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepository) Create(ctx context.Context, entity *plan.Plan) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan in database", "error", err, "name", entity.Name())
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set plan ID: %w", err)
	}

	r.logger.Infow("plan created", "id", model.ID, "name", model.Name)
	return nil
}

func (r *PlanRepository) GetByID(ctx context.Context, planID uint) (*plan.Plan, error) {
	var model models.PlanModel

	if err := r.db.WithContext(ctx).First(&model, planID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by ID", "id", planID, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepository) GetBySID(ctx context.Context, sid string) (*plan.Plan, error) {
	var model models.PlanModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepository) List(ctx context.Context, filter plan.Filter) ([]*plan.Plan, int64, error) {
	var planModels []*models.PlanModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.PlanModel{})

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count plans", "error", err)
		return nil, 0, fmt.Errorf("failed to count plans: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	if err := query.Order("id ASC").Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, 0, fmt.Errorf("failed to list plans: %w", err)
	}

	entities, err := r.mapper.ToEntities(planModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *PlanRepository) Update(ctx context.Context, entity *plan.Plan) error {
	model := r.mapper.ToModel(entity)

	result := r.db.WithContext(ctx).Model(&models.PlanModel{}).
		Where("id = ?", entity.ID()).
		Updates(map[string]interface{}{
			"name":            model.Name,
			"description":     model.Description,
			"price":           model.Price,
			"allow_self_edit": model.AllowSelfEdit,
			"updated_at":      model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "id", entity.ID(), "error", result.Error)
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}

	return nil
}

func (r *PlanRepository) Delete(ctx context.Context, planID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.PlanModel{}, planID).Error; err != nil {
		r.logger.Errorw("failed to delete plan", "id", planID, "error", err)
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	r.logger.Infow("plan deleted", "id", planID)
	return nil
}

// CountClients returns how many clients are currently assigned to the plan.
func (r *PlanRepository) CountClients(ctx context.Context, planID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ClientModel{}).
		Where("plan_id = ?", planID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count clients on plan: %w", err)
	}
	return count, nil
}
