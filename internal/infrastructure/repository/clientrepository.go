package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"replydesk/internal/domain/client"
	"replydesk/internal/infrastructure/persistence/mappers"
	"replydesk/internal/infrastructure/persistence/models"
	"replydesk/internal/shared/logger"
)

// ClientRepository implements the client repository interface
type ClientRepository struct {
	db     *gorm.DB
	mapper mappers.ClientMapper
	logger logger.Interface
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB, logger logger.Interface) client.Repository {
	return &ClientRepository{
		db:     db,
		mapper: mappers.NewClientMapper(),
		logger: logger,
	}
}

func (r *ClientRepository) Create(ctx context.Context, entity *client.Client) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create client in database", "error", err, "email", entity.Email())
		return fmt.Errorf("failed to create client: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set client ID: %w", err)
	}

	r.logger.Infow("client created", "id", model.ID, "business_name", model.BusinessName)
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, clientID uint) (*client.Client, error) {
	var model models.ClientModel

	if err := r.db.WithContext(ctx).First(&model, clientID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get client by ID", "id", clientID, "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ClientRepository) GetBySID(ctx context.Context, sid string) (*client.Client, error) {
	var model models.ClientModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get client by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ClientRepository) GetByEmail(ctx context.Context, email string) (*client.Client, error) {
	var model models.ClientModel

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get client by email", "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ClientRepository) List(ctx context.Context, filter client.Filter) ([]*client.Client, int64, error) {
	var clientModels []*models.ClientModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ClientModel{})

	if filter.PlanID != nil {
		query = query.Where("plan_id = ?", *filter.PlanID)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count clients", "error", err)
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	if err := query.Order("id ASC").Find(&clientModels).Error; err != nil {
		r.logger.Errorw("failed to list clients", "error", err)
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	entities, err := r.mapper.ToEntities(clientModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *ClientRepository) Update(ctx context.Context, entity *client.Client) error {
	model := r.mapper.ToModel(entity)

	result := r.db.WithContext(ctx).Model(&models.ClientModel{}).
		Where("id = ?", entity.ID()).
		Updates(map[string]interface{}{
			"business_name": model.BusinessName,
			"email":         model.Email,
			"plan_id":       model.PlanID,
			"is_active":     model.IsActive,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update client", "id", entity.ID(), "error", result.Error)
		return fmt.Errorf("failed to update client: %w", result.Error)
	}

	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, clientID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.ClientModel{}, clientID).Error; err != nil {
		r.logger.Errorw("failed to delete client", "id", clientID, "error", err)
		return fmt.Errorf("failed to delete client: %w", err)
	}

	r.logger.Infow("client deleted", "id", clientID)
	return nil
}

func (r *ClientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ClientModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}
