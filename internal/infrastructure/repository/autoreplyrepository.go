package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"replydesk/internal/domain/autoreply"
	"replydesk/internal/infrastructure/persistence/mappers"
	"replydesk/internal/infrastructure/persistence/models"
	"replydesk/internal/shared/logger"
)

// AutoReplyRepository implements the auto reply rule repository interface
type AutoReplyRepository struct {
	db     *gorm.DB
	mapper mappers.AutoReplyMapper
	logger logger.Interface
}

// NewAutoReplyRepository creates a new auto reply repository
func NewAutoReplyRepository(db *gorm.DB, logger logger.Interface) autoreply.Repository {
	return &AutoReplyRepository{
		db:     db,
		mapper: mappers.NewAutoReplyMapper(),
		logger: logger,
	}
}

func (r *AutoReplyRepository) Create(ctx context.Context, entity *autoreply.Rule) error {
	model := r.mapper.ToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create auto reply rule", "client_id", entity.ClientID(), "error", err)
		return fmt.Errorf("failed to create auto reply rule: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set rule ID: %w", err)
	}

	r.logger.Infow("auto reply rule created", "id", model.ID, "client_id", model.ClientID)
	return nil
}

func (r *AutoReplyRepository) GetByID(ctx context.Context, ruleID uint) (*autoreply.Rule, error) {
	var model models.AutoReplyModel

	if err := r.db.WithContext(ctx).First(&model, ruleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get auto reply rule by ID", "id", ruleID, "error", err)
		return nil, fmt.Errorf("failed to get auto reply rule: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AutoReplyRepository) GetBySID(ctx context.Context, sid string) (*autoreply.Rule, error) {
	var model models.AutoReplyModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get auto reply rule by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get auto reply rule: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListByClientID returns the client's rules ordered by priority then id, the
// order the responder evaluates them in.
func (r *AutoReplyRepository) ListByClientID(ctx context.Context, clientID uint) ([]*autoreply.Rule, error) {
	var ruleModels []*models.AutoReplyModel

	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("priority ASC, id ASC").
		Find(&ruleModels).Error; err != nil {
		r.logger.Errorw("failed to list auto reply rules", "client_id", clientID, "error", err)
		return nil, fmt.Errorf("failed to list auto reply rules: %w", err)
	}

	return r.mapper.ToEntities(ruleModels)
}

func (r *AutoReplyRepository) Update(ctx context.Context, entity *autoreply.Rule) error {
	model := r.mapper.ToModel(entity)

	result := r.db.WithContext(ctx).Model(&models.AutoReplyModel{}).
		Where("id = ?", entity.ID()).
		Updates(map[string]interface{}{
			"keyword":    model.Keyword,
			"match_mode": model.MatchMode,
			"reply_body": model.ReplyBody,
			"is_active":  model.IsActive,
			"priority":   model.Priority,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update auto reply rule", "id", entity.ID(), "error", result.Error)
		return fmt.Errorf("failed to update auto reply rule: %w", result.Error)
	}

	return nil
}

func (r *AutoReplyRepository) Delete(ctx context.Context, ruleID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.AutoReplyModel{}, ruleID).Error; err != nil {
		r.logger.Errorw("failed to delete auto reply rule", "id", ruleID, "error", err)
		return fmt.Errorf("failed to delete auto reply rule: %w", err)
	}

	r.logger.Infow("auto reply rule deleted", "id", ruleID)
	return nil
}
