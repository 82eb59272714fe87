package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"replydesk/internal/domain/message"
	"replydesk/internal/infrastructure/persistence/mappers"
	"replydesk/internal/infrastructure/persistence/models"
	"replydesk/internal/shared/logger"
)

// MessageRepository implements the read-only message repository interface.
// Messages are written by the ingestion pipeline, never by this service.
type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.MessageMapper
	logger logger.Interface
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB, logger logger.Interface) message.Repository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewMessageMapper(),
		logger: logger,
	}
}

func (r *MessageRepository) ListByClientID(ctx context.Context, clientID uint, filter message.Filter) ([]*message.Message, int64, error) {
	var messageModels []*models.MessageModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.MessageModel{}).
		Where("client_id = ?", clientID)

	if filter.Channel != nil {
		query = query.Where("channel = ?", *filter.Channel)
	}
	if filter.Replied != nil {
		query = query.Where("replied = ?", *filter.Replied)
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count messages", "client_id", clientID, "error", err)
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	if err := query.Order("received_at DESC").Find(&messageModels).Error; err != nil {
		r.logger.Errorw("failed to list messages", "client_id", clientID, "error", err)
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}

	entities, err := r.mapper.ToEntities(messageModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *MessageRepository) CountUnreplied(ctx context.Context, clientID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.MessageModel{}).
		Where("client_id = ? AND replied = ?", clientID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unreplied messages: %w", err)
	}
	return count, nil
}
