package mappers

import (
	"fmt"

	"replydesk/internal/domain/autoreply"
	"replydesk/internal/infrastructure/persistence/models"
)

// AutoReplyMapper handles the conversion between domain entities and persistence models
type AutoReplyMapper interface {
	ToEntity(model *models.AutoReplyModel) (*autoreply.Rule, error)
	ToModel(entity *autoreply.Rule) *models.AutoReplyModel
	ToEntities(modelList []*models.AutoReplyModel) ([]*autoreply.Rule, error)
}

type autoReplyMapper struct{}

// NewAutoReplyMapper creates a new auto-reply mapper
func NewAutoReplyMapper() AutoReplyMapper {
	return &autoReplyMapper{}
}

func (m *autoReplyMapper) ToEntity(model *models.AutoReplyModel) (*autoreply.Rule, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := autoreply.ReconstructRule(
		model.ID,
		model.SID,
		model.ClientID,
		model.Keyword,
		autoreply.MatchMode(model.MatchMode),
		model.ReplyBody,
		model.IsActive,
		model.Priority,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct auto-reply rule entity: %w", err)
	}

	return entity, nil
}

func (m *autoReplyMapper) ToModel(entity *autoreply.Rule) *models.AutoReplyModel {
	if entity == nil {
		return nil
	}

	return &models.AutoReplyModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		ClientID:  entity.ClientID(),
		Keyword:   entity.Keyword(),
		MatchMode: string(entity.MatchMode()),
		ReplyBody: entity.ReplyBody(),
		IsActive:  entity.IsActive(),
		Priority:  entity.Priority(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *autoReplyMapper) ToEntities(modelList []*models.AutoReplyModel) ([]*autoreply.Rule, error) {
	entities := make([]*autoreply.Rule, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
