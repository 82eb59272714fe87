package mappers

import (
	"fmt"

	"replydesk/internal/domain/message"
	"replydesk/internal/infrastructure/persistence/models"
)

// MessageMapper converts message rows to domain entities. There is no
// ToModel: messages are never written by this service.
type MessageMapper interface {
	ToEntity(model *models.MessageModel) (*message.Message, error)
	ToEntities(modelList []*models.MessageModel) ([]*message.Message, error)
}

type messageMapper struct{}

// NewMessageMapper creates a new message mapper
func NewMessageMapper() MessageMapper {
	return &messageMapper{}
}

func (m *messageMapper) ToEntity(model *models.MessageModel) (*message.Message, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := message.ReconstructMessage(
		model.ID,
		model.ClientID,
		model.Sender,
		model.Channel,
		model.Body,
		model.Replied,
		model.ReceivedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct message entity: %w", err)
	}

	return entity, nil
}

func (m *messageMapper) ToEntities(modelList []*models.MessageModel) ([]*message.Message, error) {
	entities := make([]*message.Message, 0, len(modelList))
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
