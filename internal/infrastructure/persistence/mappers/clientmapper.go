package mappers

import (
	"fmt"

	"replydesk/internal/domain/client"
	"replydesk/internal/infrastructure/persistence/models"
)

// ClientMapper handles the conversion between domain entities and persistence models
type ClientMapper interface {
	ToEntity(model *models.ClientModel) (*client.Client, error)
	ToModel(entity *client.Client) *models.ClientModel
	ToEntities(modelList []*models.ClientModel) ([]*client.Client, error)
}

type clientMapper struct{}

// NewClientMapper creates a new client mapper
func NewClientMapper() ClientMapper {
	return &clientMapper{}
}

func (m *clientMapper) ToEntity(model *models.ClientModel) (*client.Client, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := client.ReconstructClient(
		model.ID,
		model.SID,
		model.BusinessName,
		model.Email,
		model.PlanID,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct client entity: %w", err)
	}

	return entity, nil
}

func (m *clientMapper) ToModel(entity *client.Client) *models.ClientModel {
	if entity == nil {
		return nil
	}

	return &models.ClientModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		BusinessName: entity.BusinessName(),
		Email:        entity.Email(),
		PlanID:       entity.PlanID(),
		IsActive:     entity.IsActive(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *clientMapper) ToEntities(modelList []*models.ClientModel) ([]*client.Client, error) {
	entities := make([]*client.Client, 0, len(modelList))
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
