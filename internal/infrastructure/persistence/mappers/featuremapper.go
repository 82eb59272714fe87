package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"replydesk/internal/domain/feature"
	"replydesk/internal/infrastructure/persistence/models"
)

// FeatureMapper handles the conversion between domain entities and persistence models
type FeatureMapper interface {
	ToEntity(model *models.FeatureModel) (*feature.Feature, error)
	ToModel(entity *feature.Feature) (*models.FeatureModel, error)
	ToEntities(modelList []*models.FeatureModel) ([]*feature.Feature, error)
}

type featureMapper struct{}

// NewFeatureMapper creates a new feature mapper
func NewFeatureMapper() FeatureMapper {
	return &featureMapper{}
}

// ToEntity converts a persistence model to a domain entity. The stored JSON
// array preserves the declared field order.
func (m *featureMapper) ToEntity(model *models.FeatureModel) (*feature.Feature, error) {
	if model == nil {
		return nil, nil
	}

	fields, err := feature.ParseFieldSchema(model.Fields)
	if err != nil {
		return nil, fmt.Errorf("failed to parse field schema: %w", err)
	}

	entity, err := feature.ReconstructFeature(
		model.ID,
		model.SID,
		model.Name,
		model.Slug,
		model.Description,
		fields,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct feature entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model
func (m *featureMapper) ToModel(entity *feature.Feature) (*models.FeatureModel, error) {
	if entity == nil {
		return nil, nil
	}

	data, err := json.Marshal(entity.Fields())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal field schema: %w", err)
	}

	return &models.FeatureModel{
		ID:          entity.ID(),
		SID:         entity.SID(),
		Name:        entity.Name(),
		Slug:        entity.Slug(),
		Description: entity.Description(),
		Fields:      datatypes.JSON(data),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities
func (m *featureMapper) ToEntities(modelList []*models.FeatureModel) ([]*feature.Feature, error) {
	entities := make([]*feature.Feature, 0, len(modelList))
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
