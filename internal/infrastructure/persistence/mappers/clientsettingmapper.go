package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"replydesk/internal/domain/clientconfig"
	"replydesk/internal/infrastructure/persistence/models"
)

// ClientSettingMapper handles the conversion between domain entities and persistence models
type ClientSettingMapper interface {
	ToEntity(model *models.ClientSettingModel) (*clientconfig.FeatureSettings, error)
	ToModel(entity *clientconfig.FeatureSettings) (*models.ClientSettingModel, error)
}

type clientSettingMapper struct{}

// NewClientSettingMapper creates a new client setting mapper
func NewClientSettingMapper() ClientSettingMapper {
	return &clientSettingMapper{}
}

func (m *clientSettingMapper) ToEntity(model *models.ClientSettingModel) (*clientconfig.FeatureSettings, error) {
	if model == nil {
		return nil, nil
	}

	values := make(map[string]string)
	if len(model.Settings) > 0 {
		if err := json.Unmarshal(model.Settings, &values); err != nil {
			return nil, fmt.Errorf("failed to unmarshal settings values: %w", err)
		}
	}

	entity, err := clientconfig.ReconstructFeatureSettings(
		model.ID,
		model.ClientID,
		model.FeatureID,
		values,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct settings entity: %w", err)
	}

	return entity, nil
}

func (m *clientSettingMapper) ToModel(entity *clientconfig.FeatureSettings) (*models.ClientSettingModel, error) {
	if entity == nil {
		return nil, nil
	}

	data, err := json.Marshal(entity.Values())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings values: %w", err)
	}

	return &models.ClientSettingModel{
		ID:        entity.ID(),
		ClientID:  entity.ClientID(),
		FeatureID: entity.FeatureID(),
		Settings:  datatypes.JSON(data),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}
