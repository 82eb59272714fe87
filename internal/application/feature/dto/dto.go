package dto

import (
	"time"

	"replydesk/internal/domain/feature"
)

type FieldDefinitionDTO struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type FeatureDTO struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Slug        string               `json:"slug"`
	Description string               `json:"description,omitempty"`
	Fields      []FieldDefinitionDTO `json:"fields"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func ToFieldDefinitionDTOs(schema feature.FieldSchema) []FieldDefinitionDTO {
	fields := make([]FieldDefinitionDTO, 0, len(schema))
	for _, def := range schema {
		fields = append(fields, FieldDefinitionDTO{
			Name: def.Name,
			Kind: string(def.Kind),
		})
	}
	return fields
}

func ToFeatureDTO(f *feature.Feature) *FeatureDTO {
	if f == nil {
		return nil
	}
	return &FeatureDTO{
		ID:          f.SID(),
		Name:        f.Name(),
		Slug:        f.Slug(),
		Description: f.Description(),
		Fields:      ToFieldDefinitionDTOs(f.Fields()),
		CreatedAt:   f.CreatedAt(),
		UpdatedAt:   f.UpdatedAt(),
	}
}

func ToFeatureDTOs(features []*feature.Feature) []*FeatureDTO {
	dtos := make([]*FeatureDTO, 0, len(features))
	for _, f := range features {
		dtos = append(dtos, ToFeatureDTO(f))
	}
	return dtos
}
