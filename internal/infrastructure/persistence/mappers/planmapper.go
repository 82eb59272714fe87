package mappers

import (
	"fmt"

	"replydesk/internal/domain/plan"
	"replydesk/internal/infrastructure/persistence/models"
)

// PlanMapper handles the conversion between domain entities and persistence models
type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*plan.Plan, error)
	ToModel(entity *plan.Plan) *models.PlanModel
	ToEntities(modelList []*models.PlanModel) ([]*plan.Plan, error)
}

type planMapper struct{}

// NewPlanMapper creates a new plan mapper
func NewPlanMapper() PlanMapper {
	return &planMapper{}
}

func (m *planMapper) ToEntity(model *models.PlanModel) (*plan.Plan, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plan.ReconstructPlan(
		model.ID,
		model.SID,
		model.Name,
		model.Description,
		model.Price,
		model.AllowSelfEdit,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan entity: %w", err)
	}

	return entity, nil
}

func (m *planMapper) ToModel(entity *plan.Plan) *models.PlanModel {
	if entity == nil {
		return nil
	}

	return &models.PlanModel{
		ID:            entity.ID(),
		SID:           entity.SID(),
		Name:          entity.Name(),
		Description:   entity.Description(),
		Price:         entity.Price(),
		AllowSelfEdit: entity.AllowSelfEdit(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m *planMapper) ToEntities(modelList []*models.PlanModel) ([]*plan.Plan, error) {
	entities := make([]*plan.Plan, 0, len(modelList))
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
