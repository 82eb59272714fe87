package dto

import (
	"time"

	"replydesk/internal/domain/plan"
)

type PlanDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         *uint64   `json:"price,omitempty"`
	AllowSelfEdit bool      `json:"allow_self_edit"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToPlanDTO(p *plan.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:            p.SID(),
		Name:          p.Name(),
		Description:   p.Description(),
		Price:         p.Price(),
		AllowSelfEdit: p.AllowSelfEdit(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func ToPlanDTOs(plans []*plan.Plan) []*PlanDTO {
	dtos := make([]*PlanDTO, 0, len(plans))
	for _, p := range plans {
		dtos = append(dtos, ToPlanDTO(p))
	}
	return dtos
}
