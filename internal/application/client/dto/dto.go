package dto

import (
	"time"

	"replydesk/internal/domain/client"
	plandto "replydesk/internal/application/plan/dto"
)

type ClientDTO struct {
	ID           string           `json:"id"`
	BusinessName string           `json:"business_name"`
	Email        string           `json:"email"`
	Plan         *plandto.PlanDTO `json:"plan,omitempty"`
	IsActive     bool             `json:"is_active"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func ToClientDTO(c *client.Client, plan *plandto.PlanDTO) *ClientDTO {
	if c == nil {
		return nil
	}
	return &ClientDTO{
		ID:           c.SID(),
		BusinessName: c.BusinessName(),
		Email:        c.Email(),
		Plan:         plan,
		IsActive:     c.IsActive(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}
