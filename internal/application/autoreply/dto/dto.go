package dto

import (
	"time"

	"replydesk/internal/domain/autoreply"
)

type RuleDTO struct {
	ID        string    `json:"id"`
	Keyword   string    `json:"keyword"`
	MatchMode string    `json:"match_mode"`
	ReplyBody string    `json:"reply_body"`
	IsActive  bool      `json:"is_active"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToRuleDTO(r *autoreply.Rule) *RuleDTO {
	if r == nil {
		return nil
	}
	return &RuleDTO{
		ID:        r.SID(),
		Keyword:   r.Keyword(),
		MatchMode: string(r.MatchMode()),
		ReplyBody: r.ReplyBody(),
		IsActive:  r.IsActive(),
		Priority:  r.Priority(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func ToRuleDTOs(rules []*autoreply.Rule) []*RuleDTO {
	dtos := make([]*RuleDTO, 0, len(rules))
	for _, r := range rules {
		dtos = append(dtos, ToRuleDTO(r))
	}
	return dtos
}
