package autoreply

import "context"

type Repository interface {
	Create(ctx context.Context, rule *Rule) error
	GetByID(ctx context.Context, ruleID uint) (*Rule, error)
	GetBySID(ctx context.Context, sid string) (*Rule, error)
	ListByClientID(ctx context.Context, clientID uint) ([]*Rule, error)
	Update(ctx context.Context, rule *Rule) error
	Delete(ctx context.Context, ruleID uint) error
}
