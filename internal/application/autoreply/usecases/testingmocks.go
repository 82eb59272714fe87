package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"replydesk/internal/domain/autoreply"
	"replydesk/internal/domain/client"
)

type mockClientRepository struct {
	mock.Mock
}

func (m *mockClientRepository) Create(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockClientRepository) GetByID(ctx context.Context, clientID uint) (*client.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *mockClientRepository) GetBySID(ctx context.Context, sid string) (*client.Client, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *mockClientRepository) GetByEmail(ctx context.Context, email string) (*client.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *mockClientRepository) List(ctx context.Context, filter client.Filter) ([]*client.Client, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*client.Client), args.Get(1).(int64), args.Error(2)
}

func (m *mockClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockClientRepository) Delete(ctx context.Context, clientID uint) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

func (m *mockClientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockRuleRepository struct {
	mock.Mock
}

func (m *mockRuleRepository) Create(ctx context.Context, rule *autoreply.Rule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *mockRuleRepository) GetByID(ctx context.Context, ruleID uint) (*autoreply.Rule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*autoreply.Rule), args.Error(1)
}

func (m *mockRuleRepository) GetBySID(ctx context.Context, sid string) (*autoreply.Rule, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*autoreply.Rule), args.Error(1)
}

func (m *mockRuleRepository) ListByClientID(ctx context.Context, clientID uint) ([]*autoreply.Rule, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*autoreply.Rule), args.Error(1)
}

func (m *mockRuleRepository) Update(ctx context.Context, rule *autoreply.Rule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *mockRuleRepository) Delete(ctx context.Context, ruleID uint) error {
	args := m.Called(ctx, ruleID)
	return args.Error(0)
}
