package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"replydesk/internal/domain/client"
	"replydesk/internal/domain/clientconfig"
	"replydesk/internal/domain/feature"
	"replydesk/internal/domain/plan"
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

type mockPlanRepository struct {
	mock.Mock
}

func (m *mockPlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPlanRepository) GetByID(ctx context.Context, planID uint) (*plan.Plan, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Plan), args.Error(1)
}

func (m *mockPlanRepository) GetBySID(ctx context.Context, sid string) (*plan.Plan, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.Plan), args.Error(1)
}

func (m *mockPlanRepository) List(ctx context.Context, filter plan.Filter) ([]*plan.Plan, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*plan.Plan), args.Get(1).(int64), args.Error(2)
}

func (m *mockPlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPlanRepository) Delete(ctx context.Context, planID uint) error {
	args := m.Called(ctx, planID)
	return args.Error(0)
}

func (m *mockPlanRepository) CountClients(ctx context.Context, planID uint) (int64, error) {
	args := m.Called(ctx, planID)
	return args.Get(0).(int64), args.Error(1)
}

type mockBindingRepository struct {
	mock.Mock
}

func (m *mockBindingRepository) EnableFeature(ctx context.Context, planID, featureID uint) error {
	args := m.Called(ctx, planID, featureID)
	return args.Error(0)
}

func (m *mockBindingRepository) DisableFeature(ctx context.Context, planID, featureID uint) error {
	args := m.Called(ctx, planID, featureID)
	return args.Error(0)
}

func (m *mockBindingRepository) IsEnabled(ctx context.Context, planID, featureID uint) (bool, error) {
	args := m.Called(ctx, planID, featureID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBindingRepository) ListFeatureIDs(ctx context.Context, planID uint) ([]uint, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *mockBindingRepository) DeleteByPlanID(ctx context.Context, planID uint) error {
	args := m.Called(ctx, planID)
	return args.Error(0)
}

func (m *mockBindingRepository) DeleteByFeatureID(ctx context.Context, featureID uint) error {
	args := m.Called(ctx, featureID)
	return args.Error(0)
}

type mockFeatureRepository struct {
	mock.Mock
}

func (m *mockFeatureRepository) Create(ctx context.Context, f *feature.Feature) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *mockFeatureRepository) GetByID(ctx context.Context, featureID uint) (*feature.Feature, error) {
	args := m.Called(ctx, featureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feature.Feature), args.Error(1)
}

func (m *mockFeatureRepository) GetBySID(ctx context.Context, sid string) (*feature.Feature, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feature.Feature), args.Error(1)
}

func (m *mockFeatureRepository) GetBySlug(ctx context.Context, slug string) (*feature.Feature, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feature.Feature), args.Error(1)
}

func (m *mockFeatureRepository) GetByIDs(ctx context.Context, ids []uint) ([]*feature.Feature, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*feature.Feature), args.Error(1)
}

func (m *mockFeatureRepository) List(ctx context.Context, filter feature.Filter) ([]*feature.Feature, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*feature.Feature), args.Get(1).(int64), args.Error(2)
}

func (m *mockFeatureRepository) Update(ctx context.Context, f *feature.Feature) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *mockFeatureRepository) Delete(ctx context.Context, featureID uint) error {
	args := m.Called(ctx, featureID)
	return args.Error(0)
}

func (m *mockFeatureRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

type mockSettingRepository struct {
	mock.Mock
}

func (m *mockSettingRepository) GetByClientAndFeature(ctx context.Context, clientID, featureID uint) (*clientconfig.FeatureSettings, error) {
	args := m.Called(ctx, clientID, featureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clientconfig.FeatureSettings), args.Error(1)
}

func (m *mockSettingRepository) Upsert(ctx context.Context, settings *clientconfig.FeatureSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *mockSettingRepository) DeleteByClientID(ctx context.Context, clientID uint) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}
