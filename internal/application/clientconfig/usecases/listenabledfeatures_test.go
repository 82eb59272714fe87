package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"replydesk/internal/domain/client"
	"replydesk/internal/domain/feature"
	"replydesk/internal/domain/plan"
	"replydesk/internal/shared/authorization"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

func testClient(t *testing.T, planID *uint) *client.Client {
	t.Helper()
	now := time.Now()
	c, err := client.ReconstructClient(1, "cli_abc123", "Acme Corp", "owner@acme.test", planID, true, now, now)
	require.NoError(t, err)
	return c
}

func testPlan(t *testing.T, allowSelfEdit bool) *plan.Plan {
	t.Helper()
	now := time.Now()
	p, err := plan.ReconstructPlan(7, "plan_xyz789", "Pro", "", nil, allowSelfEdit, now, now)
	require.NoError(t, err)
	return p
}

func testFeature(t *testing.T, featureID uint, slug string, fields feature.FieldSchema) *feature.Feature {
	t.Helper()
	now := time.Now()
	f, err := feature.ReconstructFeature(featureID, fmt.Sprintf("feat_%d", featureID), slug, slug, "", fields, now, now)
	require.NoError(t, err)
	return f
}

func TestListEnabledFeaturesUseCase_Execute_Success(t *testing.T) {
	clientRepo := new(mockClientRepository)
	planRepo := new(mockPlanRepository)
	bindingRepo := new(mockBindingRepository)
	featureRepo := new(mockFeatureRepository)

	planID := uint(7)
	clientEntity := testClient(t, &planID)
	planEntity := testPlan(t, true)
	features := []*feature.Feature{
		testFeature(t, 3, "sms-forwarding", nil),
		testFeature(t, 5, "webhook-relay", nil),
	}

	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(clientEntity, nil)
	planRepo.On("GetByID", mock.Anything, uint(7)).Return(planEntity, nil)
	bindingRepo.On("ListFeatureIDs", mock.Anything, uint(7)).Return([]uint{3, 5}, nil)
	featureRepo.On("GetByIDs", mock.Anything, []uint{3, 5}).Return(features, nil)

	uc := NewListEnabledFeaturesUseCase(clientRepo, planRepo, bindingRepo, featureRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListEnabledFeaturesCommand{
		ClientSID: "cli_abc123",
		Role:      authorization.RoleClient,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "cli_abc123", result.ClientID)
	assert.Equal(t, "plan_xyz789", result.PlanID)
	require.Len(t, result.Features, 2)
	assert.Equal(t, "sms-forwarding", result.Features[0].Slug)
	assert.Equal(t, "webhook-relay", result.Features[1].Slug)
	// Plan allows self-editing, so the client may edit.
	assert.True(t, result.Features[0].CanEdit)

	clientRepo.AssertExpectations(t)
	planRepo.AssertExpectations(t)
	bindingRepo.AssertExpectations(t)
	featureRepo.AssertExpectations(t)
}

func TestListEnabledFeaturesUseCase_Execute_NoPlanYieldsEmptyList(t *testing.T) {
	clientRepo := new(mockClientRepository)
	planRepo := new(mockPlanRepository)
	bindingRepo := new(mockBindingRepository)
	featureRepo := new(mockFeatureRepository)

	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(testClient(t, nil), nil)

	uc := NewListEnabledFeaturesUseCase(clientRepo, planRepo, bindingRepo, featureRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListEnabledFeaturesCommand{
		ClientSID: "cli_abc123",
		Role:      authorization.RoleClient,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Features)
	assert.Empty(t, result.PlanID)

	// Neither the plan, the bindings nor the features should be touched.
	planRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	bindingRepo.AssertNotCalled(t, "ListFeatureIDs", mock.Anything, mock.Anything)
	featureRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestListEnabledFeaturesUseCase_Execute_DeletedPlanYieldsEmptyList(t *testing.T) {
	clientRepo := new(mockClientRepository)
	planRepo := new(mockPlanRepository)
	bindingRepo := new(mockBindingRepository)
	featureRepo := new(mockFeatureRepository)

	planID := uint(7)
	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(testClient(t, &planID), nil)
	planRepo.On("GetByID", mock.Anything, uint(7)).Return(nil, nil)

	uc := NewListEnabledFeaturesUseCase(clientRepo, planRepo, bindingRepo, featureRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListEnabledFeaturesCommand{
		ClientSID: "cli_abc123",
		Role:      authorization.RoleClient,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Features)
	assert.Empty(t, result.PlanID)
}

func TestListEnabledFeaturesUseCase_Execute_NoBindingsYieldsEmptyList(t *testing.T) {
	clientRepo := new(mockClientRepository)
	planRepo := new(mockPlanRepository)
	bindingRepo := new(mockBindingRepository)
	featureRepo := new(mockFeatureRepository)

	planID := uint(7)
	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(testClient(t, &planID), nil)
	planRepo.On("GetByID", mock.Anything, uint(7)).Return(testPlan(t, false), nil)
	bindingRepo.On("ListFeatureIDs", mock.Anything, uint(7)).Return([]uint{}, nil)

	uc := NewListEnabledFeaturesUseCase(clientRepo, planRepo, bindingRepo, featureRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListEnabledFeaturesCommand{
		ClientSID: "cli_abc123",
		Role:      authorization.RoleClient,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Features)
	assert.Equal(t, "plan_xyz789", result.PlanID)
	featureRepo.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestListEnabledFeaturesUseCase_Execute_ClientNotFound(t *testing.T) {
	clientRepo := new(mockClientRepository)
	planRepo := new(mockPlanRepository)
	bindingRepo := new(mockBindingRepository)
	featureRepo := new(mockFeatureRepository)

	clientRepo.On("GetBySID", mock.Anything, "cli_missing").Return(nil, nil)

	uc := NewListEnabledFeaturesUseCase(clientRepo, planRepo, bindingRepo, featureRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListEnabledFeaturesCommand{
		ClientSID: "cli_missing",
		Role:      authorization.RoleAdmin,
	})

	assert.Nil(t, result)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
}

func TestListEnabledFeaturesUseCase_Execute_FetchFailureIsSingleError(t *testing.T) {
	clientRepo := new(mockClientRepository)
	planRepo := new(mockPlanRepository)
	bindingRepo := new(mockBindingRepository)
	featureRepo := new(mockFeatureRepository)

	planID := uint(7)
	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(testClient(t, &planID), nil)
	planRepo.On("GetByID", mock.Anything, uint(7)).Return(testPlan(t, true), nil)
	bindingRepo.On("ListFeatureIDs", mock.Anything, uint(7)).Return(nil, fmt.Errorf("connection reset"))

	uc := NewListEnabledFeaturesUseCase(clientRepo, planRepo, bindingRepo, featureRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListEnabledFeaturesCommand{
		ClientSID: "cli_abc123",
		Role:      authorization.RoleClient,
	})

	// No partial result, and the caller sees a single generic error.
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration unavailable")
}

func TestListEnabledFeaturesUseCase_Execute_CanEditFollowsPlanFlag(t *testing.T) {
	for _, tc := range []struct {
		name          string
		role          authorization.UserRole
		allowSelfEdit bool
		want          bool
	}{
		{"client on self-edit plan", authorization.RoleClient, true, true},
		{"client on locked plan", authorization.RoleClient, false, false},
		{"admin on locked plan", authorization.RoleAdmin, false, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			clientRepo := new(mockClientRepository)
			planRepo := new(mockPlanRepository)
			bindingRepo := new(mockBindingRepository)
			featureRepo := new(mockFeatureRepository)

			planID := uint(7)
			clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(testClient(t, &planID), nil)
			planRepo.On("GetByID", mock.Anything, uint(7)).Return(testPlan(t, tc.allowSelfEdit), nil)
			bindingRepo.On("ListFeatureIDs", mock.Anything, uint(7)).Return([]uint{3}, nil)
			featureRepo.On("GetByIDs", mock.Anything, []uint{3}).
				Return([]*feature.Feature{testFeature(t, 3, "sms-forwarding", nil)}, nil)

			uc := NewListEnabledFeaturesUseCase(clientRepo, planRepo, bindingRepo, featureRepo, logger.NewLogger())

			result, err := uc.Execute(context.Background(), ListEnabledFeaturesCommand{
				ClientSID: "cli_abc123",
				Role:      tc.role,
			})

			require.NoError(t, err)
			require.Len(t, result.Features, 1)
			assert.Equal(t, tc.want, result.Features[0].CanEdit)
		})
	}
}
