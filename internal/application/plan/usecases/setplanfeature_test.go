package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"replydesk/internal/domain/feature"
	"replydesk/internal/domain/plan"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

func testPlan(t *testing.T) *plan.Plan {
	t.Helper()
	now := time.Now()
	p, err := plan.ReconstructPlan(7, "plan_xyz789", "Pro", "", nil, false, now, now)
	require.NoError(t, err)
	return p
}

func testFeature(t *testing.T) *feature.Feature {
	t.Helper()
	now := time.Now()
	f, err := feature.ReconstructFeature(3, "feat_abc123", "Webhook", "webhook", "",
		feature.FieldSchema{{Name: "endpoint", Kind: feature.FieldKindURL}}, now, now)
	require.NoError(t, err)
	return f
}

func TestSetPlanFeatureUseCase_Enable(t *testing.T) {
	planRepo := new(mockPlanRepository)
	featureRepo := new(mockFeatureRepository)
	bindingRepo := new(mockBindingRepository)

	planRepo.On("GetBySID", mock.Anything, "plan_xyz789").Return(testPlan(t), nil)
	featureRepo.On("GetBySID", mock.Anything, "feat_abc123").Return(testFeature(t), nil)
	bindingRepo.On("EnableFeature", mock.Anything, uint(7), uint(3)).Return(nil)

	uc := NewSetPlanFeatureUseCase(planRepo, featureRepo, bindingRepo, logger.NewLogger())
	err := uc.Execute(context.Background(), SetPlanFeatureCommand{
		PlanSID:    "plan_xyz789",
		FeatureSID: "feat_abc123",
		Enabled:    true,
	})

	require.NoError(t, err)
	bindingRepo.AssertExpectations(t)
	bindingRepo.AssertNotCalled(t, "DisableFeature", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetPlanFeatureUseCase_Disable(t *testing.T) {
	planRepo := new(mockPlanRepository)
	featureRepo := new(mockFeatureRepository)
	bindingRepo := new(mockBindingRepository)

	planRepo.On("GetBySID", mock.Anything, "plan_xyz789").Return(testPlan(t), nil)
	featureRepo.On("GetBySID", mock.Anything, "feat_abc123").Return(testFeature(t), nil)
	bindingRepo.On("DisableFeature", mock.Anything, uint(7), uint(3)).Return(nil)

	uc := NewSetPlanFeatureUseCase(planRepo, featureRepo, bindingRepo, logger.NewLogger())
	err := uc.Execute(context.Background(), SetPlanFeatureCommand{
		PlanSID:    "plan_xyz789",
		FeatureSID: "feat_abc123",
		Enabled:    false,
	})

	require.NoError(t, err)
	bindingRepo.AssertExpectations(t)
	bindingRepo.AssertNotCalled(t, "EnableFeature", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetPlanFeatureUseCase_PlanNotFound(t *testing.T) {
	planRepo := new(mockPlanRepository)
	featureRepo := new(mockFeatureRepository)
	bindingRepo := new(mockBindingRepository)

	planRepo.On("GetBySID", mock.Anything, "plan_missing").Return(nil, nil)

	uc := NewSetPlanFeatureUseCase(planRepo, featureRepo, bindingRepo, logger.NewLogger())
	err := uc.Execute(context.Background(), SetPlanFeatureCommand{
		PlanSID:    "plan_missing",
		FeatureSID: "feat_abc123",
		Enabled:    true,
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	featureRepo.AssertNotCalled(t, "GetBySID", mock.Anything, mock.Anything)
	bindingRepo.AssertNotCalled(t, "EnableFeature", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetPlanFeatureUseCase_FeatureNotFound(t *testing.T) {
	planRepo := new(mockPlanRepository)
	featureRepo := new(mockFeatureRepository)
	bindingRepo := new(mockBindingRepository)

	planRepo.On("GetBySID", mock.Anything, "plan_xyz789").Return(testPlan(t), nil)
	featureRepo.On("GetBySID", mock.Anything, "feat_missing").Return(nil, nil)

	uc := NewSetPlanFeatureUseCase(planRepo, featureRepo, bindingRepo, logger.NewLogger())
	err := uc.Execute(context.Background(), SetPlanFeatureCommand{
		PlanSID:    "plan_xyz789",
		FeatureSID: "feat_missing",
		Enabled:    true,
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	bindingRepo.AssertNotCalled(t, "EnableFeature", mock.Anything, mock.Anything, mock.Anything)
	bindingRepo.AssertNotCalled(t, "DisableFeature", mock.Anything, mock.Anything, mock.Anything)
}
