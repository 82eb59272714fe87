package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"replydesk/internal/domain/clientconfig"
	"replydesk/internal/shared/authorization"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

func TestSaveFeatureSettingsUseCase_Execute_Success(t *testing.T) {
	clientRepo := new(mockClientRepository)
	planRepo := new(mockPlanRepository)
	featureRepo := new(mockFeatureRepository)
	settingRepo := new(mockSettingRepository)

	planID := uint(7)
	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(testClient(t, &planID), nil)
	featureRepo.On("GetBySID", mock.Anything, "feat_3").Return(testFeature(t, 3, "sms-forwarding", nil), nil)
	planRepo.On("GetByID", mock.Anything, uint(7)).Return(testPlan(t, true), nil)
	settingRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*clientconfig.FeatureSettings")).
		Run(func(args mock.Arguments) {
			settings := args.Get(1).(*clientconfig.FeatureSettings)
			assert.Equal(t, uint(1), settings.ClientID())
			assert.Equal(t, uint(3), settings.FeatureID())
			assert.Equal(t, "https://hooks.acme.test", settings.Value("endpoint"))
		}).
		Return(nil)

	uc := NewSaveFeatureSettingsUseCase(clientRepo, planRepo, featureRepo, settingRepo, logger.NewLogger())

	err := uc.Execute(context.Background(), SaveFeatureSettingsCommand{
		ClientSID:  "cli_abc123",
		FeatureSID: "feat_3",
		Values:     map[string]string{"endpoint": "https://hooks.acme.test"},
		Role:       authorization.RoleClient,
	})

	require.NoError(t, err)
	settingRepo.AssertExpectations(t)
}

func TestSaveFeatureSettingsUseCase_Execute_GateRefusesBeforeWrite(t *testing.T) {
	clientRepo := new(mockClientRepository)
	planRepo := new(mockPlanRepository)
	featureRepo := new(mockFeatureRepository)
	settingRepo := new(mockSettingRepository)

	planID := uint(7)
	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(testClient(t, &planID), nil)
	featureRepo.On("GetBySID", mock.Anything, "feat_3").Return(testFeature(t, 3, "sms-forwarding", nil), nil)
	planRepo.On("GetByID", mock.Anything, uint(7)).Return(testPlan(t, false), nil)

	uc := NewSaveFeatureSettingsUseCase(clientRepo, planRepo, featureRepo, settingRepo, logger.NewLogger())

	err := uc.Execute(context.Background(), SaveFeatureSettingsCommand{
		ClientSID:  "cli_abc123",
		FeatureSID: "feat_3",
		Values:     map[string]string{"endpoint": "https://hooks.acme.test"},
		Role:       authorization.RoleClient,
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)

	// Nothing reaches the settings store.
	settingRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSaveFeatureSettingsUseCase_Execute_NoPlanRefusedForClient(t *testing.T) {
	clientRepo := new(mockClientRepository)
	planRepo := new(mockPlanRepository)
	featureRepo := new(mockFeatureRepository)
	settingRepo := new(mockSettingRepository)

	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(testClient(t, nil), nil)
	featureRepo.On("GetBySID", mock.Anything, "feat_3").Return(testFeature(t, 3, "sms-forwarding", nil), nil)

	uc := NewSaveFeatureSettingsUseCase(clientRepo, planRepo, featureRepo, settingRepo, logger.NewLogger())

	err := uc.Execute(context.Background(), SaveFeatureSettingsCommand{
		ClientSID:  "cli_abc123",
		FeatureSID: "feat_3",
		Values:     map[string]string{"endpoint": "x"},
		Role:       authorization.RoleClient,
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	settingRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSaveFeatureSettingsUseCase_Execute_AdminBypassesGate(t *testing.T) {
	clientRepo := new(mockClientRepository)
	planRepo := new(mockPlanRepository)
	featureRepo := new(mockFeatureRepository)
	settingRepo := new(mockSettingRepository)

	// Client has no plan at all; an admin may still write.
	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(testClient(t, nil), nil)
	featureRepo.On("GetBySID", mock.Anything, "feat_3").Return(testFeature(t, 3, "sms-forwarding", nil), nil)
	settingRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*clientconfig.FeatureSettings")).Return(nil)

	uc := NewSaveFeatureSettingsUseCase(clientRepo, planRepo, featureRepo, settingRepo, logger.NewLogger())

	err := uc.Execute(context.Background(), SaveFeatureSettingsCommand{
		ClientSID:  "cli_abc123",
		FeatureSID: "feat_3",
		Values:     map[string]string{"endpoint": "https://hooks.acme.test"},
		Role:       authorization.RoleAdmin,
	})

	require.NoError(t, err)
	settingRepo.AssertExpectations(t)
}
