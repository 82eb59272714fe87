package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"replydesk/internal/domain/clientconfig"
	"replydesk/internal/domain/feature"
	"replydesk/internal/shared/authorization"
	"replydesk/internal/shared/logger"
)

var webhookSchema = feature.FieldSchema{
	{Name: "token", Kind: feature.FieldKindPassword},
	{Name: "count", Kind: feature.FieldKindNumber},
	{Name: "endpoint", Kind: feature.FieldKindURL},
}

func TestGetFeatureSettingsUseCase_Execute_ResolvesInSchemaOrder(t *testing.T) {
	clientRepo := new(mockClientRepository)
	planRepo := new(mockPlanRepository)
	featureRepo := new(mockFeatureRepository)
	settingRepo := new(mockSettingRepository)

	planID := uint(7)
	now := time.Now()
	saved, err := clientconfig.ReconstructFeatureSettings(11, 1, 3,
		map[string]string{"endpoint": "https://hooks.acme.test", "legacy_key": "stale"}, now, now)
	require.NoError(t, err)

	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(testClient(t, &planID), nil)
	featureRepo.On("GetBySID", mock.Anything, "feat_3").Return(testFeature(t, 3, "webhook-relay", webhookSchema), nil)
	planRepo.On("GetByID", mock.Anything, uint(7)).Return(testPlan(t, true), nil)
	settingRepo.On("GetByClientAndFeature", mock.Anything, uint(1), uint(3)).Return(saved, nil)

	uc := NewGetFeatureSettingsUseCase(clientRepo, planRepo, featureRepo, settingRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetFeatureSettingsCommand{
		ClientSID:  "cli_abc123",
		FeatureSID: "feat_3",
		Role:       authorization.RoleClient,
	})

	require.NoError(t, err)
	require.Len(t, result.Fields, 3)

	// Declared order, missing keys resolve to "".
	assert.Equal(t, "token", result.Fields[0].Name)
	assert.Equal(t, "password", result.Fields[0].Kind)
	assert.Equal(t, "", result.Fields[0].Value)
	assert.Equal(t, "count", result.Fields[1].Name)
	assert.Equal(t, "", result.Fields[1].Value)
	assert.Equal(t, "endpoint", result.Fields[2].Name)
	assert.Equal(t, "https://hooks.acme.test", result.Fields[2].Value)

	// Stored keys outside the current schema are not rendered.
	for _, f := range result.Fields {
		assert.NotEqual(t, "legacy_key", f.Name)
	}

	assert.True(t, result.CanEdit)
}

func TestGetFeatureSettingsUseCase_Execute_NoSettingsRowYieldsEmptyValues(t *testing.T) {
	clientRepo := new(mockClientRepository)
	planRepo := new(mockPlanRepository)
	featureRepo := new(mockFeatureRepository)
	settingRepo := new(mockSettingRepository)

	planID := uint(7)
	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(testClient(t, &planID), nil)
	featureRepo.On("GetBySID", mock.Anything, "feat_3").Return(testFeature(t, 3, "webhook-relay", webhookSchema), nil)
	planRepo.On("GetByID", mock.Anything, uint(7)).Return(testPlan(t, false), nil)
	settingRepo.On("GetByClientAndFeature", mock.Anything, uint(1), uint(3)).Return(nil, nil)

	uc := NewGetFeatureSettingsUseCase(clientRepo, planRepo, featureRepo, settingRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetFeatureSettingsCommand{
		ClientSID:  "cli_abc123",
		FeatureSID: "feat_3",
		Role:       authorization.RoleClient,
	})

	require.NoError(t, err)
	require.Len(t, result.Fields, 3)
	for _, f := range result.Fields {
		assert.Equal(t, "", f.Value)
	}
	assert.False(t, result.CanEdit)
}
