package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"replydesk/internal/domain/feature"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

func TestCreateFeatureUseCase_Success(t *testing.T) {
	featureRepo := new(mockFeatureRepository)
	featureRepo.On("ExistsBySlug", mock.Anything, "webhook").Return(false, nil)
	featureRepo.On("Create", mock.Anything, mock.AnythingOfType("*feature.Feature")).Return(nil)

	uc := NewCreateFeatureUseCase(featureRepo, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateFeatureCommand{
		Name:        "Webhook",
		Slug:        "webhook",
		Description: "Forward incoming messages to an HTTP endpoint",
		Fields: []FieldInput{
			{Name: "endpoint", Kind: "url"},
			{Name: "token", Kind: "password"},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Webhook", result.Name)
	assert.Equal(t, "webhook", result.Slug)
	require.Len(t, result.Fields, 2)
	assert.Equal(t, "endpoint", result.Fields[0].Name)
	assert.Equal(t, "token", result.Fields[1].Name)
	featureRepo.AssertExpectations(t)
}

func TestCreateFeatureUseCase_DuplicateSlug(t *testing.T) {
	featureRepo := new(mockFeatureRepository)
	featureRepo.On("ExistsBySlug", mock.Anything, "webhook").Return(true, nil)

	uc := NewCreateFeatureUseCase(featureRepo, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateFeatureCommand{
		Name: "Webhook",
		Slug: "webhook",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
	featureRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateFeatureUseCase_InvalidFieldKind(t *testing.T) {
	featureRepo := new(mockFeatureRepository)
	featureRepo.On("ExistsBySlug", mock.Anything, "webhook").Return(false, nil)

	uc := NewCreateFeatureUseCase(featureRepo, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateFeatureCommand{
		Name:   "Webhook",
		Slug:   "webhook",
		Fields: []FieldInput{{Name: "endpoint", Kind: "hyperlink"}},
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	featureRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteFeatureUseCase_CascadesBindings(t *testing.T) {
	featureRepo := new(mockFeatureRepository)
	bindingRepo := new(mockBindingRepository)

	entity, err := feature.NewFeature("Webhook", "webhook", "",
		feature.FieldSchema{{Name: "endpoint", Kind: feature.FieldKindURL}})
	require.NoError(t, err)

	featureRepo.On("GetBySID", mock.Anything, entity.SID()).Return(entity, nil)
	bindingRepo.On("DeleteByFeatureID", mock.Anything, entity.ID()).Return(nil)
	featureRepo.On("Delete", mock.Anything, entity.ID()).Return(nil)

	uc := NewDeleteFeatureUseCase(featureRepo, bindingRepo, logger.NewLogger())
	err = uc.Execute(context.Background(), DeleteFeatureCommand{SID: entity.SID()})

	require.NoError(t, err)
	featureRepo.AssertExpectations(t)
	bindingRepo.AssertExpectations(t)
}

func TestDeleteFeatureUseCase_NotFound(t *testing.T) {
	featureRepo := new(mockFeatureRepository)
	bindingRepo := new(mockBindingRepository)

	featureRepo.On("GetBySID", mock.Anything, "feat_missing").Return(nil, nil)

	uc := NewDeleteFeatureUseCase(featureRepo, bindingRepo, logger.NewLogger())
	err := uc.Execute(context.Background(), DeleteFeatureCommand{SID: "feat_missing"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	bindingRepo.AssertNotCalled(t, "DeleteByFeatureID", mock.Anything, mock.Anything)
	featureRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
