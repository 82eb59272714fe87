package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

func TestDeletePlanUseCase_Success(t *testing.T) {
	planRepo := new(mockPlanRepository)
	bindingRepo := new(mockBindingRepository)

	planRepo.On("GetBySID", mock.Anything, "plan_xyz789").Return(testPlan(t), nil)
	planRepo.On("CountClients", mock.Anything, uint(7)).Return(int64(0), nil)
	bindingRepo.On("DeleteByPlanID", mock.Anything, uint(7)).Return(nil)
	planRepo.On("Delete", mock.Anything, uint(7)).Return(nil)

	uc := NewDeletePlanUseCase(planRepo, bindingRepo, logger.NewLogger())
	err := uc.Execute(context.Background(), DeletePlanCommand{SID: "plan_xyz789"})

	require.NoError(t, err)
	planRepo.AssertExpectations(t)
	bindingRepo.AssertExpectations(t)
}

func TestDeletePlanUseCase_RefusedWithAssignedClients(t *testing.T) {
	planRepo := new(mockPlanRepository)
	bindingRepo := new(mockBindingRepository)

	planRepo.On("GetBySID", mock.Anything, "plan_xyz789").Return(testPlan(t), nil)
	planRepo.On("CountClients", mock.Anything, uint(7)).Return(int64(4), nil)

	uc := NewDeletePlanUseCase(planRepo, bindingRepo, logger.NewLogger())
	err := uc.Execute(context.Background(), DeletePlanCommand{SID: "plan_xyz789"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
	bindingRepo.AssertNotCalled(t, "DeleteByPlanID", mock.Anything, mock.Anything)
	planRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeletePlanUseCase_NotFound(t *testing.T) {
	planRepo := new(mockPlanRepository)
	bindingRepo := new(mockBindingRepository)

	planRepo.On("GetBySID", mock.Anything, "plan_missing").Return(nil, nil)

	uc := NewDeletePlanUseCase(planRepo, bindingRepo, logger.NewLogger())
	err := uc.Execute(context.Background(), DeletePlanCommand{SID: "plan_missing"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	planRepo.AssertNotCalled(t, "CountClients", mock.Anything, mock.Anything)
}
