package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"replydesk/internal/domain/client"
	"replydesk/internal/domain/plan"
	"replydesk/internal/domain/user"
	"replydesk/internal/shared/authorization"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

func testPlan(t *testing.T) *plan.Plan {
	t.Helper()
	now := time.Now()
	p, err := plan.ReconstructPlan(7, "plan_xyz789", "Pro", "", nil, true, now, now)
	require.NoError(t, err)
	return p
}

func TestCreateClientUseCase_CreatesClientAndLoginAccount(t *testing.T) {
	clientRepo := new(mockClientRepository)
	planRepo := new(mockPlanRepository)
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)

	clientRepo.On("ExistsByEmail", mock.Anything, "owner@acme.test").Return(false, nil)
	planRepo.On("GetBySID", mock.Anything, "plan_xyz789").Return(testPlan(t), nil)
	clientRepo.On("Create", mock.Anything, mock.AnythingOfType("*client.Client")).
		Run(func(args mock.Arguments) {
			entity := args.Get(1).(*client.Client)
			require.NoError(t, entity.SetID(1))
		}).Return(nil)
	hasher.On("Hash", "secret1234").Return("$2a$12$hash", nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(*user.User)
			assert.Equal(t, authorization.RoleClient, account.Role())
			assert.Equal(t, "$2a$12$hash", account.PasswordHash())
			require.NotNil(t, account.ClientID())
			assert.Equal(t, uint(1), *account.ClientID())
		}).Return(nil)

	uc := NewCreateClientUseCase(clientRepo, planRepo, userRepo, hasher, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateClientCommand{
		BusinessName: "Acme Corp",
		Email:        "owner@acme.test",
		Password:     "secret1234",
		PlanSID:      "plan_xyz789",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Acme Corp", result.BusinessName)
	require.NotNil(t, result.Plan)
	assert.Equal(t, "Pro", result.Plan.Name)
	userRepo.AssertExpectations(t)
}

func TestCreateClientUseCase_ShortPasswordRejected(t *testing.T) {
	clientRepo := new(mockClientRepository)
	planRepo := new(mockPlanRepository)
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)

	uc := NewCreateClientUseCase(clientRepo, planRepo, userRepo, hasher, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateClientCommand{
		BusinessName: "Acme Corp",
		Email:        "owner@acme.test",
		Password:     "short",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	clientRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestCreateClientUseCase_DuplicateEmail(t *testing.T) {
	clientRepo := new(mockClientRepository)
	planRepo := new(mockPlanRepository)
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)

	clientRepo.On("ExistsByEmail", mock.Anything, "owner@acme.test").Return(true, nil)

	uc := NewCreateClientUseCase(clientRepo, planRepo, userRepo, hasher, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateClientCommand{
		BusinessName: "Acme Corp",
		Email:        "owner@acme.test",
		Password:     "secret1234",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
	clientRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateClientUseCase_UnknownPlan(t *testing.T) {
	clientRepo := new(mockClientRepository)
	planRepo := new(mockPlanRepository)
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)

	clientRepo.On("ExistsByEmail", mock.Anything, "owner@acme.test").Return(false, nil)
	planRepo.On("GetBySID", mock.Anything, "plan_missing").Return(nil, nil)

	uc := NewCreateClientUseCase(clientRepo, planRepo, userRepo, hasher, logger.NewLogger())
	result, err := uc.Execute(context.Background(), CreateClientCommand{
		BusinessName: "Acme Corp",
		Email:        "owner@acme.test",
		Password:     "secret1234",
		PlanSID:      "plan_missing",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	clientRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteClientUseCase_CascadesSettings(t *testing.T) {
	clientRepo := new(mockClientRepository)
	settingRepo := new(mockSettingRepository)

	now := time.Now()
	entity, err := client.ReconstructClient(1, "cli_abc123", "Acme Corp", "owner@acme.test", nil, true, now, now)
	require.NoError(t, err)

	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(entity, nil)
	settingRepo.On("DeleteByClientID", mock.Anything, uint(1)).Return(nil)
	clientRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

	uc := NewDeleteClientUseCase(clientRepo, settingRepo, logger.NewLogger())
	err = uc.Execute(context.Background(), DeleteClientCommand{SID: "cli_abc123"})

	require.NoError(t, err)
	clientRepo.AssertExpectations(t)
	settingRepo.AssertExpectations(t)
}

func TestDeleteClientUseCase_NotFound(t *testing.T) {
	clientRepo := new(mockClientRepository)
	settingRepo := new(mockSettingRepository)

	clientRepo.On("GetBySID", mock.Anything, "cli_missing").Return(nil, nil)

	uc := NewDeleteClientUseCase(clientRepo, settingRepo, logger.NewLogger())
	err := uc.Execute(context.Background(), DeleteClientCommand{SID: "cli_missing"})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	settingRepo.AssertNotCalled(t, "DeleteByClientID", mock.Anything, mock.Anything)
}
