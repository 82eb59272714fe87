package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"replydesk/internal/domain/autoreply"
	"replydesk/internal/domain/client"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

func testClient(t *testing.T) *client.Client {
	t.Helper()
	now := time.Now()
	c, err := client.ReconstructClient(1, "cli_abc123", "Acme Corp", "owner@acme.test", nil, true, now, now)
	require.NoError(t, err)
	return c
}

func testRule(t *testing.T, clientID uint) *autoreply.Rule {
	t.Helper()
	now := time.Now()
	r, err := autoreply.ReconstructRule(9, "rule_def456", clientID, "hours",
		autoreply.MatchModeExact, "We are open 9-5.", true, 10, now, now)
	require.NoError(t, err)
	return r
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUpdateRuleUseCase_Success(t *testing.T) {
	clientRepo := new(mockClientRepository)
	ruleRepo := new(mockRuleRepository)

	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(testClient(t), nil)
	ruleRepo.On("GetBySID", mock.Anything, "rule_def456").Return(testRule(t, 1), nil)
	ruleRepo.On("Update", mock.Anything, mock.AnythingOfType("*autoreply.Rule")).Return(nil)

	uc := NewUpdateRuleUseCase(clientRepo, ruleRepo, logger.NewLogger())
	result, err := uc.Execute(context.Background(), UpdateRuleCommand{
		SID:       "rule_def456",
		ClientSID: "cli_abc123",
		Keyword:   strPtr("opening hours"),
		MatchMode: strPtr("contains"),
		IsActive:  boolPtr(false),
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "opening hours", result.Keyword)
	assert.Equal(t, "contains", result.MatchMode)
	assert.Equal(t, "We are open 9-5.", result.ReplyBody)
	assert.False(t, result.IsActive)
	ruleRepo.AssertExpectations(t)
}

func TestUpdateRuleUseCase_OtherClientsRuleIsNotFound(t *testing.T) {
	clientRepo := new(mockClientRepository)
	ruleRepo := new(mockRuleRepository)

	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(testClient(t), nil)
	ruleRepo.On("GetBySID", mock.Anything, "rule_def456").Return(testRule(t, 42), nil)

	uc := NewUpdateRuleUseCase(clientRepo, ruleRepo, logger.NewLogger())
	result, err := uc.Execute(context.Background(), UpdateRuleCommand{
		SID:       "rule_def456",
		ClientSID: "cli_abc123",
		Keyword:   strPtr("opening hours"),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	ruleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateRuleUseCase_InvalidMatchMode(t *testing.T) {
	clientRepo := new(mockClientRepository)
	ruleRepo := new(mockRuleRepository)

	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(testClient(t), nil)
	ruleRepo.On("GetBySID", mock.Anything, "rule_def456").Return(testRule(t, 1), nil)

	uc := NewUpdateRuleUseCase(clientRepo, ruleRepo, logger.NewLogger())
	result, err := uc.Execute(context.Background(), UpdateRuleCommand{
		SID:       "rule_def456",
		ClientSID: "cli_abc123",
		MatchMode: strPtr("regex"),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	ruleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteRuleUseCase_Success(t *testing.T) {
	clientRepo := new(mockClientRepository)
	ruleRepo := new(mockRuleRepository)

	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(testClient(t), nil)
	ruleRepo.On("GetBySID", mock.Anything, "rule_def456").Return(testRule(t, 1), nil)
	ruleRepo.On("Delete", mock.Anything, uint(9)).Return(nil)

	uc := NewDeleteRuleUseCase(clientRepo, ruleRepo, logger.NewLogger())
	err := uc.Execute(context.Background(), DeleteRuleCommand{
		SID:       "rule_def456",
		ClientSID: "cli_abc123",
	})

	require.NoError(t, err)
	ruleRepo.AssertExpectations(t)
}

func TestDeleteRuleUseCase_OtherClientsRuleIsNotFound(t *testing.T) {
	clientRepo := new(mockClientRepository)
	ruleRepo := new(mockRuleRepository)

	clientRepo.On("GetBySID", mock.Anything, "cli_abc123").Return(testClient(t), nil)
	ruleRepo.On("GetBySID", mock.Anything, "rule_def456").Return(testRule(t, 42), nil)

	uc := NewDeleteRuleUseCase(clientRepo, ruleRepo, logger.NewLogger())
	err := uc.Execute(context.Background(), DeleteRuleCommand{
		SID:       "rule_def456",
		ClientSID: "cli_abc123",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
	ruleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
