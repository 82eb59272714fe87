package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"replydesk/internal/domain/client"
	"replydesk/internal/domain/user"
	"replydesk/internal/infrastructure/auth"
	"replydesk/internal/shared/authorization"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

func testUser(t *testing.T, role authorization.UserRole, clientID *uint, isActive bool) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(5, "user_abc123", "owner@acme.test", "$2a$12$hash",
		role, clientID, isActive, now, now)
	require.NoError(t, err)
	return u
}

func testClient(t *testing.T, isActive bool) *client.Client {
	t.Helper()
	now := time.Now()
	c, err := client.ReconstructClient(1, "cli_abc123", "Acme Corp", "owner@acme.test", nil, isActive, now, now)
	require.NoError(t, err)
	return c
}

func uintPtr(v uint) *uint { return &v }

func testTokenPair() *auth.TokenPair {
	return &auth.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
	}
}

func TestLoginUseCase_AdminSuccess(t *testing.T) {
	userRepo := new(mockUserRepository)
	clientRepo := new(mockClientRepository)
	hasher := new(mockPasswordVerifier)
	tokens := new(mockTokenIssuer)

	account := testUser(t, authorization.RoleAdmin, nil, true)
	userRepo.On("GetByEmail", mock.Anything, "owner@acme.test").Return(account, nil)
	hasher.On("Verify", "secret1234", "$2a$12$hash").Return(nil)
	tokens.On("Generate", "user_abc123", "", authorization.RoleAdmin).Return(testTokenPair(), nil)

	uc := NewLoginUseCase(userRepo, clientRepo, hasher, tokens, logger.NewLogger())
	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "owner@acme.test",
		Password: "secret1234",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.Equal(t, "refresh-token", result.RefreshToken)
	assert.Equal(t, int64(900), result.ExpiresIn)
	require.NotNil(t, result.User)
	assert.Equal(t, "admin", result.User.Role)
	assert.Empty(t, result.User.ClientID)
	clientRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestLoginUseCase_ClientTokenCarriesClientSID(t *testing.T) {
	userRepo := new(mockUserRepository)
	clientRepo := new(mockClientRepository)
	hasher := new(mockPasswordVerifier)
	tokens := new(mockTokenIssuer)

	account := testUser(t, authorization.RoleClient, uintPtr(1), true)
	userRepo.On("GetByEmail", mock.Anything, "owner@acme.test").Return(account, nil)
	hasher.On("Verify", "secret1234", "$2a$12$hash").Return(nil)
	clientRepo.On("GetByID", mock.Anything, uint(1)).Return(testClient(t, true), nil)
	tokens.On("Generate", "user_abc123", "cli_abc123", authorization.RoleClient).Return(testTokenPair(), nil)

	uc := NewLoginUseCase(userRepo, clientRepo, hasher, tokens, logger.NewLogger())
	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "owner@acme.test",
		Password: "secret1234",
	})

	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.Equal(t, "cli_abc123", result.User.ClientID)
	tokens.AssertExpectations(t)
}

func TestLoginUseCase_UnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	userRepo := new(mockUserRepository)
	clientRepo := new(mockClientRepository)
	hasher := new(mockPasswordVerifier)
	tokens := new(mockTokenIssuer)

	userRepo.On("GetByEmail", mock.Anything, "nobody@acme.test").Return(nil, nil)

	account := testUser(t, authorization.RoleAdmin, nil, true)
	userRepo.On("GetByEmail", mock.Anything, "owner@acme.test").Return(account, nil)
	hasher.On("Verify", "wrong", "$2a$12$hash").Return(stderrors.New("mismatch"))

	uc := NewLoginUseCase(userRepo, clientRepo, hasher, tokens, logger.NewLogger())

	_, unknownErr := uc.Execute(context.Background(), LoginCommand{
		Email:    "nobody@acme.test",
		Password: "secret1234",
	})
	_, wrongErr := uc.Execute(context.Background(), LoginCommand{
		Email:    "owner@acme.test",
		Password: "wrong",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	appErr := errors.GetAppError(unknownErr)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	tokens.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginUseCase_DisabledAccountIsRejected(t *testing.T) {
	userRepo := new(mockUserRepository)
	clientRepo := new(mockClientRepository)
	hasher := new(mockPasswordVerifier)
	tokens := new(mockTokenIssuer)

	account := testUser(t, authorization.RoleAdmin, nil, false)
	userRepo.On("GetByEmail", mock.Anything, "owner@acme.test").Return(account, nil)

	uc := NewLoginUseCase(userRepo, clientRepo, hasher, tokens, logger.NewLogger())
	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "owner@acme.test",
		Password: "secret1234",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	assert.Contains(t, appErr.Message, "disabled")
	hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestLoginUseCase_DeactivatedClientBlocksLogin(t *testing.T) {
	userRepo := new(mockUserRepository)
	clientRepo := new(mockClientRepository)
	hasher := new(mockPasswordVerifier)
	tokens := new(mockTokenIssuer)

	account := testUser(t, authorization.RoleClient, uintPtr(1), true)
	userRepo.On("GetByEmail", mock.Anything, "owner@acme.test").Return(account, nil)
	hasher.On("Verify", "secret1234", "$2a$12$hash").Return(nil)
	clientRepo.On("GetByID", mock.Anything, uint(1)).Return(testClient(t, false), nil)

	uc := NewLoginUseCase(userRepo, clientRepo, hasher, tokens, logger.NewLogger())
	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "owner@acme.test",
		Password: "secret1234",
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	tokens.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestRefreshTokenUseCase_InvalidTokenIsUnauthorized(t *testing.T) {
	tokens := new(mockTokenRefresher)
	tokens.On("Refresh", "garbage").Return(nil, stderrors.New("token is malformed"))

	uc := NewRefreshTokenUseCase(tokens, logger.NewLogger())
	result, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "garbage"})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestRefreshTokenUseCase_Success(t *testing.T) {
	tokens := new(mockTokenRefresher)
	tokens.On("Refresh", "refresh-token").Return(testTokenPair(), nil)

	uc := NewRefreshTokenUseCase(tokens, logger.NewLogger())
	result, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.Nil(t, result.User)
}
