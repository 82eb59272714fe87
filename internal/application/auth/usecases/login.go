package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/application/auth/dto"
	"replydesk/internal/domain/client"
	"replydesk/internal/domain/user"
	"replydesk/internal/infrastructure/auth"
	"replydesk/internal/shared/authorization"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type PasswordVerifier interface {
	Verify(password, hash string) error
}

type TokenIssuer interface {
	Generate(userSID, clientSID string, role authorization.UserRole) (*auth.TokenPair, error)
}

type LoginUseCase struct {
	userRepo   user.Repository
	clientRepo client.Repository
	hasher     PasswordVerifier
	tokens     TokenIssuer
	logger     logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	clientRepo client.Repository,
	hasher PasswordVerifier,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:   userRepo,
		clientRepo: clientRepo,
		hasher:     hasher,
		tokens:     tokens,
		logger:     logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResultDTO, error) {
	account, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	// Same response for unknown email and wrong password.
	if account == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if !account.IsActive() {
		return nil, errors.NewUnauthorizedError("account is disabled")
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", account.ID())
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	clientSID := ""
	if account.Role() == authorization.RoleClient && account.ClientID() != nil {
		clientEntity, err := uc.clientRepo.GetByID(ctx, *account.ClientID())
		if err != nil {
			uc.logger.Errorw("failed to load client for login", "error", err, "user_id", account.ID())
			return nil, fmt.Errorf("failed to load client: %w", err)
		}
		if clientEntity == nil || !clientEntity.IsActive() {
			return nil, errors.NewUnauthorizedError("account is disabled")
		}
		clientSID = clientEntity.SID()
	}

	pair, err := uc.tokens.Generate(account.SID(), clientSID, account.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "error", err, "user_id", account.ID())
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", account.ID(), "role", account.Role())

	return &dto.LoginResultDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User: &dto.UserDTO{
			ID:       account.SID(),
			Email:    account.Email(),
			Role:     string(account.Role()),
			ClientID: clientSID,
		},
	}, nil
}
