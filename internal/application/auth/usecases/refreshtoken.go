package usecases

import (
	"context"

	"replydesk/internal/application/auth/dto"
	"replydesk/internal/infrastructure/auth"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type TokenRefresher interface {
	Refresh(refreshToken string) (*auth.TokenPair, error)
}

type RefreshTokenUseCase struct {
	tokens TokenRefresher
	logger logger.Interface
}

func NewRefreshTokenUseCase(tokens TokenRefresher, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokens: tokens,
		logger: logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*dto.LoginResultDTO, error) {
	pair, err := uc.tokens.Refresh(cmd.RefreshToken)
	if err != nil {
		uc.logger.Warnw("refresh token rejected", "error", err)
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	return &dto.LoginResultDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
