package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/domain/client"
	"replydesk/internal/domain/clientconfig"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type DeleteClientCommand struct {
	SID string
}

// DeleteClientUseCase removes the client and cascades its settings rows.
// Messages are kept for audit; they reference the client by id only.
type DeleteClientUseCase struct {
	clientRepo  client.Repository
	settingRepo clientconfig.Repository
	logger      logger.Interface
}

func NewDeleteClientUseCase(
	clientRepo client.Repository,
	settingRepo clientconfig.Repository,
	logger logger.Interface,
) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo:  clientRepo,
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *DeleteClientUseCase) Execute(ctx context.Context, cmd DeleteClientCommand) error {
	entity, err := uc.clientRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "sid", cmd.SID)
		return fmt.Errorf("failed to get client: %w", err)
	}
	if entity == nil {
		return errors.NewNotFoundError("client not found")
	}

	if err := uc.settingRepo.DeleteByClientID(ctx, entity.ID()); err != nil {
		uc.logger.Errorw("failed to delete client settings", "error", err, "client_id", entity.ID())
		return fmt.Errorf("failed to delete client settings: %w", err)
	}

	if err := uc.clientRepo.Delete(ctx, entity.ID()); err != nil {
		uc.logger.Errorw("failed to delete client", "error", err, "client_id", entity.ID())
		return fmt.Errorf("failed to delete client: %w", err)
	}

	uc.logger.Infow("client deleted", "client_id", entity.ID())
	return nil
}
