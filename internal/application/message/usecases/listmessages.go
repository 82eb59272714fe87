package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/application/message/dto"
	"replydesk/internal/domain/client"
	"replydesk/internal/domain/message"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type ListMessagesCommand struct {
	ClientSID string
	Channel   *string
	Replied   *bool
	Page      int
	PageSize  int
}

type ListMessagesResult struct {
	Messages  []*dto.MessageDTO
	Total     int64
	Unreplied int64
}

type ListMessagesUseCase struct {
	clientRepo  client.Repository
	messageRepo message.Repository
	logger      logger.Interface
}

func NewListMessagesUseCase(
	clientRepo client.Repository,
	messageRepo message.Repository,
	logger logger.Interface,
) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		clientRepo:  clientRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, cmd ListMessagesCommand) (*ListMessagesResult, error) {
	clientEntity, err := uc.clientRepo.GetBySID(ctx, cmd.ClientSID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "sid", cmd.ClientSID)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if clientEntity == nil {
		return nil, errors.NewNotFoundError("client not found")
	}

	messages, total, err := uc.messageRepo.ListByClientID(ctx, clientEntity.ID(), message.Filter{
		Channel:  cmd.Channel,
		Replied:  cmd.Replied,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list messages", "error", err, "client_id", clientEntity.ID())
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	unreplied, err := uc.messageRepo.CountUnreplied(ctx, clientEntity.ID())
	if err != nil {
		uc.logger.Warnw("failed to count unreplied messages", "error", err, "client_id", clientEntity.ID())
	}

	return &ListMessagesResult{
		Messages:  dto.ToMessageDTOs(messages),
		Total:     total,
		Unreplied: unreplied,
	}, nil
}
