package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/application/client/dto"
	plandto "replydesk/internal/application/plan/dto"
	"replydesk/internal/domain/client"
	"replydesk/internal/domain/plan"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type GetClientUseCase struct {
	clientRepo client.Repository
	planRepo   plan.Repository
	logger     logger.Interface
}

func NewGetClientUseCase(
	clientRepo client.Repository,
	planRepo plan.Repository,
	logger logger.Interface,
) *GetClientUseCase {
	return &GetClientUseCase{
		clientRepo: clientRepo,
		planRepo:   planRepo,
		logger:     logger,
	}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, sid string) (*dto.ClientDTO, error) {
	entity, err := uc.clientRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("client not found")
	}

	var planDTO *plandto.PlanDTO
	if entity.PlanID() != nil {
		planEntity, err := uc.planRepo.GetByID(ctx, *entity.PlanID())
		if err != nil {
			uc.logger.Warnw("failed to load plan for response", "error", err, "client_id", entity.ID())
		} else {
			planDTO = plandto.ToPlanDTO(planEntity)
		}
	}

	return dto.ToClientDTO(entity, planDTO), nil
}
