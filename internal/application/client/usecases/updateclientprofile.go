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

type UpdateClientProfileCommand struct {
	SID          string
	BusinessName string
}

// UpdateClientProfileUseCase is the client-facing self-edit path. Only the
// business name is editable; plan, email and activation stay admin-only.
type UpdateClientProfileUseCase struct {
	clientRepo client.Repository
	planRepo   plan.Repository
	logger     logger.Interface
}

func NewUpdateClientProfileUseCase(
	clientRepo client.Repository,
	planRepo plan.Repository,
	logger logger.Interface,
) *UpdateClientProfileUseCase {
	return &UpdateClientProfileUseCase{
		clientRepo: clientRepo,
		planRepo:   planRepo,
		logger:     logger,
	}
}

func (uc *UpdateClientProfileUseCase) Execute(ctx context.Context, cmd UpdateClientProfileCommand) (*dto.ClientDTO, error) {
	entity, err := uc.clientRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "sid", cmd.SID)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("client not found")
	}

	if err := entity.UpdateBusinessName(cmd.BusinessName); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update client profile", "error", err, "client_id", entity.ID())
		return nil, fmt.Errorf("failed to update client profile: %w", err)
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

	uc.logger.Infow("client profile updated", "client_id", entity.ID())
	return dto.ToClientDTO(entity, planDTO), nil
}
