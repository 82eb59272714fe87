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

// UpdateClientCommand carries admin-editable fields. PlanSID semantics:
// nil leaves the plan unchanged, empty string detaches it, anything else
// assigns that plan.
type UpdateClientCommand struct {
	SID          string
	BusinessName *string
	Email        *string
	PlanSID      *string
	IsActive     *bool
}

type UpdateClientUseCase struct {
	clientRepo client.Repository
	planRepo   plan.Repository
	logger     logger.Interface
}

func NewUpdateClientUseCase(
	clientRepo client.Repository,
	planRepo plan.Repository,
	logger logger.Interface,
) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
		planRepo:   planRepo,
		logger:     logger,
	}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, cmd UpdateClientCommand) (*dto.ClientDTO, error) {
	entity, err := uc.clientRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "sid", cmd.SID)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("client not found")
	}

	if cmd.BusinessName != nil {
		if err := entity.UpdateBusinessName(*cmd.BusinessName); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Email != nil {
		if err := entity.UpdateEmail(*cmd.Email); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	var planEntity *plan.Plan
	if cmd.PlanSID != nil {
		if *cmd.PlanSID == "" {
			entity.AssignPlan(nil)
		} else {
			planEntity, err = uc.planRepo.GetBySID(ctx, *cmd.PlanSID)
			if err != nil {
				uc.logger.Errorw("failed to get plan", "error", err, "sid", *cmd.PlanSID)
				return nil, fmt.Errorf("failed to get plan: %w", err)
			}
			if planEntity == nil {
				return nil, errors.NewNotFoundError("plan not found")
			}
			pid := planEntity.ID()
			entity.AssignPlan(&pid)
		}
	}

	if cmd.IsActive != nil {
		if *cmd.IsActive {
			entity.Activate()
		} else {
			entity.Deactivate()
		}
	}

	if err := uc.clientRepo.Update(ctx, entity); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("client with this email already exists")
		}
		uc.logger.Errorw("failed to update client", "error", err, "client_id", entity.ID())
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	if planEntity == nil && entity.PlanID() != nil {
		planEntity, err = uc.planRepo.GetByID(ctx, *entity.PlanID())
		if err != nil {
			uc.logger.Warnw("failed to load plan for response", "error", err, "client_id", entity.ID())
		}
	}

	uc.logger.Infow("client updated", "client_id", entity.ID())
	return dto.ToClientDTO(entity, plandto.ToPlanDTO(planEntity)), nil
}
