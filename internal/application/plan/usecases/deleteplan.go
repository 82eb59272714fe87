package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/domain/plan"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type DeletePlanCommand struct {
	SID string
}

// DeletePlanUseCase removes a plan and its feature bindings. Deletion is
// refused while clients are still assigned; detach them first.
type DeletePlanUseCase struct {
	planRepo    plan.Repository
	bindingRepo plan.BindingRepository
	logger      logger.Interface
}

func NewDeletePlanUseCase(
	planRepo plan.Repository,
	bindingRepo plan.BindingRepository,
	logger logger.Interface,
) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo:    planRepo,
		bindingRepo: bindingRepo,
		logger:      logger,
	}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, cmd DeletePlanCommand) error {
	entity, err := uc.planRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "sid", cmd.SID)
		return fmt.Errorf("failed to get plan: %w", err)
	}
	if entity == nil {
		return errors.NewNotFoundError("plan not found")
	}

	count, err := uc.planRepo.CountClients(ctx, entity.ID())
	if err != nil {
		uc.logger.Errorw("failed to count clients on plan", "error", err, "plan_id", entity.ID())
		return fmt.Errorf("failed to count clients on plan: %w", err)
	}
	if count > 0 {
		return errors.NewConflictError("plan has assigned clients", fmt.Sprintf("%d clients", count))
	}

	if err := uc.bindingRepo.DeleteByPlanID(ctx, entity.ID()); err != nil {
		uc.logger.Errorw("failed to delete plan bindings", "error", err, "plan_id", entity.ID())
		return fmt.Errorf("failed to delete plan bindings: %w", err)
	}

	if err := uc.planRepo.Delete(ctx, entity.ID()); err != nil {
		uc.logger.Errorw("failed to delete plan", "error", err, "plan_id", entity.ID())
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	uc.logger.Infow("plan deleted", "plan_id", entity.ID(), "name", entity.Name())
	return nil
}
