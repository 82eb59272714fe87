package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/application/client/dto"
	plandto "replydesk/internal/application/plan/dto"
	"replydesk/internal/domain/client"
	"replydesk/internal/domain/plan"
	"replydesk/internal/domain/user"
	"replydesk/internal/shared/authorization"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type CreateClientCommand struct {
	BusinessName string
	Email        string
	Password     string
	PlanSID      string
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// CreateClientUseCase creates the client record and its login account in one
// operation; the panel has no separate signup flow.
type CreateClientUseCase struct {
	clientRepo client.Repository
	planRepo   plan.Repository
	userRepo   user.Repository
	hasher     PasswordHasher
	logger     logger.Interface
}

func NewCreateClientUseCase(
	clientRepo client.Repository,
	planRepo plan.Repository,
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
		planRepo:   planRepo,
		userRepo:   userRepo,
		hasher:     hasher,
		logger:     logger,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, cmd CreateClientCommand) (*dto.ClientDTO, error) {
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters long")
	}

	exists, err := uc.clientRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("client with this email already exists")
	}

	var planEntity *plan.Plan
	var planID *uint
	if cmd.PlanSID != "" {
		planEntity, err = uc.planRepo.GetBySID(ctx, cmd.PlanSID)
		if err != nil {
			uc.logger.Errorw("failed to get plan", "error", err, "sid", cmd.PlanSID)
			return nil, fmt.Errorf("failed to get plan: %w", err)
		}
		if planEntity == nil {
			return nil, errors.NewNotFoundError("plan not found")
		}
		pid := planEntity.ID()
		planID = &pid
	}

	entity, err := client.NewClient(cmd.BusinessName, cmd.Email, planID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Create(ctx, entity); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("client with this email already exists")
		}
		uc.logger.Errorw("failed to persist client", "error", err)
		return nil, fmt.Errorf("failed to persist client: %w", err)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	clientID := entity.ID()
	account, err := user.NewUser(cmd.Email, hash, authorization.RoleClient, &clientID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, account); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("user with this email already exists")
		}
		uc.logger.Errorw("failed to persist client user", "error", err, "client_id", clientID)
		return nil, fmt.Errorf("failed to persist client user: %w", err)
	}

	uc.logger.Infow("client created",
		"client_id", entity.ID(),
		"business_name", entity.BusinessName())
	return dto.ToClientDTO(entity, plandto.ToPlanDTO(planEntity)), nil
}
