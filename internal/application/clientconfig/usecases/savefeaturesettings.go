package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/domain/client"
	"replydesk/internal/domain/clientconfig"
	"replydesk/internal/domain/feature"
	"replydesk/internal/domain/plan"
	"replydesk/internal/shared/authorization"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type SaveFeatureSettingsCommand struct {
	ClientSID  string
	FeatureSID string
	Values     map[string]string
	Role       authorization.UserRole
}

// SaveFeatureSettingsUseCase writes a client's settings for one feature.
// The permission gate runs before any write: a client on a plan without
// self-edit is refused here even if the HTTP layer let the request through.
// The write itself is a full replace via atomic upsert, so after it exactly
// one row exists for the pair and either everything or nothing was written.
type SaveFeatureSettingsUseCase struct {
	clientRepo  client.Repository
	planRepo    plan.Repository
	featureRepo feature.Repository
	settingRepo clientconfig.Repository
	logger      logger.Interface
}

func NewSaveFeatureSettingsUseCase(
	clientRepo client.Repository,
	planRepo plan.Repository,
	featureRepo feature.Repository,
	settingRepo clientconfig.Repository,
	logger logger.Interface,
) *SaveFeatureSettingsUseCase {
	return &SaveFeatureSettingsUseCase{
		clientRepo:  clientRepo,
		planRepo:    planRepo,
		featureRepo: featureRepo,
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *SaveFeatureSettingsUseCase) Execute(ctx context.Context, cmd SaveFeatureSettingsCommand) error {
	clientEntity, err := uc.clientRepo.GetBySID(ctx, cmd.ClientSID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "sid", cmd.ClientSID)
		return fmt.Errorf("failed to get client: %w", err)
	}
	if clientEntity == nil {
		return errors.NewNotFoundError("client not found")
	}

	featureEntity, err := uc.featureRepo.GetBySID(ctx, cmd.FeatureSID)
	if err != nil {
		uc.logger.Errorw("failed to get feature", "error", err, "sid", cmd.FeatureSID)
		return fmt.Errorf("failed to get feature: %w", err)
	}
	if featureEntity == nil {
		return errors.NewNotFoundError("feature not found")
	}

	var planEntity *plan.Plan
	if clientEntity.PlanID() != nil {
		planEntity, err = uc.planRepo.GetByID(ctx, *clientEntity.PlanID())
		if err != nil {
			uc.logger.Errorw("failed to get plan", "error", err, "plan_id", *clientEntity.PlanID())
			return fmt.Errorf("failed to get plan: %w", err)
		}
	}

	if !plan.CanEditSettings(cmd.Role, planEntity) {
		uc.logger.Warnw("settings edit refused by permission gate",
			"client_id", clientEntity.ID(),
			"feature_id", featureEntity.ID(),
			"role", cmd.Role)
		return errors.NewForbiddenError("plan does not allow editing settings")
	}

	// Values are stored as-is. Kind is an input hint; no coercion or
	// validation happens before persistence, and keys outside the current
	// schema are kept.
	settings, err := clientconfig.NewFeatureSettings(clientEntity.ID(), featureEntity.ID(), cmd.Values)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.settingRepo.Upsert(ctx, settings); err != nil {
		uc.logger.Errorw("failed to save settings",
			"error", err,
			"client_id", clientEntity.ID(),
			"feature_id", featureEntity.ID())
		return fmt.Errorf("failed to save settings: %w", err)
	}

	uc.logger.Infow("feature settings saved",
		"client_id", clientEntity.ID(),
		"feature_id", featureEntity.ID())
	return nil
}
