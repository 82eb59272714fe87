package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/application/clientconfig/dto"
	"replydesk/internal/domain/client"
	"replydesk/internal/domain/clientconfig"
	"replydesk/internal/domain/feature"
	"replydesk/internal/domain/plan"
	"replydesk/internal/shared/authorization"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type GetFeatureSettingsCommand struct {
	ClientSID  string
	FeatureSID string
	Role       authorization.UserRole
}

// GetFeatureSettingsUseCase resolves a feature's settings form for a client.
// Fields come back in the schema's declared order; a missing settings row or
// a missing key both resolve to "". Stored keys no longer in the schema are
// not rendered.
type GetFeatureSettingsUseCase struct {
	clientRepo  client.Repository
	planRepo    plan.Repository
	featureRepo feature.Repository
	settingRepo clientconfig.Repository
	logger      logger.Interface
}

func NewGetFeatureSettingsUseCase(
	clientRepo client.Repository,
	planRepo plan.Repository,
	featureRepo feature.Repository,
	settingRepo clientconfig.Repository,
	logger logger.Interface,
) *GetFeatureSettingsUseCase {
	return &GetFeatureSettingsUseCase{
		clientRepo:  clientRepo,
		planRepo:    planRepo,
		featureRepo: featureRepo,
		settingRepo: settingRepo,
		logger:      logger,
	}
}

func (uc *GetFeatureSettingsUseCase) Execute(ctx context.Context, cmd GetFeatureSettingsCommand) (*dto.FeatureSettingsDTO, error) {
	clientEntity, err := uc.clientRepo.GetBySID(ctx, cmd.ClientSID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "sid", cmd.ClientSID)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if clientEntity == nil {
		return nil, errors.NewNotFoundError("client not found")
	}

	featureEntity, err := uc.featureRepo.GetBySID(ctx, cmd.FeatureSID)
	if err != nil {
		uc.logger.Errorw("failed to get feature", "error", err, "sid", cmd.FeatureSID)
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}
	if featureEntity == nil {
		return nil, errors.NewNotFoundError("feature not found")
	}

	var planEntity *plan.Plan
	if clientEntity.PlanID() != nil {
		planEntity, err = uc.planRepo.GetByID(ctx, *clientEntity.PlanID())
		if err != nil {
			uc.logger.Errorw("failed to get plan", "error", err, "plan_id", *clientEntity.PlanID())
			return nil, fmt.Errorf("failed to get plan: %w", err)
		}
	}

	settings, err := uc.settingRepo.GetByClientAndFeature(ctx, clientEntity.ID(), featureEntity.ID())
	if err != nil {
		uc.logger.Errorw("failed to get settings row",
			"error", err,
			"client_id", clientEntity.ID(),
			"feature_id", featureEntity.ID())
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	fields := make([]*dto.ResolvedFieldDTO, 0, len(featureEntity.Fields()))
	for _, def := range featureEntity.Fields() {
		value := ""
		if settings != nil {
			value = settings.Value(def.Name)
		}
		fields = append(fields, &dto.ResolvedFieldDTO{
			Name:  def.Name,
			Kind:  string(def.Kind),
			Value: value,
		})
	}

	return &dto.FeatureSettingsDTO{
		FeatureID: featureEntity.SID(),
		Slug:      featureEntity.Slug(),
		CanEdit:   plan.CanEditSettings(cmd.Role, planEntity),
		Fields:    fields,
	}, nil
}
