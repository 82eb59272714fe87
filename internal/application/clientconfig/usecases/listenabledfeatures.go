package usecases

import (
	"context"

	"replydesk/internal/application/clientconfig/dto"
	"replydesk/internal/domain/client"
	"replydesk/internal/domain/feature"
	"replydesk/internal/domain/plan"
	"replydesk/internal/shared/authorization"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type ListEnabledFeaturesCommand struct {
	ClientSID string
	Role      authorization.UserRole
}

// ListEnabledFeaturesUseCase resolves a client's enabled feature set:
// client, then plan, then bindings, then the features themselves. An absent
// plan at any step yields an empty list, not an error; only actual fetch
// failures surface, and then as a single error with no partial result.
type ListEnabledFeaturesUseCase struct {
	clientRepo  client.Repository
	planRepo    plan.Repository
	bindingRepo plan.BindingRepository
	featureRepo feature.Repository
	logger      logger.Interface
}

func NewListEnabledFeaturesUseCase(
	clientRepo client.Repository,
	planRepo plan.Repository,
	bindingRepo plan.BindingRepository,
	featureRepo feature.Repository,
	logger logger.Interface,
) *ListEnabledFeaturesUseCase {
	return &ListEnabledFeaturesUseCase{
		clientRepo:  clientRepo,
		planRepo:    planRepo,
		bindingRepo: bindingRepo,
		featureRepo: featureRepo,
		logger:      logger,
	}
}

func (uc *ListEnabledFeaturesUseCase) Execute(ctx context.Context, cmd ListEnabledFeaturesCommand) (*dto.ConfigurationDTO, error) {
	clientEntity, err := uc.clientRepo.GetBySID(ctx, cmd.ClientSID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "sid", cmd.ClientSID)
		return nil, errors.NewInternalError("configuration unavailable")
	}
	if clientEntity == nil {
		return nil, errors.NewNotFoundError("client not found")
	}

	result := &dto.ConfigurationDTO{
		ClientID: clientEntity.SID(),
		Features: []*dto.EnabledFeatureDTO{},
	}

	// No plan means no features. Terminal, not an error.
	if clientEntity.PlanID() == nil {
		return result, nil
	}

	planEntity, err := uc.planRepo.GetByID(ctx, *clientEntity.PlanID())
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", *clientEntity.PlanID())
		return nil, errors.NewInternalError("configuration unavailable")
	}
	// Plan deleted underneath the client: degrade to an empty list.
	if planEntity == nil {
		return result, nil
	}
	result.PlanID = planEntity.SID()

	featureIDs, err := uc.bindingRepo.ListFeatureIDs(ctx, planEntity.ID())
	if err != nil {
		uc.logger.Errorw("failed to list bindings", "error", err, "plan_id", planEntity.ID())
		return nil, errors.NewInternalError("configuration unavailable")
	}
	if len(featureIDs) == 0 {
		return result, nil
	}

	features, err := uc.featureRepo.GetByIDs(ctx, featureIDs)
	if err != nil {
		uc.logger.Errorw("failed to load enabled features", "error", err, "plan_id", planEntity.ID())
		return nil, errors.NewInternalError("configuration unavailable")
	}

	// Recomputed per request, never cached.
	canEdit := plan.CanEditSettings(cmd.Role, planEntity)

	for _, f := range features {
		result.Features = append(result.Features, &dto.EnabledFeatureDTO{
			ID:          f.SID(),
			Name:        f.Name(),
			Slug:        f.Slug(),
			Description: f.Description(),
			CanEdit:     canEdit,
		})
	}

	return result, nil
}
