package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/application/feature/dto"
	"replydesk/internal/domain/feature"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

// UpdateFeatureCommand carries the editable fields. Slug is immutable once
// created; nil pointers mean "leave unchanged".
type UpdateFeatureCommand struct {
	SID         string
	Name        *string
	Description *string
	Fields      []FieldInput
}

type UpdateFeatureUseCase struct {
	featureRepo feature.Repository
	logger      logger.Interface
}

func NewUpdateFeatureUseCase(featureRepo feature.Repository, logger logger.Interface) *UpdateFeatureUseCase {
	return &UpdateFeatureUseCase{
		featureRepo: featureRepo,
		logger:      logger,
	}
}

func (uc *UpdateFeatureUseCase) Execute(ctx context.Context, cmd UpdateFeatureCommand) (*dto.FeatureDTO, error) {
	entity, err := uc.featureRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get feature", "error", err, "sid", cmd.SID)
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("feature not found")
	}

	if cmd.Name != nil {
		if err := entity.UpdateName(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		entity.UpdateDescription(*cmd.Description)
	}
	if cmd.Fields != nil {
		schema, err := toFieldSchema(cmd.Fields)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := entity.UpdateFields(schema); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.featureRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update feature", "error", err, "feature_id", entity.ID())
		return nil, fmt.Errorf("failed to update feature: %w", err)
	}

	uc.logger.Infow("feature updated", "feature_id", entity.ID(), "slug", entity.Slug())
	return dto.ToFeatureDTO(entity), nil
}
