package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/application/feature/dto"
	"replydesk/internal/domain/feature"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type FieldInput struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"kind" binding:"required"`
}

type CreateFeatureCommand struct {
	Name        string
	Slug        string
	Description string
	Fields      []FieldInput
}

type CreateFeatureUseCase struct {
	featureRepo feature.Repository
	logger      logger.Interface
}

func NewCreateFeatureUseCase(featureRepo feature.Repository, logger logger.Interface) *CreateFeatureUseCase {
	return &CreateFeatureUseCase{
		featureRepo: featureRepo,
		logger:      logger,
	}
}

func (uc *CreateFeatureUseCase) Execute(ctx context.Context, cmd CreateFeatureCommand) (*dto.FeatureDTO, error) {
	exists, err := uc.featureRepo.ExistsBySlug(ctx, cmd.Slug)
	if err != nil {
		uc.logger.Errorw("failed to check slug existence", "error", err, "slug", cmd.Slug)
		return nil, fmt.Errorf("failed to check slug existence: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("feature with this slug already exists", cmd.Slug)
	}

	schema, err := toFieldSchema(cmd.Fields)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	entity, err := feature.NewFeature(cmd.Name, cmd.Slug, cmd.Description, schema)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.featureRepo.Create(ctx, entity); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("feature with this slug already exists", cmd.Slug)
		}
		uc.logger.Errorw("failed to persist feature", "error", err, "slug", cmd.Slug)
		return nil, fmt.Errorf("failed to persist feature: %w", err)
	}

	uc.logger.Infow("feature created", "feature_id", entity.ID(), "slug", entity.Slug())
	return dto.ToFeatureDTO(entity), nil
}

func toFieldSchema(inputs []FieldInput) (feature.FieldSchema, error) {
	defs := make([]feature.FieldDefinition, 0, len(inputs))
	for _, in := range inputs {
		defs = append(defs, feature.FieldDefinition{
			Name: in.Name,
			Kind: feature.FieldKind(in.Kind),
		})
	}
	return feature.NewFieldSchema(defs)
}
