package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/application/feature/dto"
	"replydesk/internal/domain/feature"
	"replydesk/internal/shared/errors"
	"replydesk/internal/shared/logger"
)

type GetFeatureUseCase struct {
	featureRepo feature.Repository
	logger      logger.Interface
}

func NewGetFeatureUseCase(featureRepo feature.Repository, logger logger.Interface) *GetFeatureUseCase {
	return &GetFeatureUseCase{
		featureRepo: featureRepo,
		logger:      logger,
	}
}

func (uc *GetFeatureUseCase) Execute(ctx context.Context, sid string) (*dto.FeatureDTO, error) {
	entity, err := uc.featureRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get feature", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("feature not found")
	}

	return dto.ToFeatureDTO(entity), nil
}
