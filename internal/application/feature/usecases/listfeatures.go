package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/application/feature/dto"
	"replydesk/internal/domain/feature"
	"replydesk/internal/shared/logger"
)

type ListFeaturesCommand struct {
	Page     int
	PageSize int
}

type ListFeaturesResult struct {
	Features []*dto.FeatureDTO
	Total    int64
}

type ListFeaturesUseCase struct {
	featureRepo feature.Repository
	logger      logger.Interface
}

func NewListFeaturesUseCase(featureRepo feature.Repository, logger logger.Interface) *ListFeaturesUseCase {
	return &ListFeaturesUseCase{
		featureRepo: featureRepo,
		logger:      logger,
	}
}

func (uc *ListFeaturesUseCase) Execute(ctx context.Context, cmd ListFeaturesCommand) (*ListFeaturesResult, error) {
	features, total, err := uc.featureRepo.List(ctx, feature.Filter{
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list features", "error", err)
		return nil, fmt.Errorf("failed to list features: %w", err)
	}

	return &ListFeaturesResult{
		Features: dto.ToFeatureDTOs(features),
		Total:    total,
	}, nil
}
