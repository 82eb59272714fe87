package usecases

import (
	"context"
	"fmt"

	"replydesk/internal/application/client/dto"
	plandto "replydesk/internal/application/plan/dto"
	"replydesk/internal/domain/client"
	"replydesk/internal/domain/plan"
	"replydesk/internal/shared/logger"
)

type ListClientsCommand struct {
	PlanSID  string
	IsActive *bool
	Page     int
	PageSize int
}

type ListClientsResult struct {
	Clients []*dto.ClientDTO
	Total   int64
}

type ListClientsUseCase struct {
	clientRepo client.Repository
	planRepo   plan.Repository
	logger     logger.Interface
}

func NewListClientsUseCase(
	clientRepo client.Repository,
	planRepo plan.Repository,
	logger logger.Interface,
) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
		planRepo:   planRepo,
		logger:     logger,
	}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, cmd ListClientsCommand) (*ListClientsResult, error) {
	filter := client.Filter{
		IsActive: cmd.IsActive,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}

	if cmd.PlanSID != "" {
		planEntity, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
		if err != nil {
			uc.logger.Errorw("failed to resolve plan filter", "error", err, "sid", cmd.PlanSID)
			return nil, fmt.Errorf("failed to resolve plan filter: %w", err)
		}
		if planEntity == nil {
			// Unknown plan filter matches nothing.
			return &ListClientsResult{Clients: []*dto.ClientDTO{}, Total: 0}, nil
		}
		pid := planEntity.ID()
		filter.PlanID = &pid
	}

	clients, total, err := uc.clientRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	// Load referenced plans once and join in memory.
	planByID := make(map[uint]*plandto.PlanDTO)
	dtos := make([]*dto.ClientDTO, 0, len(clients))
	for _, c := range clients {
		var planDTO *plandto.PlanDTO
		if c.PlanID() != nil {
			if cached, ok := planByID[*c.PlanID()]; ok {
				planDTO = cached
			} else {
				planEntity, err := uc.planRepo.GetByID(ctx, *c.PlanID())
				if err != nil {
					uc.logger.Warnw("failed to load plan for listing", "error", err, "plan_id", *c.PlanID())
				} else {
					planDTO = plandto.ToPlanDTO(planEntity)
					planByID[*c.PlanID()] = planDTO
				}
			}
		}
		dtos = append(dtos, dto.ToClientDTO(c, planDTO))
	}

	return &ListClientsResult{
		Clients: dtos,
		Total:   total,
	}, nil
}
