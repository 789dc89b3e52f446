package usecases

import (
	"context"

	"deskd/internal/domain/ticket"
	vo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

// SummaryResult holds ticket counts grouped by status and by priority.
// Every enum value appears in its map, zero-filled when unused.
type SummaryResult struct {
	ByStatus   map[string]int64 `json:"by_status"`
	ByPriority map[string]int64 `json:"by_priority"`
}

type GetSummaryUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetSummaryUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute counts against the store at call time; nothing is cached.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*SummaryResult, error) {
	result := &SummaryResult{
		ByStatus:   make(map[string]int64),
		ByPriority: make(map[string]int64),
	}

	for _, status := range vo.AllStatuses() {
		result.ByStatus[status.String()] = 0
	}
	for _, priority := range vo.AllPriorities() {
		result.ByPriority[priority.String()] = 0
	}

	byStatus, err := uc.ticketRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by status", "error", err)
		return nil, errors.NewInternalError("failed to compute summary")
	}
	for status, count := range byStatus {
		result.ByStatus[status] = count
	}

	byPriority, err := uc.ticketRepo.CountByPriority(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by priority", "error", err)
		return nil, errors.NewInternalError("failed to compute summary")
	}
	for priority, count := range byPriority {
		result.ByPriority[priority] = count
	}

	return result, nil
}
