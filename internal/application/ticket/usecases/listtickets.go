package usecases

import (
	"context"

	"deskd/internal/application/ticket/dto"
	"deskd/internal/domain/ticket"
	vo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
	"deskd/internal/shared/utils"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ListTicketsQuery is the filter set plus paging. Nil filters match
// everything; present filters compose with AND. Search matches a
// case-insensitive substring of title or description.
type ListTicketsQuery struct {
	Status   *string
	Priority *string
	Search   string
	Offset   int
	Limit    int
}

type ListTicketsResult struct {
	Tickets    []dto.TicketDTO
	TotalCount int64
}

type ListTicketsUseCase struct {
	ticketRepo   ticket.TicketRepository
	logger       logger.Interface
	defaultLimit int
	maxLimit     int
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return NewListTicketsUseCaseWithLimits(ticketRepo, logger, defaultListLimit, maxListLimit)
}

// NewListTicketsUseCaseWithLimits allows the page-size default and cap to
// come from configuration.
func NewListTicketsUseCaseWithLimits(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
	defaultLimit, maxLimit int,
) *ListTicketsUseCase {
	if defaultLimit <= 0 {
		defaultLimit = defaultListLimit
	}
	if maxLimit <= 0 {
		maxLimit = maxListLimit
	}
	return &ListTicketsUseCase{
		ticketRepo:   ticketRepo,
		logger:       logger,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	uc.logger.Debugw("executing list tickets use case",
		"offset", query.Offset,
		"limit", query.Limit)

	// Bad paging values are normalized, never rejected: the limit is
	// clamped to the configured cap and negative offsets become zero.
	page := utils.ValidatePageWithLimits(query.Offset, query.Limit, uc.defaultLimit, uc.maxLimit)

	filter := ticket.TicketFilter{
		Search: query.Search,
		Offset: page.Offset,
		Limit:  page.Limit,
	}

	if query.Status != nil {
		status, err := vo.NewStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationFieldErrors("invalid filter", []errors.FieldError{
				{Field: "status", Message: "must be one of: open, in_progress, resolved, closed"},
			})
		}
		filter.Status = &status
	}

	if query.Priority != nil {
		priority, err := vo.NewPriority(*query.Priority)
		if err != nil {
			return nil, errors.NewValidationFieldErrors("invalid filter", []errors.FieldError{
				{Field: "priority", Message: "must be one of: low, medium, high, urgent"},
			})
		}
		filter.Priority = &priority
	}

	tickets, totalCount, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	uc.logger.Debugw("tickets listed successfully",
		"count", len(tickets),
		"total", totalCount)

	return &ListTicketsResult{
		Tickets:    dto.ToTicketDTOs(tickets),
		TotalCount: totalCount,
	}, nil
}
