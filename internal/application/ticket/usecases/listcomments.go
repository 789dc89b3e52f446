package usecases

import (
	"context"

	"deskd/internal/application/ticket/dto"
	"deskd/internal/domain/ticket"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type ListCommentsQuery struct {
	TicketID uint
}

type ListCommentsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute returns the ticket's comments newest-first. A missing ticket is
// a not-found failure, never an empty list.
func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if _, err := uc.ticketRepo.FindByID(ctx, query.TicketID); err != nil {
		if !errors.IsNotFound(err) {
			uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketID, "error", err)
		}
		return nil, err
	}

	comments, err := uc.ticketRepo.FindCommentsByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to list comments")
	}

	return dto.ToCommentDTOs(comments), nil
}
