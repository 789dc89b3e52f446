package usecases

import (
	"context"

	"deskd/internal/domain/ticket"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketResult struct {
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	// Delete cascades to the ticket's comments inside one transaction.
	// A second delete of the same ID reports not found.
	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		if !errors.IsNotFound(err) {
			uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)

	return &DeleteTicketResult{
		TicketID: cmd.TicketID,
	}, nil
}
