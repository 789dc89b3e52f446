package usecases

import (
	"context"

	"deskd/internal/application/ticket/dto"
	"deskd/internal/domain/ticket"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		if !errors.IsNotFound(err) {
			uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		}
		return nil, err
	}

	return dto.ToTicketDTO(t), nil
}
