package usecases

import (
	"context"
	"fmt"
	"strings"

	"deskd/internal/application/ticket/dto"
	"deskd/internal/domain/ticket"
	vo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

const maxTitleLength = 160

// CreateTicketCommand carries the untrusted create input. Priority and
// Status default to medium/open when empty.
type CreateTicketCommand struct {
	Title       string
	Description string
	Priority    string
	Status      string
	AssignedTo  *uint
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	priority := vo.PriorityMedium
	if cmd.Priority != "" {
		priority = vo.Priority(cmd.Priority)
	}

	status := vo.StatusOpen
	if cmd.Status != "" {
		status = vo.Status(cmd.Status)
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		priority,
		status,
		cmd.AssignedTo,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully",
		"ticket_id", newTicket.ID(),
		"priority", newTicket.Priority().String())

	return dto.ToTicketDTO(newTicket), nil
}

// validateCommand checks every rule and reports all violated fields.
func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	var fields []errors.FieldError

	title := strings.TrimSpace(cmd.Title)
	if len(title) == 0 {
		fields = append(fields, errors.FieldError{Field: "title", Message: "is required"})
	} else if len(title) > maxTitleLength {
		fields = append(fields, errors.FieldError{
			Field:   "title",
			Message: fmt.Sprintf("must be at most %d characters", maxTitleLength),
		})
	}

	if cmd.Priority != "" && !vo.Priority(cmd.Priority).IsValid() {
		fields = append(fields, errors.FieldError{Field: "priority", Message: "must be one of: low, medium, high, urgent"})
	}

	if cmd.Status != "" && !vo.Status(cmd.Status).IsValid() {
		fields = append(fields, errors.FieldError{Field: "status", Message: "must be one of: open, in_progress, resolved, closed"})
	}

	if len(fields) > 0 {
		return errors.NewValidationFieldErrors("invalid ticket", fields)
	}
	return nil
}
