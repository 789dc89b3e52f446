package usecases

import (
	"context"
	"fmt"
	"strings"

	"deskd/internal/application/ticket/dto"
	"deskd/internal/domain/ticket"
	vo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/shared/db"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

// UpdateTicketCommand is a field-level patch: nil pointers leave the field
// untouched, present pointers must satisfy the field's rule.
// ClearAssignedTo removes the assignment; it is mutually exclusive with
// AssignedTo.
type UpdateTicketCommand struct {
	TicketID        uint
	Title           *string
	Description     *string
	Priority        *string
	Status          *string
	AssignedTo      *uint
	ClearAssignedTo bool
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txMgr      *db.TransactionManager
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid update ticket command", "error", err)
		return nil, err
	}

	var existing *ticket.Ticket

	// Read and write in one transaction so a concurrent delete cannot
	// slip between the lookup and the write.
	txErr := uc.runInTransaction(ctx, func(txCtx context.Context) error {
		found, err := uc.ticketRepo.FindByID(txCtx, cmd.TicketID)
		if err != nil {
			if !errors.IsNotFound(err) {
				uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
			}
			return err
		}

		if err := uc.applyPatch(found, cmd); err != nil {
			return err
		}

		if err := uc.ticketRepo.Update(txCtx, found); err != nil {
			if !errors.IsNotFound(err) {
				uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
			}
			return err
		}

		existing = found
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", existing.ID())

	return dto.ToTicketDTO(existing), nil
}

func (uc *UpdateTicketUseCase) applyPatch(existing *ticket.Ticket, cmd UpdateTicketCommand) error {
	applied := false

	if cmd.Title != nil {
		if err := existing.ChangeTitle(*cmd.Title); err != nil {
			return errors.NewValidationError(err.Error())
		}
		applied = true
	}

	if cmd.Description != nil {
		existing.ChangeDescription(*cmd.Description)
		applied = true
	}

	if cmd.Priority != nil {
		if err := existing.ChangePriority(vo.Priority(*cmd.Priority)); err != nil {
			return errors.NewValidationError(err.Error())
		}
		applied = true
	}

	if cmd.Status != nil {
		if err := existing.ChangeStatus(vo.Status(*cmd.Status)); err != nil {
			return errors.NewValidationError(err.Error())
		}
		applied = true
	}

	if cmd.AssignedTo != nil {
		if err := existing.AssignTo(*cmd.AssignedTo); err != nil {
			return errors.NewValidationError(err.Error())
		}
		applied = true
	} else if cmd.ClearAssignedTo {
		existing.Unassign()
		applied = true
	}

	// An empty patch is still a mutating call: updated_at refreshes.
	if !applied {
		existing.Touch()
	}

	return nil
}

func (uc *UpdateTicketUseCase) runInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if uc.txMgr == nil {
		return fn(ctx)
	}
	return uc.txMgr.RunInTransaction(ctx, fn)
}

// validateCommand checks every supplied field and reports all violations.
func (uc *UpdateTicketUseCase) validateCommand(cmd UpdateTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	var fields []errors.FieldError

	if cmd.Title != nil {
		title := strings.TrimSpace(*cmd.Title)
		if len(title) == 0 {
			fields = append(fields, errors.FieldError{Field: "title", Message: "cannot be empty"})
		} else if len(title) > maxTitleLength {
			fields = append(fields, errors.FieldError{
				Field:   "title",
				Message: fmt.Sprintf("must be at most %d characters", maxTitleLength),
			})
		}
	}

	if cmd.Priority != nil && !vo.Priority(*cmd.Priority).IsValid() {
		fields = append(fields, errors.FieldError{Field: "priority", Message: "must be one of: low, medium, high, urgent"})
	}

	if cmd.Status != nil && !vo.Status(*cmd.Status).IsValid() {
		fields = append(fields, errors.FieldError{Field: "status", Message: "must be one of: open, in_progress, resolved, closed"})
	}

	if cmd.AssignedTo != nil && *cmd.AssignedTo == 0 {
		fields = append(fields, errors.FieldError{Field: "assigned_to", Message: "cannot be zero"})
	}

	if len(fields) > 0 {
		return errors.NewValidationFieldErrors("invalid ticket patch", fields)
	}
	return nil
}
