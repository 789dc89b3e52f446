package usecases

import (
	"context"
	"fmt"
	"strings"

	"deskd/internal/application/ticket/dto"
	"deskd/internal/domain/ticket"
	"deskd/internal/shared/db"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/logger"
)

const maxAuthorLength = 100

type AddCommentCommand struct {
	TicketID uint
	Author   string
	Body     string
}

type AddCommentUseCase struct {
	ticketRepo ticket.TicketRepository
	txMgr      *db.TransactionManager
	logger     logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid add comment command", "error", err)
		return nil, err
	}

	comment, err := ticket.NewComment(cmd.TicketID, cmd.Author, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Run the parent check and the insert in one transaction so the
	// comment cannot land after a concurrent delete removed the ticket.
	txErr := uc.runInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.ticketRepo.FindByID(txCtx, cmd.TicketID); err != nil {
			return err
		}

		if err := uc.ticketRepo.SaveComment(txCtx, comment); err != nil {
			uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
			return fmt.Errorf("failed to save comment: %w", err)
		}
		return nil
	})
	if txErr != nil {
		if !errors.IsNotFound(txErr) {
			uc.logger.Errorw("add comment transaction failed", "ticket_id", cmd.TicketID, "error", txErr)
		}
		return nil, txErr
	}

	uc.logger.Infow("comment added successfully", "comment_id", comment.ID(), "ticket_id", cmd.TicketID)

	result := dto.ToCommentDTO(comment)
	return &result, nil
}

func (uc *AddCommentUseCase) runInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if uc.txMgr == nil {
		return fn(ctx)
	}
	return uc.txMgr.RunInTransaction(ctx, fn)
}

// validateCommand checks every rule and reports all violated fields.
func (uc *AddCommentUseCase) validateCommand(cmd AddCommentCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	var fields []errors.FieldError

	author := strings.TrimSpace(cmd.Author)
	if len(author) == 0 {
		fields = append(fields, errors.FieldError{Field: "author", Message: "is required"})
	} else if len(author) > maxAuthorLength {
		fields = append(fields, errors.FieldError{
			Field:   "author",
			Message: fmt.Sprintf("must be at most %d characters", maxAuthorLength),
		})
	}

	if len(strings.TrimSpace(cmd.Body)) == 0 {
		fields = append(fields, errors.FieldError{Field: "body", Message: "is required"})
	}

	if len(fields) > 0 {
		return errors.NewValidationFieldErrors("invalid comment", fields)
	}
	return nil
}
