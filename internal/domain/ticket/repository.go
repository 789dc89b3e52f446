package ticket

import (
	"context"

	vo "deskd/internal/domain/ticket/valueobjects"
)

// TicketFilter is the filter set for list queries. Absent criteria match
// everything; present criteria compose with logical AND.
type TicketFilter struct {
	Status   *vo.Status
	Priority *vo.Priority
	Search   string
	Offset   int
	Limit    int
}

// TicketRepository is the persistence contract for tickets and their
// comments. Delete cascades to the ticket's comments. List returns the
// requested slice ordered by created_at descending (ties broken by id
// descending) together with the total match count ignoring paging.
type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	FindByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountByPriority(ctx context.Context) (map[string]int64, error)
	SaveComment(ctx context.Context, c *Comment) error
	FindCommentsByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}
