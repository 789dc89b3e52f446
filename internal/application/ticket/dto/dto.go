package dto

import (
	"time"

	"deskd/internal/domain/ticket"
)

// TicketDTO is the wire shape of a ticket, shared by the JSON API and the
// server-rendered pages.
type TicketDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	AssignedTo  *uint     `json:"assigned_to"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CommentDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		AssignedTo:  t.AssignedTo(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []TicketDTO {
	items := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, *ToTicketDTO(t))
	}
	return items
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		Author:    c.Author(),
		Body:      c.Body(),
		CreatedAt: c.CreatedAt(),
	}
}

func ToCommentDTOs(comments []*ticket.Comment) []CommentDTO {
	items := make([]CommentDTO, 0, len(comments))
	for _, c := range comments {
		items = append(items, ToCommentDTO(c))
	}
	return items
}
