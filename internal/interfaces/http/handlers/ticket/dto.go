package ticket

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"deskd/internal/application/ticket/usecases"
	"deskd/internal/shared/errors"
	"deskd/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=160"`
	Description string `json:"description"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status      string `json:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	AssignedTo  *uint  `json:"assigned_to"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
		AssignedTo:  r.AssignedTo,
	}
}

// UpdateTicketRequest is a partial update. AssignedTo stays raw so the
// handler can tell an explicit null (clear the assignment) from an absent
// field (leave it alone).
type UpdateTicketRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Priority    *string         `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status      *string         `json:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	AssignedTo  json.RawMessage `json:"assigned_to"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) (usecases.UpdateTicketCommand, error) {
	cmd := usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
	}

	if len(r.AssignedTo) > 0 {
		if bytes.Equal(bytes.TrimSpace(r.AssignedTo), []byte("null")) {
			cmd.ClearAssignedTo = true
		} else {
			var assignee uint
			if err := json.Unmarshal(r.AssignedTo, &assignee); err != nil {
				return cmd, errors.NewValidationFieldErrors("invalid ticket patch", []errors.FieldError{
					{Field: "assigned_to", Message: "must be a positive integer or null"},
				})
			}
			cmd.AssignedTo = &assignee
		}
	}

	return cmd, nil
}

type AddCommentRequest struct {
	Author string `json:"author" binding:"required,max=100"`
	Body   string `json:"body" binding:"required"`
}

func (r *AddCommentRequest) ToCommand(ticketID uint) usecases.AddCommentCommand {
	return usecases.AddCommentCommand{
		TicketID: ticketID,
		Author:   r.Author,
		Body:     r.Body,
	}
}

type ListTicketsRequest struct {
	Status   *string
	Priority *string
	Search   string
	Offset   int
	Limit    int
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:   r.Status,
		Priority: r.Priority,
		Search:   r.Search,
		Offset:   r.Offset,
		Limit:    r.Limit,
	}
}

// parseListTicketsRequest reads the list filters and paging from the query
// string. Paging values pass through raw; the use case normalizes them
// against its configured default and cap.
func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	req := &ListTicketsRequest{
		Offset: utils.QueryInt(c, "offset", 0),
		Limit:  utils.QueryInt(c, "limit", 0),
	}

	if status := c.Query("status"); status != "" {
		req.Status = &status
	}

	if priority := c.Query("priority"); priority != "" {
		req.Priority = &priority
	}

	req.Search = c.Query("search")

	return req
}

func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid ticket ID")
	}
	return uint(id), nil
}
