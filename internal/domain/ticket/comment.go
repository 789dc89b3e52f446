package ticket

import (
	"fmt"
	"strings"
	"time"
)

const maxAuthorLength = 100

// Comment is an immutable note on a ticket. It has no mutators beyond
// SetID: once created, a comment never changes and is only removed when
// its parent ticket is deleted.
type Comment struct {
	id        uint
	ticketID  uint
	author    string
	body      string
	createdAt time.Time
}

func NewComment(ticketID uint, author, body string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	author = strings.TrimSpace(author)
	if len(author) == 0 {
		return nil, fmt.Errorf("author is required")
	}
	if len(author) > maxAuthorLength {
		return nil, fmt.Errorf("author exceeds maximum length of %d characters", maxAuthorLength)
	}
	body = strings.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("body is required")
	}

	return &Comment{
		ticketID:  ticketID,
		author:    author,
		body:      body,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	author string,
	body string,
	createdAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		author:    author,
		body:      body,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) Author() string {
	return c.author
}

func (c *Comment) Body() string {
	return c.body
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
