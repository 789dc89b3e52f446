package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "deskd/internal/domain/ticket/valueobjects"
)

const maxTitleLength = 160

// Ticket is the aggregate root of the tracker. All fields are unexported;
// state changes go through the mutator methods so updatedAt stays correct.
type Ticket struct {
	id          uint
	title       string
	description string
	priority    vo.Priority
	status      vo.Status
	assignedTo  *uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	status vo.Status,
	assignedTo *uint,
) (*Ticket, error) {
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	now := time.Now().UTC()

	return &Ticket{
		title:       title,
		description: description,
		priority:    priority,
		status:      status,
		assignedTo:  assignedTo,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a persisted ticket without re-running the
// creation defaults. The store is trusted to hold valid enum values.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	priority vo.Priority,
	status vo.Status,
	assignedTo *uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		priority:    priority,
		status:      status,
		assignedTo:  assignedTo,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) AssignedTo() *uint {
	return t.assignedTo
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) ChangeTitle(title string) error {
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return fmt.Errorf("title cannot be empty")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}

	t.title = title
	t.touch()
	return nil
}

func (t *Ticket) ChangeDescription(description string) {
	t.description = description
	t.touch()
}

func (t *Ticket) ChangePriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}

	t.priority = priority
	t.touch()
	return nil
}

func (t *Ticket) ChangeStatus(status vo.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}

	t.status = status
	t.touch()
	return nil
}

func (t *Ticket) AssignTo(assignee uint) error {
	if assignee == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assignedTo = &assignee
	t.touch()
	return nil
}

func (t *Ticket) Unassign() {
	t.assignedTo = nil
	t.touch()
}

// Touch refreshes updatedAt without changing any other field. An update
// request with an empty patch still counts as a mutation.
func (t *Ticket) Touch() {
	t.touch()
}

func (t *Ticket) touch() {
	now := time.Now().UTC()
	if !now.After(t.updatedAt) {
		now = t.updatedAt.Add(time.Millisecond)
	}
	t.updatedAt = now
}
