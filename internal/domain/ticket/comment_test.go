package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	c, err := NewComment(42, "  Dana  ", "  Rebooted the switch.  ")

	require.NoError(t, err)
	assert.Equal(t, uint(42), c.TicketID())
	assert.Equal(t, "Dana", c.Author())
	assert.Equal(t, "Rebooted the switch.", c.Body())
	assert.False(t, c.CreatedAt().IsZero())
	assert.Zero(t, c.ID())
}

func TestNewComment_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		ticketID uint
		author   string
		body     string
	}{
		{"zero ticket ID", 0, "Dana", "text"},
		{"empty author", 42, "", "text"},
		{"whitespace author", 42, "   ", "text"},
		{"author too long", 42, strings.Repeat("a", 101), "text"},
		{"empty body", 42, "Dana", ""},
		{"whitespace body", 42, "Dana", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComment(tt.ticketID, tt.author, tt.body)
			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestComment_SetID(t *testing.T) {
	c, err := NewComment(42, "Dana", "text")
	require.NoError(t, err)

	require.NoError(t, c.SetID(7))
	assert.Equal(t, uint(7), c.ID())
	assert.Error(t, c.SetID(8))
}

func TestReconstructComment(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	c, err := ReconstructComment(7, 42, "Dana", "stored body", createdAt)
	require.NoError(t, err)
	assert.Equal(t, uint(7), c.ID())
	assert.Equal(t, createdAt, c.CreatedAt())

	_, err = ReconstructComment(0, 42, "Dana", "stored body", createdAt)
	assert.Error(t, err)
}
