package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), s.String())
	}

	assert.False(t, Status("").IsValid())
	assert.False(t, Status("archived").IsValid())
	assert.False(t, Status("OPEN").IsValid(), "values are case sensitive")
}

func TestNewStatus(t *testing.T) {
	s, err := NewStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, s)
	assert.True(t, s.IsInProgress())

	_, err = NewStatus("pending")
	assert.Error(t, err)
}

func TestPriority_IsValid(t *testing.T) {
	for _, p := range AllPriorities() {
		assert.True(t, p.IsValid(), p.String())
	}

	assert.False(t, Priority("").IsValid())
	assert.False(t, Priority("critical").IsValid())
}

func TestNewPriority(t *testing.T) {
	p, err := NewPriority("urgent")
	require.NoError(t, err)
	assert.Equal(t, PriorityUrgent, p)
	assert.True(t, p.IsUrgent())

	_, err = NewPriority("severe")
	assert.Error(t, err)
}

func TestAllValues_CoverEveryEnum(t *testing.T) {
	assert.Len(t, AllStatuses(), 4)
	assert.Len(t, AllPriorities(), 4)
}
