package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskd/internal/domain/ticket"
	vo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/shared/errors"
)

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

func TestUpdateTicketUseCase_Execute_PartialPatch(t *testing.T) {
	var updated *ticket.Ticket
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, id), nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			updated = tkt
			return nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 42,
		Status:   strPtr("resolved"),
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "resolved", result.Status)
	// untouched fields survive the patch
	assert.Equal(t, "Laptop will not boot", result.Title)
	assert.Equal(t, "high", result.Priority)
	assert.True(t, result.UpdatedAt.After(result.CreatedAt))
}

func TestUpdateTicketUseCase_Execute_AllFields(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, id), nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:    42,
		Title:       strPtr("Replacement laptop ordered"),
		Description: strPtr("Ordered model X as a replacement"),
		Priority:    strPtr("low"),
		Status:      strPtr("closed"),
		AssignedTo:  uintPtr(9),
	})

	require.NoError(t, err)
	assert.Equal(t, "Replacement laptop ordered", result.Title)
	assert.Equal(t, "Ordered model X as a replacement", result.Description)
	assert.Equal(t, "low", result.Priority)
	assert.Equal(t, "closed", result.Status)
	require.NotNil(t, result.AssignedTo)
	assert.Equal(t, uint(9), *result.AssignedTo)
}

func TestUpdateTicketUseCase_Execute_ClearAssignment(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			now := time.Now().UTC()
			return ticket.ReconstructTicket(
				id, "Assigned ticket", "", vo.PriorityMedium, vo.StatusOpen,
				uintPtr(5), now, now,
			)
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:        42,
		ClearAssignedTo: true,
	})

	require.NoError(t, err)
	assert.Nil(t, result.AssignedTo)
}

func TestUpdateTicketUseCase_Execute_ClearDescription(t *testing.T) {
	var updated *ticket.Ticket
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, id), nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			updated = tkt
			return nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:    42,
		Description: strPtr(""),
	})

	require.NoError(t, err)
	assert.Equal(t, "", result.Description)
	require.NotNil(t, updated)
	assert.Equal(t, "", updated.Description())
}

func TestUpdateTicketUseCase_Execute_EmptyPatchStillTouches(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, id), nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{TicketID: 42})

	require.NoError(t, err)
	assert.True(t, result.UpdatedAt.After(result.CreatedAt))
}

func TestUpdateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name           string
		command        UpdateTicketCommand
		expectedFields []string
	}{
		{
			name:           "empty title",
			command:        UpdateTicketCommand{TicketID: 1, Title: strPtr("  ")},
			expectedFields: []string{"title"},
		},
		{
			name:           "title too long",
			command:        UpdateTicketCommand{TicketID: 1, Title: strPtr(strings.Repeat("x", 161))},
			expectedFields: []string{"title"},
		},
		{
			name:           "invalid enums reported together",
			command:        UpdateTicketCommand{TicketID: 1, Priority: strPtr("severe"), Status: strPtr("done")},
			expectedFields: []string{"priority", "status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findCalled := false
			mockRepo := &mockTicketRepository{
				FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
					findCalled = true
					return reconstructTestTicket(t, id), nil
				},
			}

			useCase := NewUpdateTicketUseCase(mockRepo, nil, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.False(t, findCalled)

			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			gotFields := make([]string, 0, len(appErr.Fields))
			for _, f := range appErr.Fields {
				gotFields = append(gotFields, f.Field)
			}
			assert.ElementsMatch(t, tt.expectedFields, gotFields)
		})
	}
}

func TestUpdateTicketUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 99,
		Status:   strPtr("closed"),
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFound(err))
}
