package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskd/internal/domain/ticket"
	"deskd/internal/shared/errors"
)

func TestAddCommentUseCase_Execute_Success(t *testing.T) {
	var savedComment *ticket.Comment
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, id), nil
		},
		SaveCommentFunc: func(ctx context.Context, c *ticket.Comment) error {
			if err := c.SetID(7); err != nil {
				return err
			}
			savedComment = c
			return nil
		},
	}

	useCase := NewAddCommentUseCase(mockRepo, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		TicketID: 42,
		Author:   "  Dana  ",
		Body:     "Tried a hard reset, no change.",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(7), result.ID)
	assert.Equal(t, uint(42), result.TicketID)
	assert.Equal(t, "Dana", result.Author)
	assert.Equal(t, "Tried a hard reset, no change.", result.Body)
	assert.NotZero(t, result.CreatedAt)

	require.NotNil(t, savedComment)
}

func TestAddCommentUseCase_Execute_TicketMissing(t *testing.T) {
	saveCalled := false
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
		SaveCommentFunc: func(ctx context.Context, c *ticket.Comment) error {
			saveCalled = true
			return nil
		},
	}

	useCase := NewAddCommentUseCase(mockRepo, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		TicketID: 99,
		Author:   "Dana",
		Body:     "hello",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFound(err))
	assert.False(t, saveCalled)
}

func TestAddCommentUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name           string
		command        AddCommentCommand
		expectedFields []string
	}{
		{
			name:           "missing author",
			command:        AddCommentCommand{TicketID: 1, Body: "text"},
			expectedFields: []string{"author"},
		},
		{
			name:           "author too long",
			command:        AddCommentCommand{TicketID: 1, Author: strings.Repeat("a", 101), Body: "text"},
			expectedFields: []string{"author"},
		},
		{
			name:           "missing body",
			command:        AddCommentCommand{TicketID: 1, Author: "Dana", Body: "   "},
			expectedFields: []string{"body"},
		},
		{
			name:           "both missing reported together",
			command:        AddCommentCommand{TicketID: 1},
			expectedFields: []string{"author", "body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewAddCommentUseCase(&mockTicketRepository{}, nil, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)

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

func TestAddCommentUseCase_Execute_ZeroTicketID(t *testing.T) {
	useCase := NewAddCommentUseCase(&mockTicketRepository{}, nil, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCommentCommand{
		Author: "Dana",
		Body:   "text",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidation(err))
}
