package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskd/internal/domain/ticket"
	"deskd/internal/shared/errors"
)

func TestListCommentsUseCase_Execute_Success(t *testing.T) {
	now := time.Now().UTC()
	newer, err := ticket.ReconstructComment(2, 42, "Dana", "Second note", now)
	require.NoError(t, err)
	older, err := ticket.ReconstructComment(1, 42, "Sam", "First note", now.Add(-time.Hour))
	require.NoError(t, err)

	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, id), nil
		},
		FindCommentsByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
			assert.Equal(t, uint(42), ticketID)
			return []*ticket.Comment{newer, older}, nil
		},
	}

	useCase := NewListCommentsUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListCommentsQuery{TicketID: 42})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Second note", result[0].Body)
	assert.Equal(t, "First note", result[1].Body)
}

func TestListCommentsUseCase_Execute_EmptyList(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, id), nil
		},
	}

	useCase := NewListCommentsUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListCommentsQuery{TicketID: 42})

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestListCommentsUseCase_Execute_TicketMissing(t *testing.T) {
	commentsQueried := false
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
		FindCommentsByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
			commentsQueried = true
			return nil, nil
		},
	}

	useCase := NewListCommentsUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListCommentsQuery{TicketID: 99})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFound(err))
	assert.False(t, commentsQueried)
}
