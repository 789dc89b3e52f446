package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskd/internal/shared/errors"
)

func TestDeleteTicketUseCase_Execute_Success(t *testing.T) {
	var deletedID uint
	mockRepo := &mockTicketRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedID = id
			return nil
		},
	}

	useCase := NewDeleteTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketID: 42})

	require.NoError(t, err)
	assert.Equal(t, uint(42), deletedID)
	assert.Equal(t, uint(42), result.TicketID)
}

func TestDeleteTicketUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			return errors.NewNotFoundError("ticket not found")
		},
	}

	useCase := NewDeleteTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketID: 42})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFound(err))
}

func TestDeleteTicketUseCase_Execute_ZeroID(t *testing.T) {
	useCase := NewDeleteTicketUseCase(&mockTicketRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteTicketCommand{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidation(err))
}
