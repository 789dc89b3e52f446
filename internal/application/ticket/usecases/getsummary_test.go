package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskd/internal/shared/errors"
)

func TestGetSummaryUseCase_Execute_ZeroFilled(t *testing.T) {
	useCase := NewGetSummaryUseCase(&mockTicketRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"open": 0, "in_progress": 0, "resolved": 0, "closed": 0,
	}, result.ByStatus)
	assert.Equal(t, map[string]int64{
		"low": 0, "medium": 0, "high": 0, "urgent": 0,
	}, result.ByPriority)
}

func TestGetSummaryUseCase_Execute_CountsOverlayZeros(t *testing.T) {
	mockRepo := &mockTicketRepository{
		CountByStatusFunc: func(ctx context.Context) (map[string]int64, error) {
			return map[string]int64{"open": 3, "closed": 1}, nil
		},
		CountByPriorityFunc: func(ctx context.Context) (map[string]int64, error) {
			return map[string]int64{"urgent": 4}, nil
		},
	}

	useCase := NewGetSummaryUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), result.ByStatus["open"])
	assert.Equal(t, int64(1), result.ByStatus["closed"])
	assert.Equal(t, int64(0), result.ByStatus["in_progress"])
	assert.Equal(t, int64(0), result.ByStatus["resolved"])
	assert.Equal(t, int64(4), result.ByPriority["urgent"])
	assert.Equal(t, int64(0), result.ByPriority["low"])
}

func TestGetSummaryUseCase_Execute_RepositoryError(t *testing.T) {
	mockRepo := &mockTicketRepository{
		CountByStatusFunc: func(ctx context.Context) (map[string]int64, error) {
			return nil, errors.NewInternalError("database unavailable")
		},
	}

	useCase := NewGetSummaryUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background())

	require.Error(t, err)
	assert.Nil(t, result)
}
