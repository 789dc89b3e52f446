package usecases

import (
	"context"

	"deskd/internal/domain/ticket"
	"deskd/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                   func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                 func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc                 func(ctx context.Context, id uint) error
	FindByIDFunc               func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc                   func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountByStatusFunc          func(ctx context.Context) (map[string]int64, error)
	CountByPriorityFunc        func(ctx context.Context) (map[string]int64, error)
	SaveCommentFunc            func(ctx context.Context, c *ticket.Comment) error
	FindCommentsByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[string]int64{}, nil
}

func (m *mockTicketRepository) CountByPriority(ctx context.Context) (map[string]int64, error) {
	if m.CountByPriorityFunc != nil {
		return m.CountByPriorityFunc(ctx)
	}
	return map[string]int64{}, nil
}

func (m *mockTicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	if m.SaveCommentFunc != nil {
		return m.SaveCommentFunc(ctx, c)
	}
	return nil
}

func (m *mockTicketRepository) FindCommentsByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.FindCommentsByTicketIDFunc != nil {
		return m.FindCommentsByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                  {}
func (m *mockLogger) Info(msg string, args ...any)                   {}
func (m *mockLogger) Warn(msg string, args ...any)                   {}
func (m *mockLogger) Error(msg string, args ...any)                  {}
func (m *mockLogger) With(args ...any) logger.Interface              { return m }
func (m *mockLogger) Named(name string) logger.Interface             { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
