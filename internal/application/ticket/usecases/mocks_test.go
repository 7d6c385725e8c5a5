package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/domain/ticket"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc         func(ctx context.Context, t *ticket.SupportTicket) error
	UpdateFunc       func(ctx context.Context, t *ticket.SupportTicket) error
	FindByIDFunc     func(ctx context.Context, id uint) (*ticket.SupportTicket, error)
	ListByUserFunc   func(ctx context.Context, userID uint, limit, offset int) ([]*ticket.SupportTicket, int64, error)
	ListByStatusFunc func(ctx context.Context, status string, limit, offset int) ([]*ticket.SupportTicket, int64, error)
	SaveCommentFunc  func(ctx context.Context, c *ticket.Comment) error
	ListCommentsFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.SupportTicket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.SupportTicket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.SupportTicket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*ticket.SupportTicket, int64, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*ticket.SupportTicket, int64, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) SaveComment(ctx context.Context, c *ticket.Comment) error {
	if m.SaveCommentFunc != nil {
		return m.SaveCommentFunc(ctx, c)
	}
	return nil
}

func (m *mockTicketRepository) ListComments(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListCommentsFunc != nil {
		return m.ListCommentsFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockStatusNotifier struct {
	Notified []uint
}

func (m *mockStatusNotifier) NotifyStatusChange(ctx context.Context, userID uint, ticketID uint, status string) error {
	m.Notified = append(m.Notified, ticketID)
	return nil
}

type syncDispatcher struct {
	Names []string
}

func (d *syncDispatcher) Submit(name string, fn func(ctx context.Context) error) {
	d.Names = append(d.Names, name)
	_ = fn(context.Background())
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
