package ticket

import "context"

// Repository defines the persistence contract for support tickets.
type Repository interface {
	Save(ctx context.Context, t *SupportTicket) error
	Update(ctx context.Context, t *SupportTicket) error
	FindByID(ctx context.Context, id uint) (*SupportTicket, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*SupportTicket, int64, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*SupportTicket, int64, error)

	SaveComment(ctx context.Context, c *Comment) error
	ListComments(ctx context.Context, ticketID uint) ([]*Comment, error)
}
