package email

import (
	"context"
	"fmt"

	"github.com/rawad-inc/rawad/internal/domain/user"
)

// TicketStatusNotifier emails users when the status of one of their
// support tickets changes.
type TicketStatusNotifier struct {
	userRepo user.Repository
	service  *SMTPEmailService
}

func NewTicketStatusNotifier(userRepo user.Repository, service *SMTPEmailService) *TicketStatusNotifier {
	return &TicketStatusNotifier{
		userRepo: userRepo,
		service:  service,
	}
}

func (n *TicketStatusNotifier) NotifyStatusChange(ctx context.Context, userID, ticketID uint, status string) error {
	u, err := n.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("user %d not found", userID)
	}

	return n.service.SendTicketStatusEmail(u.Email(), ticketID, status)
}
