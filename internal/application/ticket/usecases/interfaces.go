package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/application/ticket/dto"
)

// StatusNotifier informs the ticket owner about a status change. Delivery
// runs in the background; failures never reach the caller.
type StatusNotifier interface {
	NotifyStatusChange(ctx context.Context, userID uint, ticketID uint, status string) error
}

// Dispatcher runs a named task in the background with retries.
type Dispatcher interface {
	Submit(name string, fn func(ctx context.Context) error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ChangeTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeTicketStatusCommand) (*ChangeTicketStatusResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}
