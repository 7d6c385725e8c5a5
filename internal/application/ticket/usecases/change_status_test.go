package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawad-inc/rawad/internal/domain/ticket"
	vo "github.com/rawad-inc/rawad/internal/domain/ticket/valueobjects"
	"github.com/rawad-inc/rawad/internal/shared/errors"
)

func openTicket(t *testing.T) *ticket.SupportTicket {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructSupportTicket(5, 1, "subject", "body", vo.StatusOpen, nil, nil, now, now)
	require.NoError(t, err)
	return tk
}

func TestChangeTicketStatus(t *testing.T) {
	tk := openTicket(t)
	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.SupportTicket, error) {
			return tk, nil
		},
	}
	notifier := &mockStatusNotifier{}
	dispatcher := &syncDispatcher{}

	uc := NewChangeTicketStatusUseCase(repo, notifier, dispatcher, noopLogger{})
	result, err := uc.Execute(context.Background(), ChangeTicketStatusCommand{
		TicketID: 5,
		Status:   "resolved",
	})
	require.NoError(t, err)

	assert.Equal(t, "resolved", result.Status)
	assert.Equal(t, []string{"notify_ticket_status_change"}, dispatcher.Names)
	assert.Equal(t, []uint{5}, notifier.Notified)
	assert.NotNil(t, tk.ResolvedAt())
}

func TestChangeTicketStatus_InvalidTransition(t *testing.T) {
	now := time.Now()
	tk, err := ticket.ReconstructSupportTicket(5, 1, "subject", "body", vo.StatusClosed, nil, nil, now, now)
	require.NoError(t, err)

	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.SupportTicket, error) {
			return tk, nil
		},
	}

	uc := NewChangeTicketStatusUseCase(repo, &mockStatusNotifier{}, &syncDispatcher{}, noopLogger{})
	_, err = uc.Execute(context.Background(), ChangeTicketStatusCommand{
		TicketID: 5,
		Status:   "open",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestAddComment_TerminalTicketRejected(t *testing.T) {
	now := time.Now()
	tk, err := ticket.ReconstructSupportTicket(5, 1, "subject", "body", vo.StatusResolved, nil, &now, now, now)
	require.NoError(t, err)

	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.SupportTicket, error) {
			return tk, nil
		},
	}

	uc := NewAddCommentUseCase(repo, noopLogger{})
	_, err = uc.Execute(context.Background(), AddCommentCommand{
		TicketID: 5,
		AuthorID: 2,
		Body:     "too late",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestAddComment(t *testing.T) {
	tk := openTicket(t)
	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.SupportTicket, error) {
			return tk, nil
		},
		SaveCommentFunc: func(ctx context.Context, c *ticket.Comment) error {
			return c.SetID(9)
		},
	}

	uc := NewAddCommentUseCase(repo, noopLogger{})
	result, err := uc.Execute(context.Background(), AddCommentCommand{
		TicketID: 5,
		AuthorID: 2,
		Body:     "we are on it",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(9), result.CommentID)
}
