package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/domain/ticket"
	vo "github.com/rawad-inc/rawad/internal/domain/ticket/valueobjects"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type ChangeTicketStatusCommand struct {
	TicketID uint
	Status   string
}

type ChangeTicketStatusResult struct {
	TicketID uint
	Status   string
}

// ChangeTicketStatusUseCase moves a ticket through its status graph and
// notifies the owner in the background.
type ChangeTicketStatusUseCase struct {
	ticketRepo ticket.Repository
	notifier   StatusNotifier
	dispatcher Dispatcher
	logger     logger.Interface
}

func NewChangeTicketStatusUseCase(
	ticketRepo ticket.Repository,
	notifier StatusNotifier,
	dispatcher Dispatcher,
	logger logger.Interface,
) *ChangeTicketStatusUseCase {
	return &ChangeTicketStatusUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *ChangeTicketStatusUseCase) Execute(ctx context.Context, cmd ChangeTicketStatusCommand) (*ChangeTicketStatusResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := t.ChangeStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	userID := t.UserID()
	ticketID := t.ID()
	newStatus := t.Status().String()
	uc.dispatcher.Submit("notify_ticket_status_change", func(taskCtx context.Context) error {
		return uc.notifier.NotifyStatusChange(taskCtx, userID, ticketID, newStatus)
	})

	uc.logger.Infow("ticket status changed", "ticket_id", ticketID, "status", newStatus)

	return &ChangeTicketStatusResult{
		TicketID: ticketID,
		Status:   newStatus,
	}, nil
}
