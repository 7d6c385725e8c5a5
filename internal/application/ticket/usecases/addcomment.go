package usecases

import (
	"context"
	"time"

	"github.com/rawad-inc/rawad/internal/domain/ticket"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	AuthorID uint
	Body     string
}

type AddCommentResult struct {
	CommentID uint
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAddCommentUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	c, err := ticket.NewComment(t, cmd.AuthorID, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.SaveComment(ctx, c); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return &AddCommentResult{
		CommentID: c.ID(),
		CreatedAt: c.CreatedAt(),
	}, nil
}
