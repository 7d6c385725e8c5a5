package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/application/ticket/dto"
	"github.com/rawad-inc/rawad/internal/domain/ticket"
	"github.com/rawad-inc/rawad/internal/shared/errors"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
}

func NewGetTicketUseCase(ticketRepo ticket.Repository) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	comments, err := uc.ticketRepo.ListComments(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	commentDTOs := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		commentDTOs = append(commentDTOs, dto.CommentDTO{
			ID:        c.ID(),
			TicketID:  c.TicketID(),
			AuthorID:  c.AuthorID(),
			Body:      c.Body(),
			CreatedAt: c.CreatedAt(),
		})
	}

	return &dto.TicketDTO{
		ID:         t.ID(),
		UserID:     t.UserID(),
		Subject:    t.Subject(),
		Body:       t.Body(),
		Status:     t.Status().String(),
		AssigneeID: t.AssigneeID(),
		ResolvedAt: t.ResolvedAt(),
		Comments:   commentDTOs,
		CreatedAt:  t.CreatedAt(),
		UpdatedAt:  t.UpdatedAt(),
	}, nil
}
