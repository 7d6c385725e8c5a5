package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/application/ticket/dto"
	"github.com/rawad-inc/rawad/internal/domain/ticket"
	vo "github.com/rawad-inc/rawad/internal/domain/ticket/valueobjects"
	"github.com/rawad-inc/rawad/internal/shared/errors"
)

const defaultPageSize = 20

type ListTicketsQuery struct {
	UserID uint
	Status string
	Limit  int
	Offset int
}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
}

func NewListTicketsUseCase(ticketRepo ticket.Repository) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.Limit <= 0 {
		query.Limit = defaultPageSize
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	var (
		tickets []*ticket.SupportTicket
		total   int64
		err     error
	)
	switch {
	case query.UserID != 0:
		tickets, total, err = uc.ticketRepo.ListByUser(ctx, query.UserID, query.Limit, query.Offset)
	case query.Status != "":
		if _, serr := vo.NewTicketStatus(query.Status); serr != nil {
			return nil, errors.NewValidationError(serr.Error())
		}
		tickets, total, err = uc.ticketRepo.ListByStatus(ctx, query.Status, query.Limit, query.Offset)
	default:
		return nil, errors.NewValidationError("either user ID or status filter is required")
	}
	if err != nil {
		return nil, err
	}

	items := make([]dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.TicketDTO{
			ID:         t.ID(),
			UserID:     t.UserID(),
			Subject:    t.Subject(),
			Body:       t.Body(),
			Status:     t.Status().String(),
			AssigneeID: t.AssigneeID(),
			ResolvedAt: t.ResolvedAt(),
			CreatedAt:  t.CreatedAt(),
			UpdatedAt:  t.UpdatedAt(),
		})
	}

	return &ListTicketsResult{Tickets: items, Total: total}, nil
}
