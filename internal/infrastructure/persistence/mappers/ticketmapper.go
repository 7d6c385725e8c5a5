package mappers

import (
	"fmt"

	"github.com/rawad-inc/rawad/internal/domain/ticket"
	vo "github.com/rawad-inc/rawad/internal/domain/ticket/valueobjects"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between SupportTicket domain entities
// and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.SupportTicket) *models.SupportTicketModel
	ToDomain(model *models.SupportTicketModel) (*ticket.SupportTicket, error)

	CommentToModel(c *ticket.Comment) *models.TicketCommentModel
	CommentToDomain(model *models.TicketCommentModel) (*ticket.Comment, error)
}

type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.SupportTicket) *models.SupportTicketModel {
	return &models.SupportTicketModel{
		ID:         t.ID(),
		UserID:     t.UserID(),
		Subject:    t.Subject(),
		Body:       t.Body(),
		Status:     t.Status().String(),
		AssigneeID: t.AssigneeID(),
		ResolvedAt: timePtrToMillisPtr(t.ResolvedAt()),
		CreatedAt:  t.CreatedAt().UnixMilli(),
		UpdatedAt:  t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.SupportTicketModel) (*ticket.SupportTicket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket status (id=%d): %w", model.ID, err)
	}

	return ticket.ReconstructSupportTicket(
		model.ID,
		model.UserID,
		model.Subject,
		model.Body,
		status,
		model.AssigneeID,
		millisPtrToTimePtr(model.ResolvedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.TicketCommentModel {
	return &models.TicketCommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Body:      c.Body(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.TicketCommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Body,
		millisToTime(model.CreatedAt),
	)
}
