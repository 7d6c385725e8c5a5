package ticket

import (
	"fmt"
	"time"

	vo "github.com/rawad-inc/rawad/internal/domain/ticket/valueobjects"
)

const (
	maxSubjectLength = 200
	maxBodyLength    = 5000
)

// SupportTicket is a user-filed support request.
type SupportTicket struct {
	id         uint
	userID     uint
	subject    string
	body       string
	status     vo.TicketStatus
	assigneeID *uint
	resolvedAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

// NewSupportTicket creates an open ticket.
func NewSupportTicket(userID uint, subject, body string) (*SupportTicket, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > maxSubjectLength {
		return nil, fmt.Errorf("subject cannot exceed %d characters", maxSubjectLength)
	}
	if body == "" {
		return nil, fmt.Errorf("body is required")
	}
	if len(body) > maxBodyLength {
		return nil, fmt.Errorf("body cannot exceed %d characters", maxBodyLength)
	}

	now := time.Now()
	return &SupportTicket{
		userID:    userID,
		subject:   subject,
		body:      body,
		status:    vo.StatusOpen,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSupportTicket reconstructs a ticket from persistence.
func ReconstructSupportTicket(
	id uint,
	userID uint,
	subject, body string,
	status vo.TicketStatus,
	assigneeID *uint,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*SupportTicket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", status)
	}
	return &SupportTicket{
		id:         id,
		userID:     userID,
		subject:    subject,
		body:       body,
		status:     status,
		assigneeID: assigneeID,
		resolvedAt: resolvedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (t *SupportTicket) ID() uint                { return t.id }
func (t *SupportTicket) UserID() uint            { return t.userID }
func (t *SupportTicket) Subject() string         { return t.subject }
func (t *SupportTicket) Body() string            { return t.body }
func (t *SupportTicket) Status() vo.TicketStatus { return t.status }
func (t *SupportTicket) AssigneeID() *uint       { return t.assigneeID }
func (t *SupportTicket) ResolvedAt() *time.Time  { return t.resolvedAt }
func (t *SupportTicket) CreatedAt() time.Time    { return t.createdAt }
func (t *SupportTicket) UpdatedAt() time.Time    { return t.updatedAt }

// SetID assigns the database identity after the initial insert.
func (t *SupportTicket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Assign hands the ticket to a staff member and moves it in progress.
func (t *SupportTicket) Assign(staffID uint) error {
	if staffID == 0 {
		return fmt.Errorf("staff ID is required")
	}
	if t.status.IsTerminal() {
		return fmt.Errorf("cannot assign a %s ticket", t.status)
	}
	t.assigneeID = &staffID
	if t.status == vo.StatusOpen {
		t.status = vo.StatusInProgress
	}
	t.updatedAt = time.Now()
	return nil
}

// ChangeStatus transitions the ticket through the allowed status graph.
func (t *SupportTicket) ChangeStatus(target vo.TicketStatus) error {
	if !target.IsValid() {
		return fmt.Errorf("invalid ticket status: %s", target)
	}
	if !t.status.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition ticket from %s to %s", t.status, target)
	}
	now := time.Now()
	t.status = target
	if target == vo.StatusResolved {
		t.resolvedAt = &now
	}
	t.updatedAt = now
	return nil
}

// CanAcceptComments reports whether new comments may be added.
func (t *SupportTicket) CanAcceptComments() bool {
	return !t.status.IsTerminal()
}
