package ticket

import (
	"fmt"
	"time"
)

const maxCommentLength = 2000

// Comment is a reply on a support ticket.
type Comment struct {
	id        uint
	ticketID  uint
	authorID  uint
	body      string
	createdAt time.Time
}

// NewComment creates a comment on an open ticket. Resolved and closed
// tickets do not accept new comments.
func NewComment(t *SupportTicket, authorID uint, body string) (*Comment, error) {
	if t == nil {
		return nil, fmt.Errorf("ticket is required")
	}
	if !t.CanAcceptComments() {
		return nil, fmt.Errorf("cannot add comments to a %s ticket", t.Status())
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if body == "" {
		return nil, fmt.Errorf("comment body is required")
	}
	if len(body) > maxCommentLength {
		return nil, fmt.Errorf("comment cannot exceed %d characters", maxCommentLength)
	}
	return &Comment{
		ticketID:  t.ID(),
		authorID:  authorID,
		body:      body,
		createdAt: time.Now(),
	}, nil
}

// ReconstructComment reconstructs a comment from persistence.
func ReconstructComment(id, ticketID, authorID uint, body string, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	return &Comment{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		body:      body,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) AuthorID() uint       { return c.authorID }
func (c *Comment) Body() string         { return c.body }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

// SetID assigns the database identity after the initial insert.
func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
