package dto

import "time"

// TicketDTO is the read model for support tickets.
type TicketDTO struct {
	ID         uint         `json:"id"`
	UserID     uint         `json:"user_id"`
	Subject    string       `json:"subject"`
	Body       string       `json:"body"`
	Status     string       `json:"status"`
	AssigneeID *uint        `json:"assignee_id,omitempty"`
	ResolvedAt *time.Time   `json:"resolved_at,omitempty"`
	Comments   []CommentDTO `json:"comments,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// CommentDTO is the read model for ticket comments.
type CommentDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	AuthorID  uint      `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
