package models

type SupportTicketModel struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;index"`
	Subject    string `gorm:"size:200;not null"`
	Body       string `gorm:"type:text;not null"`
	Status     string `gorm:"size:20;not null;index"`
	AssigneeID *uint  `gorm:"index"`
	ResolvedAt *int64
	CreatedAt  int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (SupportTicketModel) TableName() string {
	return "support_tickets"
}

type TicketCommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketCommentModel) TableName() string {
	return "ticket_comments"
}
