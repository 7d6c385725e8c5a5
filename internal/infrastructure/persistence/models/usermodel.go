package models

type UserModel struct {
	ID         uint   `gorm:"primaryKey"`
	PublicID   string `gorm:"uniqueIndex;size:36;not null"`
	Username   string `gorm:"uniqueIndex;size:150;not null"`
	Email      string `gorm:"uniqueIndex;size:254;not null"`
	FirstName  string `gorm:"size:150"`
	LastName   string `gorm:"size:150"`
	Role       string `gorm:"size:20;not null;index"`
	IsVerified bool   `gorm:"not null;default:false"`
	IsActive   bool   `gorm:"not null;default:true"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}
