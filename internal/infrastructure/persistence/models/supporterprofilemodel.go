package models

type SupporterProfileModel struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"uniqueIndex;not null"`
	Country    string `gorm:"size:100"`
	BadgeLevel string `gorm:"size:20;not null;index"`
	PhotoURL   string `gorm:"size:500"`
	Location   string `gorm:"size:200"`
	Bio        string `gorm:"type:text"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SupporterProfileModel) TableName() string {
	return "supporter_profiles"
}
