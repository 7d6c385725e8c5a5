package models

type IndividualClientProfileModel struct {
	ID                  uint   `gorm:"primaryKey"`
	UserID              uint   `gorm:"uniqueIndex;not null"`
	PublisherType       string `gorm:"size:20;not null;index"`
	BusinessName        string `gorm:"size:200"`
	BusinessDescription string `gorm:"type:text"`
	PhotoURL            string `gorm:"size:500"`
	Location            string `gorm:"size:200"`
	Bio                 string `gorm:"type:text"`
	CreatedAt           int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt           int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (IndividualClientProfileModel) TableName() string {
	return "individual_client_profiles"
}
