package models

type MobileNumberModel struct {
	ID                  uint   `gorm:"primaryKey"`
	UserID              uint   `gorm:"uniqueIndex;not null"`
	Number              string `gorm:"uniqueIndex;size:20;not null"`
	CountryCode         string `gorm:"size:8"`
	CountryName         string `gorm:"size:100"`
	CountryISO          string `gorm:"size:2"`
	CarrierName         string `gorm:"size:100"`
	NumberType          string `gorm:"size:30"`
	IsVerified          bool   `gorm:"not null;default:false"`
	Status              string `gorm:"size:20;not null;index"`
	VerificationCode    string `gorm:"size:6"`
	CodeExpiresAt       *int64 `gorm:"index"`
	VerifiedAt          *int64
	LastCodeGeneratedAt *int64
	CreatedAt           int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt           int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (MobileNumberModel) TableName() string {
	return "mobile_numbers"
}
