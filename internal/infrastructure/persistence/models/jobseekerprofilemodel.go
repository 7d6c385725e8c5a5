package models

import "github.com/shopspring/decimal"

type JobSeekerProfileModel struct {
	ID                      uint             `gorm:"primaryKey"`
	UserID                  uint             `gorm:"uniqueIndex;not null"`
	Specialization          string           `gorm:"size:200;not null"`
	FieldOfWork             string           `gorm:"size:200;not null;index"`
	DateOfBirth             int64            `gorm:"not null"`
	ExperienceLevel         string           `gorm:"size:20;not null;index"`
	IsAvailable             bool             `gorm:"not null;default:true;index"`
	ExpectedHourlyRate      *decimal.Decimal `gorm:"type:decimal(10,2)"`
	IsEmployed              bool             `gorm:"not null;default:false"`
	WeeklyApplicationsCount uint             `gorm:"not null;default:0"`
	LastApplicationReset    int64            `gorm:"not null"`
	PhotoURL                string           `gorm:"size:500"`
	Location                string           `gorm:"size:200"`
	Bio                     string           `gorm:"type:text"`
	CreatedAt               int64            `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt               int64            `gorm:"autoUpdateTime:milli;not null"`
}

func (JobSeekerProfileModel) TableName() string {
	return "job_seeker_profiles"
}
