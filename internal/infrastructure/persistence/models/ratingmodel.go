package models

type RatingModel struct {
	ID          uint   `gorm:"primaryKey"`
	RaterID     uint   `gorm:"not null;uniqueIndex:idx_rater_job_seeker"`
	JobSeekerID uint   `gorm:"not null;uniqueIndex:idx_rater_job_seeker;index"`
	Score       uint   `gorm:"not null"`
	Comment     string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (RatingModel) TableName() string {
	return "ratings"
}
