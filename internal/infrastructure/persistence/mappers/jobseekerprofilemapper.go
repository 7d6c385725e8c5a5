package mappers

import (
	"fmt"

	"github.com/rawad-inc/rawad/internal/domain/profile"
	vo "github.com/rawad-inc/rawad/internal/domain/profile/valueobjects"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
)

// JobSeekerProfileMapper handles the conversion between JobSeekerProfile
// domain entities and persistence models.
type JobSeekerProfileMapper interface {
	ToModel(p *profile.JobSeekerProfile) *models.JobSeekerProfileModel
	ToDomain(model *models.JobSeekerProfileModel) (*profile.JobSeekerProfile, error)
}

type JobSeekerProfileMapperImpl struct{}

// NewJobSeekerProfileMapper creates a new JobSeekerProfileMapper.
func NewJobSeekerProfileMapper() JobSeekerProfileMapper {
	return &JobSeekerProfileMapperImpl{}
}

func (m *JobSeekerProfileMapperImpl) ToModel(p *profile.JobSeekerProfile) *models.JobSeekerProfileModel {
	return &models.JobSeekerProfileModel{
		ID:                      p.ID(),
		UserID:                  p.UserID(),
		Specialization:          p.Specialization(),
		FieldOfWork:             p.FieldOfWork(),
		DateOfBirth:             p.DateOfBirth().UnixMilli(),
		ExperienceLevel:         p.ExperienceLevel().String(),
		IsAvailable:             p.IsAvailable(),
		ExpectedHourlyRate:      p.ExpectedHourlyRate(),
		IsEmployed:              p.IsEmployed(),
		WeeklyApplicationsCount: p.WeeklyApplicationsCount(),
		LastApplicationReset:    p.LastApplicationReset().UnixMilli(),
		PhotoURL:                p.PhotoURL(),
		Location:                p.Location(),
		Bio:                     p.Bio(),
		CreatedAt:               p.CreatedAt().UnixMilli(),
		UpdatedAt:               p.UpdatedAt().UnixMilli(),
	}
}

func (m *JobSeekerProfileMapperImpl) ToDomain(model *models.JobSeekerProfileModel) (*profile.JobSeekerProfile, error) {
	experienceLevel, err := vo.NewExperienceLevel(model.ExperienceLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid experience level (id=%d): %w", model.ID, err)
	}

	return profile.ReconstructJobSeekerProfile(
		model.ID,
		model.UserID,
		model.Specialization,
		model.FieldOfWork,
		millisToTime(model.DateOfBirth),
		experienceLevel,
		model.IsAvailable,
		model.ExpectedHourlyRate,
		model.IsEmployed,
		model.WeeklyApplicationsCount,
		millisToTime(model.LastApplicationReset),
		model.PhotoURL,
		model.Location,
		model.Bio,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
