package profile

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "github.com/rawad-inc/rawad/internal/domain/profile/valueobjects"
)

// JobSeekerProfile is the profile for job seekers. Besides the descriptive
// fields it tracks a weekly application counter that resets once a week.
type JobSeekerProfile struct {
	id                      uint
	userID                  uint
	specialization          string
	fieldOfWork             string
	dateOfBirth             time.Time
	experienceLevel         vo.ExperienceLevel
	isAvailable             bool
	expectedHourlyRate      *decimal.Decimal
	isEmployed              bool
	weeklyApplicationsCount uint
	lastApplicationReset    time.Time
	photoURL                string
	location                string
	bio                     string
	createdAt               time.Time
	updatedAt               time.Time
}

func NewJobSeekerProfile(
	userID uint,
	specialization, fieldOfWork string,
	dateOfBirth time.Time,
	experienceLevel vo.ExperienceLevel,
) (*JobSeekerProfile, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if specialization == "" {
		return nil, fmt.Errorf("specialization is required")
	}
	if fieldOfWork == "" {
		return nil, fmt.Errorf("field of work is required")
	}
	if dateOfBirth.IsZero() {
		return nil, fmt.Errorf("date of birth is required")
	}
	if !experienceLevel.IsValid() {
		return nil, fmt.Errorf("invalid experience level: %s", experienceLevel)
	}

	now := time.Now()
	return &JobSeekerProfile{
		userID:               userID,
		specialization:       specialization,
		fieldOfWork:          fieldOfWork,
		dateOfBirth:          dateOfBirth,
		experienceLevel:      experienceLevel,
		isAvailable:          true,
		lastApplicationReset: now,
		createdAt:            now,
		updatedAt:            now,
	}, nil
}

func ReconstructJobSeekerProfile(
	id uint,
	userID uint,
	specialization, fieldOfWork string,
	dateOfBirth time.Time,
	experienceLevel vo.ExperienceLevel,
	isAvailable bool,
	expectedHourlyRate *decimal.Decimal,
	isEmployed bool,
	weeklyApplicationsCount uint,
	lastApplicationReset time.Time,
	photoURL, location, bio string,
	createdAt, updatedAt time.Time,
) (*JobSeekerProfile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !experienceLevel.IsValid() {
		return nil, fmt.Errorf("invalid experience level: %s", experienceLevel)
	}

	return &JobSeekerProfile{
		id:                      id,
		userID:                  userID,
		specialization:          specialization,
		fieldOfWork:             fieldOfWork,
		dateOfBirth:             dateOfBirth,
		experienceLevel:         experienceLevel,
		isAvailable:             isAvailable,
		expectedHourlyRate:      expectedHourlyRate,
		isEmployed:              isEmployed,
		weeklyApplicationsCount: weeklyApplicationsCount,
		lastApplicationReset:    lastApplicationReset,
		photoURL:                photoURL,
		location:                location,
		bio:                     bio,
		createdAt:               createdAt,
		updatedAt:               updatedAt,
	}, nil
}

func (p *JobSeekerProfile) ID() uint                              { return p.id }
func (p *JobSeekerProfile) UserID() uint                          { return p.userID }
func (p *JobSeekerProfile) Specialization() string                { return p.specialization }
func (p *JobSeekerProfile) FieldOfWork() string                   { return p.fieldOfWork }
func (p *JobSeekerProfile) DateOfBirth() time.Time                { return p.dateOfBirth }
func (p *JobSeekerProfile) ExperienceLevel() vo.ExperienceLevel   { return p.experienceLevel }
func (p *JobSeekerProfile) IsAvailable() bool                     { return p.isAvailable }
func (p *JobSeekerProfile) ExpectedHourlyRate() *decimal.Decimal  { return p.expectedHourlyRate }
func (p *JobSeekerProfile) IsEmployed() bool                      { return p.isEmployed }
func (p *JobSeekerProfile) WeeklyApplicationsCount() uint         { return p.weeklyApplicationsCount }
func (p *JobSeekerProfile) LastApplicationReset() time.Time       { return p.lastApplicationReset }
func (p *JobSeekerProfile) PhotoURL() string                      { return p.photoURL }
func (p *JobSeekerProfile) Location() string                      { return p.location }
func (p *JobSeekerProfile) Bio() string                           { return p.bio }
func (p *JobSeekerProfile) CreatedAt() time.Time                  { return p.createdAt }
func (p *JobSeekerProfile) UpdatedAt() time.Time                  { return p.updatedAt }

// SetID assigns the database identity after the initial insert.
func (p *JobSeekerProfile) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID already set")
	}
	if id == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = id
	return nil
}

// SetExpectedHourlyRate updates the advertised rate. A nil rate clears it.
func (p *JobSeekerProfile) SetExpectedHourlyRate(rate *decimal.Decimal) error {
	if rate != nil && rate.IsNegative() {
		return fmt.Errorf("expected hourly rate cannot be negative")
	}
	p.expectedHourlyRate = rate
	p.updatedAt = time.Now()
	return nil
}

// SetAvailability toggles whether the seeker is open to new work.
func (p *JobSeekerProfile) SetAvailability(available bool) {
	p.isAvailable = available
	p.updatedAt = time.Now()
}

// RecordApplication increments the weekly application counter, resetting
// it first when a week has passed since the last reset.
func (p *JobSeekerProfile) RecordApplication(now time.Time) {
	if now.Sub(p.lastApplicationReset) >= 7*24*time.Hour {
		p.weeklyApplicationsCount = 0
		p.lastApplicationReset = now
	}
	p.weeklyApplicationsCount++
	p.updatedAt = now
}
