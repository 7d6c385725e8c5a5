package profile

import (
	"context"
	"time"
)

// SupporterRepository defines the persistence contract for supporter profiles.
type SupporterRepository interface {
	Save(ctx context.Context, p *SupporterProfile) error
	Update(ctx context.Context, p *SupporterProfile) error
	FindByID(ctx context.Context, id uint) (*SupporterProfile, error)
	FindByUserID(ctx context.Context, userID uint) (*SupporterProfile, error)
	Delete(ctx context.Context, id uint) error
}

// CompanyRepository defines the persistence contract for company profiles.
type CompanyRepository interface {
	Save(ctx context.Context, p *CompanyProfile) error
	Update(ctx context.Context, p *CompanyProfile) error
	FindByID(ctx context.Context, id uint) (*CompanyProfile, error)
	FindByUserID(ctx context.Context, userID uint) (*CompanyProfile, error)
	FindByLicenseNumber(ctx context.Context, licenseNumber string) (*CompanyProfile, error)
	Delete(ctx context.Context, id uint) error
}

// IndividualClientRepository defines the persistence contract for
// individual client profiles.
type IndividualClientRepository interface {
	Save(ctx context.Context, p *IndividualClientProfile) error
	Update(ctx context.Context, p *IndividualClientProfile) error
	FindByID(ctx context.Context, id uint) (*IndividualClientProfile, error)
	FindByUserID(ctx context.Context, userID uint) (*IndividualClientProfile, error)
	Delete(ctx context.Context, id uint) error
}

// JobSeekerRepository defines the persistence contract for job seeker profiles.
type JobSeekerRepository interface {
	Save(ctx context.Context, p *JobSeekerProfile) error
	Update(ctx context.Context, p *JobSeekerProfile) error
	FindByID(ctx context.Context, id uint) (*JobSeekerProfile, error)
	FindByUserID(ctx context.Context, userID uint) (*JobSeekerProfile, error)
	Delete(ctx context.Context, id uint) error

	// ResetWeeklyApplications zeroes the weekly application counter for
	// profiles whose last reset is before the cutoff. Returns the number
	// of profiles reset.
	ResetWeeklyApplications(ctx context.Context, cutoff time.Time) (int64, error)
}
