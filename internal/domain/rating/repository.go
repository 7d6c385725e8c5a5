package rating

import "context"

// Repository defines the persistence contract for ratings.
type Repository interface {
	Save(ctx context.Context, r *Rating) error
	FindByID(ctx context.Context, id uint) (*Rating, error)
	ListByJobSeeker(ctx context.Context, jobSeekerID uint, limit, offset int) ([]*Rating, int64, error)

	// AverageByJobSeeker returns the arithmetic mean of all scores for the
	// job seeker, zero when none exist.
	AverageByJobSeeker(ctx context.Context, jobSeekerID uint) (float64, error)

	// ExistsByRaterAndJobSeeker reports whether the rater already rated
	// the job seeker.
	ExistsByRaterAndJobSeeker(ctx context.Context, raterID, jobSeekerID uint) (bool, error)
}
