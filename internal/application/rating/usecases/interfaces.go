package usecases

import "context"

// RatingCache stores the average rating per job seeker. Entries have no
// expiry; creation of a new rating invalidates the entry explicitly.
type RatingCache interface {
	Get(ctx context.Context, jobSeekerID uint) (float64, bool, error)
	Set(ctx context.Context, jobSeekerID uint, average float64) error
	Invalidate(ctx context.Context, jobSeekerID uint) error
}

type RateJobSeekerExecutor interface {
	Execute(ctx context.Context, cmd RateJobSeekerCommand) (*RateJobSeekerResult, error)
}

type GetJobSeekerRatingExecutor interface {
	Execute(ctx context.Context, query GetJobSeekerRatingQuery) (*JobSeekerRatingResult, error)
}
