package usecases

import (
	"context"

	"github.com/rawad-inc/rawad/internal/domain/rating"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type GetJobSeekerRatingQuery struct {
	JobSeekerID uint
}

type JobSeekerRatingResult struct {
	JobSeekerID uint
	Average     float64
}

// GetJobSeekerRatingUseCase returns the average rating for a job seeker,
// reading through the cache. The cached value never expires; it is only
// dropped when a new rating arrives. A job seeker without ratings scores
// 0.0.
type GetJobSeekerRatingUseCase struct {
	ratingRepo rating.Repository
	cache      RatingCache
	logger     logger.Interface
}

func NewGetJobSeekerRatingUseCase(
	ratingRepo rating.Repository,
	cache RatingCache,
	logger logger.Interface,
) *GetJobSeekerRatingUseCase {
	return &GetJobSeekerRatingUseCase{
		ratingRepo: ratingRepo,
		cache:      cache,
		logger:     logger,
	}
}

func (uc *GetJobSeekerRatingUseCase) Execute(ctx context.Context, query GetJobSeekerRatingQuery) (*JobSeekerRatingResult, error) {
	if query.JobSeekerID == 0 {
		return nil, errors.NewValidationError("job seeker ID is required")
	}

	if avg, ok, err := uc.cache.Get(ctx, query.JobSeekerID); err != nil {
		uc.logger.Warnw("rating cache read failed, falling back to database", "job_seeker_id", query.JobSeekerID, "error", err)
	} else if ok {
		return &JobSeekerRatingResult{JobSeekerID: query.JobSeekerID, Average: avg}, nil
	}

	avg, err := uc.ratingRepo.AverageByJobSeeker(ctx, query.JobSeekerID)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, query.JobSeekerID, avg); err != nil {
		uc.logger.Warnw("failed to cache rating average", "job_seeker_id", query.JobSeekerID, "error", err)
	}

	return &JobSeekerRatingResult{JobSeekerID: query.JobSeekerID, Average: avg}, nil
}
