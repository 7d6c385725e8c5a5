package usecases

import (
	"context"
	"time"

	"github.com/rawad-inc/rawad/internal/domain/profile"
	"github.com/rawad-inc/rawad/internal/domain/rating"
	"github.com/rawad-inc/rawad/internal/shared/errors"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

type RateJobSeekerCommand struct {
	RaterID     uint
	JobSeekerID uint
	Score       uint
	Comment     string
}

type RateJobSeekerResult struct {
	RatingID  uint
	Score     uint
	CreatedAt time.Time
}

// RateJobSeekerUseCase records a rating and evicts the cached average so
// the next read recomputes it. A rater can rate a given job seeker once.
type RateJobSeekerUseCase struct {
	ratingRepo    rating.Repository
	jobSeekerRepo profile.JobSeekerRepository
	cache         RatingCache
	logger        logger.Interface
}

func NewRateJobSeekerUseCase(
	ratingRepo rating.Repository,
	jobSeekerRepo profile.JobSeekerRepository,
	cache RatingCache,
	logger logger.Interface,
) *RateJobSeekerUseCase {
	return &RateJobSeekerUseCase{
		ratingRepo:    ratingRepo,
		jobSeekerRepo: jobSeekerRepo,
		cache:         cache,
		logger:        logger,
	}
}

func (uc *RateJobSeekerUseCase) Execute(ctx context.Context, cmd RateJobSeekerCommand) (*RateJobSeekerResult, error) {
	if cmd.RaterID == 0 {
		return nil, errors.NewValidationError("rater ID is required")
	}
	if cmd.JobSeekerID == 0 {
		return nil, errors.NewValidationError("job seeker ID is required")
	}

	seeker, err := uc.jobSeekerRepo.FindByID(ctx, cmd.JobSeekerID)
	if err != nil {
		return nil, err
	}
	if seeker == nil {
		return nil, errors.NewNotFoundError("job seeker profile not found")
	}

	exists, err := uc.ratingRepo.ExistsByRaterAndJobSeeker(ctx, cmd.RaterID, cmd.JobSeekerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("you have already rated this job seeker")
	}

	r, err := rating.NewRating(cmd.RaterID, cmd.JobSeekerID, cmd.Score, cmd.Comment)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ratingRepo.Save(ctx, r); err != nil {
		uc.logger.Errorw("failed to save rating", "rater_id", cmd.RaterID, "job_seeker_id", cmd.JobSeekerID, "error", err)
		return nil, err
	}

	if err := uc.cache.Invalidate(ctx, cmd.JobSeekerID); err != nil {
		uc.logger.Warnw("failed to invalidate rating cache", "job_seeker_id", cmd.JobSeekerID, "error", err)
	}

	uc.logger.Infow("job seeker rated", "rating_id", r.ID(), "job_seeker_id", cmd.JobSeekerID, "score", cmd.Score)

	return &RateJobSeekerResult{
		RatingID:  r.ID(),
		Score:     r.Score(),
		CreatedAt: r.CreatedAt(),
	}, nil
}
