package scheduler

import (
	"context"
	"time"

	"github.com/rawad-inc/rawad/internal/domain/profile"
)

// ApplicationResetJob zeroes weekly application counters for job seekers
// whose last reset is at least a week old.
type ApplicationResetJob struct {
	jobSeekerRepo profile.JobSeekerRepository
}

func NewApplicationResetJob(jobSeekerRepo profile.JobSeekerRepository) *ApplicationResetJob {
	return &ApplicationResetJob{jobSeekerRepo: jobSeekerRepo}
}

func (j *ApplicationResetJob) Execute(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-7 * 24 * time.Hour)

	count, err := j.jobSeekerRepo.ResetWeeklyApplications(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
