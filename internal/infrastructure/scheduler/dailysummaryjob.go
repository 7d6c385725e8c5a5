package scheduler

import (
	"context"

	"github.com/rawad-inc/rawad/internal/domain/ticket"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

// DailySummaryJob logs a daily snapshot of the support queue so operators
// see backlog trends without querying the database.
type DailySummaryJob struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDailySummaryJob(ticketRepo ticket.Repository, log logger.Interface) *DailySummaryJob {
	return &DailySummaryJob{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (j *DailySummaryJob) SendDailySummary(ctx context.Context) error {
	_, open, err := j.ticketRepo.ListByStatus(ctx, "open", 1, 0)
	if err != nil {
		return err
	}

	_, inProgress, err := j.ticketRepo.ListByStatus(ctx, "in_progress", 1, 0)
	if err != nil {
		return err
	}

	j.logger.Infow("daily support summary",
		"open_tickets", open,
		"in_progress_tickets", inProgress,
	)
	return nil
}
