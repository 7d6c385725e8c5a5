// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/rawad-inc/rawad/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SummaryProcessor sends the daily platform summary.
type SummaryProcessor interface {
	SendDailySummary(ctx context.Context) error
}

// SchedulerManager manages all scheduled jobs using gocron v2.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterVerificationJobs registers the hourly sweep that marks pending
// mobile numbers with lapsed codes as expired.
func (m *SchedulerManager) RegisterVerificationJobs(expireCodesJob BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			m.processExpiredCodes(ctx, expireCodesJob)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("verification", "expire-codes"),
		gocron.WithName("verification-code-expiry"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered verification jobs", "interval", "1h")
	return nil
}

func (m *SchedulerManager) processExpiredCodes(ctx context.Context, job BatchJob) {
	m.logger.Debugw("processing expired verification codes")

	startTime := time.Now()
	count, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("failed to expire verification codes",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		m.logger.Infow("verification codes expired",
			"count", count,
			"duration", time.Since(startTime),
		)
	}
}

// RegisterProfileJobs registers the weekly application counter reset. The
// job runs daily and only touches profiles whose last reset is older than
// a week, so a missed run self-corrects the next day.
func (m *SchedulerManager) RegisterProfileJobs(resetApplicationsJob BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob("0 0 * * *", false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			m.processApplicationReset(ctx, resetApplicationsJob)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("profile", "application-reset"),
		gocron.WithName("weekly-application-reset"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered profile jobs", "application_reset", "00:00 daily")
	return nil
}

func (m *SchedulerManager) processApplicationReset(ctx context.Context, job BatchJob) {
	count, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("failed to reset weekly applications", "error", err)
		return
	}

	if count > 0 {
		m.logger.Infow("weekly application counters reset", "count", count)
	}
}

// RegisterSummaryJobs registers the daily summary at 09:00.
func (m *SchedulerManager) RegisterSummaryJobs(processor SummaryProcessor) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob("0 9 * * *", false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			m.sendDailySummary(ctx, processor)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("summary", "daily"),
		gocron.WithName("daily-summary"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered summary jobs", "daily_summary", "09:00")
	return nil
}

func (m *SchedulerManager) sendDailySummary(ctx context.Context, processor SummaryProcessor) {
	if err := processor.SendDailySummary(ctx); err != nil {
		m.logger.Errorw("failed to send daily summary", "error", err)
		return
	}

	m.logger.Infow("daily summary sent successfully")
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler and waits for running jobs.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
