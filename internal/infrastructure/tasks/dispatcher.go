// Package tasks runs fire-and-forget background work with retries.
package tasks

import (
	"context"
	"time"

	"github.com/rawad-inc/rawad/internal/shared/goroutine"
	"github.com/rawad-inc/rawad/internal/shared/logger"
)

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = 5 * time.Second
	defaultTaskTimeout = 30 * time.Second
)

// Dispatcher executes submitted tasks on background goroutines. Each task
// gets a fresh timeout context per attempt and is retried with a fixed
// delay; a task that exhausts its attempts is logged and dropped. There is
// no persistence: tasks in flight are lost on shutdown.
type Dispatcher struct {
	logger      logger.Interface
	maxAttempts int
	retryDelay  time.Duration
	taskTimeout time.Duration
}

func NewDispatcher(log logger.Interface) *Dispatcher {
	return &Dispatcher{
		logger:      log,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
		taskTimeout: defaultTaskTimeout,
	}
}

// Submit schedules fn for background execution. It returns immediately.
func (d *Dispatcher) Submit(name string, fn func(ctx context.Context) error) {
	goroutine.SafeGo(d.logger, name, func() {
		d.run(name, fn)
	})
}

func (d *Dispatcher) run(name string, fn func(ctx context.Context) error) {
	var lastErr error

	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		lastErr = d.attempt(fn)
		if lastErr == nil {
			if attempt > 1 {
				d.logger.Infow("background task succeeded after retry",
					"task", name,
					"attempt", attempt,
				)
			}
			return
		}

		if attempt < d.maxAttempts {
			d.logger.Warnw("background task failed, retrying",
				"task", name,
				"attempt", attempt,
				"error", lastErr,
			)
			time.Sleep(d.retryDelay)
		}
	}

	d.logger.Errorw("background task failed permanently",
		"task", name,
		"attempts", d.maxAttempts,
		"error", lastErr,
	)
}

func (d *Dispatcher) attempt(fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.taskTimeout)
	defer cancel()
	return fn(ctx)
}
