// Package jobs runs periodic maintenance work on a cron schedule.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// JobFunc is one run of a scheduled job. ctx is cancelled after the job timeout.
type JobFunc func(ctx context.Context) error

// Scheduler wraps a cron runner that logs each run through slog.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewScheduler creates a scheduler. Panicking jobs are recovered and logged.
func NewScheduler(logger *slog.Logger) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.Recover(cronLogger))),
		logger: logger,
	}
}

// AddJob registers fn under a standard cron spec ("@hourly", "0 * * * *").
// Overlapping runs of the same job are skipped.
func (s *Scheduler) AddJob(name, spec string, timeout time.Duration, fn JobFunc) error {
	logger := s.logger.With(slog.String("job", name))
	job := cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(func() {
		s.run(logger, timeout, fn)
	}))
	if _, err := s.cron.AddJob(spec, job); err != nil {
		return fmt.Errorf("failed to schedule job %s with spec %q: %w", name, spec, err)
	}
	logger.Info("Job scheduled", slog.String("spec", spec))
	return nil
}

func (s *Scheduler) run(logger *slog.Logger, timeout time.Duration, fn JobFunc) {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	if err := fn(ctx); err != nil {
		logger.Error("Job failed", slog.String("error", err.Error()), slog.Duration("took", time.Since(start)))
		return
	}
	logger.Debug("Job finished", slog.Duration("took", time.Since(start)))
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("Scheduler stop timed out with jobs still running")
	}
}
