// Package scheduler requests the periodic contact digest
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DigestEnqueuer schedules a contact digest
type DigestEnqueuer interface {
	EnqueueDigest(ctx context.Context, at time.Time) error
}

// Scheduler enqueues the contact digest on a cron schedule
type Scheduler struct {
	cron     *cron.Cron
	enqueuer DigestEnqueuer
	logger   *zap.Logger
	now      func() time.Time
}

// New creates a new scheduler instance
//
// "schedule" is a standard five-field cron expression.
func New(schedule string, enqueuer DigestEnqueuer, logger *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(),
		enqueuer: enqueuer,
		logger:   logger,
		now:      time.Now,
	}

	if _, err := s.cron.AddFunc(schedule, s.requestDigest); err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", schedule, err)
	}

	return s, nil
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop stops the scheduler and waits for a running job
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

// Next returns the next time the digest will be requested
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// requestDigest enqueues one digest
func (s *Scheduler) requestDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	at := s.now()
	if err := s.enqueuer.EnqueueDigest(ctx, at); err != nil {
		s.logger.Error("Failed to enqueue contact digest", zap.Error(err))
		return
	}
	s.logger.Info("Contact digest enqueued", zap.Time("at", at))
}
