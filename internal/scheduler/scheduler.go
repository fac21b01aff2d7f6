package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher reloads the vacation cache
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler runs the cache refresh on a cron schedule
type Scheduler struct {
	cron    *cron.Cron
	entry   cron.EntryID
	target  Refresher
	timeout time.Duration
}

// New registers the refresh job under spec (standard 5-field cron or a
// descriptor such as "@daily"), read in loc. Overlapping runs are skipped.
func New(spec string, target Refresher, timeout time.Duration, loc *time.Location) (*Scheduler, error) {
	if loc == nil {
		loc = time.Local
	}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		target:  target,
		timeout: timeout,
	}

	id, err := s.cron.AddFunc(spec, s.Run)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	s.entry = id
	return s, nil
}

// Run refreshes once, bounded by the job timeout
func (s *Scheduler) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.target.Refresh(ctx); err != nil {
		log.Printf("[REFRESH] error after %v: %v", time.Since(start), err)
		return
	}
	log.Printf("[REFRESH] done in %v", time.Since(start))
}

// Start starts the cron loop in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Printf("[REFRESH] scheduled, next run at %s", s.Next().Format(time.RFC3339))
}

// Stop stops the loop; the returned context is done once a running job finished
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Next returns the next scheduled run, zero before Start
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entry).Next
}
