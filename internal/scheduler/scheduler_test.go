package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
	_ "time/tzdata"
)

type countingRefresher struct {
	calls    atomic.Int32
	err      error
	deadline bool
}

func (r *countingRefresher) Refresh(ctx context.Context) error {
	r.calls.Add(1)
	_, r.deadline = ctx.Deadline()
	return r.err
}

func TestNewRejectsBadSchedule(t *testing.T) {
	if _, err := New("every day at 3", &countingRefresher{}, time.Minute, nil); err == nil {
		t.Fatal("New accepted an invalid schedule")
	}
}

func TestRunCallsRefresher(t *testing.T) {
	r := &countingRefresher{}
	s, err := New("0 3 * * *", r, time.Minute, time.UTC)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.Run()
	r.err = errors.New("upstream down")
	s.Run()

	if n := r.calls.Load(); n != 2 {
		t.Fatalf("refresh calls = %d, want 2", n)
	}
	if !r.deadline {
		t.Fatal("refresh context has no deadline")
	}
}

func TestStartSchedulesNextRun(t *testing.T) {
	s, err := New("@every 1h", &countingRefresher{}, time.Minute, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Start()
	defer s.Stop()

	next := s.Next()
	if next.IsZero() {
		t.Fatal("no next run after Start")
	}
	if d := time.Until(next); d <= 0 || d > time.Hour {
		t.Fatalf("next run in %v, want within an hour", d)
	}
}

func TestScheduleUsesConfiguredZone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	s, err := New("0 3 * * *", &countingRefresher{}, time.Minute, tokyo)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Start()
	defer s.Stop()

	next := s.Next().In(tokyo)
	if next.Hour() != 3 || next.Minute() != 0 {
		t.Fatalf("next run = %s, want 03:00 Asia/Tokyo", next)
	}
}
