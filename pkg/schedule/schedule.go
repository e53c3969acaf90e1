// Package schedule runs a job once a day at a fixed local hour.
package schedule

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// Func is a scheduled job. at is the scheduled time of this run.
type Func func(ctx context.Context, at time.Time) error

// Next returns the first hour:00 in loc strictly after now.
func Next(now time.Time, hour int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, 0, 0, 0, loc)
	}
	return next
}

// Due reports whether now falls within hour in loc.
func Due(now time.Time, hour int, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	return now.In(loc).Hour() == hour
}

// Scheduler calls a Func at Hour:00 in Location every day.
type Scheduler struct {
	Hour     int
	Location *time.Location
	Logger   *log.Logger

	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time
}

// Run blocks until ctx is cancelled, calling fn at each scheduled time.
// Errors from fn are logged and do not stop the loop.
func (s *Scheduler) Run(ctx context.Context, fn Func) error {
	now := s.Now
	if now == nil {
		now = time.Now
	}
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}

	for {
		at := Next(now(), s.Hour, s.Location)
		wait := at.Sub(now())
		logger.Info("next run scheduled", "at", at.Format(time.RFC3339), "in", wait.Round(time.Second))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		if err := fn(ctx, at); err != nil {
			logger.Error("scheduled run failed", "at", at.Format(time.RFC3339), "error", err)
		}
	}
}

// Daily runs fn at hour in loc every day until ctx is cancelled.
func Daily(ctx context.Context, hour int, loc *time.Location, fn Func, logger *log.Logger) error {
	s := &Scheduler{Hour: hour, Location: loc, Logger: logger}
	return s.Run(ctx, fn)
}
