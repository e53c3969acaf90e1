package schedule

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Skipf("time zone %s unavailable: %v", name, err)
	}
	return loc
}

func TestNext(t *testing.T) {
	chicago := mustZone(t, "America/Chicago")
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"before hour", time.Date(2024, 1, 1, 7, 30, 0, 0, chicago), time.Date(2024, 1, 1, 8, 0, 0, 0, chicago)},
		{"exactly on hour", time.Date(2024, 1, 1, 8, 0, 0, 0, chicago), time.Date(2024, 1, 2, 8, 0, 0, 0, chicago)},
		{"after hour", time.Date(2024, 1, 1, 20, 0, 0, 0, chicago), time.Date(2024, 1, 2, 8, 0, 0, 0, chicago)},
		{"month end", time.Date(2024, 1, 31, 9, 0, 0, 0, chicago), time.Date(2024, 2, 1, 8, 0, 0, 0, chicago)},
		{"other zone input", time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 8, 0, 0, 0, chicago)},
		{"dst spring forward", time.Date(2024, 3, 9, 9, 0, 0, 0, chicago), time.Date(2024, 3, 10, 8, 0, 0, 0, chicago)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(tt.now, 8, chicago)
			if !got.Equal(tt.want) {
				t.Errorf("Next(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestNextAcrossDST(t *testing.T) {
	chicago := mustZone(t, "America/Chicago")
	now := time.Date(2024, 3, 9, 9, 0, 0, 0, chicago)
	if d := Next(now, 8, chicago).Sub(now); d != 22*time.Hour {
		t.Errorf("wait across spring forward = %v, want 22h", d)
	}
}

func TestDue(t *testing.T) {
	chicago := mustZone(t, "America/Chicago")
	tests := []struct {
		now  time.Time
		want bool
	}{
		{time.Date(2024, 1, 1, 8, 0, 0, 0, chicago), true},
		{time.Date(2024, 1, 1, 8, 59, 59, 0, chicago), true},
		{time.Date(2024, 1, 1, 9, 0, 0, 0, chicago), false},
		{time.Date(2024, 1, 1, 14, 15, 0, 0, time.UTC), true},
		{time.Date(2024, 1, 1, 8, 15, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		if got := Due(tt.now, 8, chicago); got != tt.want {
			t.Errorf("Due(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestSchedulerRun(t *testing.T) {
	// The clock is pinned just before 08:00 so every wait is short.
	pinned := time.Date(2024, 1, 1, 7, 59, 59, 990_000_000, time.UTC)
	s := &Scheduler{
		Hour:     8,
		Location: time.UTC,
		Logger:   log.New(io.Discard),
		Now:      func() time.Time { return pinned },
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	err := s.Run(ctx, func(_ context.Context, at time.Time) error {
		if want := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC); !at.Equal(want) {
			t.Errorf("at = %v, want %v", at, want)
		}
		if calls.Add(1) == 3 {
			cancel()
		}
		return fmt.Errorf("errors do not stop the loop")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run returned %v, want context.Canceled", err)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestDailyCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := Daily(ctx, 3, time.UTC, func(context.Context, time.Time) error {
		t.Error("job ran before its hour")
		return nil
	}, log.New(io.Discard))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Daily returned %v", err)
	}
}

func ExampleNext() {
	now := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	fmt.Println(Next(now, 8, time.UTC))
	// Output: 2024-01-02 08:00:00 +0000 UTC
}
