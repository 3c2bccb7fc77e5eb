package singularity

import (
	"testing"
	"time"
)

func TestTodayRange(t *testing.T) {
	loc := time.Local

	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mid-afternoon",
			now:       time.Date(2025, 12, 8, 15, 30, 0, 0, loc),
			wantStart: time.Date(2025, 12, 8, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2025, 12, 9, 0, 0, 0, 0, loc),
		},
		{
			name:      "exactly midnight",
			now:       time.Date(2025, 12, 8, 0, 0, 0, 0, loc),
			wantStart: time.Date(2025, 12, 8, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2025, 12, 9, 0, 0, 0, 0, loc),
		},
		{
			name:      "just before midnight",
			now:       time.Date(2025, 12, 8, 23, 59, 59, 999999000, loc),
			wantStart: time.Date(2025, 12, 8, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2025, 12, 9, 0, 0, 0, 0, loc),
		},
		{
			name:      "month boundary",
			now:       time.Date(2025, 11, 30, 12, 0, 0, 0, loc),
			wantStart: time.Date(2025, 11, 30, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2025, 12, 1, 0, 0, 0, 0, loc),
		},
		{
			name:      "year boundary",
			now:       time.Date(2025, 12, 31, 18, 45, 12, 0, loc),
			wantStart: time.Date(2025, 12, 31, 0, 0, 0, 0, loc),
			wantEnd:   time.Date(2026, 1, 1, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := todayRange(tt.now)
			if !start.Equal(tt.wantStart) {
				t.Errorf("Expected start %v, got %v", tt.wantStart, start)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("Expected end %v, got %v", tt.wantEnd, end)
			}
		})
	}
}

func TestTodayRangeFormatting(t *testing.T) {
	now := time.Date(2025, 12, 8, 15, 30, 0, 0, time.Local)
	start, end := todayRange(now)

	if got := start.Format(DateLayout); got != "2025-12-08T00:00:00" {
		t.Errorf("Expected start 2025-12-08T00:00:00, got %s", got)
	}
	if got := end.Format(DateLayout); got != "2025-12-09T00:00:00" {
		t.Errorf("Expected end 2025-12-09T00:00:00, got %s", got)
	}
}

func TestTodayRangeBoundarySemantics(t *testing.T) {
	now := time.Date(2025, 12, 8, 15, 30, 0, 0, time.Local)
	start, end := todayRange(now)

	// A task scheduled one minute before midnight falls inside the range.
	lateTask := time.Date(2025, 12, 8, 23, 59, 0, 0, time.Local)
	if lateTask.Before(start) || !lateTask.Before(end) {
		t.Error("Expected 23:59 task inside today's range")
	}

	// A task scheduled exactly at next midnight is excluded: the upper
	// bound is exclusive.
	midnightTask := time.Date(2025, 12, 9, 0, 0, 0, 0, time.Local)
	if midnightTask.Before(end) {
		t.Error("Expected next-midnight task outside today's range")
	}
}
