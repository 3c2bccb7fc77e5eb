package singularity

import "time"

// todayRange returns the boundaries for a "scheduled today" filter:
// the start of now's local day and the start of the next day. The
// upper bound is the start of tomorrow rather than 23:59:59.999999 of
// today; the API treats the bound exclusively, so this includes tasks
// scheduled exactly at midnight.
func todayRange(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 0, 1)
	return start, end
}
