package streak

import (
	"time"

	"github.com/2beens/fittrack/internal/workout"
	"github.com/2beens/fittrack/pkg"
)

// MaxDays caps the backward scan.
const MaxDays = 365

// Compute returns the length of the current run of consecutive calendar days
// (in loc) with at least one completed session. The run must end on asOf or
// the day before it, otherwise the streak is broken and 0 is returned.
func Compute(sessions []workout.Session, asOf time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}

	days := make(map[string]struct{}, len(sessions))
	for i := range sessions {
		if !sessions[i].Completed {
			continue
		}
		days[sessions[i].ActivityTime().In(loc).Format(pkg.DateLayout)] = struct{}{}
	}
	if len(days) == 0 {
		return 0
	}

	asOf = asOf.In(loc)
	daysBack := func(n int) string {
		// noon keeps DST transitions from skipping or repeating a date
		return time.Date(asOf.Year(), asOf.Month(), asOf.Day()-n, 12, 0, 0, 0, loc).Format(pkg.DateLayout)
	}
	has := func(n int) bool {
		_, ok := days[daysBack(n)]
		return ok
	}

	start := 0
	if !has(0) {
		if !has(1) {
			return 0
		}
		// today not trained yet, the run ending yesterday is still alive
		start = 1
	}

	streak := 0
	for n := start; n < start+MaxDays && has(n); n++ {
		streak++
	}
	return streak
}
