package export

import "time"

// Window computes the fetch range for one run in loc. It starts lookbackDays
// before today at midnight and ends yesterday at 23:59:59. Today is always
// excluded so the newest exported day is complete.
func Window(now time.Time, lookbackDays int, loc *time.Location) (from, to time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	if lookbackDays < 1 {
		lookbackDays = 1
	}
	n := now.In(loc)
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	return today.AddDate(0, 0, -lookbackDays), today.Add(-time.Second)
}
