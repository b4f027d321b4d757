package utils

import (
	"math"
	"time"
)

// DateLayout is the presentation format used across the API and reports
const DateLayout = "Jan 2, 2006"

// CivilDate truncates t to midnight of its calendar day in loc.
// Timestamps are stored in UTC; every day-difference computation must go
// through the same zone or day counts drift near zone transitions.
func CivilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DaysBetween returns the number of whole calendar days from a to b in
// loc. Negative when b precedes a.
func DaysBetween(a, b time.Time, loc *time.Location) int {
	diff := CivilDate(b, loc).Sub(CivilDate(a, loc))
	// round, not truncate: DST transitions make some days 23 or 25 hours
	return int(math.Round(diff.Hours() / 24))
}

// FormatDate renders t as a calendar date in loc
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// LastDayOfMonth returns the number of days in t's month in loc
func LastDayOfMonth(t time.Time, loc *time.Location) int {
	y, m, _ := t.In(loc).Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()
}

// MonthBounds returns the start of t's month in loc and the start of the
// next month, for half-open range queries.
func MonthBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, _ := t.In(loc).Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}
