package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pacific(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	return loc
}

func TestDaysBetween(t *testing.T) {
	loc := pacific(t)

	a := time.Date(2026, 3, 10, 9, 0, 0, 0, loc)
	b := time.Date(2026, 3, 15, 23, 0, 0, 0, loc)
	assert.Equal(t, 5, DaysBetween(a, b, loc))
	assert.Equal(t, -5, DaysBetween(b, a, loc))
	assert.Equal(t, 0, DaysBetween(a, a.Add(2*time.Hour), loc))
}

func TestDaysBetweenCountsCalendarDays(t *testing.T) {
	loc := pacific(t)

	// one minute apart on the clock, but on different calendar days
	a := time.Date(2026, 6, 1, 23, 59, 0, 0, loc)
	b := time.Date(2026, 6, 2, 0, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysBetween(a, b, loc))
}

func TestDaysBetweenAcrossDSTTransition(t *testing.T) {
	loc := pacific(t)

	// spring forward 2026-03-08: the span is 23 hours of wall time
	a := time.Date(2026, 3, 7, 12, 0, 0, 0, loc)
	b := time.Date(2026, 3, 8, 12, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysBetween(a, b, loc))

	// fall back 2026-11-01: 25 hours of wall time
	a = time.Date(2026, 10, 31, 12, 0, 0, 0, loc)
	b = time.Date(2026, 11, 1, 12, 0, 0, 0, loc)
	assert.Equal(t, 1, DaysBetween(a, b, loc))
}

func TestFormatDate(t *testing.T) {
	loc := pacific(t)

	// a UTC timestamp just past midnight renders as the previous local day
	utc := time.Date(2026, 8, 15, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, "Aug 14, 2026", FormatDate(utc, loc))
	assert.Equal(t, "Feb 1, 2026", FormatDate(time.Date(2026, 2, 1, 12, 0, 0, 0, loc), loc))
}

func TestLastDayOfMonth(t *testing.T) {
	loc := pacific(t)

	assert.Equal(t, 31, LastDayOfMonth(time.Date(2026, 8, 10, 0, 0, 0, 0, loc), loc))
	assert.Equal(t, 30, LastDayOfMonth(time.Date(2026, 4, 1, 0, 0, 0, 0, loc), loc))
	assert.Equal(t, 28, LastDayOfMonth(time.Date(2026, 2, 14, 0, 0, 0, 0, loc), loc))
	assert.Equal(t, 29, LastDayOfMonth(time.Date(2028, 2, 14, 0, 0, 0, 0, loc), loc))
}

func TestMonthBounds(t *testing.T) {
	loc := pacific(t)

	from, to := MonthBounds(time.Date(2026, 8, 15, 14, 30, 0, 0, loc), loc)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, loc), to)

	// December rolls into the next year
	from, to = MonthBounds(time.Date(2026, 12, 31, 23, 0, 0, 0, loc), loc)
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, loc), to)
}
