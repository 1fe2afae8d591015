package tracker

import (
	"time"

	"habittrack/internal/dateutil"
)

// CanAdvance reports whether forward day navigation is allowed from the
// selected date. Navigation never moves past today; the past is unbounded.
func CanAdvance(selected, today time.Time) bool {
	return dateutil.CompareDayOnly(selected, today) < 0
}

// NextDay moves the selection one day forward, clamped at today. When the
// selection is already on or past today it is returned unchanged.
func NextDay(selected, today time.Time) time.Time {
	if !CanAdvance(selected, today) {
		return selected
	}
	return dateutil.AddDays(selected, 1)
}

// PreviousDay moves the selection one day back. There is no lower bound.
func PreviousDay(selected time.Time) time.Time {
	return dateutil.AddDays(selected, -1)
}

// NextMonth moves the calendar focus one month forward.
func NextMonth(focus time.Time) time.Time {
	return dateutil.AddMonths(focus, 1)
}

// PreviousMonth moves the calendar focus one month back.
func PreviousMonth(focus time.Time) time.Time {
	return dateutil.AddMonths(focus, -1)
}
