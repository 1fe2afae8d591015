package dateutil

import (
	"fmt"
	"time"

	"habittrack/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// Today returns today's date string (YYYY-MM-DD) in the specified timezone.
func Today(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return FormatDay(now), nil
}

// StartOfDay truncates a time to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDay renders a time as a calendar day string (YYYY-MM-DD).
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a day string (YYYY-MM-DD) into midnight in the given location.
func ParseDay(day string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// IsSameDay reports whether a and b fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether t falls on the current calendar day.
func IsToday(t time.Time) bool {
	return IsSameDay(t, time.Now().In(t.Location()))
}

// AddDays steps a date by n calendar days. AddDate handles month and year
// rollover; DST transitions are a non-issue at midnight granularity.
func AddDays(t time.Time, n int) time.Time {
	return StartOfDay(t).AddDate(0, 0, n)
}

// AddMonths steps a date by n calendar months, clamping to the last day of
// the target month when the source day does not exist there (Jan 31 plus one
// month is Feb 29 in a leap year, not Mar 2).
func AddMonths(t time.Time, n int) time.Time {
	d := StartOfDay(t)
	firstOfTarget := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location()).AddDate(0, n, 0)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	day := d.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, d.Location())
}

// CompareDayOnly compares two times at day granularity.
// Returns -1 if a is before b, 0 if they share a day, +1 if a is after b.
func CompareDayOnly(a, b time.Time) int {
	da := FormatDay(a)
	db := FormatDay(b)
	switch {
	case da < db:
		return -1
	case da > db:
		return 1
	default:
		return 0
	}
}

// MonthGridDays returns the 42 dates (6 weeks x 7 days) shown in the calendar
// grid for the month containing focus, starting from the first occurrence of
// firstWeekday on or before the 1st of that month.
func MonthGridDays(focus time.Time, firstWeekday time.Weekday) []time.Time {
	firstOfMonth := time.Date(focus.Year(), focus.Month(), 1, 0, 0, 0, 0, focus.Location())

	offset := int(firstOfMonth.Weekday()) - int(firstWeekday)
	if offset < 0 {
		offset += 7
	}
	start := AddDays(firstOfMonth, -offset)

	days := make([]time.Time, 0, constants.MonthGridCells)
	for i := 0; i < constants.MonthGridCells; i++ {
		days = append(days, AddDays(start, i))
	}
	return days
}

// InMonth reports whether day belongs to the month containing focus.
func InMonth(day, focus time.Time) bool {
	return day.Year() == focus.Year() && day.Month() == focus.Month()
}
