package tracker

import (
	"testing"
	"time"

	"habittrack/internal/dateutil"
)

func TestDayNavigation(t *testing.T) {
	today := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)

	t.Run("cannot advance past today", func(t *testing.T) {
		if CanAdvance(today, today) {
			t.Error("CanAdvance(today) = true, want false")
		}

		next := NextDay(today, today)
		if !dateutil.IsSameDay(next, today) {
			t.Errorf("NextDay(today) = %v, want unchanged", next)
		}
	})

	t.Run("advances from the past", func(t *testing.T) {
		yesterday := dateutil.AddDays(today, -1)
		if !CanAdvance(yesterday, today) {
			t.Error("CanAdvance(yesterday) = false, want true")
		}

		next := NextDay(yesterday, today)
		if !dateutil.IsSameDay(next, today) {
			t.Errorf("NextDay(yesterday) = %v, want today", next)
		}
	})

	t.Run("time of day does not affect the bound", func(t *testing.T) {
		lateToday := time.Date(2024, 3, 10, 23, 59, 0, 0, time.Local)
		earlyToday := time.Date(2024, 3, 10, 0, 1, 0, 0, time.Local)

		if CanAdvance(earlyToday, lateToday) {
			t.Error("CanAdvance() = true for two instants on the same day")
		}
	})

	t.Run("past navigation is unbounded", func(t *testing.T) {
		selected := today
		for i := 0; i < 400; i++ {
			selected = PreviousDay(selected)
		}
		if !selected.Before(dateutil.AddDays(today, -399)) && !dateutil.IsSameDay(selected, dateutil.AddDays(today, -400)) {
			t.Errorf("PreviousDay() x400 = %v, want 400 days before %v", selected, today)
		}
	})
}

func TestMonthNavigation(t *testing.T) {
	focus := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)

	t.Run("next and previous month", func(t *testing.T) {
		next := NextMonth(focus)
		if next.Month() != time.April || next.Year() != 2024 {
			t.Errorf("NextMonth(March) = %v, want April 2024", next)
		}

		prev := PreviousMonth(focus)
		if prev.Month() != time.February || prev.Year() != 2024 {
			t.Errorf("PreviousMonth(March) = %v, want February 2024", prev)
		}
	})

	t.Run("crosses year boundary", func(t *testing.T) {
		december := time.Date(2024, 12, 10, 0, 0, 0, 0, time.Local)
		next := NextMonth(december)
		if next.Month() != time.January || next.Year() != 2025 {
			t.Errorf("NextMonth(December) = %v, want January 2025", next)
		}
	})

	t.Run("steps exactly one month from the end of a month", func(t *testing.T) {
		endOfMarch := time.Date(2024, 3, 31, 0, 0, 0, 0, time.Local)

		prev := PreviousMonth(endOfMarch)
		if prev.Month() != time.February || prev.Year() != 2024 {
			t.Errorf("PreviousMonth(Mar 31) = %v, want February 2024", prev)
		}

		endOfJanuary := time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local)
		next := NextMonth(endOfJanuary)
		if next.Month() != time.February || next.Year() != 2024 {
			t.Errorf("NextMonth(Jan 31) = %v, want February 2024", next)
		}
	})
}
