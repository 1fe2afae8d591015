package dateutil

import (
	"testing"
	"time"
)

func TestFormatAndParseDay(t *testing.T) {
	loc := time.UTC
	day := time.Date(2024, 3, 10, 15, 30, 45, 0, loc)

	formatted := FormatDay(day)
	if formatted != "2024-03-10" {
		t.Errorf("FormatDay() = %q, want %q", formatted, "2024-03-10")
	}

	parsed, err := ParseDay(formatted, loc)
	if err != nil {
		t.Fatalf("ParseDay() returned unexpected error: %v", err)
	}
	if !parsed.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, loc)) {
		t.Errorf("ParseDay() = %v, want midnight on 2024-03-10", parsed)
	}

	if _, err := ParseDay("03/10/2024", loc); err == nil {
		t.Error("ParseDay() accepted a non-ISO date")
	}
}

func TestCompareDayOnly(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "same day different times",
			a:    time.Date(2024, 3, 10, 0, 1, 0, 0, time.UTC),
			b:    time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "a before b",
			a:    time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC),
			b:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			want: -1,
		},
		{
			name: "a after b",
			a:    time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareDayOnly(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareDayOnly() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	t.Run("crosses month boundary", func(t *testing.T) {
		d := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
		got := AddDays(d, 1)
		if FormatDay(got) != "2024-02-01" {
			t.Errorf("AddDays(Jan 31, 1) = %s, want 2024-02-01", FormatDay(got))
		}
	})

	t.Run("handles leap day", func(t *testing.T) {
		d := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
		got := AddDays(d, 1)
		if FormatDay(got) != "2024-02-29" {
			t.Errorf("AddDays(Feb 28 2024, 1) = %s, want 2024-02-29", FormatDay(got))
		}
	})

	t.Run("negative steps go backward", func(t *testing.T) {
		d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		got := AddDays(d, -1)
		if FormatDay(got) != "2024-02-29" {
			t.Errorf("AddDays(Mar 1 2024, -1) = %s, want 2024-02-29", FormatDay(got))
		}
	})
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		n    int
		want string
	}{
		{
			name: "mid-month step",
			from: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			n:    1,
			want: "2024-04-15",
		},
		{
			name: "backward from day 31 clamps to february",
			from: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			n:    -1,
			want: "2024-02-29",
		},
		{
			name: "forward from jan 31 clamps instead of skipping february",
			from: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			n:    1,
			want: "2024-02-29",
		},
		{
			name: "clamp only applies to the target month",
			from: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			n:    2,
			want: "2024-03-31",
		},
		{
			name: "crosses year boundary",
			from: time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			n:    1,
			want: "2025-01-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDay(AddMonths(tt.from, tt.n)); got != tt.want {
				t.Errorf("AddMonths(%s, %d) = %s, want %s", FormatDay(tt.from), tt.n, got, tt.want)
			}
		})
	}
}

func TestMonthGridDays(t *testing.T) {
	t.Run("42 cells starting on first weekday", func(t *testing.T) {
		// March 2024 starts on a Friday.
		focus := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		days := MonthGridDays(focus, time.Sunday)

		if len(days) != 42 {
			t.Fatalf("MonthGridDays() returned %d cells, want 42", len(days))
		}
		if days[0].Weekday() != time.Sunday {
			t.Errorf("grid starts on %s, want Sunday", days[0].Weekday())
		}
		if FormatDay(days[0]) != "2024-02-25" {
			t.Errorf("grid starts on %s, want 2024-02-25", FormatDay(days[0]))
		}

		for i := 1; i < len(days); i++ {
			if !days[i].Equal(AddDays(days[i-1], 1)) {
				t.Fatalf("grid is not contiguous at index %d", i)
			}
		}
	})

	t.Run("respects monday first weekday", func(t *testing.T) {
		focus := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		days := MonthGridDays(focus, time.Monday)

		if days[0].Weekday() != time.Monday {
			t.Errorf("grid starts on %s, want Monday", days[0].Weekday())
		}
		if FormatDay(days[0]) != "2024-02-26" {
			t.Errorf("grid starts on %s, want 2024-02-26", FormatDay(days[0]))
		}
	})

	t.Run("month starting on first weekday has no leading days", func(t *testing.T) {
		// September 2024 starts on a Sunday.
		focus := time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC)
		days := MonthGridDays(focus, time.Sunday)

		if FormatDay(days[0]) != "2024-09-01" {
			t.Errorf("grid starts on %s, want 2024-09-01", FormatDay(days[0]))
		}
	})
}

func TestInMonth(t *testing.T) {
	focus := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	if !InMonth(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), focus) {
		t.Error("InMonth() = false for a day in the focused month")
	}
	if InMonth(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), focus) {
		t.Error("InMonth() = true for a day outside the focused month")
	}
	if InMonth(time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), focus) {
		t.Error("InMonth() = true for the same month in a different year")
	}
}

func TestLoadLocation(t *testing.T) {
	t.Run("local and empty map to system timezone", func(t *testing.T) {
		for _, tz := range []string{"", "Local"} {
			loc, err := LoadLocation(tz)
			if err != nil {
				t.Fatalf("LoadLocation(%q) returned unexpected error: %v", tz, err)
			}
			if loc != time.Local {
				t.Errorf("LoadLocation(%q) = %v, want time.Local", tz, loc)
			}
		}
	})

	t.Run("rejects unknown timezone", func(t *testing.T) {
		if _, err := LoadLocation("Not/AZone"); err == nil {
			t.Error("LoadLocation() accepted an unknown timezone")
		}
	})
}
