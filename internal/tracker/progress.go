package tracker

import (
	"time"

	"habittrack/internal/dateutil"
	"habittrack/internal/models"
)

// DayProgress returns the fraction of habits completed on the date, in
// [0, 1]. An empty habit list yields 0 rather than a division error.
func (t *Tracker) DayProgress(habits []models.Habit, date time.Time) (float64, error) {
	if len(habits) == 0 {
		return 0, nil
	}

	done, err := t.CompletionsOnDate(habits, date)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, h := range habits {
		if done[h.ID] {
			completed++
		}
	}
	return float64(completed) / float64(len(habits)), nil
}

// GridCell is one day in the calendar month grid.
type GridCell struct {
	Date     time.Time
	InMonth  bool
	Progress float64
}

// MonthGrid builds the 42-cell calendar grid around the focused month with a
// per-day completion fraction for the active habits. All days are fetched in
// one range query.
func (t *Tracker) MonthGrid(focus time.Time, firstWeekday time.Weekday) ([]GridCell, error) {
	habits, err := t.ListActiveHabits()
	if err != nil {
		return nil, err
	}

	ids := make(map[string]bool, len(habits))
	for _, h := range habits {
		ids[h.ID] = true
	}

	days := dateutil.MonthGridDays(focus, firstWeekday)
	startDay := dateutil.FormatDay(days[0])
	endDay := dateutil.FormatDay(dateutil.AddDays(days[len(days)-1], 1))

	completions, err := t.store.GetCompletionsInRange(startDay, endDay)
	if err != nil {
		return nil, err
	}

	perDay := make(map[string]int)
	for _, c := range completions {
		if ids[c.HabitID] {
			perDay[c.Day]++
		}
	}

	cells := make([]GridCell, 0, len(days))
	for _, day := range days {
		var progress float64
		if len(habits) > 0 {
			progress = float64(perDay[dateutil.FormatDay(day)]) / float64(len(habits))
		}
		cells = append(cells, GridCell{
			Date:     day,
			InMonth:  dateutil.InMonth(day, focus),
			Progress: progress,
		})
	}
	return cells, nil
}
