// Package tracker implements the habit/completion query and mutation logic
// shared by the CLI and TUI: which habits are done on a date, day progress
// for the calendar grid, the toggle protocol, and bounded date navigation.
package tracker

import (
	"time"

	"github.com/google/uuid"

	"habittrack/internal/dateutil"
	"habittrack/internal/errors"
	"habittrack/internal/logger"
	"habittrack/internal/models"
	"habittrack/internal/storage"
	"habittrack/internal/validation"
)

// Tracker answers date-indexed queries over the habit store and is the single
// mutation entry point for completions.
type Tracker struct {
	store storage.Provider
}

// New creates a Tracker over the given store.
func New(store storage.Provider) *Tracker {
	return &Tracker{store: store}
}

// Store exposes the underlying provider for diagnostics commands.
func (t *Tracker) Store() storage.Provider {
	return t.store
}

// CreateHabit validates and persists a new habit. The name is trimmed of
// surrounding whitespace and must be non-empty and unique among all habits.
func (t *Tracker) CreateHabit(name string) (models.Habit, error) {
	trimmed, err := validation.HabitName(name)
	if err != nil {
		return models.Habit{}, err
	}

	if _, err := t.store.GetHabitByName(trimmed); err == nil {
		return models.Habit{}, errors.Duplicatef("habit %q already exists", trimmed)
	} else if !errors.IsNotFound(err) {
		return models.Habit{}, err
	}

	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      trimmed,
		CreatedAt: time.Now(),
	}
	if err := t.store.AddHabit(habit); err != nil {
		return models.Habit{}, err
	}

	logger.Info("Created habit", "id", habit.ID, "name", habit.Name)
	return habit, nil
}

// ArchiveHabit removes a habit from active tracking. Its completions remain
// valid and queryable.
func (t *Tracker) ArchiveHabit(id string) error {
	return t.store.ArchiveHabit(id)
}

// UnarchiveHabit returns an archived habit to active tracking.
func (t *Tracker) UnarchiveHabit(id string) error {
	return t.store.UnarchiveHabit(id)
}

// ListActiveHabits returns non-archived habits ordered by creation time.
func (t *Tracker) ListActiveHabits() ([]models.Habit, error) {
	return t.store.GetAllHabits(false)
}

// SeedStarterHabits bulk-creates the given habits, skipping any that already
// exist. Used by onboarding.
func (t *Tracker) SeedStarterHabits(names []string) (int, error) {
	created := 0
	for _, name := range names {
		_, err := t.CreateHabit(name)
		if err != nil {
			if errors.IsDuplicate(err) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}

// CompletionsOnDate returns the set of habit ids (from the given habit list)
// with a completion on the given date.
func (t *Tracker) CompletionsOnDate(habits []models.Habit, date time.Time) (map[string]bool, error) {
	day := dateutil.FormatDay(date)
	next := dateutil.FormatDay(dateutil.AddDays(date, 1))

	completions, err := t.store.GetCompletionsInRange(day, next)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]bool, len(habits))
	for _, h := range habits {
		ids[h.ID] = true
	}

	done := make(map[string]bool)
	for _, c := range completions {
		if ids[c.HabitID] {
			done[c.HabitID] = true
		}
	}
	return done, nil
}

// IsHabitCompleted reports whether the habit has a completion on the date.
func (t *Tracker) IsHabitCompleted(habit models.Habit, date time.Time) (bool, error) {
	done, err := t.CompletionsOnDate([]models.Habit{habit}, date)
	if err != nil {
		return false, err
	}
	return done[habit.ID], nil
}

// IncompleteHabits returns the habits without a completion on the date,
// preserving input order.
func (t *Tracker) IncompleteHabits(habits []models.Habit, date time.Time) ([]models.Habit, error) {
	done, err := t.CompletionsOnDate(habits, date)
	if err != nil {
		return nil, err
	}

	var incomplete []models.Habit
	for _, h := range habits {
		if !done[h.ID] {
			incomplete = append(incomplete, h)
		}
	}
	return incomplete, nil
}

// CompletedHabits returns the habits with a completion on the date,
// preserving input order.
func (t *Tracker) CompletedHabits(habits []models.Habit, date time.Time) ([]models.Habit, error) {
	done, err := t.CompletionsOnDate(habits, date)
	if err != nil {
		return nil, err
	}

	var completed []models.Habit
	for _, h := range habits {
		if done[h.ID] {
			completed = append(completed, h)
		}
	}
	return completed, nil
}

// AllCompleted reports whether every habit in a non-empty list has a
// completion on the date. An empty list is never "all completed".
func (t *Tracker) AllCompleted(habits []models.Habit, date time.Time) (bool, error) {
	if len(habits) == 0 {
		return false, nil
	}

	done, err := t.CompletionsOnDate(habits, date)
	if err != nil {
		return false, err
	}
	for _, h := range habits {
		if !done[h.ID] {
			return false, nil
		}
	}
	return true, nil
}

// Result describes the outcome of ToggleCompletion.
type Result struct {
	// Completed is the habit's completion state for the date after the toggle.
	Completed bool
	// AllCompleted is true when every active habit is complete for the date
	// after the toggle.
	AllCompleted bool
	// Congratulate signals the one-time congratulatory notice. It fires only
	// when a toggle-on makes everything complete on the current date, never
	// for past dates.
	Congratulate bool
}

// ToggleCompletion flips the habit's completion state for the date: an
// existing completion is removed, a missing one is created. This is the single
// mutation entry point used by both the day list and the TUI.
func (t *Tracker) ToggleCompletion(habit models.Habit, date time.Time) (Result, error) {
	completed, err := t.IsHabitCompleted(habit, date)
	if err != nil {
		return Result{}, err
	}

	day := dateutil.FormatDay(date)
	if completed {
		if err := t.store.RemoveCompletion(habit.ID, day); err != nil {
			return Result{}, err
		}
		logger.Debug("Removed completion", "habit", habit.Name, "day", day)
		return Result{Completed: false}, nil
	}

	completion := models.Completion{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		Day:       day,
		CreatedAt: time.Now(),
	}
	if err := t.store.AddCompletion(completion); err != nil {
		return Result{}, err
	}
	logger.Debug("Added completion", "habit", habit.Name, "day", day)

	habits, err := t.ListActiveHabits()
	if err != nil {
		return Result{}, err
	}
	all, err := t.AllCompleted(habits, date)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Completed:    true,
		AllCompleted: all,
		Congratulate: all && dateutil.IsToday(date),
	}, nil
}
