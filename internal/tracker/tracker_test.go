package tracker

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"habittrack/internal/dateutil"
	"habittrack/internal/errors"
	"habittrack/internal/models"
	"habittrack/internal/storage/sqlite"
)

func setupTracker(t *testing.T) *Tracker {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return New(store)
}

func mustCreate(t *testing.T, tr *Tracker, name string) models.Habit {
	t.Helper()
	habit, err := tr.CreateHabit(name)
	if err != nil {
		t.Fatalf("CreateHabit(%q) returned unexpected error: %v", name, err)
	}
	return habit
}

func TestCreateHabit(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		tr := setupTracker(t)

		habit := mustCreate(t, tr, "  Drink water  ")
		if habit.Name != "Drink water" {
			t.Errorf("CreateHabit() name = %q, want %q", habit.Name, "Drink water")
		}
		if habit.ID == "" {
			t.Error("CreateHabit() assigned no id")
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		tr := setupTracker(t)

		for _, name := range []string{"", "   ", "\t\n"} {
			_, err := tr.CreateHabit(name)
			if !errors.IsValidation(err) {
				t.Errorf("CreateHabit(%q) error = %v, want validation error", name, err)
			}
		}
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		tr := setupTracker(t)

		mustCreate(t, tr, "Exercise")
		_, err := tr.CreateHabit("Exercise")
		if !errors.IsDuplicate(err) {
			t.Errorf("CreateHabit() error = %v, want duplicate error", err)
		}
	})
}

func TestListActiveHabits(t *testing.T) {
	t.Run("ordered by creation, excludes archived", func(t *testing.T) {
		tr := setupTracker(t)

		first := mustCreate(t, tr, "Read")
		second := mustCreate(t, tr, "Meditate")
		third := mustCreate(t, tr, "Sleep early")

		if err := tr.ArchiveHabit(second.ID); err != nil {
			t.Fatalf("ArchiveHabit() returned unexpected error: %v", err)
		}

		habits, err := tr.ListActiveHabits()
		if err != nil {
			t.Fatalf("ListActiveHabits() returned unexpected error: %v", err)
		}
		if len(habits) != 2 {
			t.Fatalf("ListActiveHabits() returned %d habits, want 2", len(habits))
		}
		if habits[0].ID != first.ID || habits[1].ID != third.ID {
			t.Errorf("ListActiveHabits() order = [%s, %s], want [%s, %s]",
				habits[0].Name, habits[1].Name, first.Name, third.Name)
		}
	})

	t.Run("unarchive restores habit", func(t *testing.T) {
		tr := setupTracker(t)

		habit := mustCreate(t, tr, "Read")
		if err := tr.ArchiveHabit(habit.ID); err != nil {
			t.Fatalf("ArchiveHabit() returned unexpected error: %v", err)
		}
		if err := tr.UnarchiveHabit(habit.ID); err != nil {
			t.Fatalf("UnarchiveHabit() returned unexpected error: %v", err)
		}

		habits, err := tr.ListActiveHabits()
		if err != nil {
			t.Fatalf("ListActiveHabits() returned unexpected error: %v", err)
		}
		if len(habits) != 1 {
			t.Errorf("ListActiveHabits() returned %d habits after unarchive, want 1", len(habits))
		}
	})
}

func TestToggleCompletion(t *testing.T) {
	date := time.Date(2024, 3, 10, 15, 30, 0, 0, time.Local)

	t.Run("toggle on then off restores original state", func(t *testing.T) {
		tr := setupTracker(t)
		habit := mustCreate(t, tr, "Exercise")

		res, err := tr.ToggleCompletion(habit, date)
		if err != nil {
			t.Fatalf("ToggleCompletion() returned unexpected error: %v", err)
		}
		if !res.Completed {
			t.Error("first toggle Completed = false, want true")
		}

		res, err = tr.ToggleCompletion(habit, date)
		if err != nil {
			t.Fatalf("second ToggleCompletion() returned unexpected error: %v", err)
		}
		if res.Completed {
			t.Error("second toggle Completed = true, want false")
		}

		done, err := tr.IsHabitCompleted(habit, date)
		if err != nil {
			t.Fatalf("IsHabitCompleted() returned unexpected error: %v", err)
		}
		if done {
			t.Error("IsHabitCompleted() = true after toggle pair, want false")
		}
	})

	t.Run("toggle off is scoped to the date", func(t *testing.T) {
		tr := setupTracker(t)
		habit := mustCreate(t, tr, "Exercise")
		other := dateutil.AddDays(date, -3)

		if _, err := tr.ToggleCompletion(habit, date); err != nil {
			t.Fatalf("ToggleCompletion() returned unexpected error: %v", err)
		}
		if _, err := tr.ToggleCompletion(habit, other); err != nil {
			t.Fatalf("ToggleCompletion() returned unexpected error: %v", err)
		}
		if _, err := tr.ToggleCompletion(habit, other); err != nil {
			t.Fatalf("ToggleCompletion() returned unexpected error: %v", err)
		}

		done, err := tr.IsHabitCompleted(habit, date)
		if err != nil {
			t.Fatalf("IsHabitCompleted() returned unexpected error: %v", err)
		}
		if !done {
			t.Error("toggling another date removed this date's completion")
		}
	})

	t.Run("duplicate completion rejected by store", func(t *testing.T) {
		tr := setupTracker(t)
		habit := mustCreate(t, tr, "Exercise")
		day := dateutil.FormatDay(date)

		completion := models.Completion{
			ID:        uuid.New().String(),
			HabitID:   habit.ID,
			Day:       day,
			CreatedAt: time.Now(),
		}
		if err := tr.Store().AddCompletion(completion); err != nil {
			t.Fatalf("AddCompletion() returned unexpected error: %v", err)
		}

		completion.ID = uuid.New().String()
		err := tr.Store().AddCompletion(completion)
		if !errors.IsDuplicate(err) {
			t.Errorf("second AddCompletion() error = %v, want duplicate error", err)
		}
	})

	t.Run("remove without completion is a no-op", func(t *testing.T) {
		tr := setupTracker(t)
		habit := mustCreate(t, tr, "Exercise")

		if err := tr.Store().RemoveCompletion(habit.ID, dateutil.FormatDay(date)); err != nil {
			t.Errorf("RemoveCompletion() on empty day returned error: %v", err)
		}
	})
}

func TestCongratulation(t *testing.T) {
	t.Run("fires when last habit completes today", func(t *testing.T) {
		tr := setupTracker(t)
		a := mustCreate(t, tr, "Read")
		b := mustCreate(t, tr, "Meditate")
		today := time.Now()

		res, err := tr.ToggleCompletion(a, today)
		if err != nil {
			t.Fatalf("ToggleCompletion() returned unexpected error: %v", err)
		}
		if res.Congratulate {
			t.Error("Congratulate = true with one habit still incomplete")
		}

		res, err = tr.ToggleCompletion(b, today)
		if err != nil {
			t.Fatalf("ToggleCompletion() returned unexpected error: %v", err)
		}
		if !res.AllCompleted {
			t.Error("AllCompleted = false after completing every habit")
		}
		if !res.Congratulate {
			t.Error("Congratulate = false when last habit completed today")
		}
	})

	t.Run("does not fire for past dates", func(t *testing.T) {
		tr := setupTracker(t)
		habit := mustCreate(t, tr, "Read")
		yesterday := dateutil.AddDays(time.Now(), -1)

		res, err := tr.ToggleCompletion(habit, yesterday)
		if err != nil {
			t.Fatalf("ToggleCompletion() returned unexpected error: %v", err)
		}
		if !res.AllCompleted {
			t.Error("AllCompleted = false after completing every habit")
		}
		if res.Congratulate {
			t.Error("Congratulate = true for a past date")
		}
	})

	t.Run("does not fire on toggle off", func(t *testing.T) {
		tr := setupTracker(t)
		habit := mustCreate(t, tr, "Read")
		today := time.Now()

		if _, err := tr.ToggleCompletion(habit, today); err != nil {
			t.Fatalf("ToggleCompletion() returned unexpected error: %v", err)
		}
		res, err := tr.ToggleCompletion(habit, today)
		if err != nil {
			t.Fatalf("ToggleCompletion() returned unexpected error: %v", err)
		}
		if res.Congratulate {
			t.Error("Congratulate = true on toggle off")
		}
	})
}

func TestDayQueries(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)

	t.Run("completed and incomplete partition the list in order", func(t *testing.T) {
		tr := setupTracker(t)
		a := mustCreate(t, tr, "Read")
		b := mustCreate(t, tr, "Meditate")
		c := mustCreate(t, tr, "Exercise")
		habits := []models.Habit{a, b, c}

		if _, err := tr.ToggleCompletion(b, date); err != nil {
			t.Fatalf("ToggleCompletion() returned unexpected error: %v", err)
		}

		completed, err := tr.CompletedHabits(habits, date)
		if err != nil {
			t.Fatalf("CompletedHabits() returned unexpected error: %v", err)
		}
		incomplete, err := tr.IncompleteHabits(habits, date)
		if err != nil {
			t.Fatalf("IncompleteHabits() returned unexpected error: %v", err)
		}

		if len(completed) != 1 || completed[0].ID != b.ID {
			t.Errorf("CompletedHabits() = %v, want [Meditate]", completed)
		}
		if len(incomplete) != 2 || incomplete[0].ID != a.ID || incomplete[1].ID != c.ID {
			t.Errorf("IncompleteHabits() = %v, want [Read, Exercise]", incomplete)
		}
		if len(completed)+len(incomplete) != len(habits) {
			t.Error("partition does not cover the habit list")
		}
	})

	t.Run("all completed is false for empty list", func(t *testing.T) {
		tr := setupTracker(t)

		all, err := tr.AllCompleted(nil, date)
		if err != nil {
			t.Fatalf("AllCompleted() returned unexpected error: %v", err)
		}
		if all {
			t.Error("AllCompleted(nil) = true, want false")
		}
	})

	t.Run("progress for empty list is zero", func(t *testing.T) {
		tr := setupTracker(t)

		progress, err := tr.DayProgress(nil, date)
		if err != nil {
			t.Fatalf("DayProgress() returned unexpected error: %v", err)
		}
		if progress != 0 {
			t.Errorf("DayProgress(nil) = %v, want 0", progress)
		}
	})

	t.Run("progress is the completed fraction", func(t *testing.T) {
		tr := setupTracker(t)
		a := mustCreate(t, tr, "Read")
		b := mustCreate(t, tr, "Meditate")
		c := mustCreate(t, tr, "Exercise")
		d := mustCreate(t, tr, "Drink water")
		habits := []models.Habit{a, b, c, d}

		if _, err := tr.ToggleCompletion(a, date); err != nil {
			t.Fatalf("ToggleCompletion() returned unexpected error: %v", err)
		}
		if _, err := tr.ToggleCompletion(c, date); err != nil {
			t.Fatalf("ToggleCompletion() returned unexpected error: %v", err)
		}

		progress, err := tr.DayProgress(habits, date)
		if err != nil {
			t.Fatalf("DayProgress() returned unexpected error: %v", err)
		}
		if progress != 0.5 {
			t.Errorf("DayProgress() = %v, want 0.5", progress)
		}
	})
}

func TestSeedStarterHabits(t *testing.T) {
	t.Run("skips existing habits", func(t *testing.T) {
		tr := setupTracker(t)
		mustCreate(t, tr, "Read")

		created, err := tr.SeedStarterHabits([]string{"Read", "Meditate", "Exercise"})
		if err != nil {
			t.Fatalf("SeedStarterHabits() returned unexpected error: %v", err)
		}
		if created != 2 {
			t.Errorf("SeedStarterHabits() created %d habits, want 2", created)
		}

		habits, err := tr.ListActiveHabits()
		if err != nil {
			t.Fatalf("ListActiveHabits() returned unexpected error: %v", err)
		}
		if len(habits) != 3 {
			t.Errorf("ListActiveHabits() returned %d habits, want 3", len(habits))
		}
	})
}

func TestMonthGrid(t *testing.T) {
	t.Run("42 cells with per-day progress", func(t *testing.T) {
		tr := setupTracker(t)
		a := mustCreate(t, tr, "Read")
		b := mustCreate(t, tr, "Meditate")

		focus := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
		tenth := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)

		if _, err := tr.ToggleCompletion(a, tenth); err != nil {
			t.Fatalf("ToggleCompletion() returned unexpected error: %v", err)
		}
		if _, err := tr.ToggleCompletion(b, tenth); err != nil {
			t.Fatalf("ToggleCompletion() returned unexpected error: %v", err)
		}

		cells, err := tr.MonthGrid(focus, time.Sunday)
		if err != nil {
			t.Fatalf("MonthGrid() returned unexpected error: %v", err)
		}
		if len(cells) != 42 {
			t.Fatalf("MonthGrid() returned %d cells, want 42", len(cells))
		}

		found := false
		for _, cell := range cells {
			if dateutil.IsSameDay(cell.Date, tenth) {
				found = true
				if cell.Progress != 1.0 {
					t.Errorf("cell progress = %v, want 1.0", cell.Progress)
				}
				if !cell.InMonth {
					t.Error("March 10 cell marked out of month")
				}
			}
		}
		if !found {
			t.Error("March 10 missing from March grid")
		}
	})
}
