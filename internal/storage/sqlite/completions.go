package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"habittrack/internal/errors"
	"habittrack/internal/models"
)

func (s *Store) AddCompletion(completion models.Completion) error {
	// The habit must exist and be active. Archived habits keep their history
	// but cannot accumulate new completions.
	habit, err := s.GetHabit(completion.HabitID)
	if err != nil {
		return err
	}
	if habit.Archived() {
		return errors.NotFoundf("habit %s is archived", completion.HabitID)
	}

	_, err = s.db.Exec(`
		INSERT INTO completions (id, habit_id, day, created_at)
		VALUES (?, ?, ?, ?)`,
		completion.ID, completion.HabitID, completion.Day,
		completion.CreatedAt.Format(time.RFC3339))
	if err != nil {
		// The unique (habit_id, day) index is the defensive backstop for the
		// one-completion-per-day invariant.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return errors.Duplicatef("habit %s already completed on %s", completion.HabitID, completion.Day)
		}
		return errors.Persistencef(err, "failed to add completion for habit %s", completion.HabitID)
	}

	return nil
}

func (s *Store) RemoveCompletion(habitID, day string) error {
	// Deletes every matching row so any pre-index duplicates self-heal.
	// A zero row count is a no-op, not an error.
	_, err := s.db.Exec(`
		DELETE FROM completions WHERE habit_id = ? AND day = ?`,
		habitID, day)
	if err != nil {
		return errors.Persistencef(err, "failed to remove completion for habit %s on %s", habitID, day)
	}
	return nil
}

func (s *Store) GetCompletionsForDay(day string) ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, day, created_at
		FROM completions WHERE day = ?
		ORDER BY created_at`, day)
	if err != nil {
		return nil, errors.Persistencef(err, "failed to get completions for %s", day)
	}
	defer rows.Close()

	return scanCompletions(rows)
}

func (s *Store) GetCompletionsInRange(startDay, endDay string) ([]models.Completion, error) {
	// Half-open interval [startDay, endDay); day strings order lexicographically.
	rows, err := s.db.Query(`
		SELECT id, habit_id, day, created_at
		FROM completions WHERE day >= ? AND day < ?
		ORDER BY day, created_at`, startDay, endDay)
	if err != nil {
		return nil, errors.Persistencef(err, "failed to get completions in [%s, %s)", startDay, endDay)
	}
	defer rows.Close()

	return scanCompletions(rows)
}

func (s *Store) GetCompletionsForHabit(habitID, startDay, endDay string) ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, day, created_at
		FROM completions WHERE habit_id = ? AND day >= ? AND day < ?
		ORDER BY day, created_at`, habitID, startDay, endDay)
	if err != nil {
		return nil, errors.Persistencef(err, "failed to get completions for habit %s", habitID)
	}
	defer rows.Close()

	return scanCompletions(rows)
}

func scanCompletions(rows *sql.Rows) ([]models.Completion, error) {
	var completions []models.Completion
	for rows.Next() {
		var c models.Completion
		var createdAt string

		if err := rows.Scan(&c.ID, &c.HabitID, &c.Day, &createdAt); err != nil {
			return nil, errors.Persistencef(err, "failed to scan completion")
		}

		var err error
		c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for completion %s: %w", c.ID, err)
		}

		completions = append(completions, c)
	}

	return completions, rows.Err()
}
