package postgres

import (
	"database/sql"
	"fmt"
	"time"

	pq "github.com/lib/pq"

	"habittrack/internal/errors"
	"habittrack/internal/models"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

func (s *Store) AddCompletion(completion models.Completion) error {
	habit, err := s.GetHabit(completion.HabitID)
	if err != nil {
		return err
	}
	if habit.Archived() {
		return errors.NotFoundf("habit %s is archived", completion.HabitID)
	}

	_, err = s.db.Exec(`
		INSERT INTO completions (id, habit_id, day, created_at)
		VALUES ($1, $2, $3, $4)`,
		completion.ID, completion.HabitID, completion.Day,
		completion.CreatedAt.Format(time.RFC3339))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return errors.Duplicatef("habit %s already completed on %s", completion.HabitID, completion.Day)
		}
		return errors.Persistencef(err, "failed to add completion for habit %s", completion.HabitID)
	}

	return nil
}

func (s *Store) RemoveCompletion(habitID, day string) error {
	_, err := s.db.Exec(`
		DELETE FROM completions WHERE habit_id = $1 AND day = $2`,
		habitID, day)
	if err != nil {
		return errors.Persistencef(err, "failed to remove completion for habit %s on %s", habitID, day)
	}
	return nil
}

func (s *Store) GetCompletionsForDay(day string) ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, day, created_at
		FROM completions WHERE day = $1
		ORDER BY created_at`, day)
	if err != nil {
		return nil, errors.Persistencef(err, "failed to get completions for %s", day)
	}
	defer rows.Close()

	return scanCompletions(rows)
}

func (s *Store) GetCompletionsInRange(startDay, endDay string) ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, day, created_at
		FROM completions WHERE day >= $1 AND day < $2
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
		FROM completions WHERE habit_id = $1 AND day >= $2 AND day < $3
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
