package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"habittrack/internal/errors"
	"habittrack/internal/models"
)

func (s *Store) AddHabit(habit models.Habit) error {
	var archivedAt sql.NullString
	if habit.ArchivedAt != nil {
		archivedAt = sql.NullString{String: habit.ArchivedAt.Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, name, created_at, archived_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			archived_at = excluded.archived_at`,
		habit.ID, habit.Name, habit.CreatedAt.Format(time.RFC3339), archivedAt)
	if err != nil {
		return errors.Persistencef(err, "failed to save habit %s", habit.ID)
	}

	return nil
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, created_at, archived_at
		FROM habits WHERE id = ?`, id)

	h, err := scanHabit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Habit{}, errors.NotFoundf("habit %s", id)
		}
		return models.Habit{}, errors.Persistencef(err, "failed to get habit %s", id)
	}
	return h, nil
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, created_at, archived_at
		FROM habits WHERE name = ?`, name)

	h, err := scanHabit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Habit{}, errors.NotFoundf("habit %q", name)
		}
		return models.Habit{}, errors.Persistencef(err, "failed to get habit %q", name)
	}
	return h, nil
}

func (s *Store) GetAllHabits(includeArchived bool) ([]models.Habit, error) {
	query := "SELECT id, name, created_at, archived_at FROM habits"
	if !includeArchived {
		query += " WHERE archived_at IS NULL"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, errors.Persistencef(err, "failed to list habits")
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, errors.Persistencef(err, "failed to scan habit")
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *Store) ArchiveHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = ? WHERE id = ? AND archived_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return errors.Persistencef(err, "failed to archive habit %s", id)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.Persistence(err)
	}
	if rows == 0 {
		return errors.NotFoundf("habit %s not found or already archived", id)
	}

	return nil
}

func (s *Store) UnarchiveHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET archived_at = NULL WHERE id = ? AND archived_at IS NOT NULL`,
		id)
	if err != nil {
		return errors.Persistencef(err, "failed to unarchive habit %s", id)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.Persistence(err)
	}
	if rows == 0 {
		return errors.NotFoundf("habit %s not found or not archived", id)
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var createdAt string
	var archivedAt sql.NullString

	if err := row.Scan(&h.ID, &h.Name, &createdAt, &archivedAt); err != nil {
		return models.Habit{}, err
	}

	var err error
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if archivedAt.Valid {
		t, err := time.Parse(time.RFC3339, archivedAt.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse archived_at: %w", err)
		}
		h.ArchivedAt = &t
	}

	return h, nil
}
