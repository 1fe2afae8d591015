package postgres

import (
	"fmt"
	"time"

	"habittrack/internal/constants"
	"habittrack/internal/errors"
	"habittrack/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, errors.Persistencef(err, "failed to read settings")
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, errors.Persistencef(err, "failed to scan setting")
		}
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingFirstWeekday:
			var wd int
			if _, err := fmt.Sscanf(value, "%d", &wd); err != nil {
				return models.Settings{}, fmt.Errorf("parsing first_weekday: %w", err)
			}
			settings.FirstWeekday = time.Weekday(wd)
		case constants.SettingOnboardingCompleted:
			settings.OnboardingCompleted = value == "true"
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Persistencef(err, "failed to begin settings transaction")
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`)
	if err != nil {
		return errors.Persistencef(err, "failed to prepare settings statement")
	}
	defer stmt.Close()

	if _, err := stmt.Exec(constants.SettingTimezone, settings.Timezone); err != nil {
		return errors.Persistencef(err, "failed to save timezone")
	}
	if _, err := stmt.Exec(constants.SettingFirstWeekday, fmt.Sprintf("%d", settings.FirstWeekday)); err != nil {
		return errors.Persistencef(err, "failed to save first_weekday")
	}
	if _, err := stmt.Exec(constants.SettingOnboardingCompleted, fmt.Sprintf("%v", settings.OnboardingCompleted)); err != nil {
		return errors.Persistencef(err, "failed to save onboarding_completed")
	}

	if err := tx.Commit(); err != nil {
		return errors.Persistencef(err, "failed to commit settings")
	}
	return nil
}
