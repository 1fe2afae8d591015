package validation

import (
	"strings"

	"habittrack/internal/constants"
	"habittrack/internal/errors"
)

// HabitName trims and validates a habit name. Returns the cleaned name, or a
// validation error when the trimmed name is empty or too long. Names are never
// persisted with leading or trailing whitespace.
func HabitName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", errors.Validationf("habit name cannot be empty")
	}
	if len(trimmed) > constants.MaxHabitNameLen {
		return "", errors.Validationf("habit name exceeds %d characters", constants.MaxHabitNameLen)
	}
	return trimmed, nil
}
