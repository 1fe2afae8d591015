package storage

import "habittrack/internal/models"

// Provider is the single gateway to persisted state. All writes are
// synchronous and individually atomic; a reader never observes a half-written
// habit or completion. There is exactly one interactive writer, so no
// cross-operation transaction is required.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	// GetAllHabits returns habits ordered by creation timestamp ascending.
	// Archived habits are excluded unless includeArchived is set.
	GetAllHabits(includeArchived bool) ([]models.Habit, error)
	ArchiveHabit(id string) error
	UnarchiveHabit(id string) error

	// Completions
	// AddCompletion fails with a not-found error if the habit is unknown or
	// archived, and with a duplicate error if a completion already exists for
	// the habit on that calendar day.
	AddCompletion(models.Completion) error
	// RemoveCompletion deletes all completions for the habit/day pair. It is
	// a no-op, not an error, when no matching completion exists.
	RemoveCompletion(habitID, day string) error
	GetCompletionsForDay(day string) ([]models.Completion, error)
	// GetCompletionsInRange returns completions in the half-open interval
	// [startDay, endDay), ordered by day then creation timestamp.
	GetCompletionsInRange(startDay, endDay string) ([]models.Completion, error)
	GetCompletionsForHabit(habitID, startDay, endDay string) ([]models.Completion, error)

	// Utils
	GetConfigPath() string
}
