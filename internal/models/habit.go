package models

import "time"

// Habit represents a recurring daily practice to track
type Habit struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	CreatedAt  time.Time  `json:"created_at"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

// Archived reports whether the habit has been removed from active tracking.
// Archived habits keep their historical completions.
func (h Habit) Archived() bool {
	return h.ArchivedAt != nil
}

// Completion records that a habit was done on a specific calendar day
type Completion struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	CreatedAt time.Time `json:"created_at"`
}
