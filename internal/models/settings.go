package models

import "time"

// Settings represents application-wide settings
type Settings struct {
	Timezone            string       `json:"timezone"`             // IANA timezone name, or "Local" for the system timezone
	FirstWeekday        time.Weekday `json:"first_weekday"`        // first day of the calendar grid week
	OnboardingCompleted bool         `json:"onboarding_completed"` // set once after the starter-habit flow finishes
}
