// Package cli holds the shared command context and helpers used by the
// subcommand packages.
package cli

import (
	"time"

	"habittrack/internal/backup"
	"habittrack/internal/dateutil"
	"habittrack/internal/logger"
	"habittrack/internal/storage"
	"habittrack/internal/tracker"
)

// Context carries the shared dependencies into command Run methods.
type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// NeedsOnboarding reports whether the starter-habit flow has not run yet.
// Settings read failures count as completed so a broken settings row cannot
// trap the user in onboarding.
func (c *Context) NeedsOnboarding() bool {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return false
	}
	return !settings.OnboardingCompleted
}

// Today returns the current instant in the configured timezone, falling back
// to system local time when settings are unavailable.
func (c *Context) Today() time.Time {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return time.Now()
	}
	now, err := dateutil.NowInTimezone(settings.Timezone)
	if err != nil {
		return time.Now()
	}
	return now
}

// ResolveDate parses an optional YYYY-MM-DD argument in the configured
// timezone, defaulting to today when empty.
func (c *Context) ResolveDate(date string) (time.Time, error) {
	if date == "" {
		return c.Today(), nil
	}

	settings, err := c.Store.GetSettings()
	loc := time.Local
	if err == nil {
		if l, locErr := dateutil.LoadLocation(settings.Timezone); locErr == nil {
			loc = l
		}
	}
	return dateutil.ParseDay(date, loc)
}

// FirstWeekday returns the configured first day of the calendar week.
func (c *Context) FirstWeekday() time.Weekday {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return time.Sunday
	}
	return settings.FirstWeekday
}
