package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"habittrack/internal/dateutil"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("Timezone:             %s\n", settings.Timezone)
	fmt.Printf("First weekday:        %s\n", settings.FirstWeekday.String())
	fmt.Printf("Onboarding completed: %v\n", settings.OnboardingCompleted)
	return nil
}

type SettingsSetCmd struct {
	Timezone     string `help:"IANA timezone name (e.g. Europe/Berlin) or 'Local'."`
	FirstWeekday string `help:"First day of the calendar week (name or 0-6, 0=Sunday)."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if c.Timezone == "" && c.FirstWeekday == "" {
		return fmt.Errorf("nothing to set, pass --timezone or --first-weekday")
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if c.Timezone != "" {
		if _, err := dateutil.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
		settings.Timezone = c.Timezone
	}

	if c.FirstWeekday != "" {
		wd, err := parseWeekday(c.FirstWeekday)
		if err != nil {
			return err
		}
		settings.FirstWeekday = wd
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Println("Settings updated.")
	return nil
}

func parseWeekday(s string) (time.Weekday, error) {
	names := map[string]time.Weekday{
		"sun": time.Sunday, "sunday": time.Sunday,
		"mon": time.Monday, "monday": time.Monday,
		"tue": time.Tuesday, "tuesday": time.Tuesday,
		"wed": time.Wednesday, "wednesday": time.Wednesday,
		"thu": time.Thursday, "thursday": time.Thursday,
		"fri": time.Friday, "friday": time.Friday,
		"sat": time.Saturday, "saturday": time.Saturday,
	}

	normalized := strings.TrimSpace(strings.ToLower(s))
	if wd, ok := names[normalized]; ok {
		return wd, nil
	}

	num, err := strconv.Atoi(normalized)
	if err == nil && num >= 0 && num <= 6 {
		return time.Weekday(num), nil
	}
	return time.Sunday, fmt.Errorf("invalid weekday: %s", s)
}
