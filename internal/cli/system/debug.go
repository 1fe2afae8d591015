package system

import (
	"encoding/json"
	"fmt"
	"time"

	"habittrack/internal/cli"
	errs "habittrack/internal/errors"
)

type DebugCmd struct {
	DBPath          *DebugDBPathCmd          `cmd:"" help:"Show database path."`
	DumpHabit       *DebugDumpHabitCmd       `cmd:"" help:"Dump habit data as JSON."`
	DumpDay         *DebugDumpDayCmd         `cmd:"" help:"Dump a day's completions as JSON."`
	DumpSettings    *DebugDumpSettingsCmd    `cmd:"" help:"Dump settings data as JSON."`
	DumpCompletions *DebugDumpCompletionsCmd `cmd:"" help:"Dump a habit's completion history as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}
	return printJSON(output)
}

type DebugDumpHabitCmd struct {
	Name string `arg:"" help:"Name of the habit to dump."`
}

func (cmd *DebugDumpHabitCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByName(cmd.Name)
	if err != nil {
		if errs.IsNotFound(err) {
			return fmt.Errorf("habit not found: %s", cmd.Name)
		}
		return fmt.Errorf("failed to get habit: %w", err)
	}
	return printJSON(habit)
}

type DebugDumpDayCmd struct {
	Date string `arg:"" help:"Date to dump (YYYY-MM-DD or 'today')."`
}

func (cmd *DebugDumpDayCmd) Run(ctx *cli.Context) error {
	date := cmd.Date
	if date == "today" {
		date = time.Now().Format("2006-01-02")
	}
	if !isValidDate(date) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD or 'today')", date)
	}

	completions, err := ctx.Store.GetCompletionsForDay(date)
	if err != nil {
		return fmt.Errorf("failed to get completions: %w", err)
	}
	return printJSON(completions)
}

type DebugDumpCompletionsCmd struct {
	Name  string `arg:"" help:"Name of the habit."`
	Start string `help:"Range start (YYYY-MM-DD, inclusive)." default:"0000-01-01"`
	End   string `help:"Range end (YYYY-MM-DD, exclusive)." default:"9999-12-32"`
}

func (cmd *DebugDumpCompletionsCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Store.GetHabitByName(cmd.Name)
	if err != nil {
		if errs.IsNotFound(err) {
			return fmt.Errorf("habit not found: %s", cmd.Name)
		}
		return fmt.Errorf("failed to get habit: %w", err)
	}

	completions, err := ctx.Store.GetCompletionsForHabit(habit.ID, cmd.Start, cmd.End)
	if err != nil {
		return fmt.Errorf("failed to get completions: %w", err)
	}
	return printJSON(completions)
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	return printJSON(settings)
}

func printJSON(v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

func isValidDate(dateStr string) bool {
	_, err := time.Parse("2006-01-02", dateStr)
	return err == nil
}
