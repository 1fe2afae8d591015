package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"habittrack/internal/cli"
	"habittrack/internal/storage"
	"habittrack/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Automatic backup on TUI startup, sqlite only.
	if !storage.IsPostgresConfig(ctx.Store.GetConfigPath()) {
		ctx.PerformAutomaticBackup()
	}

	// First launch runs the starter-habit flow before the tracker.
	if ctx.NeedsOnboarding() {
		onboard := OnboardCmd{}
		if err := onboard.Run(ctx); err != nil {
			return err
		}
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Tracker), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
