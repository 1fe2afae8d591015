package system

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"habittrack/internal/cli"
	"habittrack/internal/constants"
)

type OnboardCmd struct {
	Force bool `help:"Run onboarding again even if it was already completed."`
}

func (c *OnboardCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if settings.OnboardingCompleted && !c.Force {
		fmt.Println("Onboarding already completed. Use --force to run it again.")
		return nil
	}

	selected := make([]string, len(constants.StarterHabits))
	copy(selected, constants.StarterHabits)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Pick some starter habits").
				Description("You can add, archive, or rename habits later.").
				Options(huh.NewOptions(constants.StarterHabits...)...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	created, err := ctx.Tracker.SeedStarterHabits(selected)
	if err != nil {
		return err
	}

	settings.OnboardingCompleted = true
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	if created == 0 {
		fmt.Println("No new habits added.")
	} else {
		fmt.Printf("Added %d habits. Run 'habittrack' to start tracking.\n", created)
	}
	return nil
}
