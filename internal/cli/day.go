package cli

import (
	"fmt"
	"strings"

	"habittrack/internal/dateutil"
	"habittrack/internal/models"
)

type DayCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *DayCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	habits, err := ctx.Tracker.ListActiveHabits()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with 'habittrack habit add' or run 'habittrack onboard'.")
		return nil
	}

	done, err := ctx.Tracker.CompletionsOnDate(habits, date)
	if err != nil {
		return err
	}

	fmt.Printf("Habits for %s:\n\n", dateutil.FormatDay(date))
	completed := 0
	for _, habit := range habits {
		status := "[ ]"
		if done[habit.ID] {
			status = "[x]"
			completed++
		}
		fmt.Printf("%s %s\n", status, habit.Name)
	}

	fmt.Printf("\nCompleted: %d/%d\n", completed, len(habits))
	return nil
}

type ToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	if !dateutil.IsToday(date) && dateutil.CompareDayOnly(date, ctx.Today()) > 0 {
		return fmt.Errorf("cannot record completions for future dates")
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	res, err := ctx.Tracker.ToggleCompletion(habit, date)
	if err != nil {
		return err
	}

	day := dateutil.FormatDay(date)
	if res.Completed {
		fmt.Printf("Completed %q for %s\n", habit.Name, day)
	} else {
		fmt.Printf("Unmarked %q for %s\n", habit.Name, day)
	}

	if res.Congratulate {
		fmt.Println("\nCongratulations! All habits completed for today.")
	}
	return nil
}

type LogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for specific habit only."`
}

func (c *LogCmd) Run(ctx *Context) error {
	habits, err := ctx.Tracker.ListActiveHabits()
	if err != nil {
		return err
	}

	var selected []models.Habit
	if c.Habit != "" {
		for _, h := range habits {
			if h.Name == c.Habit {
				selected = []models.Habit{h}
				break
			}
		}
		if len(selected) == 0 {
			return fmt.Errorf("habit %q not found", c.Habit)
		}
	} else {
		selected = habits
	}

	if len(selected) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	end := ctx.Today()
	start := dateutil.AddDays(end, -(c.Days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	const nameWidth = 20
	fmt.Print(padName("Habit", nameWidth))
	for i := 0; i < c.Days; i++ {
		fmt.Printf(" %5s", dateutil.AddDays(start, i).Format("01/02"))
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", nameWidth+c.Days*6))

	startDay := dateutil.FormatDay(start)
	endDay := dateutil.FormatDay(dateutil.AddDays(end, 1))

	for _, habit := range selected {
		fmt.Print(padName(habit.Name, nameWidth))

		completions, err := ctx.Store.GetCompletionsForHabit(habit.ID, startDay, endDay)
		if err != nil {
			return err
		}

		days := make(map[string]bool)
		for _, completion := range completions {
			days[completion.Day] = true
		}

		for i := 0; i < c.Days; i++ {
			if days[dateutil.FormatDay(dateutil.AddDays(start, i))] {
				fmt.Print("  x   ")
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}

	return nil
}

func padName(name string, width int) string {
	if len(name) > width {
		if width >= 5 {
			return name[:width-3] + "..."
		}
		return name[:width]
	}
	return name + strings.Repeat(" ", width-len(name))
}
