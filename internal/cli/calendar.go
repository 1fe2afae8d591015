package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"habittrack/internal/dateutil"
	"habittrack/internal/tracker"
)

var (
	emptyDayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	lowDayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	highDayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	fullDayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	outOfMonthStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	todayStyle      = lipgloss.NewStyle().Underline(true)
)

type CalendarCmd struct {
	Month string `help:"Month to show in YYYY-MM format (default: current month)." default:""`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	focus := ctx.Today()
	if c.Month != "" {
		parsed, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return fmt.Errorf("invalid month format: %s (expected YYYY-MM)", c.Month)
		}
		focus = time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, focus.Location())
	}

	firstWeekday := ctx.FirstWeekday()
	cells, err := ctx.Tracker.MonthGrid(focus, firstWeekday)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\n", focus.Format("January 2006"))

	var header []string
	for i := 0; i < 7; i++ {
		wd := time.Weekday((int(firstWeekday) + i) % 7)
		header = append(header, fmt.Sprintf("%3s", wd.String()[:2]))
	}
	fmt.Println(strings.Join(header, " "))

	today := ctx.Today()
	for week := 0; week < len(cells)/7; week++ {
		var row []string
		for i := 0; i < 7; i++ {
			cell := cells[week*7+i]
			label := fmt.Sprintf("%3d", cell.Date.Day())

			style := styleForCell(cell)
			if dateutil.IsSameDay(cell.Date, today) {
				style = style.Inherit(todayStyle)
			}
			row = append(row, style.Render(label))
		}
		fmt.Println(strings.Join(row, " "))
	}

	fmt.Println()
	fmt.Printf("%s none  %s under half  %s half or more  %s all done\n",
		emptyDayStyle.Render("■"), lowDayStyle.Render("■"),
		highDayStyle.Render("■"), fullDayStyle.Render("■"))
	return nil
}

// styleForCell maps a day's completion fraction to a display tier.
func styleForCell(cell tracker.GridCell) lipgloss.Style {
	if !cell.InMonth {
		return outOfMonthStyle
	}
	switch {
	case cell.Progress >= 1.0:
		return fullDayStyle
	case cell.Progress >= 0.5:
		return highDayStyle
	case cell.Progress > 0:
		return lowDayStyle
	default:
		return emptyDayStyle
	}
}
