// Package calendar renders the month grid with per-day completion tiers.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"habittrack/internal/dateutil"
	"habittrack/internal/tracker"
)

var (
	monthStyle      = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyDayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	lowDayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	highDayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	fullDayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	outOfMonthStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	selectedStyle   = lipgloss.NewStyle().Reverse(true)
	todayStyle      = lipgloss.NewStyle().Underline(true)
)

type Model struct {
	cells        []tracker.GridCell
	focus        time.Time
	selected     time.Time
	firstWeekday time.Weekday
}

func New(cells []tracker.GridCell, focus, selected time.Time, firstWeekday time.Weekday) Model {
	return Model{
		cells:        cells,
		focus:        focus,
		selected:     selected,
		firstWeekday: firstWeekday,
	}
}

// SetGrid replaces the grid contents after a month change or a toggle.
func (m *Model) SetGrid(cells []tracker.GridCell, focus, selected time.Time) {
	m.cells = cells
	m.focus = focus
	m.selected = selected
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(monthStyle.Render(m.focus.Format("January 2006")))
	b.WriteString("\n\n")

	var header []string
	for i := 0; i < 7; i++ {
		wd := time.Weekday((int(m.firstWeekday) + i) % 7)
		header = append(header, fmt.Sprintf("%3s", wd.String()[:2]))
	}
	b.WriteString(headerStyle.Render(strings.Join(header, " ")))
	b.WriteString("\n")

	now := time.Now()
	for week := 0; week < len(m.cells)/7; week++ {
		var row []string
		for i := 0; i < 7; i++ {
			cell := m.cells[week*7+i]
			label := fmt.Sprintf("%3d", cell.Date.Day())

			style := styleForCell(cell)
			if dateutil.IsSameDay(cell.Date, now) {
				style = style.Inherit(todayStyle)
			}
			if dateutil.IsSameDay(cell.Date, m.selected) {
				style = style.Inherit(selectedStyle)
			}
			row = append(row, style.Render(label))
		}
		b.WriteString(strings.Join(row, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s none  %s under half  %s half or more  %s all done",
		emptyDayStyle.Render("■"), lowDayStyle.Render("■"),
		highDayStyle.Render("■"), fullDayStyle.Render("■")))

	return b.String()
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
