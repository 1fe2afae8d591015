package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"habittrack/internal/dateutil"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDay:
		content = docStyle.Render(m.viewDay())
	case StateCalendar:
		content = docStyle.Render(m.calView.View())
	case StateAddHabit:
		content = docStyle.Render(m.form.View())
	case StateConfirmArchive:
		content = m.viewConfirmArchive()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewBanner(),
		content,
		m.help.View(m),
	)

	return ui
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Day", "Calendar"} {
		if m.state == SessionState(i) || (m.state > StateCalendar && m.previousState == SessionState(i)) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDay() string {
	header := dateHeaderStyle.Render(m.selected.Format("Monday, January 2 2006"))

	completed := 0
	for _, h := range m.habits {
		if m.done[h.ID] {
			completed++
		}
	}
	progress := progressStyle.Render(fmt.Sprintf("%d/%d completed", completed, len(m.habits)))
	if dateutil.IsToday(m.selected) {
		header += progressStyle.Render("(today)")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		progress,
		"",
		m.dayView.View(),
	)
}

// viewBanner renders the transient notices: the congratulations banner, the
// add-habit toast, and inline errors.
func (m Model) viewBanner() string {
	switch {
	case m.congrats:
		return congratsStyle.Render("🎉 Congratulations! All habits completed for today. (press any key)")
	case m.toast != "":
		return toastStyle.Render(m.toast)
	case m.formError != "":
		return errorStyle.Render("Error: " + m.formError)
	default:
		return ""
	}
}

func (m Model) viewConfirmArchive() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			warningStyle.Render("Are you sure you want to archive this habit?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
