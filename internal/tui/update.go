package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"habittrack/internal/constants"
	"habittrack/internal/tracker"
	"habittrack/internal/tui/components/dayview"
)

type toastExpiredMsg struct{}

func showToast() tea.Cmd {
	return tea.Tick(constants.ToastDurationMs*time.Millisecond, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dayView.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case toastExpiredMsg:
		m.toast = ""
		return m, nil

	case dayview.ToggleHabitMsg:
		return m.toggleHabit(msg.ID)

	case dayview.AddHabitMsg:
		return m.openAddHabitForm()

	case dayview.ArchiveHabitMsg:
		m.habitToArchiveID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmArchive
		return m, nil

	case tea.KeyMsg:
		// The congratulations banner blocks input until dismissed.
		if m.congrats {
			m.congrats = false
			return m, nil
		}

		switch m.state {
		case StateDay, StateCalendar:
			if handled, model, cmd := m.handleGlobalKeys(msg); handled {
				return model, cmd
			}
		case StateConfirmArchive:
			return m.handleConfirmArchive(msg)
		}
	}

	switch m.state {
	case StateDay:
		var cmd tea.Cmd
		m.dayView, cmd = m.dayView.Update(msg)
		return m, cmd

	case StateAddHabit:
		return m.updateAddHabitForm(msg)
	}

	return m, nil
}

func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, m, nil

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		if m.state == StateDay {
			m.state = StateCalendar
			m.focus = m.selected
			m.refreshCalendar()
		} else {
			m.state = StateDay
			m.refreshDay()
		}
		return true, m, nil

	case key.Matches(msg, m.keys.Left):
		if m.state == StateDay {
			m.selected = tracker.PreviousDay(m.selected)
			m.refreshDay()
		} else {
			m.focus = tracker.PreviousMonth(m.focus)
			m.refreshCalendar()
		}
		return true, m, nil

	case key.Matches(msg, m.keys.Right):
		if m.state == StateDay {
			// Clamped at today, so this is a no-op on the current day.
			m.selected = tracker.NextDay(m.selected, today(m.store))
			m.refreshDay()
		} else {
			m.focus = tracker.NextMonth(m.focus)
			m.refreshCalendar()
		}
		return true, m, nil

	case key.Matches(msg, m.keys.Today):
		m.selected = today(m.store)
		m.focus = m.selected
		m.refreshDay()
		m.refreshCalendar()
		return true, m, nil
	}

	return false, m, nil
}

func (m Model) toggleHabit(id string) (tea.Model, tea.Cmd) {
	var found bool
	for _, h := range m.habits {
		if h.ID == id {
			res, err := m.tracker.ToggleCompletion(h, m.selected)
			if err != nil {
				m.formError = err.Error()
				return m, nil
			}
			m.congrats = res.Congratulate
			found = true
			break
		}
	}
	if !found {
		return m, nil
	}

	m.formError = ""
	m.refreshDay()
	m.refreshCalendar()
	return m, nil
}

func (m Model) openAddHabitForm() (tea.Model, tea.Cmd) {
	m.habitForm = &HabitFormModel{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&m.habitForm.Name),
		),
	)
	m.previousState = m.state
	m.state = StateAddHabit
	m.formError = ""
	return m, m.form.Init()
}

func (m Model) updateAddHabitForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		habit, err := m.tracker.CreateHabit(m.habitForm.Name)
		m.state = m.previousState
		if err != nil {
			// Validation and duplicate errors are recoverable; show them
			// inline and let the user try again.
			m.formError = err.Error()
			return m, nil
		}
		m.formError = ""
		m.toast = fmt.Sprintf("Added %q", habit.Name)
		m.refreshDay()
		m.refreshCalendar()
		return m, showToast()

	case huh.StateAborted:
		m.state = m.previousState
		return m, nil
	}

	return m, cmd
}

func (m Model) handleConfirmArchive(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.tracker.ArchiveHabit(m.habitToArchiveID); err != nil {
			m.formError = err.Error()
		}
		m.habitToArchiveID = ""
		m.state = m.previousState
		m.refreshDay()
		m.refreshCalendar()
		return m, nil
	case "n", "N", "esc", "q":
		m.habitToArchiveID = ""
		m.state = m.previousState
		return m, nil
	}
	return m, nil
}
