// Package tui implements the interactive terminal interface: a day checklist
// with bounded date navigation and a month calendar with completion tiers.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"habittrack/internal/dateutil"
	"habittrack/internal/models"
	"habittrack/internal/storage"
	"habittrack/internal/tracker"
	"habittrack/internal/tui/components/calendar"
	"habittrack/internal/tui/components/dayview"
)

type SessionState int

const (
	StateDay SessionState = iota
	StateCalendar
	StateAddHabit
	StateConfirmArchive
)

type HabitFormModel struct {
	Name string
}

type Model struct {
	store   storage.Provider
	tracker *tracker.Tracker

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	dayView  dayview.Model
	calView  calendar.Model
	selected time.Time
	focus    time.Time

	habits []models.Habit
	done   map[string]bool

	form             *huh.Form
	habitForm        *HabitFormModel
	habitToArchiveID string

	toast     string
	congrats  bool
	formError string
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, tr *tracker.Tracker) Model {
	selected := today(store)

	habits, err := tr.ListActiveHabits()
	if err != nil {
		habits = []models.Habit{}
	}
	done, err := tr.CompletionsOnDate(habits, selected)
	if err != nil {
		done = map[string]bool{}
	}

	firstWeekday := firstWeekday(store)
	cells, err := tr.MonthGrid(selected, firstWeekday)
	if err != nil {
		cells = []tracker.GridCell{}
	}

	return Model{
		store:    store,
		tracker:  tr,
		state:    StateDay,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		dayView:  dayview.New(habits, done, 0, 0),
		calView:  calendar.New(cells, selected, selected, firstWeekday),
		selected: selected,
		focus:    selected,
		habits:   habits,
		done:     done,
	}
}

func today(store storage.Provider) time.Time {
	settings, err := store.GetSettings()
	if err != nil {
		return time.Now()
	}
	now, err := dateutil.NowInTimezone(settings.Timezone)
	if err != nil {
		return time.Now()
	}
	return now
}

func firstWeekday(store storage.Provider) time.Weekday {
	settings, err := store.GetSettings()
	if err != nil {
		return time.Sunday
	}
	return settings.FirstWeekday
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Left, m.keys.Right, m.keys.Today, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Left, m.keys.Right, m.keys.Today},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshDay reloads the habit list and completion set for the selected date.
func (m *Model) refreshDay() {
	habits, err := m.tracker.ListActiveHabits()
	if err != nil {
		return
	}
	done, err := m.tracker.CompletionsOnDate(habits, m.selected)
	if err != nil {
		return
	}

	m.habits = habits
	m.done = done
	m.dayView.SetHabits(habits, done)
}

// refreshCalendar rebuilds the month grid around the focused month.
func (m *Model) refreshCalendar() {
	cells, err := m.tracker.MonthGrid(m.focus, firstWeekday(m.store))
	if err != nil {
		return
	}
	m.calView.SetGrid(cells, m.focus, m.selected)
}
