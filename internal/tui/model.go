// Package tui implements the live shift dashboard.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rutaapp/rutaapp/internal/engine"
	"github.com/rutaapp/rutaapp/internal/model"
	"github.com/rutaapp/rutaapp/internal/reconcile"
)

// View represents which ledger the detail pane shows.
type View int

const (
	ViewTrips View = iota
	ViewExpenses
)

// Model holds the dashboard state.
type Model struct {
	engine    *engine.ShiftEngine
	shift     *model.Shift
	settings  *model.Settings
	lastError error
	keymap    KeyMap
	goalBar   progress.Model
	now       time.Time
	baseCash  float64
	cursor    int
	width     int
	height    int
	view      View
	quitting  bool
	ready     bool
}

type stateLoadedMsg struct {
	err      error
	shift    *model.Shift
	settings *model.Settings
	baseCash float64
}

type tickMsg time.Time

func newModel(eng *engine.ShiftEngine) Model {
	bar := progress.New(
		progress.WithGradient("#134E5E", "#2E7D32"),
		progress.WithoutPercentage(),
	)
	return Model{
		engine:  eng,
		keymap:  DefaultKeyMap(),
		goalBar: bar,
		view:    ViewTrips,
		now:     time.Now(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.loadState(),
		tick(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := msg.Width - 10
		if barWidth > 50 {
			barWidth = 50
		}
		if barWidth > 0 {
			m.goalBar.Width = barWidth
		}

	case stateLoadedMsg:
		m.lastError = msg.err
		if msg.err == nil {
			m.shift = msg.shift
			m.settings = msg.settings
			m.baseCash = msg.baseCash
			m.ready = true
			m.clampCursor()
		}

	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit), key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Refresh):
		return m, m.loadState()

	case key.Matches(msg, m.keymap.ToggleView):
		if m.view == ViewTrips {
			m.view = ViewExpenses
		} else {
			m.view = ViewTrips
		}
		m.cursor = 0

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		m.cursor++
		m.clampCursor()
	}

	return m, nil
}

func (m *Model) clampCursor() {
	max := 0
	if m.shift != nil {
		if m.view == ViewTrips {
			max = len(m.shift.Trips) - 1
		} else {
			max = len(m.shift.Expenses) - 1
		}
	}
	if max < 0 {
		max = 0
	}
	if m.cursor > max {
		m.cursor = max
	}
}

// loadState snapshots the engine state off the UI loop.
func (m Model) loadState() tea.Cmd {
	eng := m.engine
	return func() tea.Msg {
		shift, settings := eng.Snapshot()
		baseCash, err := eng.BaseCash(context.Background())
		return stateLoadedMsg{
			shift:    shift,
			settings: settings,
			baseCash: baseCash,
			err:      err,
		}
	}
}

func (m Model) totals() reconcile.Totals {
	if m.shift == nil {
		return reconcile.Totals{}
	}
	return reconcile.ShiftTotals(m.shift)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
