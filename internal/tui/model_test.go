package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutaapp/rutaapp/internal/model"
)

func loadedModel(t *testing.T, shift *model.Shift) Model {
	t.Helper()

	m := newModel(nil)
	m.now = time.Date(2026, 3, 2, 12, 30, 0, 0, time.UTC)

	settings := model.DefaultSettings()
	updated, _ := m.Update(stateLoadedMsg{
		shift:    shift,
		settings: &settings,
		baseCash: 20000,
	})

	loaded, ok := updated.(Model)
	require.True(t, ok)
	return loaded
}

func openTestShift() *model.Shift {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return &model.Shift{
		Started:   true,
		StartedAt: &start,
		Trips: []model.Trip{
			{ID: 1, PlatformID: "uber", GrossAmount: 15000, NetAmount: 15000, PaymentMethod: model.PaymentCash, Timestamp: start.Add(30 * time.Minute)},
			{ID: 2, PlatformID: "didi", GrossAmount: 20000, NetAmount: 20000, PaymentMethod: model.PaymentCard, Timestamp: start.Add(time.Hour)},
		},
		Expenses: []model.Expense{
			{ID: "1772445600000", Category: model.ExpenseFuel, Amount: 5000},
		},
	}
}

func TestViewBeforeLoad(t *testing.T) {
	m := newModel(nil)
	assert.Contains(t, m.View(), "cargando jornada")
}

func TestViewOpenShift(t *testing.T) {
	m := loadedModel(t, openTestShift())

	view := m.View()
	assert.Contains(t, view, "RutaApp")
	assert.Contains(t, view, "JORNADA ABIERTA")
	assert.Contains(t, view, "Carreras")
	assert.Contains(t, view, "UBER")
	assert.Contains(t, view, "DIDI")
}

func TestViewListsNewestTripFirst(t *testing.T) {
	m := loadedModel(t, openTestShift())

	view := m.View()

	// the ledger box is the last "Carreras" heading; the didi trip was
	// recorded after the uber one so it renders first
	ledger := view[strings.LastIndex(view, "Carreras"):]
	didi := strings.Index(ledger, "DIDI")
	uber := strings.Index(ledger, "UBER")
	require.NotEqual(t, -1, didi)
	require.NotEqual(t, -1, uber)
	assert.Less(t, didi, uber)
}

func TestViewClosedShift(t *testing.T) {
	m := loadedModel(t, &model.Shift{})

	view := m.View()
	assert.Contains(t, view, "SIN JORNADA")
	assert.Contains(t, view, "sin carreras")
}

func TestViewShowsLoadError(t *testing.T) {
	m := newModel(nil)
	updated, _ := m.Update(stateLoadedMsg{err: errors.New("database locked")})
	loaded, ok := updated.(Model)
	require.True(t, ok)

	assert.Contains(t, loaded.View(), "database locked")
}

func TestToggleViewResetsCursor(t *testing.T) {
	m := loadedModel(t, openTestShift())
	m.cursor = 1

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	toggled, ok := updated.(Model)
	require.True(t, ok)

	assert.Equal(t, ViewExpenses, toggled.view)
	assert.Equal(t, 0, toggled.cursor)
	assert.Contains(t, toggled.View(), "Gastos")
}

func TestCursorNavigationClamps(t *testing.T) {
	m := loadedModel(t, openTestShift())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, 1, m.cursor)

	// already on the last trip, down stays put
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, 1, m.cursor)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestWindowSizeCapsBarWidth(t *testing.T) {
	m := newModel(nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	resized := updated.(Model)
	assert.Equal(t, 50, resized.goalBar.Width)

	updated, _ = resized.Update(tea.WindowSizeMsg{Width: 40, Height: 50})
	resized = updated.(Model)
	assert.Equal(t, 30, resized.goalBar.Width)
}

func TestQuitKey(t *testing.T) {
	m := loadedModel(t, openTestShift())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	quit, ok := updated.(Model)
	require.True(t, ok)

	assert.True(t, quit.quitting)
	assert.Empty(t, quit.View())
	require.NotNil(t, cmd)
}

func TestExpenseClock(t *testing.T) {
	assert.Equal(t, "--:--", expenseClock("not-a-number"))
	assert.NotEqual(t, "--:--", expenseClock("1772445600000"))
}
