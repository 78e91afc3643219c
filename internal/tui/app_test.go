package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/ballistic/internal/flight"
	"github.com/san-kum/ballistic/internal/physics"
	"github.com/san-kum/ballistic/internal/session"
)

func newTestModel() (model, *session.Collection) {
	runs := session.NewCollection()
	m := NewApp(flight.New(), runs, physics.DefaultParams(), flight.DefaultConfig())
	return *m, runs
}

func press(t *testing.T, m model, keys ...tea.KeyMsg) model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyBack  = tea.KeyMsg{Type: tea.KeyBackspace}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestSimulateAppendsRun(t *testing.T) {
	m, runs := newTestModel()

	m = press(t, m, runes("s"), runes("s"))
	assert.Equal(t, 2, runs.Len())
	assert.NoError(t, m.err)

	m = press(t, m, runes("c"))
	assert.Equal(t, 0, runs.Len())
}

func TestInvalidParamsDoNotAppend(t *testing.T) {
	m, runs := newTestModel()
	m.params.Diameter = 0

	m = press(t, m, runes("s"))
	assert.Equal(t, 0, runs.Len())
	assert.ErrorIs(t, m.err, physics.ErrInvalidParams)
	assert.Contains(t, m.View(), "diameter")
}

func TestEditField(t *testing.T) {
	m, _ := newTestModel()

	// move to launch angle
	for i := 0; i < 5; i++ {
		m = press(t, m, keyDown)
	}
	require.Equal(t, "angle", fields[m.cursor].name)

	m = press(t, m, keyEnter)
	require.True(t, m.editing)
	assert.Equal(t, "25", m.editBuf)

	m = press(t, m, keyBack, keyBack, runes("4"), runes("0"), keyEnter)
	assert.False(t, m.editing)
	assert.Equal(t, 40.0, m.params.Angle)
}

func TestEditRejectsGarbage(t *testing.T) {
	m, _ := newTestModel()

	m = press(t, m, keyEnter, keyBack, keyBack, keyBack, keyBack, runes("-"), keyEnter)
	assert.Error(t, m.err)
	assert.Equal(t, physics.DefaultGravity, m.params.Gravity)
}

func TestEditCancel(t *testing.T) {
	m, _ := newTestModel()

	m = press(t, m, keyEnter, runes("7"), keyEsc)
	assert.False(t, m.editing)
	assert.Equal(t, physics.DefaultGravity, m.params.Gravity)
}

func TestNudgeTimeStep(t *testing.T) {
	m, _ := newTestModel()
	for i := 0; i < 7; i++ {
		m = press(t, m, keyDown)
	}
	require.Equal(t, "time_step", fields[m.cursor].name)

	m = press(t, m, keyRight)
	assert.InDelta(t, 0.0011, m.cfg.TimeStep, 1e-12)
}

func TestViewsCycle(t *testing.T) {
	m, _ := newTestModel()

	m = press(t, m, runes("t"))
	assert.Equal(t, viewTable, m.view)
	assert.Contains(t, m.View(), "no runs yet")

	m = press(t, m, runes("s"))
	assert.Contains(t, m.View(), "Velocity (m/s)")

	m = press(t, m, runes("t"))
	assert.Equal(t, viewPlot, m.view)
	assert.Contains(t, m.View(), "horizontal distance")

	m = press(t, m, runes("t"))
	assert.Equal(t, viewForm, m.view)
	assert.Contains(t, m.View(), "Launch Angle")
}

func TestWindowResize(t *testing.T) {
	m, _ := newTestModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(model)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel()
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
