package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/ballistic/internal/flight"
	"github.com/san-kum/ballistic/internal/metrics"
	"github.com/san-kum/ballistic/internal/physics"
	"github.com/san-kum/ballistic/internal/render"
	"github.com/san-kum/ballistic/internal/session"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type view int

const (
	viewForm view = iota
	viewTable
	viewPlot
)

type field struct {
	name  string
	label string
	step  float64
}

var fields = []field{
	{"gravity", "Gravity (m/s²)", 0.01},
	{"fluid_density", "Fluid Density (kg/m³)", 0.01},
	{"viscosity", "Viscosity (Pa·s)", 0.000001},
	{"diameter", "Diameter (m)", 0.0001},
	{"mass", "Mass (kg)", 0.0001},
	{"angle", "Launch Angle (°)", 1},
	{"speed", "Launch Velocity (m/s)", 0.1},
	{"time_step", "Time Step (s)", 0.0001},
	{"max_time", "Max Time (s)", 1},
}

type model struct {
	sim    *flight.Simulator
	runs   *session.Collection
	params physics.Params
	cfg    flight.Config

	view    view
	cursor  int
	editing bool
	editBuf string
	err     error

	width  int
	height int
}

// NewApp builds the interactive session. runs is owned by the caller and
// receives every successful simulation.
func NewApp(sim *flight.Simulator, runs *session.Collection, p physics.Params, cfg flight.Config) *model {
	return &model{
		sim:    sim,
		runs:   runs,
		params: p,
		cfg:    cfg,
		width:  100,
		height: 30,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		return m.editKey(msg), nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "s":
		m.simulate()
	case "c":
		m.runs.Clear()
		m.err = nil
	case "t", "tab":
		m.view = (m.view + 1) % 3
	case "esc":
		m.view = viewForm
	}

	if m.view != viewForm {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(fields)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = strconv.FormatFloat(*m.value(m.cursor), 'g', -1, 64)
	case "left", "h":
		*m.value(m.cursor) -= fields[m.cursor].step
	case "right", "l":
		*m.value(m.cursor) += fields[m.cursor].step
	}
	return m, nil
}

func (m model) editKey(msg tea.KeyMsg) model {
	switch msg.String() {
	case "enter":
		v, err := strconv.ParseFloat(m.editBuf, 64)
		if err != nil {
			m.err = fmt.Errorf("%s: %w", fields[m.cursor].name, err)
		} else {
			*m.value(m.cursor) = v
			m.err = nil
		}
		m.editing = false
		m.editBuf = ""
	case "esc":
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
				m.editBuf += string(c)
			}
		}
	}
	return m
}

// value returns the form field at i.
func (m *model) value(i int) *float64 {
	switch fields[i].name {
	case "gravity":
		return &m.params.Gravity
	case "fluid_density":
		return &m.params.FluidDensity
	case "viscosity":
		return &m.params.Viscosity
	case "diameter":
		return &m.params.Diameter
	case "mass":
		return &m.params.Mass
	case "angle":
		return &m.params.Angle
	case "speed":
		return &m.params.Speed
	case "time_step":
		return &m.cfg.TimeStep
	default:
		return &m.cfg.MaxTime
	}
}

func (m *model) simulate() {
	tr, err := m.sim.Run(m.params, m.cfg)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.runs.Add(tr)
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("   " + cyan.Render("ballistic") + "  " + dim.Render("sphere trajectory in a viscous fluid") + "\n")
	b.WriteString(dimmer.Render("   "+strings.Repeat("─", 44)) + "\n\n")

	switch m.view {
	case viewForm:
		b.WriteString(m.viewForm())
	case viewTable:
		b.WriteString(m.viewTable())
	case viewPlot:
		b.WriteString(m.viewPlot())
	}

	if m.err != nil {
		b.WriteString("\n" + red.Render("   "+strings.ReplaceAll(m.err.Error(), "\n", "\n   ")) + "\n")
	}

	b.WriteString("\n" + dim.Render(fmt.Sprintf("   %d run(s)   s simulate  t table/plot  c clear  q quit", m.runs.Len())) + "\n")
	return b.String()
}

func (m model) viewForm() string {
	var b strings.Builder

	for i, f := range fields {
		val := fmt.Sprintf("%12s", strconv.FormatFloat(*m.value(i), 'g', 6, 64))
		if m.editing && i == m.cursor {
			val = fmt.Sprintf("%12s", m.editBuf+"▋")
		}
		if i == m.cursor {
			b.WriteString("   " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-24s", f.label)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("     " + dim.Render(fmt.Sprintf("%-24s", f.label)) + dim.Render(val) + "\n")
		}
	}

	b.WriteString("\n" + dim.Render("   ↑↓ select  ←→ adjust  enter edit") + "\n")

	if run, ok := m.runs.Latest(); ok {
		b.WriteString("\n" + render.Summary(run.Label, metrics.Summarize(run.Trajectory)))
	}
	return b.String()
}

func (m model) viewTable() string {
	run, ok := m.runs.Latest()
	if !ok {
		return dim.Render("   no runs yet, press s to simulate") + "\n"
	}
	rows := m.height - 16
	if rows < 5 {
		rows = 5
	}
	return render.Table(run.Trajectory, rows) + "\n"
}

func (m model) viewPlot() string {
	runs := m.runs.Runs()
	if len(runs) == 0 {
		return dim.Render("   no runs yet, press s to simulate") + "\n"
	}
	opts := render.PlotOptions{Width: m.width - 16, Height: m.height - 14 - len(runs)}
	if opts.Height < 6 {
		opts.Height = 6
	}
	return render.Overlay(runs, opts) + "\n"
}

func Run(sim *flight.Simulator, runs *session.Collection, p physics.Params, cfg flight.Config) error {
	prog := tea.NewProgram(NewApp(sim, runs, p, cfg), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
