package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/ballistic/internal/flight"
	"github.com/san-kum/ballistic/internal/metrics"
)

var sampleHeaders = []string{"Time (s)", "Velocity (m/s)", "Re", "Drag Coeff.", "Vx (m/s)", "Vy (m/s)", "X (m)", "Y (m)"}

// Table renders at most rows samples; rows <= 0 renders all of them.
func Table(tr *flight.Trajectory, rows int) string {
	samples := tr.Samples
	if rows > 0 && len(samples) > rows {
		samples = samples[:rows]
	}

	data := make([][]string, 0, len(samples))
	for _, s := range samples {
		data = append(data, []string{
			num(s.T), num(s.V), num(s.Re), num(s.C),
			num(s.VX), num(s.VY), num(s.X), num(s.Y),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorder).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeader
			}
			return tableCell.Align(lipgloss.Right)
		}).
		Headers(sampleHeaders...).
		Rows(data...)

	out := t.Render()
	if len(samples) < len(tr.Samples) {
		out += "\n" + Subtle.Render(fmt.Sprintf("showing %d of %d samples", len(samples), len(tr.Samples)))
	}
	return out
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// Summary renders the headline figures of one run.
func Summary(label string, s metrics.Summary) string {
	var b strings.Builder

	b.WriteString(Title.Render(label) + "\n")
	line := func(name, value string) {
		b.WriteString("  " + MetricLabel.Render(fmt.Sprintf("%-14s", name)) + MetricValue.Render(value) + "\n")
	}
	line("range", fmt.Sprintf("%.3f m", s.Range))
	line("apex", fmt.Sprintf("%.3f m", s.Apex))
	line("flight time", fmt.Sprintf("%.3f s", s.FlightTime))
	line("impact speed", fmt.Sprintf("%.3f m/s", s.ImpactSpeed))
	line("max Re", fmt.Sprintf("%.3g", s.MaxReynolds))
	line("energy loss", fmt.Sprintf("%.1f%%", s.EnergyLoss*100))
	line("terminated", s.Termination.String())

	return b.String()
}
