package export

import (
	"fmt"
	"html"
	"io"
	"math"
	"strings"

	"github.com/san-kum/ballistic/internal/session"
)

var svgPalette = []string{"#00ccff", "#ffcc00", "#ff00ff", "#00ff88", "#ff4444", "#8888ff"}

const svgMargin = 40.0

// SVG draws every run as a polyline on shared axes with a legend. Axes are
// scaled independently so short, flat trajectories stay readable.
func SVG(w io.Writer, runs []session.Run, width, height float64) error {
	if len(runs) == 0 {
		return fmt.Errorf("no runs to draw")
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, r := range runs {
		xs, ys := r.Trajectory.Path()
		for i := range xs {
			if !finite(xs[i]) || !finite(ys[i]) {
				continue
			}
			minX, maxX = math.Min(minX, xs[i]), math.Max(maxX, xs[i])
			minY, maxY = math.Min(minY, ys[i]), math.Max(maxY, ys[i])
		}
	}
	if math.IsInf(minX, 1) {
		return fmt.Errorf("no finite points to draw")
	}
	xRange := maxX - minX
	yRange := maxY - minY
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	plotW := width - 2*svgMargin
	plotH := height - 2*svgMargin
	px := func(x float64) float64 { return svgMargin + (x-minX)/xRange*plotW }
	py := func(y float64) float64 { return height - svgMargin - (y-minY)/yRange*plotH }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// ground line and axes
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#444466"/>
`, svgMargin, py(0), width-svgMargin, py(0)))
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#444466"/>
`, svgMargin, svgMargin, svgMargin, height-svgMargin))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#888899" font-size="11">x %.3g..%.3g m, y %.3g..%.3g m</text>
`, svgMargin, height-svgMargin/3, minX, maxX, minY, maxY))

	for i, r := range runs {
		color := svgPalette[i%len(svgPalette)]
		xs, ys := r.Trajectory.Path()

		points := make([]string, 0, len(xs))
		for j := range xs {
			if !finite(xs[j]) || !finite(ys[j]) {
				continue
			}
			points = append(points, fmt.Sprintf("%.2f,%.2f", px(xs[j]), py(ys[j])))
		}
		sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="1.5" points="%s"/>
`, color, strings.Join(points, " ")))

		ly := svgMargin/2 + float64(i)*14
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="10" height="10" fill="%s"/>
<text x="%.1f" y="%.1f" fill="#ffffff" font-size="11">%s</text>
`, width-svgMargin-220, ly, color, width-svgMargin-205, ly+9, html.EscapeString(r.Label)))
	}

	sb.WriteString("</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
