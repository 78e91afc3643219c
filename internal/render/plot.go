package render

import (
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ballistic/internal/session"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Cyan,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Green,
	asciigraph.Red,
	asciigraph.Blue,
}

type PlotOptions struct {
	Width  int
	Height int
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Width: 80, Height: 16}
}

// Overlay plots y against x for every run on a shared horizontal axis, with
// one legend entry per run. When no run leaves x=0 the heights are plotted
// against step index instead.
func Overlay(runs []session.Run, opts PlotOptions) string {
	if len(runs) == 0 {
		return ""
	}
	if opts.Width <= 1 {
		opts.Width = DefaultPlotOptions().Width
	}
	if opts.Height <= 0 {
		opts.Height = DefaultPlotOptions().Height
	}

	paths := make([][2][]float64, len(runs))
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i, r := range runs {
		xs, ys := r.Trajectory.Path()
		paths[i] = [2][]float64{xs, ys}
		for _, x := range xs {
			if finite(x) {
				minX = math.Min(minX, x)
				maxX = math.Max(maxX, x)
			}
		}
	}

	caption := "height (m) vs horizontal distance (m)"
	series := make([][]float64, len(runs))
	if maxX-minX > 0 {
		grid := Grid(minX, maxX, opts.Width)
		for i, p := range paths {
			series[i] = Resample(p[0], p[1], grid)
		}
	} else {
		caption = "height (m) vs step"
		for i, p := range paths {
			series[i] = p[1]
		}
	}

	legends := make([]string, len(runs))
	colors := make([]asciigraph.AnsiColor, len(runs))
	for i, r := range runs {
		legends[i] = r.Label
		colors[i] = seriesColors[i%len(seriesColors)]
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(caption),
	)
}

// Grid returns n evenly spaced points covering [lo, hi].
func Grid(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	g := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range g {
		g[i] = lo + float64(i)*step
	}
	g[n-1] = hi
	return g
}

// Resample linearly interpolates the path (xs, ys) at each grid point. Grid
// points outside the path's horizontal extent are NaN and render as gaps.
func Resample(xs, ys, grid []float64) []float64 {
	out := make([]float64, len(grid))
	for i, gx := range grid {
		out[i] = math.NaN()
		for j := 0; j+1 < len(xs); j++ {
			x0, x1 := xs[j], xs[j+1]
			lo, hi := math.Min(x0, x1), math.Max(x0, x1)
			if gx < lo || gx > hi {
				continue
			}
			if x1 == x0 {
				out[i] = ys[j+1]
			} else {
				t := (gx - x0) / (x1 - x0)
				out[i] = ys[j] + t*(ys[j+1]-ys[j])
			}
			break
		}
		if len(xs) == 1 && gx == xs[0] {
			out[i] = ys[0]
		}
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
