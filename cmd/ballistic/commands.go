package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/ballistic/internal/config"
	"github.com/san-kum/ballistic/internal/export"
	"github.com/san-kum/ballistic/internal/flight"
	"github.com/san-kum/ballistic/internal/metrics"
	"github.com/san-kum/ballistic/internal/render"
	"github.com/san-kum/ballistic/internal/session"
)

// resolveConfig layers defaults, the named preset, the config file and any
// flag set on the command line, in that order.
func resolveConfig(cmd *cobra.Command, presetName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if presetName != "" {
		cfg = config.GetPreset(presetName)
		if cfg == nil {
			return nil, unknownPreset(presetName)
		}
	}
	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	applyFlags(cmd, cfg)
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	set := func(name string, dst *float64, v float64) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("gravity", &cfg.Params.Gravity, params.Gravity)
	set("density", &cfg.Params.FluidDensity, params.FluidDensity)
	set("viscosity", &cfg.Params.Viscosity, params.Viscosity)
	set("diameter", &cfg.Params.Diameter, params.Diameter)
	set("mass", &cfg.Params.Mass, params.Mass)
	set("angle", &cfg.Params.Angle, params.Angle)
	set("speed", &cfg.Params.Speed, params.Speed)
	set("dt", &cfg.TimeStep, dt)
	set("max-time", &cfg.MaxTime, maxT)
	if fs.Changed("rows") {
		cfg.Rows = rows
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
}

func unknownPreset(name string) error {
	return fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(config.ListPresets(), ", "))
}

func simulate(sim *flight.Simulator, cfg *config.Config) (*flight.Trajectory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	tr, err := sim.Run(cfg.Params, cfg.Flight())
	if err != nil {
		return nil, err
	}
	logger.Info("simulation complete",
		zap.Int("samples", tr.Len()),
		zap.Stringer("termination", tr.Termination),
		zap.Duration("elapsed", time.Since(start)))
	return tr, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	sim := flight.New(flight.WithLogger(logger))
	tr, err := simulate(sim, resolved)
	if err != nil {
		return err
	}

	runs := session.NewCollection()
	run := runs.Add(tr)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render.Summary(run.Label, metrics.Summarize(tr)))
	fmt.Fprintln(out, render.Table(tr, resolved.Rows))
	fmt.Fprintln(out, render.Overlay(runs.Runs(), render.PlotOptions{Width: plotWidth, Height: plotHeight}))
	return nil
}

// presetRuns simulates each named preset concurrently. Presets keep their own
// time step and budget; only flags given explicitly override them.
func presetRuns(cmd *cobra.Command, names []string) (*session.Collection, error) {
	jobs := make([]flight.Job, 0, len(names))
	for _, name := range names {
		cfg := config.GetPreset(name)
		if cfg == nil {
			return nil, unknownPreset(name)
		}
		applyFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("preset %s: %w", name, err)
		}
		jobs = append(jobs, flight.Job{Params: cfg.Params, Config: cfg.Flight()})
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	sim := flight.New(flight.WithLogger(logger))
	trs, err := sim.RunAll(ctx, jobs)
	if err != nil {
		return nil, err
	}
	logger.Info("comparison complete",
		zap.Int("runs", len(trs)),
		zap.Duration("elapsed", time.Since(start)))

	runs := session.NewCollection()
	for i, tr := range trs {
		runs.AddLabeled(names[i], tr)
	}
	return runs, nil
}

func comparePresets(cmd *cobra.Command, args []string) error {
	runs, err := presetRuns(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, run := range runs.Runs() {
		fmt.Fprintln(out, render.Summary(run.Label, metrics.Summarize(run.Trajectory)))
	}
	fmt.Fprintln(out, render.Overlay(runs.Runs(), render.PlotOptions{Width: plotWidth, Height: plotHeight}))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(out, "%-8s %s\n", name, p.Params.Label())
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	return exportRun(cmd, func(w io.Writer, _ string, tr *flight.Trajectory) error {
		return export.CSV(w, tr)
	})
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return exportRun(cmd, export.JSON)
}

func exportRun(cmd *cobra.Command, write func(io.Writer, string, *flight.Trajectory) error) error {
	tr, err := simulate(flight.New(flight.WithLogger(logger)), resolved)
	if err != nil {
		return err
	}
	return withOutput(cmd, func(w io.Writer) error {
		return write(w, tr.Params.Label(), tr)
	})
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runs, err := presetRuns(cmd, args)
	if err != nil {
		return err
	}
	return withOutput(cmd, func(w io.Writer) error {
		return export.SVG(w, runs.Runs(), svgWidth, svgHeight)
	})
}

func initConfig(cmd *cobra.Command, args []string) error {
	if err := resolved.Validate(); err != nil {
		return err
	}
	if err := config.Save(args[0], resolved); err != nil {
		return err
	}
	logger.Info("config written", zap.String("path", args[0]))
	return nil
}

// withOutput writes to --out when given, otherwise to the command's stdout.
// A failed write leaves no file behind.
func withOutput(cmd *cobra.Command, fn func(io.Writer) error) error {
	if outFile == "" {
		return fn(cmd.OutOrStdout())
	}
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	err = fn(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(outFile)
		return err
	}
	logger.Info("export written", zap.String("path", outFile))
	return nil
}
