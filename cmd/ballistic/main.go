package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/ballistic/internal/config"
	"github.com/san-kum/ballistic/internal/flight"
	"github.com/san-kum/ballistic/internal/logging"
	"github.com/san-kum/ballistic/internal/physics"
	"github.com/san-kum/ballistic/internal/session"
	"github.com/san-kum/ballistic/internal/tui"
)

var (
	configFile string
	preset     string
	logLevel   string
	outFile    string
	rows       int
	plotWidth  int
	plotHeight int
	svgWidth   float64
	svgHeight  float64

	params physics.Params
	dt     float64
	maxT   float64

	// set by setup before any command runs
	resolved *config.Config
	logger   = zap.NewNop()
)

// main registers the commands and launches the interactive session when no
// subcommand is given.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// a failed setup leaves the no-op logger in place
		if logger.Core().Enabled(zap.ErrorLevel) {
			logger.Error("command failed", zap.Error(err))
			_ = logger.Sync()
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
	_ = logger.Sync()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "ballistic",
		Short:             "trajectory of a sphere launched through a viscous fluid",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			// the alternate screen owns the terminal, so the session logs nothing
			return tui.Run(flight.New(), session.NewCollection(), resolved.Params, resolved.Flight())
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start from a named preset")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error, silent)")
	addParamFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate one trajectory and print the table and plot",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "number of samples to tabulate (0 for all)")
	runCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	runCmd.Flags().IntVar(&plotHeight, "height", 16, "plot height")

	compareCmd := &cobra.Command{
		Use:   "compare PRESET [PRESET...]",
		Short: "run several presets and overlay their trajectories",
		Args:  cobra.MinimumNArgs(1),
		RunE:  comparePresets,
	}
	compareCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	compareCmd.Flags().IntVar(&plotHeight, "height", 16, "plot height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "simulate and write every sample as CSV",
		Args:  cobra.NoArgs,
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "simulate and write the trajectory as JSON",
		Args:  cobra.NoArgs,
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg PRESET [PRESET...]",
		Short: "overlay preset trajectories as an SVG plot",
		Args:  cobra.MinimumNArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().Float64Var(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().Float64Var(&svgHeight, "height", 500, "image height")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init PATH",
		Short: "write the resolved configuration to PATH",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, compareCmd, presetsCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, configCmd)

	return rootCmd
}

func addParamFlags(cmd *cobra.Command) {
	def := physics.DefaultParams()
	fs := cmd.PersistentFlags()
	fs.Float64Var(&params.Gravity, "gravity", def.Gravity, "gravitational acceleration (m/s²)")
	fs.Float64Var(&params.FluidDensity, "density", def.FluidDensity, "fluid density (kg/m³)")
	fs.Float64Var(&params.Viscosity, "viscosity", def.Viscosity, "fluid dynamic viscosity (Pa·s)")
	fs.Float64Var(&params.Diameter, "diameter", def.Diameter, "sphere diameter (m)")
	fs.Float64Var(&params.Mass, "mass", def.Mass, "sphere mass (kg)")
	fs.Float64Var(&params.Angle, "angle", def.Angle, "launch angle (degrees)")
	fs.Float64Var(&params.Speed, "speed", def.Speed, "launch speed (m/s)")
	fs.Float64Var(&dt, "dt", flight.DefaultTimeStep, "time step (s)")
	fs.Float64Var(&maxT, "max-time", flight.DefaultMaxTime, "time budget (s)")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, preset)
	if err != nil {
		return err
	}
	l, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	resolved, logger = cfg, l
	return nil
}
