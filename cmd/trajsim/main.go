package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/export"
	"github.com/san-kum/trajsim/internal/logging"
	"github.com/san-kum/trajsim/internal/projectile"
	"github.com/san-kum/trajsim/internal/sweep"
	"github.com/san-kum/trajsim/internal/tui"
	"github.com/san-kum/trajsim/internal/viz"
)

var (
	logLevel string
	log      zerolog.Logger

	velocity float64
	angle    float64
	height   float64
	gravity  float64
	dt       float64
	// Config file
	configFile string
	// Preset name
	preset string

	plot    bool
	outPath string
	format  string

	sweepFrom float64
	sweepTo   float64
	sweepStep float64
	workers   int

	compareSteps []float64
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newRootCmd registers every command and flag. Flags are bound to package
// variables, so each call resets them to their defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "trajsim",
		Short:        "projectile trajectory calculator",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logging.New(cmd.ErrOrStderr(), logLevel, false)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive form when no command given
			return tui.RunInteractive(projectile.DefaultParameters())
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (trace, debug, info, warn, error, off)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate one launch and print its metrics",
		Args:  cobra.NoArgs,
		RunE:  runTrajectory,
	}
	addLaunchFlags(runCmd)
	runCmd.Flags().BoolVar(&plot, "plot", true, "draw a height chart")
	runCmd.Flags().StringVarP(&outPath, "out", "o", "", "export the trajectory to a file ('-' for stdout)")
	runCmd.Flags().StringVar(&format, "format", config.DefaultFormat, "export format (csv, json, svg, svg-dots)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "simulate a range of launch angles in parallel",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addLaunchFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "first angle (deg)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 90, "last angle (deg)")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 5, "angle increment (deg)")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = one per CPU)")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare simulated metrics with the closed-form solution",
		Args:  cobra.NoArgs,
		RunE:  compareAnalytic,
	}
	addLaunchFlags(compareCmd)
	compareCmd.Flags().Float64SliceVar(&compareSteps, "steps", []float64{0.1, 0.05, 0.01, 0.001}, "time steps to compare")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVELOCITY\tANGLE\tHEIGHT\tGRAVITY\tDT")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%.2f\t%.1f\t%.2f\t%.2f\t%g\n", name, p.Velocity, p.Angle, p.Height, p.Gravity, p.Dt)
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "trajsim.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			log.Info().Str("path", path).Msg("config written")
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive launch form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.RunInteractive(cfg.Params())
		},
	}
	addLaunchFlags(tuiCmd)

	rootCmd.AddCommand(runCmd, sweepCmd, compareCmd, presetsCmd, initCmd, tuiCmd)
	return rootCmd
}

func addLaunchFlags(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&velocity, "velocity", "v", projectile.DefaultVelocity, "initial velocity (m/s)")
	cmd.Flags().Float64VarP(&angle, "angle", "a", projectile.DefaultAngle, "launch angle (deg, 0-90)")
	cmd.Flags().Float64Var(&height, "height", projectile.DefaultHeight, "launch height (m)")
	cmd.Flags().Float64VarP(&gravity, "gravity", "g", projectile.DefaultGravity, "gravity (m/s^2)")
	cmd.Flags().Float64Var(&dt, "dt", projectile.DefaultTimeStep, "timestep (s)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file and explicitly set flags, in that
// order, and validates the result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if f := cmd.Flag("log-level"); f != nil && !f.Changed && cfg.LogLevel != "" {
			log = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, false)
		}
	}

	// CLI flags override config
	flags := cmd.Flags()
	if flags.Changed("velocity") {
		cfg.Velocity = velocity
	}
	if flags.Changed("angle") {
		cfg.Angle = angle
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("gravity") {
		cfg.Gravity = gravity
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Lookup("plot") != nil && flags.Changed("plot") {
		cfg.Output.Plot = plot
	}
	if flags.Lookup("out") != nil && flags.Changed("out") {
		cfg.Output.Path = outPath
	}
	if flags.Lookup("format") != nil {
		if flags.Changed("format") {
			cfg.Output.Format = format
		} else if f := formatFromPath(cfg.Output.Path); f != "" {
			cfg.Output.Format = f
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	case ".json":
		return "json"
	case ".svg":
		return "svg"
	default:
		return ""
	}
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p := cfg.Params()
	out := cmd.OutOrStdout()

	log.Debug().
		Float64("velocity", p.InitialVelocity).
		Float64("angle", p.LaunchAngleDeg).
		Float64("height", p.InitialHeight).
		Float64("gravity", p.Gravity).
		Float64("dt", p.TimeStep).
		Msg("simulating")

	start := time.Now()
	r := projectile.Simulate(p)
	log.Debug().Int("steps", r.Steps).Int("points", len(r.Points)).Dur("elapsed", time.Since(start)).Msg("simulation complete")

	if err := r.Err(); err != nil {
		log.Warn().Err(err).Float64("t", r.TimeOfFlight).Msg("trajectory may be incomplete")
	}

	if cfg.Output.Path == "-" {
		return export.Write(out, cfg.Output.Format, p, r)
	}

	fmt.Fprintln(out, viz.MetricsPanel(r))
	if cfg.Output.Plot {
		if chart := viz.LineChart(r.Points, 80, 12); chart != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, chart)
		}
	}

	if cfg.Output.Path != "" {
		if err := export.ToFile(cfg.Output.Path, cfg.Output.Format, p, r); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		log.Info().Str("path", cfg.Output.Path).Str("format", cfg.Output.Format).Msg("trajectory exported")
	}

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	samples, err := sweep.Angles(cmd.Context(), cfg.Params(), sweepFrom, sweepTo, sweepStep, workers)
	if err != nil {
		return err
	}
	log.Debug().Int("runs", len(samples)).Dur("elapsed", time.Since(start)).Msg("sweep complete")

	return printSweep(cmd.OutOrStdout(), samples)
}

func printSweep(out io.Writer, samples []sweep.Sample) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ANGLE\tRANGE\tMAX_HEIGHT\tTIME\tNOTE")
	for _, s := range samples {
		note := ""
		if !s.Landed {
			note = "incomplete"
		}
		fmt.Fprintf(w, "%.2f\t%s\t%s\t%s\t%s\n",
			s.Params.LaunchAngleDeg,
			viz.FormatMetric(s.TotalRange),
			viz.FormatMetric(s.MaxHeight),
			viz.FormatMetric(s.TimeOfFlight),
			note,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if best, ok := sweep.Best(samples); ok {
		fmt.Fprintf(out, "\nlongest range: %s m at %.2f deg\n", viz.FormatMetric(best.TotalRange), best.Params.LaunchAngleDeg)
	}
	return nil
}

func compareAnalytic(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	base := cfg.Params()
	out := cmd.OutOrStdout()

	exact, ok := projectile.Analytic(base)
	if !ok {
		return fmt.Errorf("no closed-form landing for gravity %g", base.Gravity)
	}

	fmt.Fprintf(out, "closed form: range %.6f m, max height %.6f m, time %.6f s\n\n",
		exact.TotalRange, exact.MaxHeight, exact.TimeOfFlight)
	fmt.Fprintf(out, "%-10s  %-12s  %-12s  %-12s  %-8s\n", "dt", "err_range", "err_height", "err_time", "steps")
	fmt.Fprintln(out, strings.Repeat("-", 62))

	for _, step := range compareSteps {
		p := base
		p.TimeStep = step
		if err := p.Validate(); err != nil {
			fmt.Fprintf(out, "%-10g  error: %v\n", step, err)
			continue
		}
		r := projectile.Simulate(p)
		fmt.Fprintf(out, "%-10g  %12.2e  %12.2e  %12.2e  %8d\n",
			step,
			r.TotalRange-exact.TotalRange,
			r.MaxHeight-exact.MaxHeight,
			r.TimeOfFlight-exact.TimeOfFlight,
			r.Steps,
		)
	}

	return nil
}
