package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/conveyor-sim/sim"
	"github.com/inference-sim/conveyor-sim/sim/scenario"
	"github.com/inference-sim/conveyor-sim/sim/telemetry"
	"github.com/inference-sim/conveyor-sim/sim/trace"
)

var (
	scenarioPath  string // YAML scenario file; empty = built-in reference
	totalTicks    int64  // Maximum ticks to run
	logLevel      string // Log verbosity level
	traceLevel    string // Tick trace level (none, ticks)
	metricsOut    string // Prometheus textfile output path
	showState     bool   // Print the full state view after every tick
	quiet         bool   // Suppress the per-tick event log
	generateCount int    // Random items appended to the scenario
	generateSeed  int64  // Seed for random items
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "conveyor-sim",
	Short: "Tick-stepped simulator for baskets routed through stations with bounded waiting zones",
}

// runOptions collects everything runSimulation needs, so tests can call it
// without going through flag parsing.
type runOptions struct {
	ScenarioPath  string
	Ticks         int64
	TraceLevel    string
	MetricsOut    string
	ShowState     bool
	Quiet         bool
	GenerateCount int
	GenerateSeed  int64
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the conveyor simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()
		opts := runOptions{
			ScenarioPath:  scenarioPath,
			Ticks:         totalTicks,
			TraceLevel:    traceLevel,
			MetricsOut:    metricsOut,
			ShowState:     showState,
			Quiet:         quiet,
			GenerateCount: generateCount,
			GenerateSeed:  generateSeed,
		}
		if err := runSimulation(opts, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// validateCmd loads a scenario and reports whether the simulator accepts it.
var validateCmd = &cobra.Command{
	Use:   "validate <scenario.yaml>",
	Short: "Validate a scenario file without running it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()
		cfg, err := loadConfig(args[0], 0, 0)
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d stations, %d items, buffer capacity %d)\n",
			args[0], len(cfg.Stations), len(cfg.Items), cfg.BufferCapacity)
	},
}

// showReferenceCmd prints the built-in reference scenario as YAML.
var showReferenceCmd = &cobra.Command{
	Use:   "show-reference",
	Short: "Print the built-in reference scenario as YAML",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := scenario.Marshal(scenario.Reference())
		if err != nil {
			logrus.Fatalf("YAML marshal failed: %v", err)
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	},
}

func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// loadConfig reads path (or the reference scenario when empty) and appends
// count generated items.
func loadConfig(path string, count int, seed int64) (sim.Config, error) {
	spec := scenario.Reference()
	if path != "" {
		loaded, err := scenario.Load(path)
		if err != nil {
			return sim.Config{}, err
		}
		spec = loaded
	}
	if count > 0 {
		spec.Generate = &scenario.GenerateSpec{Count: count, Seed: seed}
	}
	return spec.ToConfig()
}

func runSimulation(opts runOptions, w io.Writer) error {
	if !trace.IsValidTraceLevel(opts.TraceLevel) {
		return fmt.Errorf("unknown trace level %q; valid: none, ticks", opts.TraceLevel)
	}
	if opts.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", opts.Ticks)
	}
	cfg, err := loadConfig(opts.ScenarioPath, opts.GenerateCount, opts.GenerateSeed)
	if err != nil {
		return err
	}
	s, err := sim.NewSimulator(cfg)
	if err != nil {
		return err
	}
	if trace.TraceLevel(opts.TraceLevel) == trace.TraceLevelTicks {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelTicks})
	}

	var collector *telemetry.Collector
	if opts.MetricsOut != "" {
		collector, err = telemetry.NewCollector(prometheus.NewRegistry())
		if err != nil {
			return err
		}
	}

	logrus.Infof("Starting simulation with %d stations, %d items, max %d ticks", len(cfg.Stations), len(cfg.Items), opts.Ticks)
	_, _ = fmt.Fprintf(w, "--- STARTING SIMULATION for %d ticks ---\n", opts.Ticks)
	for i := int64(0); i < opts.Ticks && !s.Done(); i++ {
		events := s.Tick()
		snap := s.Snapshot()
		collector.Observe(snap, events)
		if opts.ShowState {
			renderState(w, snap, events)
		} else if !opts.Quiet {
			renderEvents(w, events)
		}
	}
	if s.Done() {
		_, _ = fmt.Fprintln(w, "All items finished! Stopping simulation.")
	}

	renderStatus(w, s.Snapshot())
	s.Metrics.Print(w)
	if s.Trace != nil {
		renderTraceSummary(w, trace.Summarize(s.Trace))
	}
	if collector != nil {
		if err := collector.WriteTextfile(opts.MetricsOut); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Scenario YAML file (default: built-in reference scenario)")
	runCmd.Flags().Int64Var(&totalTicks, "ticks", 30, "Maximum number of ticks to simulate")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Tick trace level (none, ticks)")
	runCmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write Prometheus metrics to this textfile at the end of the run")
	runCmd.Flags().BoolVar(&showState, "show-state", false, "Print the full conveyor state after every tick")
	runCmd.Flags().BoolVar(&quiet, "quiet", false, "Do not print the per-tick event log")
	runCmd.Flags().IntVar(&generateCount, "generate", 0, "Append this many randomly routed items")
	runCmd.Flags().Int64Var(&generateSeed, "seed", 42, "Seed for randomly routed items")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showReferenceCmd)
}
