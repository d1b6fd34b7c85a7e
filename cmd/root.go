package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/spin-sim/spin-sim/sim"
	"github.com/spin-sim/spin-sim/sim/trace"
)

var (
	// CLI flags for the simulation run
	modelPath   string // Path to the YAML model bundle
	scheduleStr string // Annealing schedule, e.g. "4:25,2:25,1:10"; overrides the bundle
	seed        int64  // Seed for the simulation's random source
	memory      int    // History capacity; -1 means "use the bundle's value"
	logLevel    string // Log verbosity level
	traceLevel  string // Run trace level (none, sweeps)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "spin-sim",
	Short: "Metropolis simulator for spin and boolean energy models",
}

// simulation is the domain-independent surface the run command drives.
// Both sim.Simulation and sim.BooleanSimulation satisfy it.
type simulation interface {
	Seed(key sim.SimulationKey)
	SetTrace(rt *trace.RunTrace)
	Run(schedule sim.Schedule) error
	State() sim.State
	Energy() float64
	Metrics() *sim.Metrics
}

// runCmd executes a simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a Metropolis simulation from a model bundle",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if modelPath == "" {
			logrus.Fatalf("Model bundle not provided. Exiting simulation.")
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		bundle, err := sim.LoadModelBundle(modelPath)
		if err != nil {
			logrus.Fatalf("unable to read model bundle; %v", err)
		}
		if err := bundle.Validate(); err != nil {
			logrus.Fatalf("invalid model bundle; %v", err)
		}

		model, err := bundle.Model()
		if err != nil {
			logrus.Fatalf("invalid model terms; %v", err)
		}

		mem := memory
		if mem < 0 {
			mem = bundle.Memory
		}

		// Schedule from the flag, falling back to the bundle
		schedule := bundle.SchedulePhases()
		if scheduleStr != "" {
			schedule, err = ParseSchedule(scheduleStr)
			if err != nil {
				logrus.Fatalf("invalid schedule %q; %v", scheduleStr, err)
			}
		}
		if len(schedule) == 0 {
			logrus.Fatalf("no schedule given (use --schedule or the bundle's schedule section)")
		}

		var s simulation
		switch bundle.Domain {
		case sim.DomainBoolean:
			s, err = sim.NewBooleanSimulation(model, bundle.InitialState(), mem)
		default:
			s, err = sim.NewSimulation(model, bundle.InitialState(), mem)
		}
		if err != nil {
			logrus.Fatalf("unable to construct simulation; %v", err)
		}

		logrus.Infof("Starting simulation: domain=%s variables=%d terms=%d memory=%d seed=%d",
			bundle.Domain, len(model.Variables()), model.Len(), mem, seed)

		s.Seed(sim.NewSimulationKey(seed))

		var rt *trace.RunTrace
		if trace.TraceLevel(traceLevel) == trace.TraceLevelSweeps {
			rt = trace.NewRunTrace(trace.TraceLevelSweeps)
			s.SetTrace(rt)
		}

		if err := s.Run(schedule); err != nil {
			logrus.Fatalf("simulation failed; %v", err)
		}

		s.Metrics().Print()
		printState(s.State())
		if rt != nil {
			summary := trace.Summarize(rt)
			logrus.Infof("Trace: acceptance=%.4f best=%g (sweep %d)",
				summary.AcceptanceRate, summary.MinEnergy, summary.MinEnergySweep)
		}

		logrus.Info("Simulation complete.")
	},
}

// printState displays the final assignment in sorted label order.
func printState(state sim.State) {
	labels := make([]string, 0, len(state))
	for v := range state {
		labels = append(labels, v)
	}
	sort.Strings(labels)
	fmt.Println("=== Final State ===")
	for _, v := range labels {
		fmt.Printf("%s: %d\n", v, state[v])
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&modelPath, "model", "", "Path to the YAML model bundle")
	runCmd.Flags().StringVar(&scheduleStr, "schedule", "", "Annealing schedule as T:n pairs, e.g. \"4:25,2:25,1:10\" (overrides the bundle)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the simulation's random source")
	runCmd.Flags().IntVar(&memory, "memory", -1, "History capacity (number of retained snapshots); -1 uses the bundle's value")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Run trace level (none, sweeps)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
