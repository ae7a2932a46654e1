package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/batchsim/batchsim/sim"
	"github.com/batchsim/batchsim/sim/cluster"
	"github.com/batchsim/batchsim/sim/trace"
	"github.com/batchsim/batchsim/sim/workload"
)

var (
	// CLI flags for a simulation run
	seed         int64  // Seed for every random stream of the run
	logLevel     string // Log verbosity level
	topologyPath string // YAML file describing environments and queues
	workloadPath string // YAML file describing job models
	jobsPerQueue int    // Backlog generated for each queue
	resultsPath  string // JSON result bundle destination ("-" = stdout)
	metricsOut   string // Prometheus textfile destination (empty = skip)
	traceLevel   string // Decision trace level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "batchsim",
	Short: "Discrete-event simulator for managed batch job schedulers",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the batch scheduler simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		topo, models := loadInputs()
		logrus.Infof("Starting simulation: %d environments, %d queues, %d models, %d jobs per queue, seed=%d",
			len(topo.Environments), len(topo.Queues), len(models), jobsPerQueue, seed)

		startTime := time.Now()
		b, err := cluster.NewBatchSimulator(cluster.Config{
			Topology:     topo,
			Models:       models,
			JobsPerQueue: jobsPerQueue,
			Seed:         seed,
			TraceLevel:   trace.TraceLevel(traceLevel),
		})
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		result, err := b.Run()
		if err != nil {
			logrus.Fatalf("Simulation aborted: %v", err)
		}
		logrus.Infof("Simulation finished in %s", time.Since(startTime))

		if err := result.SaveResults(resultsPath); err != nil {
			logrus.Fatalf("%v", err)
		}
		if metricsOut != "" {
			exporter := cluster.NewExporter("batchsim")
			exporter.Collect(result)
			if err := exporter.WriteTextfile(metricsOut); err != nil {
				logrus.Fatalf("%v", err)
			}
		}

		logrus.Info("Simulation complete.")
	},
}

// validateCmd loads and checks the inputs without simulating
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate topology and workload files",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()
		topo, models := loadInputs()
		if _, err := cluster.NewBatchSimulator(cluster.Config{Topology: topo, Models: models, Seed: seed}); err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %d environments, %d queues, %d models\n",
			len(topo.Environments), len(topo.Queues), len(models))
	},
}

// instanceTypesCmd prints the compiled instance-type table
var instanceTypesCmd = &cobra.Command{
	Use:   "instance-types",
	Short: "List known instance types and their vCPU counts",
	Run: func(cmd *cobra.Command, args []string) {
		printInstanceTypes(cmd.OutOrStdout())
	},
}

func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

func loadInputs() (*sim.Topology, []workload.Model) {
	if topologyPath == "" || workloadPath == "" {
		logrus.Fatalf("Both --topology and --workload are required")
	}
	if !trace.IsValidTraceLevel(traceLevel) {
		logrus.Fatalf("Invalid trace level %q; valid: none, decisions", traceLevel)
	}
	topo, models, err := readInputs(topologyPath, workloadPath)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	return topo, models
}

// readInputs loads and validates both input files.
func readInputs(topologyFile, workloadFile string) (*sim.Topology, []workload.Model, error) {
	topo, err := sim.LoadTopology(topologyFile)
	if err != nil {
		return nil, nil, err
	}
	if err := topo.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", topologyFile, err)
	}
	spec, err := workload.LoadSpec(workloadFile)
	if err != nil {
		return nil, nil, err
	}
	models, err := spec.ToModels()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", workloadFile, err)
	}
	return topo, models, nil
}

func printInstanceTypes(w io.Writer) {
	for _, name := range sim.InstanceTypes() {
		vcpus, _ := sim.InstanceTypeVCPUs(name)
		fmt.Fprintf(w, "%-20s %d\n", name, vcpus)
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
	for _, c := range []*cobra.Command{runCmd, validateCmd} {
		c.Flags().Int64Var(&seed, "seed", 42, "Seed for workload generation and fair-share lotteries")
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().StringVar(&topologyPath, "topology", "", "Path to the YAML topology (compute environments and job queues)")
		c.Flags().StringVar(&workloadPath, "workload", "", "Path to the YAML workload (job models)")
	}

	runCmd.Flags().IntVar(&jobsPerQueue, "jobs", workload.DefaultJobsPerQueue, "Number of jobs generated for each queue")
	runCmd.Flags().StringVar(&resultsPath, "results", "-", "Where to write the JSON result bundle (- for stdout)")
	runCmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write Prometheus metrics in text format to this file")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Decision trace level (none, decisions)")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(instanceTypesCmd)
}
