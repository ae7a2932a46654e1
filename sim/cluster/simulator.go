package cluster

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/batchsim/batchsim/sim"
	"github.com/batchsim/batchsim/sim/trace"
	"github.com/batchsim/batchsim/sim/workload"
)

// Config groups everything a run depends on. A run is a pure function of it.
type Config struct {
	Topology     *sim.Topology
	Models       []workload.Model
	JobsPerQueue int // backlog per queue; 0 = workload.DefaultJobsPerQueue
	Seed         int64
	TraceLevel   trace.TraceLevel // "" = none
}

// BatchSimulator wires a topology and a workload into one simulation: one
// environment instance per declared environment (shared by every queue that
// names it), one job queue per declared queue, and one generated backlog per
// queue.
type BatchSimulator struct {
	config       Config
	engine       *sim.Simulator
	rng          *sim.PartitionedRNG
	generator    *workload.Generator
	environments []sim.ComputeEnvironment // declaration order
	queues       []*sim.JobQueue          // declaration order
	trace        *trace.SimulationTrace
	hasRun       bool
	result       *Result
}

// NewBatchSimulator validates the configuration and builds the topology.
// Share maps and resource shapes are checked here, before any job exists.
func NewBatchSimulator(cfg Config) (*BatchSimulator, error) {
	if cfg.Topology == nil {
		return nil, fmt.Errorf("%w: topology is required", sim.ErrConfiguration)
	}
	if err := cfg.Topology.Validate(); err != nil {
		return nil, err
	}
	if !trace.IsValidTraceLevel(string(cfg.TraceLevel)) {
		return nil, fmt.Errorf("%w: unknown trace level %q; valid: none, decisions", sim.ErrConfiguration, cfg.TraceLevel)
	}
	if cfg.JobsPerQueue < 0 {
		return nil, fmt.Errorf("%w: jobs per queue must be non-negative, got %d", sim.ErrConfiguration, cfg.JobsPerQueue)
	}
	if cfg.JobsPerQueue == 0 {
		cfg.JobsPerQueue = workload.DefaultJobsPerQueue
	}
	generator, err := workload.NewGenerator(cfg.Models)
	if err != nil {
		return nil, err
	}

	b := &BatchSimulator{
		config:    cfg,
		engine:    sim.NewSimulator(),
		rng:       sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed)),
		generator: generator,
		trace:     trace.NewSimulationTrace(trace.TraceConfig{Level: cfg.TraceLevel}),
	}

	envByName := make(map[string]sim.ComputeEnvironment, len(cfg.Topology.Environments))
	for _, ec := range cfg.Topology.Environments {
		env, err := sim.BuildEnvironment(ec)
		if err != nil {
			return nil, err
		}
		envByName[ec.Name] = env
		b.environments = append(b.environments, env)
	}

	for _, qc := range cfg.Topology.Queues {
		policy, err := sim.BuildPolicy(qc.SchedulingPolicy, b.rng.ForSubsystem(sim.SubsystemQueue(qc.Name)))
		if err != nil {
			return nil, fmt.Errorf("queue %q: %w", qc.Name, err)
		}
		if qc.SchedulingPolicy != nil && qc.SchedulingPolicy.Type == sim.PolicyFairShare && len(qc.SchedulingPolicy.Shares) == 0 {
			logrus.Warnf("queue %q uses fair-share without configured shares; every share gets weight factor 1", qc.Name)
		}
		envs := make([]sim.ComputeEnvironment, len(qc.ComputeEnvironments))
		for i, name := range qc.ComputeEnvironments {
			envs[i] = envByName[name]
		}
		q := sim.NewJobQueue(qc.Name, policy, envs)
		q.SetTrace(b.trace)
		b.queues = append(b.queues, q)
	}
	return b, nil
}

// Queues returns the job queues in declaration order.
func (b *BatchSimulator) Queues() []*sim.JobQueue {
	return b.queues
}

// Environments returns the compute environments in declaration order.
func (b *BatchSimulator) Environments() []sim.ComputeEnvironment {
	return b.environments
}

// Trace returns the decision trace. Empty unless the trace level is decisions.
func (b *BatchSimulator) Trace() *trace.SimulationTrace {
	return b.trace
}

// Run generates one backlog per queue, schedules every arrival and drains the
// event loop. Any engine fault aborts the run and no result is returned.
// Panics if called more than once.
func (b *BatchSimulator) Run() (*Result, error) {
	if b.hasRun {
		panic("BatchSimulator.Run() called more than once")
	}
	b.hasRun = true

	// 1. Generate backlogs from the workload stream, queue by queue
	workloadRNG := b.rng.ForSubsystem(sim.SubsystemWorkload)
	for _, q := range b.queues {
		jobs, err := b.generator.Generate(b.config.JobsPerQueue, workloadRNG)
		if err != nil {
			return nil, fmt.Errorf("generating backlog for queue %q: %w", q.ID(), err)
		}
		for _, job := range jobs {
			b.engine.Schedule(sim.NewArrivalEvent(job, q))
		}
	}
	logrus.Infof("Simulating %d arrivals across %d queues and %d environments (seed=%d)",
		b.engine.Pending(), len(b.queues), len(b.environments), b.rng.Key())

	// 2. Drain the event loop
	if err := b.engine.Run(); err != nil {
		return nil, err
	}

	// 3. Every dispatched job has been released, so all capacity must be back
	for _, env := range b.environments {
		if used := env.UsedCapacity(); used != 0 {
			return nil, fmt.Errorf("%w: environment %q still holds %v vCPUs after the run",
				sim.ErrCapacityContract, env.ID(), used)
		}
	}
	for _, q := range b.queues {
		if n := q.Len(); n > 0 {
			logrus.Warnf("queue %q finished with %d jobs that no environment could ever admit", q.ID(), n)
		}
	}

	b.result = buildResult(b.engine.Clock(), b.queues, b.environments, b.trace)
	logrus.Infof("Simulation ended at t=%.3f after %d events, %d jobs completed",
		b.engine.Clock(), b.engine.Dispatched(), b.result.CompletedJobs)
	return b.result, nil
}

// Result returns the bundle of the last run.
// Panics if called before Run() has completed.
func (b *BatchSimulator) Result() *Result {
	if b.result == nil {
		panic("BatchSimulator.Result() called before Run()")
	}
	return b.result
}
