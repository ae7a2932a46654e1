// Package sim provides the core discrete-event engine of the batch scheduler
// simulator.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - job.go: the Job record that flows from a generator through a queue into an environment
//   - event.go: event types that drive the simulation (Arrival, Release, Func)
//   - simulator.go: the event loop and the simulated clock
//   - queue.go: the admission step run on every arrival and every completion
//
// # Architecture
//
// The sim package defines the kernel and the scheduling model; the rest lives
// in sub-packages:
//   - sim/dist/: interarrival and service distributions, weighted selection
//   - sim/workload/: job models and job stream generation
//   - sim/cluster/: wiring a topology and workload into one run, result export
//   - sim/trace/: admission decision recording
//
// # Key Interfaces
//
//   - ComputeEnvironment: capacity pool that admits jobs (ElasticEnvironment, DiscreteEnvironment)
//   - SchedulingPolicy: chooses the next pending job and how much capacity to hold back
//   - CompletionListener: observer told when an environment frees capacity
//
// Ties on the clock are broken by event kind (releases, then arrivals, then
// everything else) and then by scheduling order, so a run is a pure function
// of its inputs and seed.
package sim
