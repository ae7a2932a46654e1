package cluster

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/batchsim/batchsim/sim"
	"github.com/batchsim/batchsim/sim/trace"
)

// QueueHistory is the depth-over-time record of one job queue.
type QueueHistory struct {
	ID        string                 `json:"id"`
	Samples   []sim.QueueDepthSample `json:"samples"` // sorted by time
	Peak      int                    `json:"peak"`
	Completed int                    `json:"completed"`
	Stranded  int                    `json:"stranded"` // still pending when the run drained
}

// EnvironmentSummary reports how much work an environment took.
type EnvironmentSummary struct {
	ID          string  `json:"id"`
	MaxCapacity float64 `json:"max_vcpus"`
	Admissions  int     `json:"admissions"`
	VCPUSeconds float64 `json:"vcpu_seconds"` // Σ vCPUs × running time of admitted jobs
}

// Result is the output bundle of one run.
type Result struct {
	TimesByShare      []sim.TimeDistribution  `json:"times_by_share"`
	TimesByDefinition []sim.TimeDistribution  `json:"times_by_definition"`
	QueueHistories    []QueueHistory          `json:"queue_histories"`
	Environments      []EnvironmentSummary    `json:"environments"`
	CompletedJobs     int                     `json:"completed_jobs"`
	SimEndedTime      float64                 `json:"sim_ended_time"`
	Admissions        []trace.AdmissionRecord `json:"admissions,omitempty"`
	TraceSummary      *trace.TraceSummary     `json:"trace_summary,omitempty"`
}

// buildResult aggregates per-queue metrics. Latencies of all queues are pooled
// before grouping by share identifier and by definition id.
func buildResult(clock float64, queues []*sim.JobQueue, envs []sim.ComputeEnvironment, st *trace.SimulationTrace) *Result {
	r := &Result{SimEndedTime: clock}

	var all []sim.ExecutionMetric
	perEnv := make(map[string]*EnvironmentSummary, len(envs))
	for _, env := range envs {
		r.Environments = append(r.Environments, EnvironmentSummary{ID: env.ID(), MaxCapacity: env.MaxCapacity()})
	}
	for i := range r.Environments {
		perEnv[r.Environments[i].ID] = &r.Environments[i]
	}

	for _, q := range queues {
		m := q.Metrics()
		all = append(all, m.Executions...)
		for _, em := range m.Executions {
			if s, ok := perEnv[em.Environment]; ok {
				s.Admissions++
				s.VCPUSeconds += em.Job.VCPUs * em.Job.RunningTime
			}
		}
		r.QueueHistories = append(r.QueueHistories, QueueHistory{
			ID:        q.ID(),
			Samples:   m.SortedQueueDepth(),
			Peak:      m.PeakQueueDepth(),
			Completed: len(m.Executions),
			Stranded:  q.Len(),
		})
	}
	r.CompletedJobs = len(all)
	r.TimesByShare = sim.GroupLatencies(all, sim.ByShareIdentifier)
	r.TimesByDefinition = sim.GroupLatencies(all, sim.ByDefinition)

	if st != nil && st.Config.Enabled() {
		r.Admissions = st.Admissions
		r.TraceSummary = trace.Summarize(st)
	}
	return r
}

// SaveResults writes the bundle as indented JSON to path, or to stdout when
// path is "-" or empty.
func (r *Result) SaveResults(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if path == "" || path == "-" {
		if _, err := fmt.Fprintln(os.Stdout, string(data)); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	logrus.Infof("Results written to %s", path)
	return nil
}
