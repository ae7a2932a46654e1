// Collects per-queue completion latencies and queue-depth samples, and
// aggregates them into latency distributions per grouping key.

package sim

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// QueueDepthSample is appended on every admission.
type QueueDepthSample struct {
	Time         float64 `json:"time"`
	PendingCount int     `json:"pending_count"`
}

// Metrics holds the raw records of one job queue.
type Metrics struct {
	Executions []ExecutionMetric
	QueueDepth []QueueDepthSample
}

// NewMetrics returns an empty collector.
func NewMetrics() *Metrics {
	return &Metrics{
		Executions: make([]ExecutionMetric, 0),
		QueueDepth: make([]QueueDepthSample, 0),
	}
}

// RecordExecution appends a dispatched job's metric.
func (m *Metrics) RecordExecution(em ExecutionMetric) {
	m.Executions = append(m.Executions, em)
}

// RecordQueueDepth appends a depth sample.
func (m *Metrics) RecordQueueDepth(t float64, pending int) {
	m.QueueDepth = append(m.QueueDepth, QueueDepthSample{Time: t, PendingCount: pending})
}

// SortedQueueDepth returns the depth samples sorted by time. Samples with
// equal times keep their recording order.
func (m *Metrics) SortedQueueDepth() []QueueDepthSample {
	out := append([]QueueDepthSample(nil), m.QueueDepth...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// PeakQueueDepth returns the largest sampled pending count.
func (m *Metrics) PeakQueueDepth() int {
	peak := 0
	for _, s := range m.QueueDepth {
		if s.PendingCount > peak {
			peak = s.PendingCount
		}
	}
	return peak
}

// TimeDistribution summarises the completion latencies of one group.
type TimeDistribution struct {
	Name   string    `json:"name"`
	Data   []float64 `json:"data"`
	Mean   float64   `json:"mean"`
	StdDev float64   `json:"std_dev"`
	P50    float64   `json:"p50"`
	P90    float64   `json:"p90"`
	P99    float64   `json:"p99"`
}

// NewTimeDistribution computes summary statistics over data. data keeps its
// order; quantiles are computed on a sorted copy.
func NewTimeDistribution(name string, data []float64) TimeDistribution {
	td := TimeDistribution{Name: name, Data: data}
	if len(data) == 0 {
		return td
	}
	td.Mean = stat.Mean(data, nil)
	if len(data) > 1 {
		td.StdDev = stat.StdDev(data, nil)
	}
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	td.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	td.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	td.P99 = stat.Quantile(0.99, stat.Empirical, sorted, nil)
	return td
}

// GroupLatencies groups execution latencies by classifier, in recording
// order within each group. Groups are returned sorted by name.
func GroupLatencies(executions []ExecutionMetric, classifier func(*Job) string) []TimeDistribution {
	groups := make(map[string][]float64)
	for _, em := range executions {
		key := classifier(em.Job)
		groups[key] = append(groups[key], em.TotalTime)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]TimeDistribution, 0, len(names))
	for _, name := range names {
		out = append(out, NewTimeDistribution(name, groups[name]))
	}
	return out
}

// ByShareIdentifier classifies jobs by tenant.
func ByShareIdentifier(j *Job) string { return j.ShareIdentifier }

// ByDefinition classifies jobs by the model that produced them.
func ByDefinition(j *Job) string { return j.DefinitionID }
