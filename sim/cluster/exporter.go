package cluster

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const subsysBatchJob = "batch_job"

// Exporter publishes a Result as Prometheus metrics in a private registry,
// for node-exporter style textfile collection.
type Exporter struct {
	registry *prometheus.Registry

	latency      *prometheus.SummaryVec
	admissions   *prometheus.CounterVec
	vcpuSeconds  *prometheus.CounterVec
	peakDepth    *prometheus.GaugeVec
	strandedJobs *prometheus.GaugeVec
	completed    prometheus.Gauge
	simEnded     prometheus.Gauge
}

// NewExporter registers the simulator's metric families under namespace.
func NewExporter(namespace string) *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		latency: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Namespace:  namespace,
			Subsystem:  subsysBatchJob,
			Name:       "time_seconds",
			Help:       "Batch job time from submission to completion.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}, []string{"grouping", "name"}),
		admissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsysBatchJob,
			Name:      "admitted_total",
			Help:      "Number of batch jobs admitted by a compute environment.",
		}, []string{"environment"}),
		vcpuSeconds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "compute_environment",
			Name:      "vcpu_seconds_total",
			Help:      "vCPU time consumed by jobs admitted to a compute environment.",
		}, []string{"environment"}),
		peakDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "job_queue",
			Name:      "peak_pending",
			Help:      "Largest pending count sampled on a job queue.",
		}, []string{"queue"}),
		strandedJobs: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "job_queue",
			Name:      "stranded",
			Help:      "Jobs still pending on a job queue when the run drained.",
		}, []string{"queue"}),
		completed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsysBatchJob,
			Name:      "completed",
			Help:      "Batch jobs completed during the run.",
		}),
		simEnded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sim_ended_time",
			Help:      "Logical clock when the run drained.",
		}),
	}
	e.registry.MustRegister(e.latency, e.admissions, e.vcpuSeconds)
	e.registry.MustRegister(e.peakDepth, e.strandedJobs, e.completed, e.simEnded)
	return e
}

// Collect records r. Calling it twice accumulates observations and counters.
func (e *Exporter) Collect(r *Result) {
	for _, td := range r.TimesByShare {
		for _, v := range td.Data {
			e.latency.WithLabelValues("share", td.Name).Observe(v)
		}
	}
	for _, td := range r.TimesByDefinition {
		for _, v := range td.Data {
			e.latency.WithLabelValues("definition", td.Name).Observe(v)
		}
	}
	for _, env := range r.Environments {
		e.admissions.WithLabelValues(env.ID).Add(float64(env.Admissions))
		e.vcpuSeconds.WithLabelValues(env.ID).Add(env.VCPUSeconds)
	}
	for _, h := range r.QueueHistories {
		e.peakDepth.WithLabelValues(h.ID).Set(float64(h.Peak))
		e.strandedJobs.WithLabelValues(h.ID).Set(float64(h.Stranded))
	}
	e.completed.Set(float64(r.CompletedJobs))
	e.simEnded.Set(r.SimEndedTime)
}

// Registry exposes the private registry, for tests and embedding.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// WriteTextfile writes every registered family in the text exposition format.
func (e *Exporter) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, e.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
