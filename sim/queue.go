// Implements the JobQueue, which holds submitted jobs until a compute
// environment admits them.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/batchsim/batchsim/sim/trace"
)

// JobQueue binds a scheduling policy to an ordered list of compute
// environments. Pending jobs are kept in push order.
type JobQueue struct {
	id           string
	policy       SchedulingPolicy
	environments []ComputeEnvironment
	pending      []*Job
	metrics      *Metrics
	trace        *trace.SimulationTrace
}

// NewJobQueue creates a queue and registers it for completions on every
// environment it feeds.
func NewJobQueue(id string, policy SchedulingPolicy, environments []ComputeEnvironment) *JobQueue {
	if policy == nil {
		panic("NewJobQueue: policy must not be nil")
	}
	if len(environments) == 0 {
		logrus.Warnf("job queue %q has no compute environments; its jobs will never run", id)
	}
	q := &JobQueue{
		id:           id,
		policy:       policy,
		environments: environments,
		metrics:      NewMetrics(),
	}
	for _, env := range environments {
		env.AddListener(q)
	}
	return q
}

// ID returns the queue name.
func (q *JobQueue) ID() string { return q.id }

// Policy returns the queue's scheduling policy.
func (q *JobQueue) Policy() SchedulingPolicy { return q.policy }

// Environments returns the environments in admission order.
func (q *JobQueue) Environments() []ComputeEnvironment { return q.environments }

// Metrics returns the queue's execution and depth records.
func (q *JobQueue) Metrics() *Metrics { return q.metrics }

// SetTrace enables decision recording into st. A nil trace disables it.
func (q *JobQueue) SetTrace(st *trace.SimulationTrace) { q.trace = st }

// Len returns the number of pending jobs.
func (q *JobQueue) Len() int { return len(q.pending) }

// Pending returns the pending jobs in push order.
// The returned slice is the queue's internal storage; callers MUST NOT modify it.
func (q *JobQueue) Pending() []*Job { return q.pending }

// Push appends job to the pending set and re-evaluates admission.
func (q *JobQueue) Push(s *Simulator, job *Job) error {
	if job == nil {
		panic("Push: job must not be nil")
	}
	q.pending = append(q.pending, job)
	return q.evaluate(s)
}

// OnCompletion re-evaluates admission after an owned environment freed capacity.
func (q *JobQueue) OnCompletion(s *Simulator, _ string) error {
	return q.evaluate(s)
}

// evaluate walks the environments in order, asking the policy for a fresh
// candidate for each, and admits the first candidate an environment accepts.
// At most one job is admitted per call.
func (q *JobQueue) evaluate(s *Simulator) error {
	if len(q.pending) == 0 {
		return nil
	}
	reservedRatio := q.policy.ReservedRatio(q.pending)
	for _, env := range q.environments {
		candidate, err := q.policy.PickFrom(q.pending)
		if err != nil {
			return fmt.Errorf("queue %q: %w", q.id, err)
		}
		if !env.CanExecute(candidate, reservedRatio) {
			continue
		}
		if err := q.remove(candidate); err != nil {
			return err
		}
		q.metrics.RecordQueueDepth(s.Clock(), len(q.pending))

		metric, err := env.Execute(s, candidate)
		if err != nil {
			return fmt.Errorf("queue %q: %w", q.id, err)
		}
		q.metrics.RecordExecution(metric)
		q.record(s, env, candidate, reservedRatio)
		logrus.Debugf("[t=%.3f] %s: admitted job %d to %s, %d pending",
			s.Clock(), q.id, candidate.ID, env.ID(), len(q.pending))
		return nil
	}
	return nil
}

func (q *JobQueue) remove(job *Job) error {
	for i, p := range q.pending {
		if p == job {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("queue %q: policy %s picked job %d which is not pending", q.id, q.policy.Name(), job.ID)
}

func (q *JobQueue) record(s *Simulator, env ComputeEnvironment, job *Job, reservedRatio float64) {
	if q.trace == nil || q.trace.Config.Level == trace.TraceLevelNone {
		return
	}
	q.trace.RecordAdmission(trace.AdmissionRecord{
		Queue:           q.id,
		Environment:     env.ID(),
		JobID:           job.ID,
		ShareIdentifier: job.ShareIdentifier,
		DefinitionID:    job.DefinitionID,
		Clock:           s.Clock(),
		ReservedRatio:   reservedRatio,
		PendingAfter:    len(q.pending),
		UsedAfter:       env.UsedCapacity(),
	})
}
