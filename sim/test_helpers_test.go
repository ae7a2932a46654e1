package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestJob builds a job in the default share.
func newTestJob(id int, insertTime, runningTime, vcpus float64) *Job {
	return &Job{
		ID:              id,
		InsertTime:      insertTime,
		RunningTime:     runningTime,
		VCPUs:           vcpus,
		Attempts:        1,
		ShareIdentifier: DefaultShareIdentifier,
		DefinitionID:    "test",
	}
}

// newShareJob builds a job for a fair-share tenant.
func newShareJob(id int, share string, vcpus float64) *Job {
	j := newTestJob(id, 0, 1, vcpus)
	j.ShareIdentifier = share
	return j
}

// mustElastic builds an elastic environment or fails the test.
func mustElastic(t *testing.T, id string, maxCapacity float64) *ElasticEnvironment {
	t.Helper()
	env, err := NewElasticEnvironment(id, maxCapacity)
	require.NoError(t, err)
	return env
}

// mustDiscrete builds a discrete environment or fails the test.
func mustDiscrete(t *testing.T, id string, strategy AllocationStrategy, maxCapacity float64, types ...string) *DiscreteEnvironment {
	t.Helper()
	env, err := NewDiscreteEnvironment(id, DiscreteConfig{
		InstanceTypes:      types,
		AllocationStrategy: strategy,
		MaxCapacity:        maxCapacity,
	})
	require.NoError(t, err)
	return env
}

// scheduleArrivals queues one arrival event per job.
func scheduleArrivals(s *Simulator, q *JobQueue, jobs ...*Job) {
	for _, j := range jobs {
		s.Schedule(NewArrivalEvent(j, q))
	}
}

// latenciesByJobID maps each executed job to its completion latency.
func latenciesByJobID(m *Metrics) map[int]float64 {
	out := make(map[int]float64, len(m.Executions))
	for _, em := range m.Executions {
		out[em.Job.ID] = em.TotalTime
	}
	return out
}

// countingListener records every completion notification.
type countingListener struct {
	calls []string
}

func (c *countingListener) OnCompletion(_ *Simulator, environmentID string) error {
	c.calls = append(c.calls, environmentID)
	return nil
}

// sequenceSource replays fixed uniforms, cycling.
type sequenceSource struct {
	vals []float64
	i    int
}

func (s *sequenceSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}
