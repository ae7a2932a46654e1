package cluster

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/batchsim/batchsim/sim"
	"github.com/batchsim/batchsim/sim/trace"
	"github.com/batchsim/batchsim/sim/workload"
)

func TestBatchSimulator_DeterministicLatenciesEqualServiceTime(t *testing.T) {
	// GIVEN an 8-vCPU pool, FIFO, interArrival 1, service 2, 4 vCPUs
	r := mustRun(t, Config{
		Topology:     elasticTopology(8, nil),
		Models:       []workload.Model{fixedModel(t, "etl", 1, 2, 4)},
		JobsPerQueue: 5,
		Seed:         42,
	})

	// THEN every latency is exactly 2
	require.Len(t, r.TimesByShare, 1)
	td := r.TimesByShare[0]
	assert.Equal(t, sim.DefaultShareIdentifier, td.Name)
	assert.Equal(t, []float64{2, 2, 2, 2, 2}, td.Data)
	assert.Equal(t, 2.0, td.Mean)
	assert.Equal(t, 5, r.CompletedJobs)
	assert.Equal(t, 7.0, r.SimEndedTime)
}

func TestBatchSimulator_QueueingDelayWithLongerService(t *testing.T) {
	// GIVEN service 3: only two jobs fit at once
	r := mustRun(t, Config{
		Topology:     elasticTopology(8, nil),
		Models:       []workload.Model{fixedModel(t, "etl", 1, 3, 4)},
		JobsPerQueue: 5,
	})

	// THEN latencies are 3, 3, 4, 4, 5 in some order
	got := append([]float64(nil), r.TimesByDefinition[0].Data...)
	sort.Float64s(got)
	assert.Equal(t, []float64{3, 3, 4, 4, 5}, got)
	assert.InDelta(t, 3.8, r.TimesByDefinition[0].Mean, 1e-12)
}

func TestBatchSimulator_SharedEnvironmentIsSingleInstance(t *testing.T) {
	// GIVEN two queues naming the same pool
	topo := &sim.Topology{
		Environments: []sim.EnvironmentConfig{{Name: "pool", Type: sim.EnvironmentElastic, MaxVCPUs: 4}},
		Queues: []sim.QueueConfig{
			{Name: "a", ComputeEnvironments: []string{"pool"}},
			{Name: "b", ComputeEnvironments: []string{"pool"}},
		},
	}
	b, err := NewBatchSimulator(Config{
		Topology:     topo,
		Models:       []workload.Model{fixedModel(t, "m", 1, 1.5, 2)},
		JobsPerQueue: 20,
	})
	require.NoError(t, err)

	// THEN both queues hold the very same environment
	require.Len(t, b.Environments(), 1)
	assert.Same(t, b.Queues()[0].Environments()[0], b.Queues()[1].Environments()[0])

	// AND the run completes every job of both queues
	r, err := b.Run()
	require.NoError(t, err)
	assert.Equal(t, 40, r.CompletedJobs)
	require.Len(t, r.Environments, 1)
	assert.Equal(t, 40, r.Environments[0].Admissions)
	assert.Equal(t, 40*2*1.5, r.Environments[0].VCPUSeconds)
}

func TestBatchSimulator_DiscreteFairShareRunConservesCapacity(t *testing.T) {
	// GIVEN a fair-share queue over a discrete environment with a reservation
	topo := &sim.Topology{
		Environments: []sim.EnvironmentConfig{{
			Name: "ec2", Type: sim.EnvironmentDiscrete, MaxVCPUs: 32,
			InstanceTypes: []string{"c5.large", "c5.xlarge", "c5.2xlarge", "c5.4xlarge"}, AllocationStrategy: "best-fit-progressive",
		}},
		Queues: []sim.QueueConfig{{
			Name: "fs",
			SchedulingPolicy: &sim.PolicyConfig{
				Type: sim.PolicyFairShare, ComputeReservation: 20,
				Shares: []sim.ShareConfig{{ShareIdentifier: "gold", WeightFactor: 0.5}, {ShareIdentifier: "silver", WeightFactor: 1}},
			},
			ComputeEnvironments: []string{"ec2"},
		}},
	}

	// WHEN a stochastic workload runs to completion
	b, err := NewBatchSimulator(Config{
		Topology:     topo,
		Models:       []workload.Model{markovModel(t, "m", 1, 2, 2, map[string]float64{"gold": 0.4, "silver": 0.6})},
		JobsPerQueue: 500,
		Seed:         7,
	})
	require.NoError(t, err)
	r, err := b.Run()
	require.NoError(t, err)

	// THEN every job ran, and every slot is whole again
	assert.Equal(t, 500, r.CompletedJobs)
	env, ok := b.Environments()[0].(*sim.DiscreteEnvironment)
	require.True(t, ok)
	for _, slot := range env.Slots() {
		assert.Equal(t, slot.Total, slot.Remaining, "slot %d", slot.ID)
		assert.Zero(t, env.InFlight(slot.ID))
	}
	require.Len(t, r.TimesByShare, 2)
	assert.Equal(t, "gold", r.TimesByShare[0].Name)
	assert.Equal(t, "silver", r.TimesByShare[1].Name)
	assert.Equal(t, 500, len(r.TimesByShare[0].Data)+len(r.TimesByShare[1].Data))
}

func TestBatchSimulator_FractionalVCPUsNetToZero(t *testing.T) {
	// GIVEN 0.1 and 0.7 vCPU jobs sharing a 2-vCPU elastic pool
	models := []workload.Model{
		markovModel(t, "tiny", 4, 0.5, 0.1, nil),
		markovModel(t, "small", 4, 0.5, 0.7, nil),
	}
	for seed := int64(1); seed <= 5; seed++ {
		// WHEN a long stochastic run drains
		b, err := NewBatchSimulator(Config{
			Topology:     elasticTopology(2, nil),
			Models:       models,
			JobsPerQueue: 4000,
			Seed:         seed,
		})
		require.NoError(t, err)
		r, err := b.Run()

		// THEN no release trips the capacity contract and the pool is empty
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, 4000, r.CompletedJobs, "seed %d", seed)
		assert.Equal(t, 0.0, b.Environments()[0].UsedCapacity(), "seed %d", seed)
	}
}

func TestBatchSimulator_LatencyNeverBelowRunningTime(t *testing.T) {
	b, err := NewBatchSimulator(Config{
		Topology:     elasticTopology(6, nil),
		Models:       []workload.Model{markovModel(t, "m", 2, 1, 2, nil)},
		JobsPerQueue: 300,
		Seed:         11,
	})
	require.NoError(t, err)
	_, err = b.Run()
	require.NoError(t, err)

	for _, em := range b.Queues()[0].Metrics().Executions {
		require.GreaterOrEqual(t, em.StartTime, em.Job.InsertTime)
		require.InDelta(t, em.Job.RunningTime, em.CompletionTime-em.StartTime, 1e-9)
		require.GreaterOrEqual(t, em.TotalTime, em.Job.RunningTime-1e-9)
	}
}

func TestBatchSimulator_JobTooLargeIsStranded(t *testing.T) {
	// GIVEN jobs that need more vCPUs than the pool has
	r := mustRun(t, Config{
		Topology:     elasticTopology(2, nil),
		Models:       []workload.Model{fixedModel(t, "huge", 1, 1, 4)},
		JobsPerQueue: 3,
	})

	// THEN nothing runs and the queue reports its stranded jobs
	assert.Zero(t, r.CompletedJobs)
	require.Len(t, r.QueueHistories, 1)
	assert.Equal(t, 3, r.QueueHistories[0].Stranded)
	assert.Empty(t, r.TimesByShare)
}

func TestBatchSimulator_TraceDecisions(t *testing.T) {
	r := mustRun(t, Config{
		Topology:     elasticTopology(8, nil),
		Models:       []workload.Model{fixedModel(t, "etl", 1, 2, 4)},
		JobsPerQueue: 5,
		TraceLevel:   trace.TraceLevelDecisions,
	})
	require.Len(t, r.Admissions, 5)
	require.NotNil(t, r.TraceSummary)
	assert.Equal(t, 5, r.TraceSummary.EnvironmentDistribution["pool"])
	assert.Equal(t, 5, r.TraceSummary.QueueDistribution["q"])
}

func TestBatchSimulator_TraceOffByDefault(t *testing.T) {
	r := mustRun(t, Config{
		Topology:     elasticTopology(8, nil),
		Models:       []workload.Model{fixedModel(t, "etl", 1, 2, 4)},
		JobsPerQueue: 5,
	})
	assert.Empty(t, r.Admissions)
	assert.Nil(t, r.TraceSummary)
}

func TestNewBatchSimulator_ConfigurationErrors(t *testing.T) {
	good := fixedModel(t, "m", 1, 1, 1)
	badShares := good
	badShares.Shares = map[string]float64{"a": 0.3}

	tests := []struct {
		name string
		cfg  Config
	}{
		{"no topology", Config{Models: []workload.Model{good}}},
		{"no models", Config{Topology: elasticTopology(4, nil)}},
		{"share weights", Config{Topology: elasticTopology(4, nil), Models: []workload.Model{badShares}}},
		{"trace level", Config{Topology: elasticTopology(4, nil), Models: []workload.Model{good}, TraceLevel: "verbose"}},
		{"negative jobs", Config{Topology: elasticTopology(4, nil), Models: []workload.Model{good}, JobsPerQueue: -1}},
		{"spot strategy", Config{Topology: &sim.Topology{
			Environments: []sim.EnvironmentConfig{{Name: "ec2", Type: sim.EnvironmentDiscrete, MaxVCPUs: 8,
				InstanceTypes: []string{"c5.large"}, AllocationStrategy: "spot-capacity-optimized"}},
			Queues: []sim.QueueConfig{{Name: "q", ComputeEnvironments: []string{"ec2"}}},
		}, Models: []workload.Model{good}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBatchSimulator(tt.cfg)
			assert.ErrorIs(t, err, sim.ErrConfiguration)
		})
	}
}

func TestBatchSimulator_RunTwicePanics(t *testing.T) {
	b, err := NewBatchSimulator(Config{
		Topology:     elasticTopology(8, nil),
		Models:       []workload.Model{fixedModel(t, "m", 1, 1, 1)},
		JobsPerQueue: 1,
	})
	require.NoError(t, err)
	_, err = b.Run()
	require.NoError(t, err)
	assert.Panics(t, func() { _, _ = b.Run() })
	assert.NotNil(t, b.Result())
}

func TestBatchSimulator_DefaultBacklogSize(t *testing.T) {
	b, err := NewBatchSimulator(Config{
		Topology: elasticTopology(1e9, nil),
		Models:   []workload.Model{fixedModel(t, "m", 1, 1, 1)},
	})
	require.NoError(t, err)
	r, err := b.Run()
	require.NoError(t, err)
	assert.Equal(t, workload.DefaultJobsPerQueue, r.CompletedJobs)
}
