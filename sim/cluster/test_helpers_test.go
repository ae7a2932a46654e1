package cluster

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/batchsim/batchsim/sim"
	"github.com/batchsim/batchsim/sim/dist"
	"github.com/batchsim/batchsim/sim/workload"
)

// elasticTopology is one queue feeding one elastic pool.
func elasticTopology(maxVCPUs float64, policy *sim.PolicyConfig) *sim.Topology {
	return &sim.Topology{
		Environments: []sim.EnvironmentConfig{{Name: "pool", Type: sim.EnvironmentElastic, MaxVCPUs: maxVCPUs}},
		Queues:       []sim.QueueConfig{{Name: "q", SchedulingPolicy: policy, ComputeEnvironments: []string{"pool"}}},
	}
}

// fixedModel is a model with deterministic inter-arrival and service times.
func fixedModel(t *testing.T, name string, interArrival, service, cpu float64) workload.Model {
	t.Helper()
	ia, err := dist.NewDeterministic(interArrival)
	require.NoError(t, err)
	sv, err := dist.NewDeterministic(service)
	require.NoError(t, err)
	return workload.Model{
		DefinitionID: name,
		InterArrival: ia,
		Service:      sv,
		Shape:        workload.ResourceShape{Container: &workload.ContainerSpec{CPU: cpu}},
	}
}

// markovModel is an exponential/exponential model with a share map.
func markovModel(t *testing.T, name string, rate, meanService, cpu float64, shares map[string]float64) workload.Model {
	t.Helper()
	m, err := workload.MarkovModel{
		DefinitionID:    name,
		ArrivalRate:     rate,
		MeanServiceTime: meanService,
		Shape:           workload.ResourceShape{Container: &workload.ContainerSpec{CPU: cpu}},
		Shares:          shares,
	}.ToModel()
	require.NoError(t, err)
	return m
}

// mustRun builds and runs a simulator, failing the test on any error.
func mustRun(t *testing.T, cfg Config) *Result {
	t.Helper()
	b, err := NewBatchSimulator(cfg)
	require.NoError(t, err)
	r, err := b.Run()
	require.NoError(t, err)
	return r
}
