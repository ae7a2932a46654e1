package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiscreteEnvironment_SlotsSortedAscending(t *testing.T) {
	env := mustDiscrete(t, "ec2", BestFit, 100, "c5.2xlarge", "c5.large", "c5.xlarge")
	slots := env.Slots()
	require.Len(t, slots, 3)
	for i, want := range []float64{2, 4, 8} {
		assert.Equal(t, i, slots[i].ID)
		assert.Equal(t, want, slots[i].Total)
		assert.Equal(t, want, slots[i].Remaining)
	}
}

func TestNewDiscreteEnvironment_InstanceClassUsesMedianSize(t *testing.T) {
	env, err := NewDiscreteEnvironment("ec2", DiscreteConfig{
		InstanceClasses:    []string{"c5"},
		AllocationStrategy: BestFit,
		MaxCapacity:        100,
	})
	require.NoError(t, err)
	slots := env.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, "c5.9xlarge", slots[0].InstanceType)
	assert.Equal(t, 36.0, slots[0].Total)
}

func TestNewDiscreteEnvironment_OptimalExpandsToClasses(t *testing.T) {
	env := mustDiscrete(t, "ec2", BestFitProgressive, 100, OptimalInstanceType)
	var types []string
	for _, s := range env.Slots() {
		types = append(types, s.InstanceType)
	}
	assert.Equal(t, []string{"c4.2xlarge", "m4.4xlarge", "r4.4xlarge"}, types)
}

func TestNewDiscreteEnvironment_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  DiscreteConfig
	}{
		{"spot capacity optimized", DiscreteConfig{InstanceTypes: []string{"c5.large"}, AllocationStrategy: SpotCapacityOptimized, MaxCapacity: 8}},
		{"spot price capacity optimized", DiscreteConfig{InstanceTypes: []string{"c5.large"}, AllocationStrategy: SpotPriceCapacityOptimized, MaxCapacity: 8}},
		{"unknown strategy", DiscreteConfig{InstanceTypes: []string{"c5.large"}, AllocationStrategy: "worst-fit", MaxCapacity: 8}},
		{"zero capacity", DiscreteConfig{InstanceTypes: []string{"c5.large"}, AllocationStrategy: BestFit}},
		{"unknown type", DiscreteConfig{InstanceTypes: []string{"z9.huge"}, AllocationStrategy: BestFit, MaxCapacity: 8}},
		{"unknown class", DiscreteConfig{InstanceClasses: []string{"z9"}, AllocationStrategy: BestFit, MaxCapacity: 8}},
		{"no slots", DiscreteConfig{AllocationStrategy: BestFit, MaxCapacity: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDiscreteEnvironment("ec2", tt.cfg)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestDiscreteEnvironment_BestFitVersusProgressive(t *testing.T) {
	// GIVEN slots [2, 4, 8] with the 4-vCPU slot busy
	busy := newTestJob(0, 0, 100, 4)
	job := newTestJob(1, 0, 1, 3)

	strict := mustDiscrete(t, "strict", BestFit, 100, "c5.large", "c5.xlarge", "c5.2xlarge")
	progressive := mustDiscrete(t, "prog", BestFitProgressive, 100, "c5.large", "c5.xlarge", "c5.2xlarge")
	s := NewSimulator()
	_, err := strict.Execute(s, busy)
	require.NoError(t, err)
	_, err = progressive.Execute(s, busy)
	require.NoError(t, err)

	// THEN best-fit stops at the first slot big enough and refuses
	assert.False(t, strict.CanExecute(job, 0))
	_, err = strict.Execute(s, job)
	assert.ErrorIs(t, err, ErrCapacityContract)

	// AND best-fit-progressive moves on to the 8-vCPU slot
	require.True(t, progressive.CanExecute(job, 0))
	_, err = progressive.Execute(s, job)
	require.NoError(t, err)
	assert.Equal(t, 5.0, progressive.Slots()[2].Remaining)
	assert.Equal(t, 3.0, progressive.InFlight(2))
}

func TestDiscreteEnvironment_BestFitPicksSmallestAdequateSlot(t *testing.T) {
	env := mustDiscrete(t, "ec2", BestFit, 100, "c5.large", "c5.xlarge", "c5.2xlarge")
	s := NewSimulator()
	_, err := env.Execute(s, newTestJob(0, 0, 1, 3))
	require.NoError(t, err)
	slots := env.Slots()
	assert.Equal(t, 2.0, slots[0].Remaining)
	assert.Equal(t, 1.0, slots[1].Remaining)
	assert.Equal(t, 8.0, slots[2].Remaining)
}

func TestDiscreteEnvironment_ProgressivePicksSmallestFreeSlot(t *testing.T) {
	// GIVEN free slots [2, 4, 8] under best-fit-progressive
	env := mustDiscrete(t, "ec2", BestFitProgressive, 100, "c5.large", "c5.xlarge", "c5.2xlarge")
	s := NewSimulator()

	// WHEN a 3-vCPU job is dispatched
	_, err := env.Execute(s, newTestJob(0, 0, 1, 3))
	require.NoError(t, err)

	// THEN it lands on the 4-vCPU slot
	slots := env.Slots()
	assert.Equal(t, 2.0, slots[0].Remaining)
	assert.Equal(t, 1.0, slots[1].Remaining)
	assert.Equal(t, 8.0, slots[2].Remaining)
	assert.Equal(t, 3.0, env.InFlight(1))
	assert.Zero(t, env.InFlight(0))
	assert.Zero(t, env.InFlight(2))
}

func TestDiscreteEnvironment_FractionalReleasesRestoreSlotExactly(t *testing.T) {
	// GIVEN a 2-vCPU slot packed with 0.1, 0.2 and 0.7 vCPU jobs
	env := mustDiscrete(t, "ec2", BestFitProgressive, 100, "c5.large")
	s := NewSimulator()
	for i, v := range []float64{0.1, 0.2, 0.7} {
		_, err := env.Execute(s, newTestJob(i, 0, float64(i+1), v))
		require.NoError(t, err)
	}
	assert.Equal(t, 1.0, env.Slots()[0].Remaining)

	// WHEN all of them complete
	require.NoError(t, s.Run())

	// THEN the slot is whole again with nothing in flight
	assert.Equal(t, 2.0, env.Slots()[0].Remaining)
	assert.Zero(t, env.InFlight(0))
	assert.Equal(t, 0.0, env.UsedCapacity())
}

func TestDiscreteEnvironment_MaxCapacityCapsAdmission(t *testing.T) {
	// GIVEN 14 vCPUs of slots but an aggregate ceiling of 6
	env := mustDiscrete(t, "ec2", BestFitProgressive, 6, "c5.large", "c5.xlarge", "c5.2xlarge")
	s := NewSimulator()
	_, err := env.Execute(s, newTestJob(0, 0, 1, 4))
	require.NoError(t, err)

	assert.True(t, env.CanExecute(newTestJob(1, 0, 1, 2), 0))
	assert.False(t, env.CanExecute(newTestJob(2, 0, 1, 3), 0))
	// a 1/3 reservation leaves 4 usable vCPUs, all taken
	assert.False(t, env.CanExecute(newTestJob(3, 0, 1, 1), 1.0/3))
}

func TestDiscreteEnvironment_ReleaseRestoresSlotAndConservesCapacity(t *testing.T) {
	// GIVEN jobs spread over several slots
	env := mustDiscrete(t, "ec2", BestFitProgressive, 100, "c5.large", "c5.xlarge", "c5.2xlarge")
	listener := &countingListener{}
	env.AddListener(listener)
	s := NewSimulator()
	for i, v := range []float64{2, 1.5, 2.5, 4} {
		_, err := env.Execute(s, newTestJob(i, 0, float64(i+1), v))
		require.NoError(t, err)
	}

	// THEN Remaining + in flight == Total on every slot after every event
	checkConservation := func() {
		for _, slot := range env.Slots() {
			require.InDelta(t, slot.Total, slot.Remaining+env.InFlight(slot.ID), 1e-12)
			require.GreaterOrEqual(t, slot.Remaining, 0.0)
			require.LessOrEqual(t, slot.Remaining, slot.Total)
		}
	}
	checkConservation()
	for {
		ok, err := s.Step()
		require.NoError(t, err)
		if !ok {
			break
		}
		checkConservation()
	}
	assert.Equal(t, 0.0, env.UsedCapacity())
	assert.Len(t, listener.calls, 4)
}

func TestDiscreteEnvironment_InvalidReleaseIsContractFault(t *testing.T) {
	env := mustDiscrete(t, "ec2", BestFit, 100, "c5.large")
	assert.ErrorIs(t, env.release(5, 1), ErrCapacityContract)
	assert.ErrorIs(t, env.release(0, 1), ErrCapacityContract)
}
