package dist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedSelector_SingleNonZeroAlwaysWins(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s, err := NewWeightedSelector([]float64{1, 0, 0})
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		if got := s.Select(rng); got != 0 {
			t.Fatalf("draw %d: got index %d, want 0", i, got)
		}
	}
}

func TestWeightedSelector_ZeroWeightNeverSelected(t *testing.T) {
	// U = 0 must not land on a leading zero-weight slot
	src := &fixedSource{vals: []float64{0}}
	s, err := NewWeightedSelector([]float64{0, 0, 3})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Select(src))
}

func TestWeightedSelector_EmptyOrZeroFails(t *testing.T) {
	_, err := NewWeightedSelector(nil)
	assert.ErrorIs(t, err, ErrEmptyWeights)

	_, err = NewWeightedSelector([]float64{0, 0})
	assert.ErrorIs(t, err, ErrEmptyWeights)

	_, err = NewWeightedSelector([]float64{1, -1})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestWeightedSelector_FrequenciesFollowWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s, err := NewWeightedSelector([]float64{1, 3})
	require.NoError(t, err)
	n := 40000
	counts := make([]int, 2)
	for i := 0; i < n; i++ {
		counts[s.Select(rng)]++
	}
	assert.InDelta(t, 0.75, float64(counts[1])/float64(n), 0.02)
}

func TestWeightedSelector_BoundaryUsesPrefixSum(t *testing.T) {
	// Σw = 4; U·Σw = 1 hits the first prefix sum exactly
	src := &fixedSource{vals: []float64{0.25, 0.2500001, 0.9999}}
	s, err := NewWeightedSelector([]float64{1, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Select(src))
	assert.Equal(t, 1, s.Select(src))
	assert.Equal(t, 2, s.Select(src))
}

func TestSelectIndex_PropagatesValidation(t *testing.T) {
	_, err := SelectIndex([]float64{}, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrEmptyWeights)
}
