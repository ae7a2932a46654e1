package dist

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource replays a fixed sequence of uniform draws.
type fixedSource struct {
	vals []float64
	i    int
}

func (f *fixedSource) Float64() float64 {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v
}

func TestDeterministic_AlwaysReturnsValue(t *testing.T) {
	d, err := NewDeterministic(5)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		if got := d.NextTime(rng); got != 5 {
			t.Fatalf("draw %d: got %v, want 5", i, got)
		}
	}
}

func TestDeterministic_NonPositiveFails(t *testing.T) {
	for _, v := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewDeterministic(v)
		assert.ErrorIs(t, err, ErrInvalidParameter, "value %v", v)
	}
}

func TestExponential_SampleMeanMatchesRate(t *testing.T) {
	e, err := NewExponential(2)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(42))
	n := 100000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += e.NextTime(rng)
	}
	mean := sum / float64(n)
	if mean < 0.45 || mean > 0.55 {
		t.Errorf("exponential(2) mean = %.4f, want in [0.45, 0.55]", mean)
	}
}

func TestExponential_NonPositiveRateFails(t *testing.T) {
	for _, l := range []float64{0, -2} {
		_, err := NewExponential(l)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	}
}

func TestErlang_ParameterValidation(t *testing.T) {
	tests := []struct {
		name    string
		k       int
		lambda  float64
		wantErr bool
	}{
		{"valid", 3, 1.5, false},
		{"k one", 1, 1, false},
		{"zero k", 0, 1, true},
		{"negative k", -2, 1, true},
		{"zero rate", 2, 0, true},
		{"negative rate", 2, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewErlang(tt.k, tt.lambda)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidParameter))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestErlang_SampleMeanIsShapeOverRate(t *testing.T) {
	e, err := NewErlang(4, 2)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(7))
	n := 50000
	sum := 0.0
	for i := 0; i < n; i++ {
		v := e.NextTime(rng)
		if v < 0 {
			t.Fatalf("negative draw %v", v)
		}
		sum += v
	}
	mean := sum / float64(n)
	assert.InDelta(t, e.Mean(), mean, 0.05*e.Mean())
}

func TestErlang_UsesKUniformDraws(t *testing.T) {
	// GIVEN U = e^-1 for every draw, each phase contributes exactly 1
	src := &fixedSource{vals: []float64{math.Exp(-1)}}
	e, err := NewErlang(3, 2)
	require.NoError(t, err)

	// THEN the draw is 3/2 and exactly 3 uniforms were consumed
	assert.InDelta(t, 1.5, e.NextTime(src), 1e-12)
	assert.Equal(t, 3, src.i)
}

func TestErlang_ZeroUniformIsRedrawn(t *testing.T) {
	src := &fixedSource{vals: []float64{0, math.Exp(-2)}}
	e, err := NewExponential(1)
	require.NoError(t, err)
	got := e.NextTime(src)
	assert.False(t, math.IsInf(got, 0))
	assert.InDelta(t, 2.0, got, 1e-12)
}
