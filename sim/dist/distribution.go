// Package dist provides the random-variate primitives used by the simulator:
// inter-event time distributions, lottery selection over weights, and
// attempt-count sampling.
//
// Every draw takes a Source explicitly. There is no package-level generator,
// so a run is reproducible from its seed alone.
package dist

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParameter is returned when a distribution is constructed
	// with parameters outside its domain.
	ErrInvalidParameter = errors.New("invalid distribution parameter")

	// ErrEmptyWeights is returned when a weighted selection has nothing to
	// select from (no weights, or all weights zero).
	ErrEmptyWeights = errors.New("no positive weight to select from")
)

// Source is a uniform random source on [0, 1).
// *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Distribution produces inter-event times.
type Distribution interface {
	// NextTime returns how long until the next event. Never negative.
	NextTime(src Source) float64
}

// Deterministic always returns the same positive value.
type Deterministic struct {
	value float64
}

// NewDeterministic returns a distribution that always yields value.
func NewDeterministic(value float64) (*Deterministic, error) {
	if !(value > 0) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("%w: deterministic time must be positive, got %v", ErrInvalidParameter, value)
	}
	return &Deterministic{value: value}, nil
}

func (d *Deterministic) NextTime(_ Source) float64 {
	return d.value
}

// Erlang is the sum of K independent exponential phases of rate Lambda.
// K = 1 is the exponential distribution.
type Erlang struct {
	k      int
	lambda float64
}

// NewErlang returns an Erlang-k distribution with rate lambda.
func NewErlang(k int, lambda float64) (*Erlang, error) {
	if !(lambda > 0) || math.IsInf(lambda, 0) {
		return nil, fmt.Errorf("%w: Erlang rate must be positive, got %v", ErrInvalidParameter, lambda)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: Erlang shape must be a positive integer, got %d", ErrInvalidParameter, k)
	}
	return &Erlang{k: k, lambda: lambda}, nil
}

// NewExponential returns an exponential distribution with rate lambda.
func NewExponential(lambda float64) (*Erlang, error) {
	if !(lambda > 0) || math.IsInf(lambda, 0) {
		return nil, fmt.Errorf("%w: exponential rate must be positive, got %v", ErrInvalidParameter, lambda)
	}
	return &Erlang{k: 1, lambda: lambda}, nil
}

// NextTime returns Σ -ln(U_i) / λ over k fresh uniform draws.
func (e *Erlang) NextTime(src Source) float64 {
	sum := 0.0
	for i := 0; i < e.k; i++ {
		sum -= math.Log(openUniform(src))
	}
	return sum / e.lambda
}

// Shape returns k.
func (e *Erlang) Shape() int { return e.k }

// Rate returns λ.
func (e *Erlang) Rate() float64 { return e.lambda }

// Mean returns k/λ.
func (e *Erlang) Mean() float64 { return float64(e.k) / e.lambda }

// openUniform draws from (0, 1). A zero draw would make ln(U) infinite, so
// it is redrawn.
func openUniform(src Source) float64 {
	for {
		if u := src.Float64(); u > 0 {
			return u
		}
	}
}
