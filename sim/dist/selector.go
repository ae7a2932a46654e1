package dist

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// WeightedSelector picks an index with probability proportional to its weight
// (lottery scheduling).
type WeightedSelector struct {
	weights []float64
	total   float64
}

// NewWeightedSelector validates weights and returns a selector over them.
// Weights must be finite and non-negative with a positive sum.
func NewWeightedSelector(weights []float64) (*WeightedSelector, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: weight vector is empty", ErrEmptyWeights)
	}
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight[%d] = %v must be finite and non-negative", ErrInvalidParameter, i, w)
		}
	}
	total := floats.Sum(weights)
	if total <= 0 {
		return nil, fmt.Errorf("%w: all %d weights are zero", ErrEmptyWeights, len(weights))
	}
	return &WeightedSelector{weights: append([]float64(nil), weights...), total: total}, nil
}

// Select draws U ~ Uniform(0, Σw) and returns the first index whose
// cumulative weight is >= U.
func (s *WeightedSelector) Select(src Source) int {
	target := src.Float64() * s.total
	acc := 0.0
	last := 0
	for i, w := range s.weights {
		if w == 0 {
			continue
		}
		acc += w
		last = i
		if acc >= target {
			return i
		}
	}
	// Rounding in the running sum can leave acc a hair below target.
	return last
}

// SelectIndex is a one-shot weighted draw.
func SelectIndex(weights []float64, src Source) (int, error) {
	s, err := NewWeightedSelector(weights)
	if err != nil {
		return 0, err
	}
	return s.Select(src), nil
}
