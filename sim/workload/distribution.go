package workload

import (
	"fmt"

	"github.com/batchsim/batchsim/sim"
	"github.com/batchsim/batchsim/sim/dist"
)

// DistSpec parameterizes an inter-event time distribution.
//
//	deterministic: value
//	exponential:   rate
//	erlang:        shape (k) and rate
type DistSpec struct {
	Type  string  `yaml:"type"`
	Value float64 `yaml:"value,omitempty"`
	Rate  float64 `yaml:"rate,omitempty"`
	Shape int     `yaml:"shape,omitempty"`
}

// Distribution type names.
const (
	DistDeterministic = "deterministic"
	DistExponential   = "exponential"
	DistErlang        = "erlang"
)

// NewDistribution creates a dist.Distribution from a DistSpec.
// Parameter errors are reported as sim.ErrConfiguration.
func NewDistribution(spec DistSpec) (dist.Distribution, error) {
	var (
		d   dist.Distribution
		err error
	)
	switch spec.Type {
	case DistDeterministic:
		d, err = dist.NewDeterministic(spec.Value)
	case DistExponential:
		d, err = dist.NewExponential(spec.Rate)
	case DistErlang:
		d, err = dist.NewErlang(spec.Shape, spec.Rate)
	default:
		return nil, fmt.Errorf("%w: unknown distribution type %q; valid: deterministic, exponential, erlang",
			sim.ErrConfiguration, spec.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sim.ErrConfiguration, err)
	}
	return d, nil
}
