package workload

import (
	"fmt"
	"math"

	"github.com/batchsim/batchsim/sim"
)

// ContainerSpec is a single container's CPU request.
type ContainerSpec struct {
	CPU float64 `yaml:"cpu"`
}

// MultiNodeSpec is a gang of containers scheduled together.
type MultiNodeSpec struct {
	Containers []ContainerSpec `yaml:"containers"`
}

// OrchestratedSpec is a pod-style request with a limit and a reservation.
type OrchestratedSpec struct {
	CPULimit       *float64 `yaml:"cpu_limit,omitempty"`
	CPUReservation *float64 `yaml:"cpu_reservation,omitempty"`
}

// ResourceShape describes what a job definition asks for. Exactly one of the
// three variants must be set.
type ResourceShape struct {
	Container    *ContainerSpec    `yaml:"container,omitempty"`
	MultiNode    *MultiNodeSpec    `yaml:"multi_node,omitempty"`
	Orchestrated *OrchestratedSpec `yaml:"orchestrated,omitempty"`
}

// VCPUs resolves the vCPU requirement of the shape:
// container → cpu; multi-node → sum of container cpus;
// orchestrated → cpu_limit, else cpu_reservation.
func (r ResourceShape) VCPUs() (float64, error) {
	set := 0
	for _, present := range []bool{r.Container != nil, r.MultiNode != nil, r.Orchestrated != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return 0, fmt.Errorf("%w: resource shape must set exactly one of container, multi_node, orchestrated (got %d)",
			sim.ErrConfiguration, set)
	}

	var v float64
	switch {
	case r.Container != nil:
		v = r.Container.CPU
	case r.MultiNode != nil:
		if len(r.MultiNode.Containers) == 0 {
			return 0, fmt.Errorf("%w: multi_node shape has no containers", sim.ErrConfiguration)
		}
		for _, c := range r.MultiNode.Containers {
			v += c.CPU
		}
	default:
		switch {
		case r.Orchestrated.CPULimit != nil:
			v = *r.Orchestrated.CPULimit
		case r.Orchestrated.CPUReservation != nil:
			v = *r.Orchestrated.CPUReservation
		default:
			return 0, fmt.Errorf("%w: orchestrated shape needs cpu_limit or cpu_reservation", sim.ErrConfiguration)
		}
	}
	if !(v > 0) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: resource shape resolves to %v vCPUs, must be positive", sim.ErrConfiguration, v)
	}
	return v, nil
}

// RetryPolicy mirrors a job definition's retry strategy. MaxAttempts is the
// number of retries after the first attempt; nil means 1.
type RetryPolicy struct {
	RetryOnFailure bool `yaml:"retry_on_failure"`
	MaxAttempts    *int `yaml:"max_attempts,omitempty"`
}

// Retries returns the configured retry count, 0 when retries are disabled.
func (p RetryPolicy) Retries() int {
	if !p.RetryOnFailure {
		return 0
	}
	if p.MaxAttempts == nil {
		return 1
	}
	return *p.MaxAttempts
}
