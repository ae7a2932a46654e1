package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/batchsim/batchsim/sim/dist"
)

// EnvironmentType selects the capacity model of a compute environment.
type EnvironmentType string

const (
	EnvironmentElastic  EnvironmentType = "elastic"  // fractional vCPU pool (Fargate-like)
	EnvironmentDiscrete EnvironmentType = "discrete" // fixed-size instance slots (EC2-like)
)

// Policy type names accepted in a topology file.
const (
	PolicyFIFO      = "fifo"
	PolicyFairShare = "fair-share"
)

// EnvironmentConfig describes one compute environment of a topology.
type EnvironmentConfig struct {
	Name               string          `yaml:"name"`
	Type               EnvironmentType `yaml:"type"`
	MaxVCPUs           float64         `yaml:"max_vcpus"`
	Managed            *bool           `yaml:"managed,omitempty"` // nil = managed
	InstanceClasses    []string        `yaml:"instance_classes,omitempty"`
	InstanceTypes      []string        `yaml:"instance_types,omitempty"`
	AllocationStrategy string          `yaml:"allocation_strategy,omitempty"` // discrete only; default best-fit
}

// ShareConfig is one fair-share weight factor.
type ShareConfig struct {
	ShareIdentifier string  `yaml:"share_identifier"`
	WeightFactor    float64 `yaml:"weight_factor"`
}

// PolicyConfig selects a queue's scheduling policy.
type PolicyConfig struct {
	Type               string        `yaml:"type"`
	ComputeReservation float64       `yaml:"compute_reservation,omitempty"` // percent, fair-share only
	Shares             []ShareConfig `yaml:"shares,omitempty"`
}

// QueueConfig describes one job queue. A missing scheduling policy means FIFO.
type QueueConfig struct {
	Name                string        `yaml:"name"`
	SchedulingPolicy    *PolicyConfig `yaml:"scheduling_policy,omitempty"`
	ComputeEnvironments []string      `yaml:"compute_environments"`
}

// Topology is the static shape of the simulated deployment: the environments
// and the queues that feed them. Environments may be shared between queues.
type Topology struct {
	Environments []EnvironmentConfig `yaml:"environments"`
	Queues       []QueueConfig       `yaml:"queues"`
}

// LoadTopology reads and parses a YAML topology file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadTopology(path string) (*Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading topology: %w", err)
	}
	return ParseTopology(data)
}

// ParseTopology decodes a YAML topology document.
func ParseTopology(data []byte) (*Topology, error) {
	var t Topology
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: parsing topology: %v", ErrConfiguration, err)
	}
	return &t, nil
}

// Validate checks names, references and policy parameters. It does not
// resolve instance types; BuildEnvironment does that.
func (t *Topology) Validate() error {
	if len(t.Queues) == 0 {
		return fmt.Errorf("%w: topology declares no queues", ErrConfiguration)
	}
	envs := make(map[string]bool, len(t.Environments))
	for i, e := range t.Environments {
		if e.Name == "" {
			return fmt.Errorf("%w: environment[%d]: name is required", ErrConfiguration, i)
		}
		if envs[e.Name] {
			return fmt.Errorf("%w: environment %q declared twice", ErrConfiguration, e.Name)
		}
		envs[e.Name] = true
		if e.Managed != nil && !*e.Managed {
			return fmt.Errorf("%w: environment %q: only managed compute environments are supported", ErrConfiguration, e.Name)
		}
		switch e.Type {
		case EnvironmentElastic, EnvironmentDiscrete:
		default:
			return fmt.Errorf("%w: environment %q: unknown type %q; valid: elastic, discrete", ErrConfiguration, e.Name, e.Type)
		}
		if !(e.MaxVCPUs > 0) {
			return fmt.Errorf("%w: environment %q: max_vcpus must be positive, got %v", ErrConfiguration, e.Name, e.MaxVCPUs)
		}
	}

	queues := make(map[string]bool, len(t.Queues))
	for i, q := range t.Queues {
		if q.Name == "" {
			return fmt.Errorf("%w: queue[%d]: name is required", ErrConfiguration, i)
		}
		if queues[q.Name] {
			return fmt.Errorf("%w: queue %q declared twice", ErrConfiguration, q.Name)
		}
		queues[q.Name] = true
		for _, ref := range q.ComputeEnvironments {
			if !envs[ref] {
				return fmt.Errorf("%w: queue %q references unknown environment %q", ErrConfiguration, q.Name, ref)
			}
		}
		if err := q.SchedulingPolicy.validate(); err != nil {
			return fmt.Errorf("queue %q: %w", q.Name, err)
		}
	}
	return nil
}

// Environment returns the named environment config.
func (t *Topology) Environment(name string) (EnvironmentConfig, bool) {
	for _, e := range t.Environments {
		if e.Name == name {
			return e, true
		}
	}
	return EnvironmentConfig{}, false
}

func (p *PolicyConfig) validate() error {
	if p == nil {
		return nil
	}
	switch p.Type {
	case PolicyFIFO:
		if len(p.Shares) > 0 || p.ComputeReservation != 0 {
			return fmt.Errorf("%w: fifo policy takes no shares or compute_reservation", ErrConfiguration)
		}
	case PolicyFairShare:
		if p.ComputeReservation < 0 || p.ComputeReservation > 100 {
			return fmt.Errorf("%w: compute_reservation must be in [0, 100], got %v", ErrConfiguration, p.ComputeReservation)
		}
	default:
		return fmt.Errorf("%w: unknown scheduling policy %q; valid: fifo, fair-share", ErrConfiguration, p.Type)
	}
	return nil
}

// BuildEnvironment constructs the environment described by c.
func BuildEnvironment(c EnvironmentConfig) (ComputeEnvironment, error) {
	if c.Managed != nil && !*c.Managed {
		return nil, fmt.Errorf("%w: environment %q: only managed compute environments are supported", ErrConfiguration, c.Name)
	}
	switch c.Type {
	case EnvironmentElastic:
		return NewElasticEnvironment(c.Name, c.MaxVCPUs)
	case EnvironmentDiscrete:
		strategy := AllocationStrategy(c.AllocationStrategy)
		if strategy == "" {
			strategy = BestFit
		}
		return NewDiscreteEnvironment(c.Name, DiscreteConfig{
			InstanceClasses:    c.InstanceClasses,
			InstanceTypes:      c.InstanceTypes,
			AllocationStrategy: strategy,
			MaxCapacity:        c.MaxVCPUs,
		})
	default:
		return nil, fmt.Errorf("%w: environment %q: unknown type %q", ErrConfiguration, c.Name, c.Type)
	}
}

// BuildPolicy constructs the scheduling policy described by p. A nil config
// yields FIFO. src feeds the fair-share lottery and is ignored by FIFO.
func BuildPolicy(p *PolicyConfig, src dist.Source) (SchedulingPolicy, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if p == nil || p.Type == PolicyFIFO {
		return NewFIFOPolicy(), nil
	}
	shares := make([]Share, len(p.Shares))
	for i, s := range p.Shares {
		shares[i] = Share{Identifier: s.ShareIdentifier, WeightFactor: s.WeightFactor}
	}
	return NewFairSharePolicy(p.ComputeReservation, shares, src)
}
