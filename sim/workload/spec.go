package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/batchsim/batchsim/sim"
)

// Spec is the top-level workload configuration.
// Loaded from YAML via LoadSpec(path).
type Spec struct {
	Version string      `yaml:"version,omitempty"`
	Models  []ModelSpec `yaml:"models"`
}

// ModelSpec defines one job definition and its traffic. Either Markov or
// both InterArrival and Service must be set.
type ModelSpec struct {
	Name               string             `yaml:"name"` // becomes the job definition id
	InterArrival       *DistSpec          `yaml:"inter_arrival,omitempty"`
	Service            *DistSpec          `yaml:"service,omitempty"`
	Markov             *MarkovSpec        `yaml:"markov,omitempty"`
	Resources          ResourceShape      `yaml:"resources"`
	Retry              RetryPolicy        `yaml:"retry,omitempty"`
	SuccessProbability *float64           `yaml:"success_probability,omitempty"`
	Shares             map[string]float64 `yaml:"shares,omitempty"`
}

// MarkovSpec is the exponential/exponential shorthand.
type MarkovSpec struct {
	ArrivalRate     float64 `yaml:"arrival_rate"`
	MeanServiceTime float64 `yaml:"mean_service_time"`
}

// LoadSpec reads and parses a YAML workload specification file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	return ParseSpec(data)
}

// ParseSpec decodes a YAML workload document.
func ParseSpec(data []byte) (*Spec, error) {
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("%w: parsing workload spec: %v", sim.ErrConfiguration, err)
	}
	return &spec, nil
}

// Validate checks that all models in the spec are valid.
func (s *Spec) Validate() error {
	models, err := s.ToModels()
	if err != nil {
		return err
	}
	_, err = NewGenerator(models)
	return err
}

// ToModels converts the spec into generator models, in declaration order.
func (s *Spec) ToModels() ([]Model, error) {
	if len(s.Models) == 0 {
		return nil, fmt.Errorf("%w: workload spec declares no models", sim.ErrConfiguration)
	}
	seen := make(map[string]bool, len(s.Models))
	models := make([]Model, 0, len(s.Models))
	for i, ms := range s.Models {
		if ms.Name == "" {
			return nil, fmt.Errorf("%w: model[%d]: name is required", sim.ErrConfiguration, i)
		}
		if seen[ms.Name] {
			return nil, fmt.Errorf("%w: model %q declared twice", sim.ErrConfiguration, ms.Name)
		}
		seen[ms.Name] = true
		m, err := ms.toModel()
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}

func (ms ModelSpec) toModel() (Model, error) {
	hasGeneral := ms.InterArrival != nil || ms.Service != nil
	switch {
	case ms.Markov != nil && hasGeneral:
		return Model{}, fmt.Errorf("%w: model %q: markov cannot be combined with inter_arrival/service",
			sim.ErrConfiguration, ms.Name)
	case ms.Markov != nil:
		return MarkovModel{
			DefinitionID:       ms.Name,
			ArrivalRate:        ms.Markov.ArrivalRate,
			MeanServiceTime:    ms.Markov.MeanServiceTime,
			Shape:              ms.Resources,
			Retry:              ms.Retry,
			SuccessProbability: ms.SuccessProbability,
			Shares:             ms.Shares,
		}.ToModel()
	case ms.InterArrival == nil || ms.Service == nil:
		return Model{}, fmt.Errorf("%w: model %q: needs markov or both inter_arrival and service",
			sim.ErrConfiguration, ms.Name)
	}

	interArrival, err := NewDistribution(*ms.InterArrival)
	if err != nil {
		return Model{}, fmt.Errorf("model %q inter_arrival: %w", ms.Name, err)
	}
	service, err := NewDistribution(*ms.Service)
	if err != nil {
		return Model{}, fmt.Errorf("model %q service: %w", ms.Name, err)
	}
	return Model{
		DefinitionID:       ms.Name,
		InterArrival:       interArrival,
		Service:            service,
		Shape:              ms.Resources,
		Retry:              ms.Retry,
		SuccessProbability: ms.SuccessProbability,
		Shares:             ms.Shares,
	}, nil
}
