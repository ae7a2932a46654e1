package workload

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/batchsim/batchsim/sim"
	"github.com/batchsim/batchsim/sim/dist"
)

// shareSumTolerance bounds |Σ share weights - 1|. Decimal weights such as
// 0.1 + 0.2 + 0.7 do not sum to exactly 1 in binary floating point.
const shareSumTolerance = 1e-9

// Model is one stochastic job model (a job definition plus its traffic).
type Model struct {
	DefinitionID string
	InterArrival dist.Distribution
	Service      dist.Distribution
	Shape        ResourceShape
	Retry        RetryPolicy

	// SuccessProbability is the per-attempt success chance. nil means 1.
	SuccessProbability *float64

	// Shares maps share identifier to selection probability. nil means every
	// job gets sim.DefaultShareIdentifier.
	Shares map[string]float64
}

// MarkovModel is the M/M-style shorthand: exponential inter-arrival times at
// ArrivalRate and exponential service times with mean MeanServiceTime.
type MarkovModel struct {
	DefinitionID       string
	ArrivalRate        float64
	MeanServiceTime    float64
	Shape              ResourceShape
	Retry              RetryPolicy
	SuccessProbability *float64
	Shares             map[string]float64
}

// ToModel converts to the general form.
func (m MarkovModel) ToModel() (Model, error) {
	interArrival, err := dist.NewExponential(m.ArrivalRate)
	if err != nil {
		return Model{}, fmt.Errorf("%w: model %q arrival rate: %v", sim.ErrConfiguration, m.DefinitionID, err)
	}
	if !(m.MeanServiceTime > 0) {
		return Model{}, fmt.Errorf("%w: model %q: mean service time must be positive, got %v",
			sim.ErrConfiguration, m.DefinitionID, m.MeanServiceTime)
	}
	service, err := dist.NewExponential(1 / m.MeanServiceTime)
	if err != nil {
		return Model{}, fmt.Errorf("%w: model %q service rate: %v", sim.ErrConfiguration, m.DefinitionID, err)
	}
	return Model{
		DefinitionID:       m.DefinitionID,
		InterArrival:       interArrival,
		Service:            service,
		Shape:              m.Shape,
		Retry:              m.Retry,
		SuccessProbability: m.SuccessProbability,
		Shares:             m.Shares,
	}, nil
}

// compiledModel is a validated Model with everything the generator needs
// resolved up front.
type compiledModel struct {
	definitionID string
	interArrival dist.Distribution
	service      dist.Distribution
	vcpus        float64
	retries      int
	successProb  float64
	shareIDs     []string // sorted; nil when the model has no share map
	shareSel     *dist.WeightedSelector
}

func compileModel(m Model) (*compiledModel, error) {
	prefix := fmt.Sprintf("model %q", m.DefinitionID)
	if m.InterArrival == nil || m.Service == nil {
		return nil, fmt.Errorf("%w: %s: inter-arrival and service distributions are required", sim.ErrConfiguration, prefix)
	}
	vcpus, err := m.Shape.VCPUs()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", prefix, err)
	}
	retries := m.Retry.Retries()
	if retries < 0 {
		return nil, fmt.Errorf("%w: %s: max_attempts must be non-negative, got %d", sim.ErrConfiguration, prefix, retries)
	}
	p := 1.0
	if m.SuccessProbability != nil {
		p = *m.SuccessProbability
		if !(p > 0 && p <= 1) {
			return nil, fmt.Errorf("%w: %s: success probability must be in (0, 1], got %v", sim.ErrConfiguration, prefix, p)
		}
	}

	cm := &compiledModel{
		definitionID: m.DefinitionID,
		interArrival: m.InterArrival,
		service:      m.Service,
		vcpus:        vcpus,
		retries:      retries,
		successProb:  p,
	}
	if m.Shares == nil {
		return cm, nil
	}

	ids := make([]string, 0, len(m.Shares))
	for id := range m.Shares {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	weights := make([]float64, len(ids))
	for i, id := range ids {
		weights[i] = m.Shares[id]
	}
	if sum := floats.Sum(weights); len(weights) == 0 || math.Abs(sum-1) > shareSumTolerance {
		return nil, fmt.Errorf("%w: %s: share weights must sum to 1, got %v", sim.ErrConfiguration, prefix, sum)
	}
	sel, err := dist.NewWeightedSelector(weights)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", sim.ErrConfiguration, prefix, err)
	}
	cm.shareIDs = ids
	cm.shareSel = sel
	return cm, nil
}
