package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/batchsim/batchsim/sim/dist"
)

// SchedulingPolicy decides which pending job a queue offers next and how much
// environment capacity to hold back. Implementations only read the pending
// snapshot they are given.
type SchedulingPolicy interface {
	// PickFrom returns one job from pending. Fails with ErrEmptySelection
	// when pending is empty.
	PickFrom(pending []*Job) (*Job, error)

	// ReservedRatio returns the fraction in [0, 1] of each environment's
	// capacity that must stay free while pending is waiting.
	ReservedRatio(pending []*Job) float64

	// Name identifies the policy in logs and traces.
	Name() string
}

// FIFOPolicy offers the earliest-inserted job and reserves nothing.
type FIFOPolicy struct{}

// NewFIFOPolicy returns the first-in-first-out policy.
func NewFIFOPolicy() *FIFOPolicy { return &FIFOPolicy{} }

func (p *FIFOPolicy) Name() string { return "fifo" }

// PickFrom returns pending[0]; the queue keeps pending in push order.
func (p *FIFOPolicy) PickFrom(pending []*Job) (*Job, error) {
	if len(pending) == 0 {
		return nil, fmt.Errorf("%w: no job to select", ErrEmptySelection)
	}
	return pending[0], nil
}

func (p *FIFOPolicy) ReservedRatio(_ []*Job) float64 { return 0 }

// Share configures the weight factor of one share identifier.
// A larger weight factor lowers the share's relative weight.
type Share struct {
	Identifier   string
	WeightFactor float64
}

// FairSharePolicy is a lottery over share identifiers. Each share present in
// the pending set is represented by its first pending job; its ticket count
// is representative.VCPUs / weightFactor. Identifiers without a configured
// share get a weight factor of 1.
type FairSharePolicy struct {
	computeReservation float64 // in [0, 1]
	weightFactors      map[string]float64
	rng                dist.Source
}

// NewFairSharePolicy builds a fair-share policy. computeReservationPercent is
// in [0, 100]; src supplies the lottery draws.
func NewFairSharePolicy(computeReservationPercent float64, shares []Share, src dist.Source) (*FairSharePolicy, error) {
	if math.IsNaN(computeReservationPercent) || computeReservationPercent < 0 || computeReservationPercent > 100 {
		return nil, fmt.Errorf("%w: compute reservation must be in [0, 100], got %v", ErrConfiguration, computeReservationPercent)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: fair-share policy needs a random source", ErrConfiguration)
	}
	factors := make(map[string]float64, len(shares))
	for _, s := range shares {
		if !(s.WeightFactor > 0) || math.IsInf(s.WeightFactor, 0) {
			return nil, fmt.Errorf("%w: share %q: weight factor must be positive, got %v", ErrConfiguration, s.Identifier, s.WeightFactor)
		}
		if _, dup := factors[s.Identifier]; dup {
			return nil, fmt.Errorf("%w: share %q declared twice", ErrConfiguration, s.Identifier)
		}
		factors[s.Identifier] = s.WeightFactor
	}
	return &FairSharePolicy{
		computeReservation: computeReservationPercent / 100,
		weightFactors:      factors,
		rng:                src,
	}, nil
}

func (p *FairSharePolicy) Name() string { return "fair-share" }

// ComputeReservation returns the reservation factor in [0, 1].
func (p *FairSharePolicy) ComputeReservation() float64 { return p.computeReservation }

// WeightFactor returns the configured factor for id, or 1 for an
// unconfigured identifier.
func (p *FairSharePolicy) WeightFactor(id string) float64 {
	if f, ok := p.weightFactors[id]; ok {
		return f
	}
	return 1
}

func (p *FairSharePolicy) PickFrom(pending []*Job) (*Job, error) {
	if len(pending) == 0 {
		return nil, fmt.Errorf("%w: no job to select", ErrEmptySelection)
	}
	reps := representatives(pending)
	weights := make([]float64, len(reps))
	for i, job := range reps {
		weights[i] = job.VCPUs / p.WeightFactor(job.ShareIdentifier)
	}
	idx, err := dist.SelectIndex(weights, p.rng)
	if err != nil {
		if errors.Is(err, dist.ErrEmptyWeights) {
			return nil, fmt.Errorf("%w: %v", ErrEmptySelection, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return reps[idx], nil
}

// ReservedRatio is computeReservation ^ (number of distinct active shares),
// so the headroom shrinks as more tenants compete.
func (p *FairSharePolicy) ReservedRatio(pending []*Job) float64 {
	return math.Pow(p.computeReservation, float64(activeShares(pending)))
}

// representatives returns the first pending job of each share identifier,
// in order of first appearance.
func representatives(pending []*Job) []*Job {
	seen := make(map[string]bool)
	var reps []*Job
	for _, job := range pending {
		if !seen[job.ShareIdentifier] {
			seen[job.ShareIdentifier] = true
			reps = append(reps, job)
		}
	}
	return reps
}

func activeShares(pending []*Job) int {
	ids := make(map[string]struct{})
	for _, job := range pending {
		ids[job.ShareIdentifier] = struct{}{}
	}
	return len(ids)
}
