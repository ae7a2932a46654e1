package sim

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// AllocationStrategy selects the slot a discrete environment serves a job from.
type AllocationStrategy string

const (
	// BestFit considers only the smallest slot whose nominal size covers the
	// job, and admits only if that slot currently has room.
	BestFit AllocationStrategy = "best-fit"
	// BestFitProgressive takes the smallest slot that currently has room,
	// whatever its nominal size.
	BestFitProgressive AllocationStrategy = "best-fit-progressive"
	// SpotCapacityOptimized and SpotPriceCapacityOptimized model capacity
	// auctions and are rejected at construction.
	SpotCapacityOptimized      AllocationStrategy = "spot-capacity-optimized"
	SpotPriceCapacityOptimized AllocationStrategy = "spot-price-capacity-optimized"
)

// OptimalInstanceType is the pseudo instance type that stands for the
// c4, m4 and r4 instance classes.
const OptimalInstanceType = "optimal"

var optimalInstanceClasses = []string{"c4", "m4", "r4"}

// ComputeSlot is a snapshot of one instance of a discrete environment.
// 0 <= Remaining <= Total at all times.
type ComputeSlot struct {
	ID           int
	InstanceType string
	Total        float64
	Remaining    float64
}

// slot is the live state behind a ComputeSlot, in milli-vCPUs.
type slot struct {
	instanceType string
	total        int64
	remaining    int64
}

// DiscreteConfig describes a discrete instance-slot environment.
type DiscreteConfig struct {
	InstanceClasses    []string
	InstanceTypes      []string
	AllocationStrategy AllocationStrategy
	MaxCapacity        float64
}

// DiscreteEnvironment packs jobs onto fixed-size instance slots, ordered
// ascending by capacity.
type DiscreteEnvironment struct {
	listenerSet
	id          string
	strategy    AllocationStrategy
	maxCapacity float64
	maxMilli    int64
	slots       []*slot       // ascending total; index is the slot ID
	inFlight    map[int]int64 // slot ID -> milli-vCPUs of running jobs
}

// NewDiscreteEnvironment expands the configured classes and types into slots.
func NewDiscreteEnvironment(id string, cfg DiscreteConfig) (*DiscreteEnvironment, error) {
	switch cfg.AllocationStrategy {
	case BestFit, BestFitProgressive:
	case SpotCapacityOptimized, SpotPriceCapacityOptimized:
		return nil, fmt.Errorf("%w: environment %q: allocation strategy %q is not supported (spot capacity is not simulated)",
			ErrConfiguration, id, cfg.AllocationStrategy)
	default:
		return nil, fmt.Errorf("%w: environment %q: unknown allocation strategy %q", ErrConfiguration, id, cfg.AllocationStrategy)
	}
	if !(cfg.MaxCapacity > 0) || math.IsInf(cfg.MaxCapacity, 0) {
		return nil, fmt.Errorf("%w: environment %q: max capacity must be positive, got %v", ErrConfiguration, id, cfg.MaxCapacity)
	}

	types, err := resolveInstanceTypes(cfg.InstanceClasses, cfg.InstanceTypes)
	if err != nil {
		return nil, fmt.Errorf("environment %q: %w", id, err)
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("%w: environment %q declares no instance classes or types", ErrConfiguration, id)
	}

	slots := make([]*slot, len(types))
	for i, t := range types {
		capacity := int64(instanceTypeVCPUs[t]) * milliPerVCPU
		slots[i] = &slot{instanceType: t, total: capacity, remaining: capacity}
	}
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].total < slots[j].total })

	return &DiscreteEnvironment{
		id:          id,
		strategy:    cfg.AllocationStrategy,
		maxCapacity: cfg.MaxCapacity,
		maxMilli:    toMilli(cfg.MaxCapacity),
		slots:       slots,
		inFlight:    make(map[int]int64),
	}, nil
}

// resolveInstanceTypes turns classes into their median size and appends the
// explicit types, expanding the "optimal" pseudo type into its classes.
func resolveInstanceTypes(classes, types []string) ([]string, error) {
	classes = append([]string(nil), classes...)
	var explicit []string
	for _, t := range types {
		if t == OptimalInstanceType {
			classes = append(classes, optimalInstanceClasses...)
			continue
		}
		explicit = append(explicit, t)
	}

	var out []string
	for _, c := range classes {
		t, err := instanceClassToType(c)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	for _, t := range explicit {
		if _, ok := instanceTypeVCPUs[t]; !ok {
			return nil, fmt.Errorf("%w: unknown instance type %q", ErrConfiguration, t)
		}
		out = append(out, t)
	}
	return out, nil
}

// instanceClassToType picks the median-capacity size of an instance class.
// Ties in vCPU count keep the table's name order.
func instanceClassToType(class string) (string, error) {
	prefix := class + "."
	var members []string
	for _, name := range InstanceTypes() {
		if strings.HasPrefix(name, prefix) {
			members = append(members, name)
		}
	}
	if len(members) == 0 {
		return "", fmt.Errorf("%w: unknown instance class %q", ErrConfiguration, class)
	}
	sort.SliceStable(members, func(i, j int) bool {
		return instanceTypeVCPUs[members[i]] < instanceTypeVCPUs[members[j]]
	})
	return members[len(members)/2], nil
}

func (e *DiscreteEnvironment) ID() string                             { return e.id }
func (e *DiscreteEnvironment) MaxCapacity() float64                   { return e.maxCapacity }
func (e *DiscreteEnvironment) AllocationStrategy() AllocationStrategy { return e.strategy }

// UsedCapacity sums Total - Remaining over all slots.
func (e *DiscreteEnvironment) UsedCapacity() float64 {
	return fromMilli(e.usedMilli())
}

func (e *DiscreteEnvironment) usedMilli() int64 {
	var used int64
	for _, sl := range e.slots {
		used += sl.total - sl.remaining
	}
	return used
}

// Slots returns a snapshot of the slots in ascending capacity order.
func (e *DiscreteEnvironment) Slots() []ComputeSlot {
	out := make([]ComputeSlot, len(e.slots))
	for i, sl := range e.slots {
		out[i] = ComputeSlot{
			ID:           i,
			InstanceType: sl.instanceType,
			Total:        fromMilli(sl.total),
			Remaining:    fromMilli(sl.remaining),
		}
	}
	return out
}

// InFlight returns the vCPUs of running jobs on the given slot.
func (e *DiscreteEnvironment) InFlight(slotID int) float64 {
	return fromMilli(e.inFlight[slotID])
}

func (e *DiscreteEnvironment) CanExecute(job *Job, reservedRatio float64) bool {
	need := toMilli(job.VCPUs)
	if !fitsWithin(e.usedMilli(), need, e.maxMilli, reservedRatio) {
		return false
	}
	return e.findSlot(need) >= 0
}

func (e *DiscreteEnvironment) Execute(s *Simulator, job *Job) (ExecutionMetric, error) {
	need := toMilli(job.VCPUs)
	id := e.findSlot(need)
	if id < 0 {
		return ExecutionMetric{}, fmt.Errorf("%w: environment %q has no slot that can execute a job requiring %v vCPUs",
			ErrCapacityContract, e.id, job.VCPUs)
	}
	sl := e.slots[id]
	sl.remaining -= need
	e.inFlight[id] += need
	logrus.Debugf("[t=%.3f] %s: dispatched job %d to slot %d (%s), %g/%g vCPUs left",
		s.Clock(), e.id, job.ID, id, sl.instanceType, fromMilli(sl.remaining), fromMilli(sl.total))
	return dispatch(s, e, id, job), nil
}

// findSlot applies the allocation strategy and returns a slot ID, or -1.
// Slots are scanned in ascending capacity order.
func (e *DiscreteEnvironment) findSlot(need int64) int {
	switch e.strategy {
	case BestFit:
		for i, sl := range e.slots {
			if sl.total >= need {
				if sl.remaining >= need {
					return i
				}
				return -1
			}
		}
	case BestFitProgressive:
		for i, sl := range e.slots {
			if sl.remaining >= need {
				return i
			}
		}
	}
	return -1
}

func (e *DiscreteEnvironment) release(slotID int, vcpus float64) error {
	if slotID < 0 || slotID >= len(e.slots) {
		return fmt.Errorf("%w: environment %q has no slot %d", ErrCapacityContract, e.id, slotID)
	}
	sl := e.slots[slotID]
	m := toMilli(vcpus)
	if m > e.inFlight[slotID] || sl.remaining+m > sl.total {
		return fmt.Errorf("%w: environment %q slot %d releasing %v vCPUs with only %v in flight",
			ErrCapacityContract, e.id, slotID, vcpus, e.InFlight(slotID))
	}
	sl.remaining += m
	e.inFlight[slotID] -= m
	if e.inFlight[slotID] == 0 {
		delete(e.inFlight, slotID)
	}
	return nil
}

func (e *DiscreteEnvironment) notify(s *Simulator) error {
	return e.notifyAll(s, e.id)
}
