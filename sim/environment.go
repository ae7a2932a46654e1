package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// milliPerVCPU is the resolution of capacity accounting. Environments hold
// integer milli-vCPUs so that every take is undone exactly by its release.
const milliPerVCPU = 1000

// toMilli converts vCPUs to milli-vCPUs, rounding to the nearest unit. A
// positive request never rounds down to zero.
func toMilli(vcpus float64) int64 {
	m := int64(math.Round(vcpus * milliPerVCPU))
	if m == 0 && vcpus > 0 {
		return 1
	}
	return m
}

func fromMilli(m int64) float64 {
	return float64(m) / milliPerVCPU
}

// fitsWithin reports whether used+need milli-vCPUs stay within the capacity
// left after withholding reservedRatio of maxMilli.
func fitsWithin(used, need, maxMilli int64, reservedRatio float64) bool {
	if reservedRatio == 0 {
		return used+need <= maxMilli
	}
	return float64(used+need) <= float64(maxMilli)*(1-reservedRatio)
}

// ExecutionMetric records one dispatched job.
// TotalTime = CompletionTime - Job.InsertTime.
type ExecutionMetric struct {
	Job            *Job
	Environment    string
	StartTime      float64
	CompletionTime float64
	TotalTime      float64
}

// CompletionListener is notified after an environment has released the
// capacity of a finished job.
type CompletionListener interface {
	OnCompletion(s *Simulator, environmentID string) error
}

// ComputeEnvironment is a pool of vCPU capacity that admits and runs jobs.
// Each implementation exclusively owns its capacity state; it is changed only
// by Execute and by the ReleaseEvent that Execute schedules.
type ComputeEnvironment interface {
	ID() string

	// CanExecute reports whether job fits now when reservedRatio (in [0, 1])
	// of the nominal capacity is withheld. It does not mutate anything.
	CanExecute(job *Job, reservedRatio float64) bool

	// Execute takes the job's capacity and schedules its release at
	// s.Clock() + job.RunningTime.
	Execute(s *Simulator, job *Job) (ExecutionMetric, error)

	// AddListener registers a completion observer.
	AddListener(l CompletionListener)

	// MaxCapacity is the configured vCPU ceiling.
	MaxCapacity() float64

	// UsedCapacity is the vCPU count held by jobs in flight.
	UsedCapacity() float64

	release(slotID int, vcpus float64) error
	notify(s *Simulator) error
}

// listenerSet is embedded by environments to fan completions out to queues.
type listenerSet struct {
	listeners []CompletionListener
}

func (ls *listenerSet) AddListener(l CompletionListener) {
	for _, existing := range ls.listeners {
		if existing == l {
			return
		}
	}
	ls.listeners = append(ls.listeners, l)
}

func (ls *listenerSet) notifyAll(s *Simulator, id string) error {
	for _, l := range ls.listeners {
		if err := l.OnCompletion(s, id); err != nil {
			return err
		}
	}
	return nil
}

// dispatch schedules the release event and builds the metric shared by all
// environment kinds.
func dispatch(s *Simulator, env ComputeEnvironment, slotID int, job *Job) ExecutionMetric {
	finish := s.Clock() + job.RunningTime
	s.Schedule(newReleaseEvent(finish, env, slotID, job))
	return ExecutionMetric{
		Job:            job,
		Environment:    env.ID(),
		StartTime:      s.Clock(),
		CompletionTime: finish,
		TotalTime:      finish - job.InsertTime,
	}
}

// ElasticEnvironment is an uncapacitated pool bounded only by an aggregate
// vCPU ceiling, the way a serverless container service behaves.
type ElasticEnvironment struct {
	listenerSet
	id          string
	maxCapacity float64
	maxMilli    int64
	usedMilli   int64
}

// NewElasticEnvironment returns an empty elastic pool.
func NewElasticEnvironment(id string, maxCapacity float64) (*ElasticEnvironment, error) {
	if !(maxCapacity > 0) || math.IsInf(maxCapacity, 0) {
		return nil, fmt.Errorf("%w: environment %q: max capacity must be positive, got %v", ErrConfiguration, id, maxCapacity)
	}
	return &ElasticEnvironment{id: id, maxCapacity: maxCapacity, maxMilli: toMilli(maxCapacity)}, nil
}

func (e *ElasticEnvironment) ID() string            { return e.id }
func (e *ElasticEnvironment) MaxCapacity() float64  { return e.maxCapacity }
func (e *ElasticEnvironment) UsedCapacity() float64 { return fromMilli(e.usedMilli) }

func (e *ElasticEnvironment) CanExecute(job *Job, reservedRatio float64) bool {
	return fitsWithin(e.usedMilli, toMilli(job.VCPUs), e.maxMilli, reservedRatio)
}

func (e *ElasticEnvironment) Execute(s *Simulator, job *Job) (ExecutionMetric, error) {
	if !e.CanExecute(job, 0) {
		return ExecutionMetric{}, fmt.Errorf("%w: environment %q has %v of %v vCPUs in use, cannot take %v more",
			ErrCapacityContract, e.id, e.UsedCapacity(), e.maxCapacity, job.VCPUs)
	}
	e.usedMilli += toMilli(job.VCPUs)
	logrus.Debugf("[t=%.3f] %s: dispatched job %d, %g/%g vCPUs in use", s.Clock(), e.id, job.ID, e.UsedCapacity(), e.maxCapacity)
	return dispatch(s, e, -1, job), nil
}

func (e *ElasticEnvironment) release(_ int, vcpus float64) error {
	m := toMilli(vcpus)
	if m > e.usedMilli {
		return fmt.Errorf("%w: environment %q releasing %v vCPUs with only %v in use",
			ErrCapacityContract, e.id, vcpus, e.UsedCapacity())
	}
	e.usedMilli -= m
	return nil
}

func (e *ElasticEnvironment) notify(s *Simulator) error {
	return e.notifyAll(s, e.id)
}
