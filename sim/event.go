package sim

import "github.com/sirupsen/logrus"

// EventKind classifies simulation events. At equal timestamps, events of a
// lower kind are dispatched first.
type EventKind int

const (
	// EventKindRelease returns a finished job's capacity to its environment.
	EventKindRelease EventKind = iota
	// EventKindArrival submits a job to a queue.
	EventKindArrival
	// EventKindGeneric is used by FuncEvent.
	EventKindGeneric
)

func (k EventKind) String() string {
	switch k {
	case EventKindRelease:
		return "JOB_COMPLETED"
	case EventKindArrival:
		return "JOB_SUBMITTED"
	default:
		return "GENERIC"
	}
}

// Event is a single-use unit of work dispatched by the Simulator at its
// timestamp. Execute runs synchronously and may schedule further events.
type Event interface {
	Timestamp() float64
	Kind() EventKind
	Execute(*Simulator) error
}

// ArrivalEvent pushes a job into a queue at the job's insertion time.
type ArrivalEvent struct {
	time  float64
	Job   *Job
	Queue *JobQueue
}

// NewArrivalEvent schedules job to enter queue at job.InsertTime.
func NewArrivalEvent(job *Job, queue *JobQueue) *ArrivalEvent {
	return &ArrivalEvent{time: job.InsertTime, Job: job, Queue: queue}
}

func (e *ArrivalEvent) Timestamp() float64 { return e.time }
func (e *ArrivalEvent) Kind() EventKind    { return EventKindArrival }

// Execute enqueues the job and lets the queue try to admit it.
func (e *ArrivalEvent) Execute(s *Simulator) error {
	logrus.Debugf("<< Arrival: job %d (%s) on %s at t=%.3f", e.Job.ID, e.Job.ShareIdentifier, e.Queue.ID(), e.time)
	return e.Queue.Push(s, e.Job)
}

// ReleaseEvent marks the completion of a dispatched job. It carries exactly
// what is needed to undo the dispatch: the environment, the slot that served
// the job (-1 for elastic pools) and the vCPUs taken.
type ReleaseEvent struct {
	time          float64
	env           ComputeEnvironment
	EnvironmentID string
	SlotID        int
	VCPUs         float64
	Job           *Job
}

func newReleaseEvent(time float64, env ComputeEnvironment, slotID int, job *Job) *ReleaseEvent {
	return &ReleaseEvent{
		time:          time,
		env:           env,
		EnvironmentID: env.ID(),
		SlotID:        slotID,
		VCPUs:         job.VCPUs,
		Job:           job,
	}
}

func (e *ReleaseEvent) Timestamp() float64 { return e.time }
func (e *ReleaseEvent) Kind() EventKind    { return EventKindRelease }

// Execute restores the capacity and notifies the environment's listeners.
func (e *ReleaseEvent) Execute(s *Simulator) error {
	logrus.Debugf("<< Completion: job %d on %s (slot %d, %.2f vCPUs) at t=%.3f",
		e.Job.ID, e.EnvironmentID, e.SlotID, e.VCPUs, e.time)
	if err := e.env.release(e.SlotID, e.VCPUs); err != nil {
		return err
	}
	return e.env.notify(s)
}

// FuncEvent wraps an arbitrary handler.
type FuncEvent struct {
	time    float64
	handler func(*Simulator) error
}

// NewFuncEvent returns an event that calls handler at time.
func NewFuncEvent(time float64, handler func(*Simulator) error) *FuncEvent {
	return &FuncEvent{time: time, handler: handler}
}

func (e *FuncEvent) Timestamp() float64         { return e.time }
func (e *FuncEvent) Kind() EventKind            { return EventKindGeneric }
func (e *FuncEvent) Execute(s *Simulator) error { return e.handler(s) }
