// sim/simulator.go
package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Simulator owns the logical clock and the pending event set. It is the
// single synchronisation point of a run: every state change happens inside
// an event handler it dispatches, one at a time.
type Simulator struct {
	clock      float64
	events     EventQueue
	nextSeqID  uint64
	dispatched int
	running    bool
}

// NewSimulator returns an empty simulator with the clock at zero.
func NewSimulator() *Simulator {
	return &Simulator{events: make(EventQueue, 0)}
}

// Clock returns the current logical time.
func (s *Simulator) Clock() float64 {
	return s.clock
}

// SetClock moves the clock forward to t. Moving it backward fails with
// ErrTemporalInvariant.
func (s *Simulator) SetClock(t float64) error {
	if math.IsNaN(t) || t < s.clock {
		return fmt.Errorf("%w: cannot move clock from %v back to %v", ErrTemporalInvariant, s.clock, t)
	}
	s.clock = t
	return nil
}

// Schedule adds an event. Handlers may call it while the loop is running,
// including for the current time; the loop observes the event on its next
// iteration.
func (s *Simulator) Schedule(ev Event) {
	s.nextSeqID++
	s.events.enqueue(ev, s.nextSeqID)
}

// Pending returns the number of scheduled, not yet dispatched events.
func (s *Simulator) Pending() int {
	return s.events.Len()
}

// Dispatched returns the number of events executed so far.
func (s *Simulator) Dispatched() int {
	return s.dispatched
}

// Step dispatches the earliest pending event. It reports false when there
// was nothing to dispatch.
func (s *Simulator) Step() (bool, error) {
	ev := s.events.dequeue()
	if ev == nil {
		return false, nil
	}
	if err := s.SetClock(ev.Timestamp()); err != nil {
		return false, fmt.Errorf("dispatching %s event: %w", ev.Kind(), err)
	}
	logrus.Tracef("[t=%.3f] Executing %T", s.clock, ev)
	s.dispatched++
	if err := ev.Execute(s); err != nil {
		return false, fmt.Errorf("%s event at t=%v: %w", ev.Kind(), ev.Timestamp(), err)
	}
	return true, nil
}

// Run drains the event queue. The first handler error aborts the run.
func (s *Simulator) Run() error {
	if s.running {
		panic("Simulator.Run() re-entered from an event handler")
	}
	s.running = true
	defer func() { s.running = false }()

	for {
		ok, err := s.Step()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	logrus.Debugf("[t=%.3f] Simulation ended after %d events", s.clock, s.dispatched)
	return nil
}
