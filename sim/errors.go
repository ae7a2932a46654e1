package sim

import "errors"

// Engine faults. All of them abort the run; callers match with errors.Is.
var (
	// ErrConfiguration covers invalid distribution parameters, share weights
	// that do not sum to 1, unsupported resource shapes and unsupported
	// allocation strategies.
	ErrConfiguration = errors.New("configuration error")

	// ErrCapacityContract is returned when a job is dispatched to an
	// environment that cannot currently hold it, or when released capacity
	// does not match what was taken. CanExecute must gate Execute.
	ErrCapacityContract = errors.New("capacity contract violation")

	// ErrTemporalInvariant is returned when the logical clock would move
	// backward.
	ErrTemporalInvariant = errors.New("temporal invariant violation")

	// ErrEmptySelection is returned when a scheduling policy is asked to pick
	// from an empty pending set.
	ErrEmptySelection = errors.New("empty selection")
)
