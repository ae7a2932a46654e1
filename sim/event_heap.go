package sim

import "container/heap"

// eventEntry wraps an Event with a sequence ID for deterministic FIFO
// tie-breaking when timestamp and kind are equal.
type eventEntry struct {
	event Event
	seqID uint64
}

// EventQueue is a binary min-heap ordered by (Timestamp, Kind, seqID).
// Implements heap.Interface.
type EventQueue []eventEntry

func (q EventQueue) Len() int { return len(q) }

func (q EventQueue) Less(i, j int) bool {
	ti, tj := q[i].event.Timestamp(), q[j].event.Timestamp()
	if ti != tj {
		return ti < tj
	}
	ki, kj := q[i].event.Kind(), q[j].event.Kind()
	if ki != kj {
		return ki < kj
	}
	return q[i].seqID < q[j].seqID
}

func (q EventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *EventQueue) Push(x any) {
	*q = append(*q, x.(eventEntry))
}

func (q *EventQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = eventEntry{}
	*q = old[:n-1]
	return item
}

// Peek returns the next event without removing it, or nil if empty.
func (q EventQueue) Peek() Event {
	if len(q) == 0 {
		return nil
	}
	return q[0].event
}

func (q *EventQueue) enqueue(ev Event, seqID uint64) {
	heap.Push(q, eventEntry{event: ev, seqID: seqID})
}

func (q *EventQueue) dequeue() Event {
	if len(*q) == 0 {
		return nil
	}
	return heap.Pop(q).(eventEntry).event
}
