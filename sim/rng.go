package sim

import (
	"hash/fnv"
	"math/rand"
)

// SimulationKey is the master seed of a run. Equal keys over equal inputs
// replay the same run draw for draw.
type SimulationKey int64

// NewSimulationKey wraps a CLI or config seed.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// SubsystemWorkload names the stream that generates job backlogs. It is
// seeded with the master seed itself.
const SubsystemWorkload = "workload"

// SubsystemQueue names the lottery stream of one job queue's policy.
func SubsystemQueue(queue string) string {
	return "queue_" + queue
}

// PartitionedRNG hands out one independent *rand.Rand per named stream, so
// that draws on one stream (e.g. a fair-share lottery) never shift another
// (e.g. backlog generation). Not safe for concurrent use; a run is
// single-threaded.
type PartitionedRNG struct {
	key     SimulationKey
	streams map[string]*rand.Rand
}

// NewPartitionedRNG returns a partition with no streams opened yet.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{key: key, streams: make(map[string]*rand.Rand)}
}

// ForSubsystem returns the stream for name, opening it on first use. Later
// calls with the same name share the instance and its position.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	r, ok := p.streams[name]
	if !ok {
		r = rand.New(rand.NewSource(p.seedFor(name)))
		p.streams[name] = r
	}
	return r
}

// Key returns the master seed.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// seedFor derives a stream seed: the master seed for the workload stream,
// otherwise the master seed XOR the FNV-1a hash of the stream name.
func (p *PartitionedRNG) seedFor(name string) int64 {
	if name == SubsystemWorkload {
		return int64(p.key)
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return int64(p.key) ^ int64(h.Sum64())
}
