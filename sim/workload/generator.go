package workload

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/batchsim/batchsim/sim"
	"github.com/batchsim/batchsim/sim/dist"
)

// DefaultJobsPerQueue is the backlog size generated for each queue.
const DefaultJobsPerQueue = 20000

// Generator synthesizes job backlogs from a fixed set of models.
type Generator struct {
	models []*compiledModel
}

// NewGenerator validates every model before anything is generated. Share maps
// must sum to 1 and resource shapes must resolve.
func NewGenerator(models []Model) (*Generator, error) {
	if len(models) == 0 {
		return nil, fmt.Errorf("%w: at least one job model is required", sim.ErrConfiguration)
	}
	g := &Generator{models: make([]*compiledModel, len(models))}
	for i, m := range models {
		cm, err := compileModel(m)
		if err != nil {
			return nil, err
		}
		g.models[i] = cm
	}
	return g, nil
}

// Generate produces n jobs with IDs 0..n-1 and non-decreasing insert times.
// Per job, in draw order: a uniform model pick, one inter-arrival draw, the
// attempt count, one service draw and the share identifier.
func (g *Generator) Generate(n int, src dist.Source) ([]*sim.Job, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: job count must be non-negative, got %d", sim.ErrConfiguration, n)
	}
	jobs := make([]*sim.Job, n)
	clock := 0.0
	for i := 0; i < n; i++ {
		m := g.models[g.pickModel(src)]
		clock += m.interArrival.NextTime(src)

		attempts, err := dist.Attempts(m.successProb, src)
		if err != nil {
			return nil, fmt.Errorf("%w: model %q: %v", sim.ErrConfiguration, m.definitionID, err)
		}
		if attempts > m.retries+1 {
			attempts = m.retries + 1
		}
		runningTime := m.service.NextTime(src) * float64(attempts)

		share := sim.DefaultShareIdentifier
		if m.shareSel != nil {
			share = m.shareIDs[m.shareSel.Select(src)]
		}

		jobs[i] = &sim.Job{
			ID:              i,
			InsertTime:      clock,
			RunningTime:     runningTime,
			VCPUs:           m.vcpus,
			Attempts:        attempts,
			ShareIdentifier: share,
			DefinitionID:    m.definitionID,
		}
	}
	if n > 0 {
		logrus.Debugf("generated %d jobs over [0, %.3f]", n, clock)
	}
	return jobs, nil
}

func (g *Generator) pickModel(src dist.Source) int {
	idx := int(math.Floor(src.Float64() * float64(len(g.models))))
	if idx >= len(g.models) {
		idx = len(g.models) - 1
	}
	return idx
}
