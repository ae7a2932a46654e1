package sim

import "fmt"

// DefaultShareIdentifier is assigned to jobs whose model has no share map.
const DefaultShareIdentifier = "default"

// Job is one unit of synthetic batch work. Immutable once generated.
type Job struct {
	ID              int     // position in its backlog
	InsertTime      float64 // submission time
	RunningTime     float64 // total time on an environment, all attempts included
	VCPUs           float64 // > 0
	Attempts        int     // simulated execution attempts folded into RunningTime
	ShareIdentifier string  // fair-share tenant label
	DefinitionID    string  // name of the model (job definition) that produced the job
}

func (j *Job) String() string {
	return fmt.Sprintf("job_%d{t=%.3f, run=%.3f, vcpus=%g, share=%s}",
		j.ID, j.InsertTime, j.RunningTime, j.VCPUs, j.ShareIdentifier)
}

// Validate checks the job invariants.
func (j *Job) Validate() error {
	if !(j.VCPUs > 0) {
		return fmt.Errorf("%w: job %d requires %v vCPUs, must be positive", ErrConfiguration, j.ID, j.VCPUs)
	}
	if !(j.RunningTime >= 0) {
		return fmt.Errorf("%w: job %d has running time %v, must be non-negative", ErrConfiguration, j.ID, j.RunningTime)
	}
	return nil
}
