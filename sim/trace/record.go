// Package trace provides admission-decision recording for job queue analysis.
// It has no dependencies on sim/ or sim/cluster/ and stores pure data types.
package trace

// AdmissionRecord captures a single job admission.
type AdmissionRecord struct {
	Queue           string  `json:"queue"`
	Environment     string  `json:"environment"`
	JobID           int     `json:"job_id"`
	ShareIdentifier string  `json:"share_identifier"`
	DefinitionID    string  `json:"definition_id"`
	Clock           float64 `json:"clock"`
	ReservedRatio   float64 `json:"reserved_ratio"`
	PendingAfter    int     `json:"pending_after"` // queue depth once the job left it
	UsedAfter       float64 `json:"used_after"`    // environment vCPUs in use after dispatch
}
