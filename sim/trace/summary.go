package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalAdmissions         int
	UniqueEnvironments      int
	EnvironmentDistribution map[string]int // environment ID → admissions
	QueueDistribution       map[string]int // queue ID → admissions
	ShareDistribution       map[string]int // share identifier → admissions
	MeanReservedRatio       float64
	MaxReservedRatio        float64
	ReservedAdmissions      int // admissions made while some capacity was held back
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		EnvironmentDistribution: make(map[string]int),
		QueueDistribution:       make(map[string]int),
		ShareDistribution:       make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalAdmissions = len(st.Admissions)
	totalReserved := 0.0
	for _, a := range st.Admissions {
		summary.EnvironmentDistribution[a.Environment]++
		summary.QueueDistribution[a.Queue]++
		summary.ShareDistribution[a.ShareIdentifier]++
		totalReserved += a.ReservedRatio
		if a.ReservedRatio > summary.MaxReservedRatio {
			summary.MaxReservedRatio = a.ReservedRatio
		}
		if a.ReservedRatio > 0 {
			summary.ReservedAdmissions++
		}
	}
	if summary.TotalAdmissions > 0 {
		summary.MeanReservedRatio = totalReserved / float64(summary.TotalAdmissions)
	}
	summary.UniqueEnvironments = len(summary.EnvironmentDistribution)

	return summary
}
