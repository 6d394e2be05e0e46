package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalTicks     int
	TotalEvents    int
	HaltedTicks    int
	KindCounts     map[string]int // event kind -> count
	StationLoads   map[string]int // station -> loaded events (routing and handoff)
	MaxBufferDepth map[string]int // station -> deepest buffer seen at tick end
	LastTick       int64
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		KindCounts:     make(map[string]int),
		StationLoads:   make(map[string]int),
		MaxBufferDepth: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalTicks = len(st.Ticks)
	for _, tr := range st.Ticks {
		if tr.EntryHalted {
			summary.HaltedTicks++
		}
		summary.LastTick = tr.Tick
		for _, e := range tr.Events {
			summary.TotalEvents++
			summary.KindCounts[e.Kind]++
			if e.Kind == "loaded" {
				summary.StationLoads[e.Station]++
			}
		}
		for name, depth := range tr.BufferDepth {
			if depth > summary.MaxBufferDepth[name] {
				summary.MaxBufferDepth[name] = depth
			}
		}
	}
	return summary
}
