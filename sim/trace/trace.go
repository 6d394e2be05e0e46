package trace

// TraceLevel controls the verbosity of tick tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTicks captures every tick's events and end-of-tick state.
	TraceLevelTicks TraceLevel = "ticks"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelTicks: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects tick records during a simulation.
type SimulationTrace struct {
	Config TraceConfig
	Ticks  []TickRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config: config,
		Ticks:  make([]TickRecord, 0),
	}
}

// RecordTick appends a tick record.
func (st *SimulationTrace) RecordTick(record TickRecord) {
	st.Ticks = append(st.Ticks, record)
}

// ItemHistory returns, in order, every event recorded for itemID.
func (st *SimulationTrace) ItemHistory(itemID int) []EventRecord {
	out := make([]EventRecord, 0)
	for _, tr := range st.Ticks {
		for _, e := range tr.Events {
			if e.ItemID == itemID {
				out = append(out, e)
			}
		}
	}
	return out
}
