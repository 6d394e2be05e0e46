// Package trace provides per-tick trace recording for post-run analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// EventRecord captures a single event of a tick.
type EventRecord struct {
	Kind    string
	ItemID  int
	Station string
	Buffer  string
	From    string
}

// TickRecord captures the events of one tick and the state at its end.
type TickRecord struct {
	Tick        int64
	Events      []EventRecord
	EntryHalted bool
	EntryDepth  int
	Active      int
	Completed   int
	Occupancy   map[string]int // station -> occupant item id; free stations are absent
	BufferDepth map[string]int // station -> items waiting in its buffer
}
