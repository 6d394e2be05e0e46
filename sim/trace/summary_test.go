package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalTicks != 0 || summary.TotalEvents != 0 {
		t.Errorf("expected zero counts, got ticks=%d events=%d", summary.TotalTicks, summary.TotalEvents)
	}
	if summary.KindCounts == nil || summary.StationLoads == nil || summary.MaxBufferDepth == nil {
		t.Error("expected non-nil maps")
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelTicks})

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.TotalTicks != 0 {
		t.Errorf("expected 0 ticks, got %d", summary.TotalTicks)
	}
	if summary.HaltedTicks != 0 {
		t.Errorf("expected 0 halted ticks, got %d", summary.HaltedTicks)
	}
	if len(summary.KindCounts) != 0 {
		t.Error("expected empty kind counts")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with three ticks, one of which ends halted
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelTicks})
	st.RecordTick(TickRecord{Tick: 0, Events: []EventRecord{
		{Kind: "admitted_from_entry", ItemID: 1},
		{Kind: "loaded", ItemID: 1, Station: "A"},
	}, BufferDepth: map[string]int{"A": 0}})
	st.RecordTick(TickRecord{Tick: 1, Events: []EventRecord{
		{Kind: "admitted_from_entry", ItemID: 2},
		{Kind: "queued", ItemID: 2, Station: "A", Buffer: "Waiting_A"},
	}, BufferDepth: map[string]int{"A": 1}})
	st.RecordTick(TickRecord{Tick: 2, EntryHalted: true, Events: []EventRecord{
		{Kind: "admitted_from_entry", ItemID: 3},
		{Kind: "halted", ItemID: 3, Station: "A", Buffer: "Waiting_A"},
	}, BufferDepth: map[string]int{"A": 1}})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts match
	if summary.TotalTicks != 3 {
		t.Errorf("expected 3 ticks, got %d", summary.TotalTicks)
	}
	if summary.TotalEvents != 6 {
		t.Errorf("expected 6 events, got %d", summary.TotalEvents)
	}
	if summary.HaltedTicks != 1 {
		t.Errorf("expected 1 halted tick, got %d", summary.HaltedTicks)
	}
	if summary.KindCounts["admitted_from_entry"] != 3 {
		t.Errorf("expected 3 admissions, got %d", summary.KindCounts["admitted_from_entry"])
	}
	if summary.StationLoads["A"] != 1 {
		t.Errorf("expected 1 load on A, got %d", summary.StationLoads["A"])
	}
	if summary.MaxBufferDepth["A"] != 1 {
		t.Errorf("expected max buffer depth 1, got %d", summary.MaxBufferDepth["A"])
	}
	if summary.LastTick != 2 {
		t.Errorf("expected last tick 2, got %d", summary.LastTick)
	}
}
