package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/conveyor-sim/sim/trace"
)

func TestSimulator_Trace_RecordsEveryTick(t *testing.T) {
	// GIVEN a simulator with tick tracing enabled
	s := newTestSimulator(t, referenceConfig())
	s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelTicks})

	// WHEN run to completion
	events := s.Run(100)

	// THEN one record per tick, carrying the same events
	require.Len(t, s.Trace.Ticks, 17)
	total := 0
	for i, rec := range s.Trace.Ticks {
		assert.Equal(t, int64(i), rec.Tick)
		total += len(rec.Events)
	}
	assert.Equal(t, len(events), total)

	tick5 := s.Trace.Ticks[5]
	assert.True(t, tick5.EntryHalted)
	assert.Equal(t, 4, tick5.Occupancy["A"])
	assert.Equal(t, 1, tick5.Occupancy["B"])
	assert.Equal(t, 5, tick5.Occupancy["C"])
	assert.Equal(t, 1, tick5.BufferDepth["C"])

	last := s.Trace.Ticks[16]
	assert.Equal(t, 6, last.Completed)
	assert.Empty(t, last.Occupancy)

	summary := trace.Summarize(s.Trace)
	assert.Equal(t, 1, summary.HaltedTicks)
	assert.Equal(t, 6, summary.KindCounts[string(EventFinished)])

	hist := s.Trace.ItemHistory(4)
	kinds := make([]string, 0, len(hist))
	for _, e := range hist {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []string{"admitted_from_entry", "queued", "loaded", "released", "finished"}, kinds)
}
