package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inference-sim/conveyor-sim/sim/internal/testutil"
)

// referenceConfig is the reference conveyor: A(2), B(3), C(1.5 rounded to 2),
// single-slot buffers and six items.
func referenceConfig() Config {
	return Config{
		Stations: []StationSpec{
			{Name: "A", ServiceTicks: 2},
			{Name: "B", ServiceTicks: 3},
			{Name: "C", ServiceTicks: 2},
		},
		BufferCapacity: 1,
		Items: []ItemSpec{
			{ID: 1, Route: []string{"A", "B"}},
			{ID: 2, Route: []string{"A", "C"}},
			{ID: 3, Route: []string{"B", "C", "A"}},
			{ID: 4, Route: []string{"A"}},
			{ID: 5, Route: []string{"C", "B"}},
			{ID: 6, Route: []string{"A", "B", "C"}},
		},
	}
}

func newTestSimulator(t *testing.T, cfg Config) *Simulator {
	t.Helper()
	s, err := NewSimulator(cfg)
	require.NoError(t, err)
	return s
}

// assertInvariants checks conservation, exclusive ownership, single
// occupancy and buffer bounds against the current state.
func assertInvariants(t *testing.T, s *Simulator) {
	t.Helper()
	tick := s.Clock()
	testutil.AssertConservation(t, tick, testutil.Counts{
		Entry:     s.entry.Len(),
		Active:    len(s.active),
		Completed: len(s.completed),
		Total:     s.TotalItems(),
	})

	containers := map[string][]int{
		"entry":     s.entry.ids(),
		"pending":   itemIDs(s.pending),
		"stuck":     itemIDs(s.stuck),
		"completed": itemIDs(s.completed),
	}
	for _, name := range s.order {
		st := s.stations[name]
		if it := st.Occupant(); it != nil {
			containers["station "+name] = []int{it.ID}
			if st.ReleaseAt() < 0 {
				t.Errorf("tick %d: station %s occupied without release tick", tick, name)
			}
		} else if st.ReleaseAt() >= 0 {
			t.Errorf("tick %d: station %s free but release tick %d set", tick, name, st.ReleaseAt())
		}
		buf := s.buffers[name]
		containers[buf.Name] = buf.queue.ids()
		testutil.AssertBufferBound(t, tick, buf.Name, buf.Len(), buf.Capacity)
	}
	all := make([]int, 0, s.TotalItems())
	for _, spec := range s.config.Items {
		all = append(all, spec.ID)
	}
	testutil.AssertExclusiveOwnership(t, tick, containers, all)

	// Everything admitted and unfinished is in active, and nothing else is.
	for id, it := range s.active {
		if it.Finished() {
			t.Errorf("tick %d: finished item %d still active", tick, id)
		}
	}
}

func itemIDs(items []*Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

// ev builds an expected event with the tick filled in.
func ev(tick int64, kind EventKind, id int, station, buffer, from string) Event {
	return Event{Tick: tick, Kind: kind, ItemID: id, Station: station, Buffer: buffer, From: from}
}
