// Tracks simulation-wide and per-item statistics such as time taken per
// item, halts and station utilization.

package sim

import (
	"fmt"
	"io"
	"sort"
)

// Metrics aggregates statistics about the simulation for final reporting.
type Metrics struct {
	TicksRun       int64 // Number of ticks executed
	CompletedItems int   // Number of items finished
	TotalTimeTaken int64 // Sum of (FinishedAt - CreatedAt) over finished items
	HaltedTicks    int64 // Ticks that ended with entry halted

	ItemTimes        map[int]int64     // item id -> FinishedAt - CreatedAt
	ItemServiceTicks map[int]int64     // item id -> sum of service durations on its route
	EventCounts      map[EventKind]int // event kind -> occurrences
	StationBusyTicks map[string]int64  // station -> ticks ending with the station occupied
	PeakBufferDepth  map[string]int    // station -> max buffer length seen at end of a tick
	PeakEntryDepth   int
}

// NewMetrics returns empty metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		ItemTimes:        make(map[int]int64),
		ItemServiceTicks: make(map[int]int64),
		EventCounts:      make(map[EventKind]int),
		StationBusyTicks: make(map[string]int64),
		PeakBufferDepth:  make(map[string]int),
	}
}

func (m *Metrics) recordEvent(e Event) {
	m.EventCounts[e.Kind]++
}

func (m *Metrics) recordFinished(it *Item, serviceTicks int64) {
	m.CompletedItems++
	taken := it.TimeTaken()
	m.TotalTimeTaken += taken
	m.ItemTimes[it.ID] = taken
	m.ItemServiceTicks[it.ID] = serviceTicks
}

func (m *Metrics) recordTick(sim *Simulator) {
	m.TicksRun++
	if sim.entryHalted {
		m.HaltedTicks++
	}
	if d := sim.entry.Len(); d > m.PeakEntryDepth {
		m.PeakEntryDepth = d
	}
	for _, name := range sim.order {
		if !sim.stations[name].Available() {
			m.StationBusyTicks[name]++
		}
		if d := sim.buffers[name].Len(); d > m.PeakBufferDepth[name] {
			m.PeakBufferDepth[name] = d
		}
	}
}

// AverageTimeTaken returns the mean ticks per finished item, or 0.
func (m *Metrics) AverageTimeTaken() float64 {
	if m.CompletedItems == 0 {
		return 0
	}
	return float64(m.TotalTimeTaken) / float64(m.CompletedItems)
}

// WaitingTicks returns the ticks an item spent outside any station:
// time taken minus the service on its route.
func (m *Metrics) WaitingTicks(id int) int64 {
	taken, ok := m.ItemTimes[id]
	if !ok {
		return 0
	}
	return taken - m.ItemServiceTicks[id]
}

// Utilization returns the fraction of executed ticks station was busy.
func (m *Metrics) Utilization(station string) float64 {
	if m.TicksRun == 0 {
		return 0
	}
	return float64(m.StationBusyTicks[station]) / float64(m.TicksRun)
}

// Print writes the end-of-run summary: time taken per item and the average.
func (m *Metrics) Print(w io.Writer) {
	_, _ = fmt.Fprintln(w, "=== Simulation Summary ===")
	_, _ = fmt.Fprintf(w, "Ticks Run            : %d\n", m.TicksRun)
	_, _ = fmt.Fprintf(w, "Completed Items      : %d\n", m.CompletedItems)
	_, _ = fmt.Fprintf(w, "Halted Ticks         : %d\n", m.HaltedTicks)
	if m.CompletedItems == 0 {
		return
	}
	ids := make([]int, 0, len(m.ItemTimes))
	for id := range m.ItemTimes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		_, _ = fmt.Fprintf(w, "- Item %d: Time taken = %d ticks (service %d, waiting %d)\n",
			id, m.ItemTimes[id], m.ItemServiceTicks[id], m.WaitingTicks(id))
	}
	_, _ = fmt.Fprintf(w, "Average Time per Item: %.2f ticks\n", m.AverageTimeTaken())

	stations := make([]string, 0, len(m.StationBusyTicks))
	for name := range m.StationBusyTicks {
		stations = append(stations, name)
	}
	sort.Strings(stations)
	for _, name := range stations {
		_, _ = fmt.Fprintf(w, "Station %-12s: utilization %.2f, peak buffer %d\n",
			name, m.Utilization(name), m.PeakBufferDepth[name])
	}
}
