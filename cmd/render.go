package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	sim "github.com/inference-sim/conveyor-sim/sim"
	"github.com/inference-sim/conveyor-sim/sim/trace"
)

const ruleWidth = 80

// renderEvents prints a tick's event log, one line per event.
func renderEvents(w io.Writer, events []sim.Event) {
	for _, e := range events {
		_, _ = fmt.Fprintf(w, "  > %s\n", e.String())
	}
}

// renderState prints the conveyor layout after a tick followed by its log
// and the detailed status block.
func renderState(w io.Writer, snap sim.Snapshot, events []sim.Event) {
	// snap.Tick has already advanced past the tick that produced events.
	_, _ = fmt.Fprintf(w, "CONVEYOR SYSTEM SIMULATION - TICK %d\n", snap.Tick)
	_, _ = fmt.Fprintln(w, strings.Repeat("=", ruleWidth))

	entryStatus := "ACTIVE"
	if snap.EntryHalted {
		entryStatus = "HALTED"
	}
	_, _ = fmt.Fprintf(w, " ENTRY POINT (%s): [%s]\n", entryStatus, joinIDs(snap.EntryQueue, " | "))
	_, _ = fmt.Fprintf(w, " MAIN TRACK: [%s]\n", joinIDs(snap.Pending, " "))

	names := make([]string, 0, len(snap.Stations))
	stations := make([]string, 0, len(snap.Stations))
	waiting := make([]string, 0, len(snap.Buffers))
	for i, st := range snap.Stations {
		names = append(names, fmt.Sprintf("%-10s", st.Name))
		slot := "--"
		if st.Busy {
			slot = fmt.Sprintf("%02d", st.OccupantID)
		}
		stations = append(stations, fmt.Sprintf("[%s]", slot))
		waiting = append(waiting, fmt.Sprintf("(%s)", joinIDs(snap.Buffers[i].ItemIDs, " ")))
	}
	_, _ = fmt.Fprintf(w, " %s\n", strings.Join(names, "    "))
	_, _ = fmt.Fprintf(w, " %s\n", strings.Join(padAll(stations, 10), " ───▶ "))
	_, _ = fmt.Fprintf(w, " %s\n", strings.Join(padAll(waiting, 10), "      "))
	_, _ = fmt.Fprintln(w, strings.Repeat("=", ruleWidth))

	_, _ = fmt.Fprintln(w, "LOG:")
	renderEvents(w, events)
	renderStatus(w, snap)
}

// renderStatus prints station availability, buffer fill, active items and
// the halt flag.
func renderStatus(w io.Writer, snap sim.Snapshot) {
	_, _ = fmt.Fprintln(w, "DETAILED STATUS:")
	for _, st := range snap.Stations {
		if st.Busy {
			_, _ = fmt.Fprintf(w, "- %s: Busy (Item %d, release at tick %d)\n", st.Name, st.OccupantID, st.ReleaseAt)
		} else {
			_, _ = fmt.Fprintf(w, "- %s: Available\n", st.Name)
		}
	}
	for _, b := range snap.Buffers {
		status := "Free"
		if b.Full() {
			status = "FULL"
		}
		_, _ = fmt.Fprintf(w, "- %s: %d/%d (%s). Queue: [%s]\n", b.Name, len(b.ItemIDs), b.Capacity, status, joinIDs(b.ItemIDs, ", "))
	}
	active := make([]string, 0, len(snap.Active))
	for _, it := range snap.Active {
		next := it.NextStation()
		if next == "" {
			next = "Fin"
		}
		active = append(active, fmt.Sprintf("I%d(%s)", it.ID, next))
	}
	_, _ = fmt.Fprintf(w, "- Active Items: [%s]\n", strings.Join(active, ", "))
	if len(snap.Stuck) > 0 {
		_, _ = fmt.Fprintf(w, "- Stuck Items: [%s]\n", joinIDs(snap.Stuck, ", "))
	}
	_, _ = fmt.Fprintf(w, "- Entry Halted: %v\n", snap.EntryHalted)
	_, _ = fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
}

func renderTraceSummary(w io.Writer, summary *trace.TraceSummary) {
	_, _ = fmt.Fprintln(w, "=== Trace Summary ===")
	_, _ = fmt.Fprintf(w, "Ticks Traced         : %d\n", summary.TotalTicks)
	_, _ = fmt.Fprintf(w, "Events               : %d\n", summary.TotalEvents)
	_, _ = fmt.Fprintf(w, "Halted Ticks         : %d\n", summary.HaltedTicks)
	for _, kind := range sim.AllEventKinds {
		if n := summary.KindCounts[string(kind)]; n > 0 {
			_, _ = fmt.Fprintf(w, "  %-20s: %d\n", kind, n)
		}
	}
	stations := make([]string, 0, len(summary.StationLoads))
	for name := range summary.StationLoads {
		stations = append(stations, name)
	}
	sort.Strings(stations)
	for _, name := range stations {
		_, _ = fmt.Fprintf(w, "Station %-12s: %d loads, max buffer %d\n", name, summary.StationLoads[name], summary.MaxBufferDepth[name])
	}
}

func joinIDs(ids []int, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, sep)
}

func padAll(cells []string, width int) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = fmt.Sprintf("%-*s", width, c)
	}
	return out
}
