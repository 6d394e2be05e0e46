package sim

// StationSnapshot is a value copy of one station's state.
type StationSnapshot struct {
	Name         string
	ServiceTicks int64
	Busy         bool
	OccupantID   int   // meaningful only when Busy
	ReleaseAt    int64 // -1 when free
}

// BufferSnapshot is a value copy of one buffer's state.
type BufferSnapshot struct {
	Name     string
	Station  string
	Capacity int
	ItemIDs  []int // oldest first
}

// Full reports whether the buffer was at capacity.
func (b BufferSnapshot) Full() bool {
	return len(b.ItemIDs) >= b.Capacity
}

// Snapshot is a read-only copy of the simulator state for presentation.
// Later ticks never modify a snapshot already taken.
type Snapshot struct {
	Tick        int64
	EntryHalted bool
	Stations    []StationSnapshot // configured order
	Buffers     []BufferSnapshot  // configured order
	EntryQueue  []int             // item ids, front first
	Active      []*Item           // copies, ordered by id
	Pending     []int             // item ids in the pending-release list
	Stuck       []int
	Completed   []*Item // copies, in completion order
	TotalItems  int
}

// Snapshot captures the current state.
func (sim *Simulator) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        sim.clock,
		EntryHalted: sim.entryHalted,
		Stations:    make([]StationSnapshot, 0, len(sim.order)),
		Buffers:     make([]BufferSnapshot, 0, len(sim.order)),
		EntryQueue:  sim.entry.ids(),
		Active:      make([]*Item, 0, len(sim.active)),
		Pending:     make([]int, 0, len(sim.pending)),
		Stuck:       make([]int, 0, len(sim.stuck)),
		Completed:   make([]*Item, 0, len(sim.completed)),
		TotalItems:  sim.total,
	}
	for _, name := range sim.order {
		st := sim.stations[name]
		ss := StationSnapshot{Name: name, ServiceTicks: st.ServiceTicks, ReleaseAt: st.ReleaseAt()}
		if it := st.Occupant(); it != nil {
			ss.Busy = true
			ss.OccupantID = it.ID
		}
		snap.Stations = append(snap.Stations, ss)

		buf := sim.buffers[name]
		snap.Buffers = append(snap.Buffers, BufferSnapshot{
			Name:     buf.Name,
			Station:  name,
			Capacity: buf.Capacity,
			ItemIDs:  buf.queue.ids(),
		})
	}
	for _, it := range sim.ActiveItems() {
		snap.Active = append(snap.Active, it.clone())
	}
	for _, it := range sim.pending {
		snap.Pending = append(snap.Pending, it.ID)
	}
	for _, it := range sim.stuck {
		snap.Stuck = append(snap.Stuck, it.ID)
	}
	for _, it := range sim.completed {
		snap.Completed = append(snap.Completed, it.clone())
	}
	return snap
}
