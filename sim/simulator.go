// sim/simulator.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/conveyor-sim/sim/trace"
)

// Simulator is the conveyor system: it owns every station, buffer and item
// and advances them one logical tick at a time. It is the only component
// that makes routing decisions. Not safe for concurrent use.
type Simulator struct {
	clock int64

	order    []string            // configured station order; per-tick service order
	stations map[string]*Station // station name -> station
	buffers  map[string]*Buffer  // station name -> buffer in front of it
	config   Config

	entry     ItemQueue     // items not yet admitted
	active    map[int]*Item // admitted and not finished, by id
	completed []*Item       // finished items, append-only
	pending   []*Item       // released from a station but not yet placed
	stuck     []*Item       // routed to an unknown station

	entryHalted bool
	haltedOn    string // station whose saturation set the halt
	total       int

	log []Event // events of the tick in progress

	// Metrics aggregates statistics for final reporting.
	Metrics *Metrics
	// Trace, when non-nil, receives one record per tick.
	Trace *trace.SimulationTrace
}

// NewSimulator validates cfg and builds a simulator with every item in the
// entry queue, in the order given.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulator{
		order:    make([]string, 0, len(cfg.Stations)),
		stations: make(map[string]*Station, len(cfg.Stations)),
		buffers:  make(map[string]*Buffer, len(cfg.Stations)),
		config:   cfg,
		active:   make(map[int]*Item, len(cfg.Items)),
		Metrics:  NewMetrics(),
	}
	for _, st := range cfg.Stations {
		s.order = append(s.order, st.Name)
		s.stations[st.Name] = NewStation(st.Name, st.ServiceTicks)
		s.buffers[st.Name] = NewBuffer(st.Name, cfg.BufferCapacity)
	}
	for _, spec := range cfg.Items {
		s.entry.Enqueue(NewItem(spec.ID, spec.Route, s.clock))
	}
	s.total = len(cfg.Items)
	logrus.Infof("--- System Initialized with %d Items, %d Stations, buffer capacity %d ---",
		s.total, len(s.order), cfg.BufferCapacity)
	return s, nil
}

// Tick advances the simulation by exactly one tick and returns the ordered
// event log for that tick:
//  1. admit the front of the entry queue unless entry is halted
//  2. service stations in configured order, handing each freed slot to the
//     front of its buffer; lift the entry halt if the station that caused it
//     has room again
//  3. route items waiting in the pending-release list, then the items
//     released in step 2, in station order
//  4. advance the clock
func (sim *Simulator) Tick() []Event {
	sim.log = make([]Event, 0)
	now := sim.clock
	logrus.Debugf("[tick %04d] begin: entry=%s halted=%v", now, sim.entry.String(), sim.entryHalted)

	if !sim.entryHalted && sim.entry.Len() > 0 {
		sim.admit()
	}

	released := make([]*Item, 0)
	for _, name := range sim.order {
		station := sim.stations[name]
		it := station.TryRelease(now)
		if it == nil {
			continue
		}
		it.advance()
		sim.emit(Event{Kind: EventReleased, ItemID: it.ID, Station: name})
		released = append(released, it)

		buffer := sim.buffers[name]
		if next := buffer.DequeueFront(); next != nil {
			sim.load(station, next, buffer.Name)
		}
	}

	if sim.entryHalted && sim.hasRoom(sim.haltedOn) {
		logrus.Debugf("[tick %04d] station %s has room again; entry resumed", now, sim.haltedOn)
		sim.clearHalt()
	}

	retry := sim.pending
	sim.pending = nil
	for _, it := range append(retry, released...) {
		if sim.route(it) == OutcomeHalted {
			sim.pending = append(sim.pending, it)
		}
	}

	sim.Metrics.recordTick(sim)
	if sim.Trace != nil {
		sim.Trace.RecordTick(sim.traceRecord())
	}
	sim.clock++

	events := sim.log
	sim.log = nil
	return events
}

// admit pops the entry front and routes it. A halted item goes back to the
// front of the entry queue.
func (sim *Simulator) admit() {
	it := sim.entry.DequeueFront()
	it.Location = Location{Kind: LocAtEntry}
	sim.active[it.ID] = it
	sim.emit(Event{Kind: EventAdmittedFromEntry, ItemID: it.ID})

	if sim.route(it) == OutcomeHalted {
		delete(sim.active, it.ID)
		it.Location = Location{Kind: LocAwaitingEntry}
		sim.entry.PrependFront(it)
		return
	}
	it.AdmittedAt = sim.clock
}

// Run ticks until maxTicks ticks have been executed or every item has
// finished, and returns the concatenated event log.
func (sim *Simulator) Run(maxTicks int64) []Event {
	all := make([]Event, 0)
	for i := int64(0); i < maxTicks && !sim.Done(); i++ {
		all = append(all, sim.Tick()...)
	}
	if sim.Done() {
		logrus.Infof("[tick %04d] All items finished.", sim.clock)
	} else {
		logrus.Infof("[tick %04d] Simulation stopped with %d items outstanding", sim.clock, sim.entry.Len()+len(sim.active))
	}
	return all
}

// Done reports whether the entry queue and the active set are both empty.
func (sim *Simulator) Done() bool {
	return sim.entry.Len() == 0 && len(sim.active) == 0
}

// hasRoom reports whether station name could accept an item right now,
// either in its slot or in its buffer.
func (sim *Simulator) hasRoom(name string) bool {
	station, ok := sim.stations[name]
	if !ok {
		return false
	}
	return station.Available() || !sim.buffers[name].Full()
}

func (sim *Simulator) setHalt(station string) {
	sim.entryHalted = true
	sim.haltedOn = station
}

func (sim *Simulator) clearHalt() {
	sim.entryHalted = false
	sim.haltedOn = ""
}

func (sim *Simulator) emit(e Event) {
	e.Tick = sim.clock
	sim.log = append(sim.log, e)
	sim.Metrics.recordEvent(e)
	logrus.Debugf("[tick %04d] %s", e.Tick, e.Message())
}

func (sim *Simulator) serviceTicks(route []string) int64 {
	var total int64
	for _, name := range route {
		if st, ok := sim.stations[name]; ok {
			total += st.ServiceTicks
		}
	}
	return total
}

// Clock returns the current tick: the number of ticks executed so far.
func (sim *Simulator) Clock() int64 {
	return sim.clock
}

// EntryHalted reports whether entry admission is currently suspended.
func (sim *Simulator) EntryHalted() bool {
	return sim.entryHalted
}

// TotalItems returns the number of items created at initialization.
func (sim *Simulator) TotalItems() int {
	return sim.total
}

// StationOrder returns the configured station names in service order.
func (sim *Simulator) StationOrder() []string {
	out := make([]string, len(sim.order))
	copy(out, sim.order)
	return out
}

// Station returns the named station, or nil.
func (sim *Simulator) Station(name string) *Station {
	return sim.stations[name]
}

// Buffer returns the buffer in front of the named station, or nil.
func (sim *Simulator) Buffer(station string) *Buffer {
	return sim.buffers[station]
}

// EntryQueue returns the items awaiting entry, front first.
func (sim *Simulator) EntryQueue() []*Item {
	out := make([]*Item, sim.entry.Len())
	copy(out, sim.entry.Items())
	return out
}

// ActiveItems returns admitted, unfinished items ordered by id.
func (sim *Simulator) ActiveItems() []*Item {
	out := make([]*Item, 0, len(sim.active))
	for _, it := range sim.active {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CompletedItems returns finished items in completion order.
func (sim *Simulator) CompletedItems() []*Item {
	out := make([]*Item, len(sim.completed))
	copy(out, sim.completed)
	return out
}

// PendingItems returns items released from a station that are waiting for
// room at their next hop.
func (sim *Simulator) PendingItems() []*Item {
	out := make([]*Item, len(sim.pending))
	copy(out, sim.pending)
	return out
}

// StuckItems returns items that were routed to an unknown station.
func (sim *Simulator) StuckItems() []*Item {
	out := make([]*Item, len(sim.stuck))
	copy(out, sim.stuck)
	return out
}

// Item looks up an item by id in the entry queue, active set or completed
// collection.
func (sim *Simulator) Item(id int) (*Item, bool) {
	if it, ok := sim.active[id]; ok {
		return it, true
	}
	for _, it := range sim.entry.Items() {
		if it.ID == id {
			return it, true
		}
	}
	for _, it := range sim.completed {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

func (sim *Simulator) traceRecord() trace.TickRecord {
	rec := trace.TickRecord{
		Tick:        sim.clock,
		EntryHalted: sim.entryHalted,
		EntryDepth:  sim.entry.Len(),
		Active:      len(sim.active),
		Completed:   len(sim.completed),
		Events:      make([]trace.EventRecord, 0, len(sim.log)),
		Occupancy:   make(map[string]int, len(sim.order)),
		BufferDepth: make(map[string]int, len(sim.order)),
	}
	for _, e := range sim.log {
		rec.Events = append(rec.Events, trace.EventRecord{
			Kind:    string(e.Kind),
			ItemID:  e.ItemID,
			Station: e.Station,
			Buffer:  e.Buffer,
			From:    e.From,
		})
	}
	for _, name := range sim.order {
		if it := sim.stations[name].Occupant(); it != nil {
			rec.Occupancy[name] = it.ID
		}
		rec.BufferDepth[name] = sim.buffers[name].Len()
	}
	return rec
}

func (sim *Simulator) String() string {
	return fmt.Sprintf("Simulator(tick=%d, entry=%d, active=%d, completed=%d, halted=%v)",
		sim.clock, sim.entry.Len(), len(sim.active), len(sim.completed), sim.entryHalted)
}
