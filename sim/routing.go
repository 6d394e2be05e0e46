package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Outcome is the result of a routing decision for one unplaced item.
// A Halted outcome means the item was NOT placed and the caller still owns
// it: the entry point returns it to the front of the entry queue, station
// service keeps it in the pending-release list.
type Outcome int

const (
	OutcomeFinished Outcome = iota
	OutcomeLoaded
	OutcomeQueued
	OutcomeHalted
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFinished:
		return "Finished"
	case OutcomeLoaded:
		return "Loaded"
	case OutcomeQueued:
		return "Queued"
	case OutcomeHalted:
		return "Halted"
	case OutcomeError:
		return "Error"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Placed reports whether the item ended up in a station or buffer.
func (o Outcome) Placed() bool {
	return o == OutcomeLoaded || o == OutcomeQueued
}

// route places an unplaced item at its next hop, or finishes it.
// Any Loaded or Queued outcome clears the entry halt; a Halted outcome sets it
// and remembers the saturated station.
func (sim *Simulator) route(it *Item) Outcome {
	if it.Done() {
		sim.finish(it)
		return OutcomeFinished
	}

	target := it.NextStation()
	station, okStation := sim.stations[target]
	buffer, okBuffer := sim.buffers[target]
	if !okStation || !okBuffer {
		// Routes are validated in NewSimulator; reaching this means the item
		// bypassed validation. Keep it visible instead of dropping it.
		it.Location = Location{Kind: LocStuck, Name: target}
		sim.stuck = append(sim.stuck, it)
		sim.emit(Event{Kind: EventError, ItemID: it.ID, Station: target})
		logrus.Warnf("[tick %04d] item %d stuck: unknown station %q", sim.clock, it.ID, target)
		return OutcomeError
	}

	if station.Available() {
		sim.load(station, it, "")
		sim.clearHalt()
		return OutcomeLoaded
	}

	if buffer.TryEnqueue(it) {
		sim.emit(Event{Kind: EventQueued, ItemID: it.ID, Station: target, Buffer: buffer.Name})
		sim.clearHalt()
		return OutcomeQueued
	}

	sim.setHalt(target)
	sim.emit(Event{Kind: EventHalted, ItemID: it.ID, Station: target, Buffer: buffer.Name})
	return OutcomeHalted
}

// load puts it into a station known to be free. from is the buffer the item
// is handed off from, or "" for a routing decision.
func (sim *Simulator) load(station *Station, it *Item, from string) {
	if err := station.TryLoad(it, sim.clock); err != nil {
		panic(fmt.Sprintf("tick %d: %v", sim.clock, err))
	}
	sim.emit(Event{Kind: EventLoaded, ItemID: it.ID, Station: station.Name, From: from})
}

// finish moves a route-complete item from active to completed.
func (sim *Simulator) finish(it *Item) {
	it.FinishedAt = sim.clock
	it.Location = Location{Kind: LocFinished}
	delete(sim.active, it.ID)
	sim.completed = append(sim.completed, it)
	sim.Metrics.recordFinished(it, sim.serviceTicks(it.Route))
	sim.emit(Event{Kind: EventFinished, ItemID: it.ID})
}
