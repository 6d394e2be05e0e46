package sim

import "fmt"

// EventKind classifies what happened to an item during a tick.
type EventKind string

const (
	EventAdmittedFromEntry EventKind = "admitted_from_entry"
	EventLoaded            EventKind = "loaded"
	EventQueued            EventKind = "queued"
	EventHalted            EventKind = "halted"
	EventReleased          EventKind = "released"
	EventFinished          EventKind = "finished"
	EventError             EventKind = "error"
)

// AllEventKinds lists every kind in a fixed order, for reporting.
var AllEventKinds = []EventKind{
	EventAdmittedFromEntry,
	EventLoaded,
	EventQueued,
	EventHalted,
	EventReleased,
	EventFinished,
	EventError,
}

// Event is one entry of the per-tick event log.
// Station is the station involved (target or releasing station); Buffer is
// the buffer involved, if any. For a Loaded event, From is the buffer the
// item was handed off from, or empty when it came through a routing decision.
type Event struct {
	Tick    int64
	Kind    EventKind
	ItemID  int
	Station string
	Buffer  string
	From    string
}

// Message renders the event as a human-readable log line.
func (e Event) Message() string {
	switch e.Kind {
	case EventAdmittedFromEntry:
		return fmt.Sprintf("[ENTRY] Item %d released from Entry Point.", e.ItemID)
	case EventLoaded:
		if e.From != "" {
			return fmt.Sprintf("[MOVE] Item %d from %s to Station %s.", e.ItemID, e.From, e.Station)
		}
		return fmt.Sprintf("[MOVE] Item %d moved to Station %s.", e.ItemID, e.Station)
	case EventQueued:
		return fmt.Sprintf("[WAIT] Item %d cannot enter %s. Moved to %s.", e.ItemID, e.Station, e.Buffer)
	case EventHalted:
		return fmt.Sprintf("[HALT] Item %d cannot enter %s. %s is full. Entry Halted!", e.ItemID, e.Station, e.Buffer)
	case EventReleased:
		return fmt.Sprintf("[SIGNAL] Station %s finished Item %d.", e.Station, e.ItemID)
	case EventFinished:
		return fmt.Sprintf("[DONE] Item %d FINISHED process.", e.ItemID)
	case EventError:
		return fmt.Sprintf("[ERROR] Item %d cannot find station %s", e.ItemID, e.Station)
	}
	return fmt.Sprintf("[%s] Item %d", e.Kind, e.ItemID)
}

func (e Event) String() string {
	return fmt.Sprintf("[tick %04d] %s", e.Tick, e.Message())
}
