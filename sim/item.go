// Defines the Item struct that models a single basket routed through the stations.
// Tracks the fixed route, the progress cursor, the current location and logical timestamps.

package sim

import (
	"fmt"
	"strings"
)

// LocationKind names the kind of container an item currently sits in.
type LocationKind string

const (
	LocAwaitingEntry LocationKind = "awaiting_entry"
	LocAtEntry       LocationKind = "at_entry"
	LocInStation     LocationKind = "in_station"
	LocInBuffer      LocationKind = "in_buffer"
	LocJustReleased  LocationKind = "just_released"
	LocFinished      LocationKind = "finished"
	LocStuck         LocationKind = "stuck"
)

// Location is where an item is. Name is the station or buffer name for
// the kinds that need one and empty otherwise.
type Location struct {
	Kind LocationKind
	Name string
}

func (l Location) String() string {
	if l.Name == "" {
		return string(l.Kind)
	}
	return fmt.Sprintf("%s(%s)", l.Kind, l.Name)
}

// Item models a single basket's lifecycle in the simulation.
// The route is fixed at creation; Cursor advances once per station visited.
type Item struct {
	ID       int      // Unique identifier, stable for the item's lifetime
	Route    []string // Ordered station names; never aliased with the caller's slice
	Cursor   int      // Index of the next station in Route
	Location Location

	CreatedAt  int64 // Tick at which the item was created
	AdmittedAt int64 // Tick at which the item left the entry queue; -1 until admitted
	FinishedAt int64 // Tick at which the item finished; -1 until finished
}

// NewItem creates an item awaiting entry. The route is copied.
func NewItem(id int, route []string, createdAt int64) *Item {
	r := make([]string, len(route))
	copy(r, route)
	return &Item{
		ID:         id,
		Route:      r,
		Location:   Location{Kind: LocAwaitingEntry},
		CreatedAt:  createdAt,
		AdmittedAt: -1,
		FinishedAt: -1,
	}
}

// NextStation returns the station the item must visit next, or "" when the
// route is complete.
func (it *Item) NextStation() string {
	if it.Cursor < len(it.Route) {
		return it.Route[it.Cursor]
	}
	return ""
}

// Done reports whether every station on the route has been visited.
func (it *Item) Done() bool {
	return it.Cursor >= len(it.Route)
}

// Finished reports whether the item has been moved to the completed collection.
func (it *Item) Finished() bool {
	return it.FinishedAt >= 0
}

// Completed returns the stations already visited, in order.
func (it *Item) Completed() []string {
	out := make([]string, it.Cursor)
	copy(out, it.Route[:it.Cursor])
	return out
}

// advance marks the current station as visited.
func (it *Item) advance() {
	if it.Cursor < len(it.Route) {
		it.Cursor++
	}
}

// TimeTaken returns FinishedAt - CreatedAt, or -1 if the item has not finished.
func (it *Item) TimeTaken() int64 {
	if !it.Finished() {
		return -1
	}
	return it.FinishedAt - it.CreatedAt
}

func (it *Item) String() string {
	next := it.NextStation()
	if next == "" {
		next = "Finish"
	}
	return fmt.Sprintf("Item %02d (%s) [%s]", it.ID, next, strings.Join(it.Route, ","))
}

// clone returns a deep copy for read-only snapshots.
func (it *Item) clone() *Item {
	c := *it
	c.Route = make([]string, len(it.Route))
	copy(c.Route, it.Route)
	return &c
}
