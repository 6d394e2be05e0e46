package sim

import (
	"errors"
	"fmt"
)

// ErrStationOccupied is returned by Station.TryLoad when the slot is taken.
// The simulator never loads a busy station; seeing this error means its
// bookkeeping is broken.
var ErrStationOccupied = errors.New("station is occupied")

// Station is a single processing slot with a fixed service duration.
// Occupant is non-nil exactly when ReleaseAt is set (>= 0).
type Station struct {
	Name         string
	ServiceTicks int64
	occupant     *Item
	releaseAt    int64
}

// NewStation creates a free station.
func NewStation(name string, serviceTicks int64) *Station {
	return &Station{Name: name, ServiceTicks: serviceTicks, releaseAt: -1}
}

// TryLoad places it in the slot at tick now. It fails with ErrStationOccupied
// if the slot is taken.
func (s *Station) TryLoad(it *Item, now int64) error {
	if s.occupant != nil {
		return fmt.Errorf("load item %d into %s (holding item %d): %w", it.ID, s.Name, s.occupant.ID, ErrStationOccupied)
	}
	s.occupant = it
	s.releaseAt = now + s.ServiceTicks
	it.Location = Location{Kind: LocInStation, Name: s.Name}
	return nil
}

// TryRelease returns the occupant and frees the slot if now >= ReleaseAt.
// Otherwise it returns nil and changes nothing.
func (s *Station) TryRelease(now int64) *Item {
	if s.occupant == nil || now < s.releaseAt {
		return nil
	}
	it := s.occupant
	s.occupant = nil
	s.releaseAt = -1
	it.Location = Location{Kind: LocJustReleased, Name: s.Name}
	return it
}

// Available reports whether the slot is free.
func (s *Station) Available() bool {
	return s.occupant == nil
}

// Occupant returns the item in the slot, or nil.
func (s *Station) Occupant() *Item {
	return s.occupant
}

// ReleaseAt returns the tick at which the occupant becomes releasable, or -1
// when the station is free.
func (s *Station) ReleaseAt() int64 {
	return s.releaseAt
}

func (s *Station) String() string {
	if s.occupant == nil {
		return fmt.Sprintf("Station(%s, Status: Available)", s.Name)
	}
	return fmt.Sprintf("Station(%s, Status: Busy (Item %d until tick %d))", s.Name, s.occupant.ID, s.releaseAt)
}
