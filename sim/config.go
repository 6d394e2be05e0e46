package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error NewSimulator returns for a
// configuration it refuses to run.
var ErrInvalidConfig = errors.New("invalid configuration")

// StationSpec configures one station. Order in Config.Stations is the
// fixed per-tick service order.
type StationSpec struct {
	Name         string // unique station name (must be non-empty)
	ServiceTicks int64  // service duration in ticks (must be > 0)
}

// ItemSpec describes an item to seed into the entry queue.
type ItemSpec struct {
	ID    int      // unique item id
	Route []string // station names to visit, in order
}

// Config groups everything NewSimulator needs.
type Config struct {
	Stations       []StationSpec // ordered; service order within a tick
	BufferCapacity int           // capacity of every station buffer (must be >= 1)
	Items          []ItemSpec    // entry queue contents, front first
}

// Validate rejects configurations the simulator cannot run: empty or
// duplicate station names, non-positive service durations or buffer
// capacity, duplicate item ids, and routes naming unknown stations.
func (c Config) Validate() error {
	if len(c.Stations) == 0 {
		return fmt.Errorf("%w: at least one station required", ErrInvalidConfig)
	}
	known := make(map[string]bool, len(c.Stations))
	for i, st := range c.Stations {
		if st.Name == "" {
			return fmt.Errorf("%w: station[%d]: name must not be empty", ErrInvalidConfig, i)
		}
		if known[st.Name] {
			return fmt.Errorf("%w: station[%d]: duplicate station name %q", ErrInvalidConfig, i, st.Name)
		}
		if st.ServiceTicks <= 0 {
			return fmt.Errorf("%w: station %q: service ticks must be positive, got %d", ErrInvalidConfig, st.Name, st.ServiceTicks)
		}
		known[st.Name] = true
	}
	if c.BufferCapacity <= 0 {
		return fmt.Errorf("%w: buffer capacity must be positive, got %d", ErrInvalidConfig, c.BufferCapacity)
	}
	seen := make(map[int]bool, len(c.Items))
	for i, it := range c.Items {
		if seen[it.ID] {
			return fmt.Errorf("%w: item[%d]: duplicate item id %d", ErrInvalidConfig, i, it.ID)
		}
		seen[it.ID] = true
		for j, name := range it.Route {
			if !known[name] {
				return fmt.Errorf("%w: item %d: route[%d] names unknown station %q", ErrInvalidConfig, it.ID, j, name)
			}
		}
	}
	return nil
}

// ServiceTicks returns the configured duration of station name, or 0 if
// it is not configured.
func (c Config) ServiceTicks(name string) int64 {
	for _, st := range c.Stations {
		if st.Name == name {
			return st.ServiceTicks
		}
	}
	return 0
}
