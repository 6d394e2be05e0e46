package scenario

import (
	"fmt"
	"math/rand"

	"github.com/inference-sim/conveyor-sim/sim"
)

// GenerateSpec asks for Count random items. Route lengths are drawn
// uniformly from [MinRoute, MaxRoute]; each hop is a uniformly chosen
// station, never the same station twice in a row.
type GenerateSpec struct {
	Count    int   `yaml:"count"`
	Seed     int64 `yaml:"seed"`
	MinRoute int   `yaml:"min_route,omitempty"` // default 1
	MaxRoute int   `yaml:"max_route,omitempty"` // default number of stations
}

// Validate checks the generator parameters against the number of stations.
func (g GenerateSpec) Validate(numStations int) error {
	if g.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", g.Count)
	}
	if numStations == 0 {
		return fmt.Errorf("at least one station required")
	}
	lo, hi := g.bounds(numStations)
	if lo < 1 || hi < lo {
		return fmt.Errorf("route length bounds [%d, %d] invalid", lo, hi)
	}
	return nil
}

func (g GenerateSpec) bounds(numStations int) (int, int) {
	lo, hi := g.MinRoute, g.MaxRoute
	if lo == 0 {
		lo = 1
	}
	if hi == 0 {
		hi = numStations
	}
	return lo, hi
}

// Generate returns g.Count item entries with ids starting at firstID. The
// same seed and stations always yield the same items.
func Generate(g GenerateSpec, stations []string, firstID int) []sim.ItemSpec {
	out := make([]sim.ItemSpec, 0, g.Count)
	if len(stations) == 0 {
		return out
	}
	rng := rand.New(rand.NewSource(g.Seed))
	lo, hi := g.bounds(len(stations))
	for i := 0; i < g.Count; i++ {
		n := lo + rng.Intn(hi-lo+1)
		route := make([]string, 0, n)
		prev := -1
		for len(route) < n {
			idx := rng.Intn(len(stations))
			if idx == prev && len(stations) > 1 {
				continue
			}
			route = append(route, stations[idx])
			prev = idx
		}
		out = append(out, sim.ItemSpec{ID: firstID + i, Route: route})
	}
	return out
}
