// Package scenario loads conveyor scenarios from YAML and converts them into
// sim.Config values.
package scenario

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/conveyor-sim/sim"
)

// CurrentVersion is the scenario format version written by this package.
const CurrentVersion = "1"

// Spec is the top-level scenario file.
// Loaded from YAML via Load(path) or Parse(data).
type Spec struct {
	Version        string         `yaml:"version"`
	BufferCapacity int            `yaml:"buffer_capacity,omitempty"` // 0 = default of 1
	Stations       []StationEntry `yaml:"stations"`
	Items          []ItemEntry    `yaml:"items,omitempty"`
	Generate       *GenerateSpec  `yaml:"generate,omitempty"`
}

// StationEntry configures one station. ServiceTime is in ticks; fractional
// values are rounded to the nearest whole tick, halves rounded up.
type StationEntry struct {
	Name        string  `yaml:"name"`
	ServiceTime float64 `yaml:"service_time"`
}

// ItemEntry seeds one item into the entry queue.
type ItemEntry struct {
	ID    int      `yaml:"id"`
	Route []string `yaml:"route,flow"`
}

var validVersions = map[string]bool{
	"": true, "1": true,
}

// Load reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML scenario strictly.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if spec.Version == "" {
		spec.Version = CurrentVersion
	}
	return &spec, nil
}

// Marshal encodes spec as YAML.
func Marshal(spec *Spec) ([]byte, error) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("encoding scenario: %w", err)
	}
	return data, nil
}

// Validate checks the fields the YAML layer is responsible for. Structural
// rules (unknown stations in routes, duplicate ids) are enforced by
// sim.Config.Validate after conversion.
func (s *Spec) Validate() error {
	if !validVersions[s.Version] {
		return fmt.Errorf("unsupported scenario version %q; valid: %s", s.Version, CurrentVersion)
	}
	if s.BufferCapacity < 0 {
		return fmt.Errorf("buffer_capacity must be positive, got %d", s.BufferCapacity)
	}
	for i, st := range s.Stations {
		if math.IsNaN(st.ServiceTime) || math.IsInf(st.ServiceTime, 0) {
			return fmt.Errorf("stations[%d]: service_time must be a finite number, got %f", i, st.ServiceTime)
		}
		if st.ServiceTime <= 0 {
			return fmt.Errorf("stations[%d]: service_time must be positive, got %f", i, st.ServiceTime)
		}
	}
	if s.Generate != nil {
		if err := s.Generate.Validate(len(s.Stations)); err != nil {
			return fmt.Errorf("generate: %w", err)
		}
	}
	return nil
}

// ServiceTicks rounds a service time to whole ticks, halves rounded up.
// Any positive time is at least one tick.
func ServiceTicks(serviceTime float64) int64 {
	ticks := int64(math.Floor(serviceTime + 0.5))
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// ToConfig validates the spec and converts it into a sim.Config. Generated
// items, if any, are appended after the listed ones.
func (s *Spec) ToConfig() (sim.Config, error) {
	if err := s.Validate(); err != nil {
		return sim.Config{}, err
	}
	cfg := sim.Config{
		BufferCapacity: s.BufferCapacity,
		Stations:       make([]sim.StationSpec, 0, len(s.Stations)),
		Items:          make([]sim.ItemSpec, 0, len(s.Items)),
	}
	if cfg.BufferCapacity == 0 {
		cfg.BufferCapacity = 1
	}
	for _, st := range s.Stations {
		ticks := ServiceTicks(st.ServiceTime)
		if float64(ticks) != st.ServiceTime {
			logrus.Warnf("station %q: service_time %g rounded to %d ticks", st.Name, st.ServiceTime, ticks)
		}
		cfg.Stations = append(cfg.Stations, sim.StationSpec{Name: st.Name, ServiceTicks: ticks})
	}
	for _, it := range s.Items {
		cfg.Items = append(cfg.Items, sim.ItemSpec{ID: it.ID, Route: it.Route})
	}
	if s.Generate != nil {
		names := make([]string, len(s.Stations))
		for i, st := range s.Stations {
			names[i] = st.Name
		}
		cfg.Items = append(cfg.Items, Generate(*s.Generate, names, nextID(cfg.Items))...)
	}
	if err := cfg.Validate(); err != nil {
		return sim.Config{}, err
	}
	return cfg, nil
}

func nextID(items []sim.ItemSpec) int {
	next := 1
	for _, it := range items {
		if it.ID >= next {
			next = it.ID + 1
		}
	}
	return next
}
