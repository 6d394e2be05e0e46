// Package telemetry exposes conveyor simulation state as Prometheus metrics.
// Gauges are refreshed from a sim.Snapshot after each tick; the event counter
// accumulates the tick's event log.
package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/inference-sim/conveyor-sim/sim"
)

// Collector bundles the Prometheus metrics for one simulation.
type Collector struct {
	gatherer prometheus.Gatherer

	Events *prometheus.CounterVec

	Tick        prometheus.Gauge
	EntryDepth  prometheus.Gauge
	Active      prometheus.Gauge
	Completed   prometheus.Gauge
	Pending     prometheus.Gauge
	EntryHalted prometheus.Gauge

	BufferDepth *prometheus.GaugeVec
	StationBusy *prometheus.GaugeVec
}

// NewCollector registers the simulation metrics against reg, defaulting to
// the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	events, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "conveyor_events_total",
		Help: "Simulation events emitted, labeled by kind.",
	}, []string{"kind"}), "conveyor_events_total")
	if err != nil {
		return nil, err
	}

	c := &Collector{gatherer: gatherer, Events: events}
	gauges := []struct {
		dst  *prometheus.Gauge
		name string
		help string
	}{
		{&c.Tick, "conveyor_tick", "Ticks executed so far."},
		{&c.EntryDepth, "conveyor_entry_queue_items", "Items waiting in the entry queue."},
		{&c.Active, "conveyor_active_items", "Items admitted and not yet finished."},
		{&c.Completed, "conveyor_completed_items", "Items that finished their route."},
		{&c.Pending, "conveyor_pending_release_items", "Items released from a station and waiting for room downstream."},
		{&c.EntryHalted, "conveyor_entry_halted", "1 while entry admission is halted."},
	}
	for _, g := range gauges {
		gauge, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{Name: g.name, Help: g.help}), g.name)
		if err != nil {
			return nil, err
		}
		*g.dst = gauge
	}

	c.BufferDepth, err = registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "conveyor_buffer_items",
		Help: "Items waiting in each station's buffer.",
	}, []string{"station"}), "conveyor_buffer_items")
	if err != nil {
		return nil, err
	}
	c.StationBusy, err = registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "conveyor_station_busy",
		Help: "1 while the station holds an item.",
	}, []string{"station"}), "conveyor_station_busy")
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Observe records one tick's events and refreshes the gauges from snap.
func (c *Collector) Observe(snap sim.Snapshot, events []sim.Event) {
	if c == nil {
		return
	}
	for _, e := range events {
		c.Events.WithLabelValues(string(e.Kind)).Inc()
	}
	c.Tick.Set(float64(snap.Tick))
	c.EntryDepth.Set(float64(len(snap.EntryQueue)))
	c.Active.Set(float64(len(snap.Active)))
	c.Completed.Set(float64(len(snap.Completed)))
	c.Pending.Set(float64(len(snap.Pending)))
	c.EntryHalted.Set(boolToFloat(snap.EntryHalted))
	for _, b := range snap.Buffers {
		c.BufferDepth.WithLabelValues(b.Station).Set(float64(len(b.ItemIDs)))
	}
	for _, st := range snap.Stations {
		c.StationBusy.WithLabelValues(st.Name).Set(boolToFloat(st.Busy))
	}
}

// WriteTextfile writes the current metric values in the Prometheus text
// format, for node_exporter's textfile collector or offline inspection.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.gatherer); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
