// Package sim provides the tick-stepped conveyor simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - item.go: Item lifecycle (awaiting entry → station/buffer → finished)
//   - station.go, buffer.go: the passive containers the simulator manipulates
//   - routing.go: the routing decision and its Outcome
//   - simulator.go: the per-tick algorithm (admission, station service, downstream routing)
//
// # Architecture
//
// The Simulator is the only component that makes routing decisions. Stations
// and buffers are passive. Time is a logical tick counter; nothing in the
// package reads the wall clock, so two runs from the same Config produce the
// same event log.
//
// Sub-packages:
//   - sim/scenario/: YAML scenario loading, the reference scenario, random generation
//   - sim/trace/: per-tick trace recording and summaries
//   - sim/telemetry/: Prometheus gauges and counters fed from snapshots
//
// # Ownership
//
// Every item is held by exactly one container at a time: the entry queue, a
// station, a buffer, the pending-release list, the stuck list or the
// completed collection. A routing decision that cannot place an item returns
// OutcomeHalted and leaves the item with its caller.
package sim
