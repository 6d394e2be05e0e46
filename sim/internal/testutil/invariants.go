// Package testutil provides shared test assertions for the conveyor simulator.
// It depends only on the standard library so that both sim/ (internal tests)
// and its sub-packages can import it without cycles.
package testutil

import (
	"math"
	"sort"
	"testing"
)

// Counts is the population of each top-level collection at one instant.
type Counts struct {
	Entry     int
	Active    int
	Completed int
	Total     int
}

// AssertConservation checks Entry + Active + Completed == Total.
func AssertConservation(t *testing.T, tick int64, c Counts) {
	t.Helper()
	if got := c.Entry + c.Active + c.Completed; got != c.Total {
		t.Errorf("tick %d: conservation violated: entry=%d + active=%d + completed=%d = %d, want %d",
			tick, c.Entry, c.Active, c.Completed, got, c.Total)
	}
}

// AssertBufferBound checks a buffer never exceeds its capacity.
func AssertBufferBound(t *testing.T, tick int64, name string, length, capacity int) {
	t.Helper()
	if length > capacity {
		t.Errorf("tick %d: buffer %s holds %d items, capacity %d", tick, name, length, capacity)
	}
}

// AssertExclusiveOwnership checks that every id in want appears in exactly
// one of the containers, and that no container holds an id outside want.
func AssertExclusiveOwnership(t *testing.T, tick int64, containers map[string][]int, want []int) {
	t.Helper()
	owner := make(map[int]string)
	names := make([]string, 0, len(containers))
	for name := range containers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, id := range containers[name] {
			if prev, ok := owner[id]; ok {
				t.Errorf("tick %d: item %d held by both %s and %s", tick, id, prev, name)
				continue
			}
			owner[id] = name
		}
	}
	expected := make(map[int]bool, len(want))
	for _, id := range want {
		expected[id] = true
		if _, ok := owner[id]; !ok {
			t.Errorf("tick %d: item %d is not held by any container", tick, id)
		}
	}
	for id, name := range owner {
		if !expected[id] {
			t.Errorf("tick %d: unexpected item %d in %s", tick, id, name)
		}
	}
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
