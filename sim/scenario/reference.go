package scenario

// Reference returns the reference scenario: three stations with different
// service times, single-slot buffers and six items with overlapping routes.
// Station C's 1.5 service time rounds to 2 ticks.
func Reference() *Spec {
	return &Spec{
		Version:        CurrentVersion,
		BufferCapacity: 1,
		Stations: []StationEntry{
			{Name: "A", ServiceTime: 2.0},
			{Name: "B", ServiceTime: 3.0},
			{Name: "C", ServiceTime: 1.5},
		},
		Items: []ItemEntry{
			{ID: 1, Route: []string{"A", "B"}},
			{ID: 2, Route: []string{"A", "C"}},
			{ID: 3, Route: []string{"B", "C", "A"}},
			{ID: 4, Route: []string{"A"}},
			{ID: 5, Route: []string{"C", "B"}},
			{ID: 6, Route: []string{"A", "B", "C"}},
		},
	}
}
