package scenario

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/conveyor-sim/sim"
)

func TestGenerate_SameSeed_SameItems(t *testing.T) {
	g := GenerateSpec{Count: 20, Seed: 42, MinRoute: 1, MaxRoute: 3}
	stations := []string{"A", "B", "C"}

	a := Generate(g, stations, 1)
	b := Generate(g, stations, 1)

	assert.Equal(t, a, b)
}

func TestGenerate_RespectsBoundsAndStations(t *testing.T) {
	// GIVEN four stations and route lengths in [2, 4]
	g := GenerateSpec{Count: 100, Seed: 7, MinRoute: 2, MaxRoute: 4}
	stations := []string{"A", "B", "C", "D"}
	known := map[string]bool{"A": true, "B": true, "C": true, "D": true}

	// WHEN items are generated starting at id 10
	items := Generate(g, stations, 10)

	// THEN ids are consecutive and routes are in bounds with no immediate repeats
	require.Len(t, items, 100)
	for i, it := range items {
		assert.Equal(t, 10+i, it.ID)
		assert.GreaterOrEqual(t, len(it.Route), 2)
		assert.LessOrEqual(t, len(it.Route), 4)
		for j, name := range it.Route {
			assert.True(t, known[name], "unknown station %q", name)
			if j > 0 {
				assert.NotEqual(t, it.Route[j-1], name, "item %d repeats %s", it.ID, name)
			}
		}
	}
}

func TestGenerate_DefaultBounds(t *testing.T) {
	items := Generate(GenerateSpec{Count: 50, Seed: 1}, []string{"A", "B"}, 1)
	for _, it := range items {
		assert.GreaterOrEqual(t, len(it.Route), 1)
		assert.LessOrEqual(t, len(it.Route), 2)
	}
}

func TestGenerate_NoStations_Empty(t *testing.T) {
	assert.Empty(t, Generate(GenerateSpec{Count: 5}, nil, 1))
}

func TestToConfig_GeneratedItemsFollowListedOnes(t *testing.T) {
	spec := Reference()
	spec.Generate = &GenerateSpec{Count: 3, Seed: 9}

	cfg, err := spec.ToConfig()
	require.NoError(t, err)

	require.Len(t, cfg.Items, 9)
	assert.Equal(t, 7, cfg.Items[6].ID)
	assert.Equal(t, 9, cfg.Items[8].ID)
}

func TestGeneratedExample_DrainsCompletely(t *testing.T) {
	// GIVEN the generated example scenario
	spec, err := Load(filepath.Join("..", "..", "examples", "generated.yaml"))
	require.NoError(t, err)
	cfg, err := spec.ToConfig()
	require.NoError(t, err)
	require.Len(t, cfg.Items, 40)

	s, err := sim.NewSimulator(cfg)
	require.NoError(t, err)

	// WHEN run with a large budget
	s.Run(10_000)

	// THEN every item finished and none were lost or stuck
	assert.True(t, s.Done())
	assert.Len(t, s.CompletedItems(), 40)
	assert.Empty(t, s.StuckItems())
}
