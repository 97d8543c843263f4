package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/kiln/ecs"
)

func TestQueryIterRequiresExecute(t *testing.T) {
	world := newConvoyWorld()
	query := ecs.NewQuery[struct{ *Hull }](world)

	assert.Panics(t, func() {
		for range query.Iter() {
		}
	})
	assert.Panics(t, func() {
		for range query.Values() {
		}
	})
}

func TestQueryExecuteSnapshotsRows(t *testing.T) {
	world := newConvoyWorld()
	world.Spawn(Hull{Integrity: 1, Max: 1})
	world.Spawn(Hull{Integrity: 2, Max: 2})

	query := ecs.NewQuery[struct{ *Hull }](world)
	query.Execute()
	require.Equal(t, 2, query.Len())

	// Spawns after Execute do not appear until the next Execute.
	world.Spawn(Hull{Integrity: 3, Max: 3})

	count := 0
	for range query.Iter() {
		count++
	}
	assert.Equal(t, 2, count)

	query.Execute()
	assert.Equal(t, 3, query.Len())
}

func TestQueryPicksUpNewArchetypes(t *testing.T) {
	world := newConvoyWorld()
	world.Spawn(Hull{Integrity: 1, Max: 1})

	query := ecs.NewQuery[struct{ *Hull }](world)
	query.Execute()
	require.Equal(t, 1, query.Len())

	// A hull in a brand-new archetype must invalidate the archetype cache.
	world.Spawn(Hull{Integrity: 2, Max: 2}, Shielded{})
	query.Execute()
	assert.Equal(t, 2, query.Len())
}

func TestQueryOptionalFields(t *testing.T) {
	world := newConvoyWorld()
	world.Spawn(Hull{Integrity: 1, Max: 1}, Throttle{Power: 0.5})
	world.Spawn(Hull{Integrity: 2, Max: 2})

	query := ecs.NewQuery[shipRow](world)
	query.Execute()

	withThrottle := 0
	for row := range query.Values() {
		if row.Throttle != nil {
			withThrottle++
		}
	}
	assert.Equal(t, 1, withThrottle)
	assert.Equal(t, 2, query.Len())
}

func TestQueryInitRebinds(t *testing.T) {
	first := newConvoyWorld()
	first.Spawn(Cargo{Tons: 1})

	second := newConvoyWorld()
	second.Spawn(Cargo{Tons: 2})
	second.Spawn(Cargo{Tons: 3})

	query := ecs.NewQuery[struct{ *Cargo }](first)
	query.Execute()
	require.Equal(t, 1, query.Len())

	query.Init(second)
	query.Execute()
	assert.Equal(t, 2, query.Len())
}
