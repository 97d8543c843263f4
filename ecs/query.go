package ecs

import (
	"iter"
	"unsafe"
)

// Query is the per-frame flavor of View: Execute snapshots the matching
// entity and component rows once, and systems iterate the snapshot any
// number of times without re-walking archetypes. The scheduler declares
// and executes queries for systems; see Scheduler.Register.
type Query[T any] struct {
	view  *View[T]
	world *World

	// Matching archetypes, rebuilt whenever the world's archetype count
	// changes.
	archetypes    []*Archetype
	lastArchCount int

	rows     []T
	rowIds   []EntityId
	snapshot bool
}

// NewQuery creates a standalone query. Call Execute before iterating.
func NewQuery[T any](world *World) *Query[T] {
	q := &Query[T]{}
	q.Init(world)
	return q
}

// Init binds the query to a world. Called by the scheduler when it
// registers a system with Query fields.
func (q *Query[T]) Init(world *World) {
	q.view = NewView[T](world)
	q.world = world
	q.archetypes = nil
	q.lastArchCount = -1
	q.snapshot = false
}

// Execute snapshots the matching rows for this frame. The scheduler calls
// this before the owning system runs.
func (q *Query[T]) Execute() {
	if count := len(q.world.archetypes); count != q.lastArchCount {
		q.archetypes = q.archetypes[:0]
		for _, archetype := range q.world.archetypes {
			if q.view.matchesArchetype(archetype) {
				q.archetypes = append(q.archetypes, archetype)
			}
		}
		q.lastArchCount = count
	}

	q.rowIds = q.rowIds[:0]
	q.rows = q.rows[:0]
	for _, archetype := range q.archetypes {
		q.snapshotArchetype(archetype)
	}
	q.snapshot = true
}

// snapshotArchetype appends the archetype's live rows to the snapshot.
func (q *Query[T]) snapshotArchetype(archetype *Archetype) {
	if len(archetype.columns) == 0 {
		return
	}

	columnIndices := q.view.buildColumnIndices(archetype)

	var row T
	rowPtr := unsafe.Pointer(&row)

	for index := range archetype.columns[0].Iter() {
		if !q.view.populateResult(rowPtr, archetype, index, columnIndices) {
			continue
		}
		q.rowIds = append(q.rowIds, NewEntityId(archetype.id, uint32(index)))
		q.rows = append(q.rows, row)
	}
}

// Iter yields the snapshotted (EntityId, T) rows. Panics if Execute has
// not run this frame.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.snapshot {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(EntityId, T) bool) {
		for i, id := range q.rowIds {
			if !yield(id, q.rows[i]) {
				return
			}
		}
	}
}

// Values yields the snapshotted component rows only. Panics if Execute
// has not run this frame.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.snapshot {
		panic("Query.Values() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for _, row := range q.rows {
			if !yield(row) {
				return
			}
		}
	}
}

// Len returns the number of rows in the current snapshot.
func (q *Query[T]) Len() int {
	return len(q.rowIds)
}
