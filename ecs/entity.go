package ecs

// EntityId locates an entity: the owning archetype's id sits in the top
// 32 bits, the slot index inside that archetype in the bottom 32. The id
// is positional, so structural changes (AddComponent, RemoveComponent,
// Compact) hand out a new one; hold an EntityRef instead when a handle
// must outlive them.
type EntityId uint64

const entityIndexBits = 32

// NewEntityId packs an archetype id and slot index into an EntityId.
func NewEntityId(archetypeId uint32, index uint32) EntityId {
	return EntityId(archetypeId)<<entityIndexBits | EntityId(index)
}

// ArchetypeId returns the owning archetype's id.
func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> entityIndexBits)
}

// Index returns the slot index within the archetype.
func (e EntityId) Index() uint32 {
	return uint32(e)
}

// EntityRef is a stable handle to one entity. The world rewrites Id as
// the entity moves between archetypes or slots, and zeroes it when the
// entity dies; refs for the same entity are canonicalized, so pointer
// equality means same entity.
type EntityRef struct {
	Id        EntityId
	Archetype *Archetype
}
