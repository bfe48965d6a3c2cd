package ecs

import "fmt"

// Entity packs a slot id into its low half and the slot's generation into
// its high half. Destroying an entity bumps the generation of its slot, so
// handles kept across a level reload go stale instead of aliasing a new
// entity. The zero Entity is never alive.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

const (
	generationShift = 32
	idMask          = 1<<generationShift - 1
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<generationShift | uint64(id))
}

func (e Entity) id() entityID { return entityID(uint64(e) & idMask) }

func (e Entity) generation() generation { return generation(uint64(e) >> generationShift) }

func (e Entity) String() string {
	return fmt.Sprintf("%d#%d", e.id(), e.generation())
}
