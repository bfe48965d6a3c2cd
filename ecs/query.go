package ecs

import "github.com/milk9111/platformer/ecs/component"

// Kind is any component kind, regardless of its value type.
type Kind interface {
	ID() component.ComponentID
}

// Query returns the live entities that have every given kind. The result is
// a snapshot, so callbacks may add or remove components while iterating.
func Query(w *World, kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil || s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}

	// iterate smallest set
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.denseEntities {
		if !w.entities.isAlive(e) {
			continue
		}
		inAll := true
		for _, s := range sets {
			if s != smallest && !s.Has(e) {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, e)
		}
	}
	return out
}
