package system

import (
	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PlayerState returns the hit reaction of the first player in w.
func PlayerState(w *ecs.World) (*character.HitReaction, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return nil, false
	}
	hr, ok := ecs.Get(w, e, component.HitReactionComponent.Kind())
	if !ok || hr.State == nil {
		return nil, false
	}
	return hr.State, true
}
