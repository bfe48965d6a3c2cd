package component

import "github.com/milk9111/platformer/character"

// HitReaction attaches a character's health and knockback state to an entity.
type HitReaction struct {
	State *character.HitReaction
}

var HitReactionComponent = NewComponent[HitReaction]()
