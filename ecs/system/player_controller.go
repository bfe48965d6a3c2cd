package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PlayerControllerSystem feeds input into the player's hit reaction and
// advances it by one tick.
type PlayerControllerSystem struct {
	dt float64
}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{dt: common.DeltaTime}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.InputComponent.Kind(), component.HitReactionComponent.Kind(), func(e ecs.Entity, input *component.Input, hr *component.HitReaction) {
		state := hr.State
		if state == nil {
			return
		}

		state.SetInput(input.MoveX)
		if input.JumpPressed && !state.Knockback().Active() {
			state.Jump()
		}
		state.Tick(p.dt)

		if anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok {
			anim.FacingLeft = state.FacingLeft()
		}
	})
}
