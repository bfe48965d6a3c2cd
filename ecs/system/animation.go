package system

import (
	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const (
	hitFlashFrames   = 30
	hitFlashInterval = 5
)

// AnimationSystem consumes animator triggers. The hit trigger (re)starts a
// red flash; the running float drives the running pose.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.AnimatorComponent.Kind(), func(e ecs.Entity, anim *component.Animator) {
		anim.Running = anim.Floats[character.FloatRunning] != 0

		if !anim.Triggers[character.TriggerAttacked] {
			return
		}
		delete(anim.Triggers, character.TriggerAttacked)

		// Knockback fires the trigger every tick; keep the running flash.
		if ecs.Has(w, e, component.HitFlashComponent.Kind()) {
			return
		}
		_ = ecs.Add(w, e, component.HitFlashComponent.Kind(), &component.HitFlash{
			Frames:   hitFlashFrames,
			Interval: hitFlashInterval,
			On:       true,
		})
	})
}
