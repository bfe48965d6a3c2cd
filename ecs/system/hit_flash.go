package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type HitFlashSystem struct{}

func NewHitFlashSystem() *HitFlashSystem { return &HitFlashSystem{} }

func (s *HitFlashSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.HitFlashComponent.Kind(), func(e ecs.Entity, hf *component.HitFlash) {
		if hf.Interval <= 0 {
			hf.Interval = 1
		}
		hf.Timer++
		if hf.Timer >= hf.Interval {
			hf.Timer = 0
			hf.On = !hf.On
			hf.Frames -= hf.Interval
		}
		if hf.Frames <= 0 {
			ecs.Remove(w, e, component.HitFlashComponent.Kind())
		}
	})
}
