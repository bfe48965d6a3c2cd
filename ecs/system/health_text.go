package system

import (
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const healthBarTweenSeconds = 0.35

// HealthTextSystem formats the health readout when it changes and eases the
// health bar toward the new fraction.
type HealthTextSystem struct{}

func NewHealthTextSystem() *HealthTextSystem {
	return &HealthTextSystem{}
}

func (s *HealthTextSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.HealthTextComponent.Kind(), func(e ecs.Entity, ht *component.HealthText) {
		if ht.Dirty {
			ht.Dirty = false
			first := ht.Text == ""
			ht.Text = FormatHealth(ht.Current, ht.Max)

			target := healthFraction(ht.Current, ht.Max)
			if first {
				ht.Bar = target
				ht.Tween = nil
			} else {
				ht.Tween = gween.New(ht.Bar, target, healthBarTweenSeconds, ease.OutQuad)
			}
		}

		if ht.Tween == nil {
			return
		}
		v, done := ht.Tween.Update(float32(common.DeltaTime))
		ht.Bar = v
		if done {
			ht.Tween = nil
		}
	})
}

// FormatHealth renders the health readout, e.g. "Health: 90/100".
func FormatHealth(current, max float64) string {
	return fmt.Sprintf("Health: %v/%v", current, max)
}

func healthFraction(current, max float64) float32 {
	if max <= 0 {
		return 0
	}
	f := current / max
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return float32(f)
}
