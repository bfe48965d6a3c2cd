package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// ParticleSystem moves burst particles under gravity and fades them out.
// Destruction is left to the TTL system.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ParticleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Particle, t *component.Transform) {
		p.VY += common.Gravity * common.DeltaTime
		t.X += p.VX * common.DeltaTime
		t.Y += p.VY * common.DeltaTime
		if p.Life > 0 {
			p.Life--
		}
		if p.MaxLife > 0 {
			p.Color.A = uint8(common.Lerp(0, 255, float32(p.Life)/float32(p.MaxLife)))
		}
	})
}
