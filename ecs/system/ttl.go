package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// TTLSystem counts TTL components down and destroys their entities on the
// update that reaches zero. A TTL that starts at zero expires immediately.
type TTLSystem struct {
	expired []ecs.Entity
}

func NewTTLSystem() *TTLSystem { return &TTLSystem{} }

func (s *TTLSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	s.expired = s.expired[:0]
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.Frames--
		if ttl.Frames <= 0 {
			s.expired = append(s.expired, e)
		}
	})
	for _, e := range s.expired {
		ecs.DestroyEntity(w, e)
	}
}
