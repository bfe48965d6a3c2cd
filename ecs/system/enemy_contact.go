package system

import (
	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// EnemyContactSystem applies enemy hits for the contacts reported by the
// physics step.
type EnemyContactSystem struct{}

func NewEnemyContactSystem() *EnemyContactSystem {
	return &EnemyContactSystem{}
}

func (s *EnemyContactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range w.Events().Peek() {
		contact, ok := evt.Data.(ecs.ContactEvent)
		if evt.Type != ecs.EventContact || !ok {
			continue
		}
		enemy, ok := ecs.Get(w, contact.B, component.EnemyComponent.Kind())
		if !ok {
			continue
		}
		hr, ok := ecs.Get(w, contact.A, component.HitReactionComponent.Kind())
		if !ok || hr.State == nil {
			continue
		}
		targetX, _ := entityX(w, contact.A)
		otherX, _ := entityX(w, contact.B)
		enemy.Contact.OnContact(hr.State, targetX, character.Contact{
			Tag: contactTag(w, contact.B),
			X:   otherX,
		})
	}
}

func contactTag(w *ecs.World, e ecs.Entity) string {
	if ecs.Has(w, e, component.EnemyTagComponent.Kind()) {
		return character.TagEnemy
	}
	return ""
}

func entityX(w *ecs.World, e ecs.Entity) (float64, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, false
	}
	return t.X, true
}
