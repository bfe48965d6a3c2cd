package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PickupContactSystem applies pickups the player overlapped this frame and
// reactivates them all when a reset is requested.
type PickupContactSystem struct{}

func NewPickupContactSystem() *PickupContactSystem {
	return &PickupContactSystem{}
}

func (s *PickupContactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	reset := false
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		reset = reset || input.ResetPressed
	})
	if reset {
		ResetPickups(w)
	}

	for _, contact := range pickupContacts(w) {
		pickup, _ := ecs.Get(w, contact.B, component.PickupComponent.Kind())
		hr, ok := ecs.Get(w, contact.A, component.HitReactionComponent.Kind())
		if !ok || hr.State == nil {
			continue
		}
		if !pickup.Item.OnOverlap(hr.State) {
			continue
		}
		if box, ok := ecs.Get(w, contact.B, component.RenderBoxComponent.Kind()); ok {
			box.Hidden = true
		}
	}
}

// ResetPickups makes every used pickup collectible and visible again.
func ResetPickups(w *ecs.World) {
	ecs.ForEach(w, component.PickupComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup) {
		pickup.Item.Reactivate()
		if box, ok := ecs.Get(w, e, component.RenderBoxComponent.Kind()); ok {
			box.Hidden = false
		}
	})
}

// pickupContacts returns this frame's contacts whose other body is an active
// pickup.
func pickupContacts(w *ecs.World) []ecs.ContactEvent {
	var out []ecs.ContactEvent
	for _, evt := range w.Events().Peek() {
		contact, ok := evt.Data.(ecs.ContactEvent)
		if evt.Type != ecs.EventContact || !ok {
			continue
		}
		pickup, ok := ecs.Get(w, contact.B, component.PickupComponent.Kind())
		if !ok || !pickup.Item.Active() {
			continue
		}
		out = append(out, contact)
	}
	return out
}
