package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/levels"
)

func stepPhysics(w *ecs.World, physics *PhysicsSystem, ground *GroundCheckSystem, frames int) []ecs.ContactEvent {
	var contacts []ecs.ContactEvent
	for i := 0; i < frames; i++ {
		physics.Update(w)
		ground.Update(w)
		for _, evt := range w.Events().Drain() {
			if c, ok := evt.Data.(ecs.ContactEvent); ok && evt.Type == ecs.EventContact {
				contacts = append(contacts, c)
			}
		}
	}
	return contacts
}

func TestPlayerLandsOnGround(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := entity.NewGroundAt(w, levels.Block{X: 100, Y: 700, W: 400, H: 40}); err != nil {
		t.Fatalf("NewGroundAt: %v", err)
	}
	_, state := newTestPlayer(t, w, 100, entity.PlayerOptions{})

	physics := NewPhysicsSystem()
	ground := NewGroundCheckSystem(physics)

	stepPhysics(w, physics, ground, 1)
	if state.CanJump() {
		t.Fatalf("player grounded while falling")
	}
	stepPhysics(w, physics, ground, 120)
	if !state.CanJump() {
		t.Fatalf("player should be grounded after landing")
	}
}

func TestPhysicsReportsPlayerContacts(t *testing.T) {
	cases := []struct {
		name  string
		spawn func(t *testing.T, w *ecs.World) ecs.Entity
	}{
		{"enemy", func(t *testing.T, w *ecs.World) ecs.Entity {
			e, err := entity.NewEnemyAt(w, testEnemySpec(), 100, 160)
			if err != nil {
				t.Fatalf("NewEnemyAt: %v", err)
			}
			return e
		}},
		{"pickup", func(t *testing.T, w *ecs.World) ecs.Entity {
			e, err := entity.NewPickupAt(w, testPickupSet(), "health", 100, 200)
			if err != nil {
				t.Fatalf("NewPickupAt: %v", err)
			}
			return e
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			if _, err := entity.NewGroundAt(w, levels.Block{X: 100, Y: 300, W: 400, H: 40}); err != nil {
				t.Fatalf("NewGroundAt: %v", err)
			}
			player, _ := newTestPlayer(t, w, 100, entity.PlayerOptions{})
			other := c.spawn(t, w)

			physics := NewPhysicsSystem()
			contacts := stepPhysics(w, physics, NewGroundCheckSystem(physics), 120)

			found := false
			for _, ct := range contacts {
				if ct.A == player && ct.B == other {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected a player contact with the %s, got %v", c.name, contacts)
			}
		})
	}
}

func TestPhysicsResetRebuildsBodies(t *testing.T) {
	w := ecs.NewWorld()
	_, _ = newTestPlayer(t, w, 100, entity.PlayerOptions{})
	physics := NewPhysicsSystem()
	physics.Update(w)
	if len(physics.entities) != 1 {
		t.Fatalf("expected one body, got %d", len(physics.entities))
	}

	physics.Reset()
	if physics.Space() != nil || len(physics.entities) != 0 {
		t.Fatalf("reset kept state")
	}
	physics.Update(w)
	if physics.Space() == nil || len(physics.entities) != 1 {
		t.Fatalf("expected body to be rebuilt after reset")
	}
}

func TestResetPickupUnderPlayerIsCollectedAgain(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := entity.NewGroundAt(w, levels.Block{X: 100, Y: 300, W: 400, H: 40}); err != nil {
		t.Fatalf("NewGroundAt: %v", err)
	}
	_, state := newTestPlayer(t, w, 100, entity.PlayerOptions{Health: 50})
	if _, err := entity.NewPickupAt(w, testPickupSet(), "health", 100, 270); err != nil {
		t.Fatalf("NewPickupAt: %v", err)
	}

	physics := NewPhysicsSystem()
	pickups := NewPickupContactSystem()
	step := func(frames int) {
		for i := 0; i < frames; i++ {
			physics.Update(w)
			pickups.Update(w)
			w.Events().Drain()
		}
	}

	step(120)
	if state.Health() != 55 {
		t.Fatalf("expected the pickup to be collected once, health %v", state.Health())
	}
	step(30)
	if state.Health() != 55 {
		t.Fatalf("standing on a used pickup applied it again, health %v", state.Health())
	}

	ResetPickups(w)
	step(1)
	if state.Health() != 60 {
		t.Fatalf("expected the reset pickup to be collected while standing on it, health %v", state.Health())
	}
	step(30)
	if state.Health() != 60 {
		t.Fatalf("reset pickup applied more than once, health %v", state.Health())
	}
}
