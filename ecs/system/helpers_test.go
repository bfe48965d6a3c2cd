package system

import (
	"testing"

	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/prefabs"
)

func testPlayerSpec() *prefabs.PlayerSpec {
	return &prefabs.PlayerSpec{
		MaxHealth: 100,
		Speed:     5,
		JumpForce: 12,
		Particles: 3,
		Ground:    prefabs.GroundSpec{Radius: 4, Offset: 26},
		Body:      prefabs.BodySpec{Width: 32, Height: 48, Mass: 1},
	}
}

func testEnemySpec() *prefabs.EnemySpec {
	return &prefabs.EnemySpec{
		Damage:    10,
		ForceX:    5,
		ForceY:    2,
		Duration:  3,
		Particles: 3,
		Body:      prefabs.BodySpec{Width: 40, Height: 40, Static: true},
	}
}

func newTestPlayer(t *testing.T, w *ecs.World, x float64, opts entity.PlayerOptions) (ecs.Entity, *character.HitReaction) {
	t.Helper()
	e, err := entity.NewPlayerAt(w, testPlayerSpec(), x, 100, opts)
	if err != nil {
		t.Fatalf("NewPlayerAt: %v", err)
	}
	hr, ok := ecs.Get(w, e, component.HitReactionComponent.Kind())
	if !ok || hr.State == nil {
		t.Fatalf("player has no hit reaction")
	}
	return e, hr.State
}

func pushContact(w *ecs.World, a, b ecs.Entity) {
	w.Events().Push(ecs.Event{Type: ecs.EventContact, Data: ecs.ContactEvent{A: a, B: b}})
}

func feedbackRequests(w *ecs.World, e ecs.Entity) []character.FeedbackRequest {
	q, ok := ecs.Get(w, e, component.FeedbackQueueComponent.Kind())
	if !ok {
		return nil
	}
	return q.Requests
}
