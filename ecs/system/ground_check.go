package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// GroundCheckSystem tests a small circle under each player's feet against
// ground shapes and records the result on the hit reaction.
type GroundCheckSystem struct {
	physics *PhysicsSystem
}

func NewGroundCheckSystem(physics *PhysicsSystem) *GroundCheckSystem {
	return &GroundCheckSystem{physics: physics}
}

var groundQueryFilter = cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, categoryGround)

func (g *GroundCheckSystem) Update(w *ecs.World) {
	if g == nil || w == nil {
		return
	}
	space := g.physics.Space()
	if space == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.HitReactionComponent.Kind(), func(e ecs.Entity, player *component.Player, body *component.PhysicsBody, hr *component.HitReaction) {
		if hr.State == nil || body.Body == nil {
			return
		}
		pos := body.Body.Position()
		feet := cp.Vector{X: pos.X, Y: pos.Y + player.GroundOffset}
		info := space.PointQueryNearest(feet, player.GroundRadius, groundQueryFilter)
		hr.State.SetGrounded(info != nil && info.Shape != nil)
	})
}
