package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

var debugShapeColors = map[cp.CollisionType]color.NRGBA{
	collisionTypePlayer: {R: 0x33, G: 0xff, B: 0x33, A: 0xe6},
	collisionTypeSolid:  {R: 0x80, G: 0x80, B: 0x80, A: 0xe6},
	collisionTypeEnemy:  {R: 0xff, G: 0x33, B: 0x33, A: 0xe6},
	collisionTypePickup: {R: 0xff, G: 0xd7, B: 0x00, A: 0xe6},
}

var debugGroundSensorColor = color.NRGBA{R: 0x33, G: 0xcc, B: 0xff, A: 0xff}

// DrawDebug outlines every collider by kind and the player's ground sensor.
// The sensor is filled while the player is grounded.
func (ps *PhysicsSystem) DrawDebug(w *ecs.World, screen *ebiten.Image) {
	if ps == nil || ps.space == nil || w == nil || screen == nil {
		return
	}

	for _, info := range ps.entities {
		if info.shape == nil {
			continue
		}
		bb := info.shape.BB()
		vector.StrokeRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), 1, debugShapeColors[info.kind], false)
	}

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.HitReactionComponent.Kind(), func(e ecs.Entity, player *component.Player, body *component.PhysicsBody, hr *component.HitReaction) {
		if body.Body == nil || hr.State == nil {
			return
		}
		pos := body.Body.Position()
		x, y, r := float32(pos.X), float32(pos.Y+player.GroundOffset), float32(player.GroundRadius)
		if hr.State.CanJump() {
			vector.FillCircle(screen, x, y, r, debugGroundSensorColor, true)
			return
		}
		vector.StrokeCircle(screen, x, y, r, 1, debugGroundSensorColor, true)
	})
}

// DrawPlayerStateDebug prints the player's hit-reaction state.
func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	state, ok := PlayerState(w)
	if !ok {
		return
	}
	kb := state.Knockback()
	text := fmt.Sprintf("Health: %v/%v\nGrounded: %v\nKnockback: %.2fs\nFacingLeft: %v\nParticles: %d (sprite %d)",
		state.Health(), state.MaxHealth(), state.CanJump(), kb.Remaining, state.FacingLeft(), state.ParticleCount(), state.ParticleSprite())
	ebitenutil.DebugPrintAt(screen, text, 10, 60)
}
