package entity

import (
	"fmt"

	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

// PlayerOptions override prefab values at spawn time.
type PlayerOptions struct {
	// Health replaces the prefab's starting health when positive.
	Health      float64
	FloorHealth bool
}

func NewPlayerAt(w *ecs.World, spec *prefabs.PlayerSpec, x, y float64, opts PlayerOptions) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}

	entity := ecs.CreateEntity(w)
	if err := addPlayerComponents(w, entity, spec, x, y); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, err
	}

	health := spec.Health
	if opts.Health > 0 {
		health = opts.Health
	}
	state, err := character.New(character.Config{
		MaxHealth:      spec.MaxHealth,
		Health:         health,
		Speed:          spec.Speed,
		JumpForce:      spec.JumpForce,
		FloorHealth:    opts.FloorHealth,
		ParticleCount:  spec.Particles,
		ParticleSprite: spec.ParticleSprite,
		SpriteCount:    component.ParticleSpriteCount,
	}, CharacterDeps(w, entity))
	if err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("player: %w", err)
	}

	if err := ecs.Add(w, entity, component.HitReactionComponent.Kind(), &component.HitReaction{State: state}); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("player: add hit reaction: %w", err)
	}
	return entity, nil
}

func addPlayerComponents(w *ecs.World, entity ecs.Entity, spec *prefabs.PlayerSpec, x, y float64) error {
	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{
		GroundRadius: spec.Ground.Radius,
		GroundOffset: spec.Ground.Offset,
	}); err != nil {
		return fmt.Errorf("player: add player component: %w", err)
	}
	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return fmt.Errorf("player: add input: %w", err)
	}
	if err := addBody(w, entity, x, y, spec.Body, false); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if err := addBox(w, entity, spec.Body.Width, spec.Body.Height, spec.Color.NRGBA(toNRGBA(colornames.Steelblue)), spec.RenderLayer.Index); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, entity, component.AnimatorComponent.Kind(), &component.Animator{}); err != nil {
		return fmt.Errorf("player: add animator: %w", err)
	}
	if err := ecs.Add(w, entity, component.HealthTextComponent.Kind(), &component.HealthText{}); err != nil {
		return fmt.Errorf("player: add health text: %w", err)
	}
	if err := ecs.Add(w, entity, component.FeedbackQueueComponent.Kind(), &component.FeedbackQueue{}); err != nil {
		return fmt.Errorf("player: add feedback queue: %w", err)
	}
	return nil
}
