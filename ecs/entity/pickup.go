package entity

import (
	"fmt"

	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

const pickupLayer = 3

func NewPickupAt(w *ecs.World, set *prefabs.Set, kind string, x, y float64) (ecs.Entity, error) {
	if set == nil {
		return 0, fmt.Errorf("pickup: nil prefab set")
	}
	spec, err := set.Pickups.Lookup(kind)
	if err != nil {
		return 0, err
	}
	if spec.Sprite < 0 || spec.Sprite >= component.ParticleSpriteCount {
		return 0, fmt.Errorf("pickup %s: %w: %d of %d", kind, character.ErrSpriteIndex, spec.Sprite, component.ParticleSpriteCount)
	}

	size := spec.Size
	if size <= 0 {
		size = 16
	}

	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.PickupComponent.Kind(), &component.Pickup{
		Kind: kind,
		Item: &character.Pickup{
			Damage:    spec.Damage,
			Heal:      spec.Heal,
			Particles: spec.Particles,
			Sprite:    spec.Sprite,
		},
		Script:     set.Scripts[spec.Script],
		BaseDamage: spec.Damage,
		BaseHeal:   spec.Heal,
	}); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("pickup: add pickup component: %w", err)
	}
	if err := addBody(w, entity, x, y, prefabs.BodySpec{Width: size, Height: size}, true); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("pickup: %w", err)
	}
	if err := addBox(w, entity, size, size, spec.Color.NRGBA(toNRGBA(colornames.Gold)), pickupLayer); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("pickup: %w", err)
	}
	if err := ecs.Add(w, entity, component.HoverComponent.Kind(), &component.Hover{}); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("pickup: add hover: %w", err)
	}
	return entity, nil
}
