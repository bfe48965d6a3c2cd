package entity

import (
	"fmt"

	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

func NewEnemyAt(w *ecs.World, spec *prefabs.EnemySpec, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("enemy: nil spec")
	}

	entity := ecs.CreateEntity(w)
	if err := addEnemyComponents(w, entity, spec, x, y); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, err
	}
	return entity, nil
}

func addEnemyComponents(w *ecs.World, entity ecs.Entity, spec *prefabs.EnemySpec, x, y float64) error {
	if err := ecs.Add(w, entity, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return fmt.Errorf("enemy: add enemy tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), &component.Enemy{
		Contact: character.EnemyContact{
			Damage:    spec.Damage,
			ForceX:    spec.ForceX,
			ForceY:    spec.ForceY,
			Duration:  spec.Duration,
			Particles: spec.Particles,
		},
	}); err != nil {
		return fmt.Errorf("enemy: add enemy component: %w", err)
	}
	if err := addBody(w, entity, x, y, spec.Body, false); err != nil {
		return fmt.Errorf("enemy: %w", err)
	}
	if err := addBox(w, entity, spec.Body.Width, spec.Body.Height, spec.Color.NRGBA(toNRGBA(colornames.Crimson)), spec.RenderLayer.Index); err != nil {
		return fmt.Errorf("enemy: %w", err)
	}
	return nil
}
