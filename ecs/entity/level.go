package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

const groundLayer = 1

// LoadLevelToWorld creates the ground, enemies, pickups and player of lvl
// and returns the player.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, set *prefabs.Set, opts PlayerOptions) (ecs.Entity, error) {
	if lvl == nil || lvl.Spawn == nil {
		return 0, levels.ErrNoSpawn
	}

	for i, b := range lvl.Ground {
		if _, err := NewGroundAt(w, b); err != nil {
			return 0, fmt.Errorf("level %s: ground %d: %w", lvl.Name, i, err)
		}
	}

	for i, le := range lvl.Entities {
		var err error
		switch le.Type {
		case "enemy":
			_, err = NewEnemyAt(w, set.Enemy, le.X, le.Y)
		case "pickup":
			_, err = NewPickupAt(w, set, le.Prop("kind"), le.X, le.Y)
		default:
			err = fmt.Errorf("unknown entity type %q", le.Type)
		}
		if err != nil {
			return 0, fmt.Errorf("level %s: entity %d: %w", lvl.Name, i, err)
		}
	}

	player, err := NewPlayerAt(w, set.Player, lvl.Spawn.X, lvl.Spawn.Y, opts)
	if err != nil {
		return 0, fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	return player, nil
}

func NewGroundAt(w *ecs.World, b levels.Block) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.GroundTagComponent.Kind(), &component.GroundTag{}); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("add ground tag: %w", err)
	}
	body := prefabs.BodySpec{Width: b.W, Height: b.H, Friction: 0.9, Static: true}
	if err := addBody(w, entity, b.X, b.Y, body, false); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, err
	}
	if err := addBox(w, entity, b.W, b.H, toNRGBA(colornames.Dimgray), groundLayer); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, err
	}
	return entity, nil
}
