package system

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// PersistenceSystem builds the world from a level and the prefabs, and
// rebuilds it on ReloadRequest. The player's health survives a reload.
type PersistenceSystem struct {
	levelName    string
	opts         entity.PlayerOptions
	physicsReset func()
	loadSequence uint64

	// loadSet is swapped in tests.
	loadSet func() (*prefabs.Set, error)
}

func NewPersistenceSystem(levelName string, opts entity.PlayerOptions, physicsReset func()) *PersistenceSystem {
	return &PersistenceSystem{
		levelName:    levelName,
		opts:         opts,
		physicsReset: physicsReset,
		loadSet:      prefabs.LoadSet,
	}
}

func (p *PersistenceSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}

	if _, ok := ecs.First(w, component.ReloadRequestComponent.Kind()); !ok {
		return
	}
	ecs.ForEach(w, component.ReloadRequestComponent.Kind(), func(e ecs.Entity, _ *component.ReloadRequest) {
		ecs.DestroyEntity(w, e)
	})

	if err := p.Load(w); err != nil {
		log.Printf("persistence: reload failed, keeping current world: %v", err)
	}
}

// RequestReload queues a world rebuild for the next update.
func RequestReload(w *ecs.World) {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{})
}

// Load replaces the world's contents with a fresh build of the level. The
// level is first built into a scratch world; if the prefabs or the level
// cannot be read, or do not build, w is left untouched.
func (p *PersistenceSystem) Load(w *ecs.World) error {
	set, err := p.loadSet()
	if err != nil {
		return err
	}

	name := p.levelName
	if filepath.Ext(name) == "" {
		name += ".json"
	}
	level, err := levels.LoadLevelFromFS(name)
	if err != nil {
		return fmt.Errorf("load level %q: %w", name, err)
	}

	opts := p.opts
	if state, ok := PlayerState(w); ok && state.Health() > 0 {
		opts.Health = state.Health()
	}

	if _, err := entity.LoadLevelToWorld(ecs.NewWorld(), level, set, opts); err != nil {
		return fmt.Errorf("build level %q: %w", name, err)
	}

	for _, e := range ecs.Entities(w) {
		ecs.DestroyEntity(w, e)
	}
	if p.physicsReset != nil {
		p.physicsReset()
	}

	if _, err := entity.LoadLevelToWorld(w, level, set, opts); err != nil {
		return err
	}

	p.loadSequence++
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.LevelLoadedComponent.Kind(), &component.LevelLoaded{Sequence: p.loadSequence})
	return nil
}
