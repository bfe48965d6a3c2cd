package main

import (
	"log"
	"os"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

const debugHeal = 5

type Options struct {
	Level       string
	Debug       bool
	FloorHealth bool
	NoSave      bool
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	render    *system.RenderSystem
	watcher   *prefabs.Watcher
	save      *saveStore

	debug   bool
	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	debugUI *ebitenui.UI
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{
		world:  ecs.NewWorld(),
		render: system.NewRenderSystem(),
		debug:  opts.Debug,
	}

	if !opts.NoSave {
		store, err := openSaveStore()
		if err != nil {
			log.Printf("Warning: could not initialize persistence: %v", err)
		} else {
			g.save = store
		}
	}

	physics := system.NewPhysicsSystem()
	g.physics = physics
	loader := system.NewPersistenceSystem(opts.Level, entity.PlayerOptions{
		Health:      savedHealth(g.save),
		FloorHealth: opts.FloorHealth,
	}, physics.Reset)
	if err := loader.Load(g.world); err != nil {
		return nil, err
	}

	g.scheduler = ecs.NewScheduler(
		loader,
		system.NewInputSystem(),
		system.NewPlayerControllerSystem(),
		physics,
		system.NewGroundCheckSystem(physics),
		system.NewEnemyContactSystem(),
		system.NewPickupScriptSystem(),
		system.NewPickupContactSystem(),
		system.NewFeedbackSystem(time.Now().UnixNano()),
		system.NewParticleSystem(),
		system.NewPickupHoverSystem(),
		system.NewAnimationSystem(),
		system.NewHitFlashSystem(),
		system.NewHealthTextSystem(),
		system.NewTTLSystem(),
	)

	if info, err := os.Stat(prefabs.Dir); err == nil && info.IsDir() {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			log.Printf("Warning: prefab hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.pauseUI = NewPauseUI(g)
	g.debugUI = NewDebugUI(g)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit || ebiten.IsWindowBeingClosed() {
		g.saveCharacter()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if changed := g.watcher.Drain(); len(changed) > 0 {
		log.Printf("prefabs changed, reloading: %v", changed)
		system.RequestReload(g.world)
	}

	if g.debug {
		g.debugUI.Update()
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	g.render.Draw(g.world, screen)

	if g.debug {
		g.physics.DrawDebug(g.world, screen)
		system.DrawPlayerStateDebug(g.world, screen)
		g.debugUI.Draw(screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("Warning: close prefab watcher: %v", err)
		}
	}
}

func (g *Game) saveCharacter() {
	state, ok := system.PlayerState(g.world)
	if !ok || g.save == nil {
		return
	}
	if err := g.save.SaveCharacter(SavedCharacter{Health: state.Health()}); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// strikePlayer hits the player as the first enemy preset would, from the
// right.
func (g *Game) strikePlayer() {
	if state, ok := system.PlayerState(g.world); ok {
		character.DefaultEnemyContact.Strike(state, true)
	}
}

// healPlayer applies the debug health item.
func (g *Game) healPlayer() {
	if state, ok := system.PlayerState(g.world); ok {
		state.SetParticleCount(1)
		state.ApplyHeal(debugHeal)
	}
}

func (g *Game) resetPickups() {
	system.ResetPickups(g.world)
}

func (g *Game) reloadPrefabs() {
	system.RequestReload(g.world)
}
