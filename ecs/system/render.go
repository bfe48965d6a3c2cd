package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	healthTextX    = 16
	healthTextY    = 16
	healthBarWidth = 200
	healthBarH     = 10
)

var hitFlashColor = color.NRGBA{R: 255, G: 40, B: 40, A: 255}

type RenderSystem struct {
	face *text.GoXFace
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := ecs.Query(w, component.TransformComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := renderLayer(w, entities[i]), renderLayer(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if box, ok := ecs.Get(w, e, component.RenderBoxComponent.Kind()); ok {
			r.drawBox(w, e, screen, t, box)
		}
		if p, ok := ecs.Get(w, e, component.ParticleComponent.Kind()); ok {
			drawParticle(screen, t, p)
		}
	}

	r.drawHealth(w, screen)
}

func renderLayer(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}

func (r *RenderSystem) drawBox(w *ecs.World, e ecs.Entity, screen *ebiten.Image, t *component.Transform, box *component.RenderBox) {
	if box.Hidden {
		return
	}
	c := box.Color
	if hf, ok := ecs.Get(w, e, component.HitFlashComponent.Kind()); ok && hf.On {
		c = hitFlashColor
	}
	x := float32(t.X - box.Width/2)
	y := float32(t.Y - box.Height/2)
	vector.FillRect(screen, x, y, float32(box.Width), float32(box.Height), c, false)

	// Facing marker on characters.
	if anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok {
		eyeX := float32(t.X + box.Width/4)
		if anim.FacingLeft {
			eyeX = float32(t.X - box.Width/4)
		}
		eyeY := float32(t.Y - box.Height/4)
		if anim.Running {
			eyeY += 2
		}
		vector.FillCircle(screen, eyeX, eyeY, 3, colornames.White, true)
	}
}

func drawParticle(screen *ebiten.Image, t *component.Transform, p *component.Particle) {
	half := p.Size / 2
	switch p.Sprite {
	case component.ParticleSpriteCircle:
		vector.FillCircle(screen, float32(t.X), float32(t.Y), float32(half), p.Color, true)
	default:
		vector.FillRect(screen, float32(t.X-half), float32(t.Y-half), float32(p.Size), float32(p.Size), p.Color, false)
	}
}

func (r *RenderSystem) drawHealth(w *ecs.World, screen *ebiten.Image) {
	e, ok := ecs.First(w, component.HealthTextComponent.Kind())
	if !ok {
		return
	}
	ht, _ := ecs.Get(w, e, component.HealthTextComponent.Kind())

	op := &text.DrawOptions{}
	op.GeoM.Translate(healthTextX, healthTextY)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, ht.Text, r.face, op)

	barY := float32(healthTextY + 20)
	vector.FillRect(screen, healthTextX, barY, healthBarWidth, healthBarH, colornames.Darkslategray, false)
	vector.FillRect(screen, healthTextX, barY, healthBarWidth*ht.Bar, healthBarH, colornames.Limegreen, false)
}
