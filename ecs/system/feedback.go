package system

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	particleLifeFrames = 40
	particleMinSpeed   = 80.0
	particleMaxSpeed   = 220.0
	particleSize       = 6.0
	particleLayer      = 10
)

// FeedbackSystem turns queued feedback requests into particle bursts at the
// requesting entity.
type FeedbackSystem struct {
	rng *rand.Rand
}

func NewFeedbackSystem(seed int64) *FeedbackSystem {
	return &FeedbackSystem{rng: rand.New(rand.NewSource(seed))}
}

func (f *FeedbackSystem) Update(w *ecs.World) {
	if f == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.FeedbackQueueComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, queue *component.FeedbackQueue, t *component.Transform) {
		if len(queue.Requests) == 0 {
			return
		}
		requests := queue.Requests
		queue.Requests = nil
		for _, req := range requests {
			f.burst(w, t.X, t.Y, req)
		}
	})
}

func (f *FeedbackSystem) burst(w *ecs.World, x, y float64, req character.FeedbackRequest) {
	c := particleColor(req.Color)
	for i := 0; i < req.Count; i++ {
		angle := -math.Pi * f.rng.Float64()
		speed := particleMinSpeed + f.rng.Float64()*(particleMaxSpeed-particleMinSpeed)

		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
		_ = ecs.Add(w, e, component.ParticleComponent.Kind(), &component.Particle{
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Size:    particleSize,
			Sprite:  req.Sprite,
			Color:   c,
			Life:    particleLifeFrames,
			MaxLife: particleLifeFrames,
		})
		_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: particleLifeFrames})
		_ = ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: particleLayer})
	}
}

func particleColor(tag character.ColorTag) color.NRGBA {
	var c color.RGBA
	switch tag {
	case character.ColorHeal:
		c = colornames.Limegreen
	default:
		c = colornames.Red
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
