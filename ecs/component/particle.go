package component

import "image/color"

// Particle sprite indices.
const (
	ParticleSpriteSquare = iota
	ParticleSpriteCircle
	ParticleSpriteCount
)

// Particle is a single burst particle moving in screen space.
type Particle struct {
	VX      float64
	VY      float64
	Size    float64
	Sprite  int
	Color   color.NRGBA
	Life    int
	MaxLife int
}

var ParticleComponent = NewComponent[Particle]()
