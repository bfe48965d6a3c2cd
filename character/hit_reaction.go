// Package character holds the player's hit-reaction state: health, knockback,
// locomotion input and the feedback it asks the presentation layer for. It
// has no dependency on the ECS or the engine; collaborators are injected.
package character

import (
	"errors"
	"fmt"
)

var (
	ErrMissingDependency = errors.New("character: missing dependency")
	ErrInvalidMaxHealth  = errors.New("character: max health must be positive")
	ErrSpriteIndex       = errors.New("character: particle sprite index out of range")
)

// Config holds the tunables of a character.
type Config struct {
	MaxHealth float64
	// Health is the starting health. Zero starts at MaxHealth.
	Health    float64
	Speed     float64
	JumpForce float64
	// FloorHealth clamps health at zero on damage.
	FloorHealth    bool
	ParticleCount  int
	ParticleSprite int
	SpriteCount    int
}

// Deps are the collaborators a character reports to.
type Deps struct {
	Display  HealthDisplay
	Feedback FeedbackSink
	Body     Body
	Animator Animator
}

// HitReaction is the per-character state updated once per tick. It is owned
// by its character and is not safe for concurrent use.
type HitReaction struct {
	health    Health
	knockback Knockback
	floor     bool

	speed     float64
	jumpForce float64

	moveX      float64
	grounded   bool
	facingLeft bool

	particleCount  int
	particleSprite int
	spriteCount    int

	deps Deps
}

// New validates cfg and deps and returns a character at its starting health.
func New(cfg Config, deps Deps) (*HitReaction, error) {
	switch {
	case deps.Display == nil:
		return nil, fmt.Errorf("%w: health display", ErrMissingDependency)
	case deps.Feedback == nil:
		return nil, fmt.Errorf("%w: feedback sink", ErrMissingDependency)
	case deps.Body == nil:
		return nil, fmt.Errorf("%w: body", ErrMissingDependency)
	case deps.Animator == nil:
		return nil, fmt.Errorf("%w: animator", ErrMissingDependency)
	}
	if cfg.MaxHealth <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidMaxHealth, cfg.MaxHealth)
	}

	spriteCount := cfg.SpriteCount
	if spriteCount <= 0 {
		spriteCount = 1
	}
	if cfg.ParticleSprite < 0 || cfg.ParticleSprite >= spriteCount {
		return nil, fmt.Errorf("%w: %d of %d", ErrSpriteIndex, cfg.ParticleSprite, spriteCount)
	}

	current := cfg.Health
	if current == 0 || current > cfg.MaxHealth {
		current = cfg.MaxHealth
	}

	h := &HitReaction{
		health:         Health{Current: current, Max: cfg.MaxHealth},
		floor:          cfg.FloorHealth,
		speed:          cfg.Speed,
		jumpForce:      cfg.JumpForce,
		particleCount:  cfg.ParticleCount,
		particleSprite: cfg.ParticleSprite,
		spriteCount:    spriteCount,
		deps:           deps,
	}
	h.deps.Display.ShowHealth(h.health.Current, h.health.Max)
	return h, nil
}

// ApplyDamage subtracts amount from health and starts a knockback.
func (h *HitReaction) ApplyDamage(amount float64, kb KnockbackParams) {
	h.knockback.start(kb)
	h.TakeDamage(amount)
}

// TakeDamage subtracts amount from health without touching the knockback.
func (h *HitReaction) TakeDamage(amount float64) {
	h.health.damage(amount, h.floor)
	h.deps.Display.ShowHealth(h.health.Current, h.health.Max)
	h.emit(ColorDamage)
}

// ApplyHeal adds amount to health, capped at the maximum.
func (h *HitReaction) ApplyHeal(amount float64) {
	h.health.heal(amount)
	h.deps.Display.ShowHealth(h.health.Current, h.health.Max)
	h.emit(ColorHeal)
}

func (h *HitReaction) emit(c ColorTag) {
	h.deps.Feedback.EmitFeedback(FeedbackRequest{
		Count:  h.particleCount,
		Color:  c,
		Sprite: h.particleSprite,
	})
}

// Tick advances the character by dt seconds. While knocked back the body is
// driven by the knockback velocity and the timer decays; otherwise the body
// moves with the input axis.
func (h *HitReaction) Tick(dt float64) {
	h.deps.Animator.SetFloat(FloatRunning, h.moveX)

	if h.knockback.Active() {
		vx, vy := h.knockback.Velocity()
		h.deps.Body.SetVelocity(vx, vy)
		h.knockback.Remaining -= dt
		h.deps.Animator.SetTrigger(TriggerAttacked)
		return
	}

	h.deps.Body.Translate(dt * h.moveX * h.speed)
}

// SetInput stores the horizontal input axis in [-1, 1] for the next Tick.
// Facing follows the sign of the axis and is kept while it is zero.
func (h *HitReaction) SetInput(moveX float64) {
	h.moveX = moveX
	switch {
	case moveX < 0:
		h.facingLeft = true
	case moveX > 0:
		h.facingLeft = false
	}
}

// SetGrounded records the result of this frame's ground check.
func (h *HitReaction) SetGrounded(grounded bool) {
	h.grounded = grounded
}

func (h *HitReaction) CanJump() bool {
	return h.grounded
}

// Jump sets the vertical velocity to the jump force if the character is on
// the ground. It reports whether the jump happened.
func (h *HitReaction) Jump() bool {
	if !h.grounded {
		return false
	}
	vx, _ := h.deps.Body.Velocity()
	h.deps.Body.SetVelocity(vx, h.jumpForce)
	return true
}

// SignalHit plays the hit reaction without changing any state.
func (h *HitReaction) SignalHit() {
	h.deps.Animator.SetTrigger(TriggerAttacked)
}

// SetParticleCount sets the burst size used by the next feedback request.
func (h *HitReaction) SetParticleCount(n int) {
	h.particleCount = n
}

// SetParticleSprite selects the particle sprite used by the next feedback
// request.
func (h *HitReaction) SetParticleSprite(i int) error {
	if i < 0 || i >= h.spriteCount {
		return fmt.Errorf("%w: %d of %d", ErrSpriteIndex, i, h.spriteCount)
	}
	h.particleSprite = i
	return nil
}

func (h *HitReaction) Health() float64 { return h.health.Current }
func (h *HitReaction) MaxHealth() float64 { return h.health.Max }
func (h *HitReaction) HealthState() Health { return h.health }
func (h *HitReaction) Knockback() Knockback { return h.knockback }
func (h *HitReaction) FacingLeft() bool { return h.facingLeft }
func (h *HitReaction) ParticleCount() int { return h.particleCount }
func (h *HitReaction) ParticleSprite() int { return h.particleSprite }
func (h *HitReaction) Speed() float64 { return h.speed }
func (h *HitReaction) JumpForce() float64 { return h.jumpForce }
func (h *HitReaction) Input() float64 { return h.moveX }
