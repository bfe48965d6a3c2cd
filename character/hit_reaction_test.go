package character

import (
	"errors"
	"testing"
)

type fakeDeps struct {
	shown    [][2]float64
	requests []FeedbackRequest
	vx, vy   float64
	moved    float64
	setVel   int
	triggers []string
	floats   map[string]float64
}

func (f *fakeDeps) ShowHealth(current, max float64) {
	f.shown = append(f.shown, [2]float64{current, max})
}

func (f *fakeDeps) EmitFeedback(req FeedbackRequest) {
	f.requests = append(f.requests, req)
}

func (f *fakeDeps) Velocity() (float64, float64) { return f.vx, f.vy }

func (f *fakeDeps) SetVelocity(vx, vy float64) {
	f.vx, f.vy = vx, vy
	f.setVel++
}

func (f *fakeDeps) Translate(dx float64) { f.moved += dx }

func (f *fakeDeps) SetTrigger(name string) { f.triggers = append(f.triggers, name) }

func (f *fakeDeps) SetFloat(name string, v float64) {
	if f.floats == nil {
		f.floats = map[string]float64{}
	}
	f.floats[name] = v
}

func (f *fakeDeps) deps() Deps {
	return Deps{Display: f, Feedback: f, Body: f, Animator: f}
}

func newTestCharacter(t *testing.T, cfg Config) (*HitReaction, *fakeDeps) {
	t.Helper()
	f := &fakeDeps{}
	if cfg.MaxHealth == 0 {
		cfg.MaxHealth = 100
	}
	h, err := New(cfg, f.deps())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return h, f
}

func TestNewValidation(t *testing.T) {
	f := &fakeDeps{}
	cases := []struct {
		name string
		cfg  Config
		deps Deps
		want error
	}{
		{"missing_display", Config{MaxHealth: 100}, Deps{Feedback: f, Body: f, Animator: f}, ErrMissingDependency},
		{"missing_feedback", Config{MaxHealth: 100}, Deps{Display: f, Body: f, Animator: f}, ErrMissingDependency},
		{"missing_body", Config{MaxHealth: 100}, Deps{Display: f, Feedback: f, Animator: f}, ErrMissingDependency},
		{"missing_animator", Config{MaxHealth: 100}, Deps{Display: f, Feedback: f, Body: f}, ErrMissingDependency},
		{"zero_max", Config{}, f.deps(), ErrInvalidMaxHealth},
		{"sprite_out_of_range", Config{MaxHealth: 100, SpriteCount: 2, ParticleSprite: 2}, f.deps(), ErrSpriteIndex},
		{"ok", Config{MaxHealth: 100, SpriteCount: 2, ParticleSprite: 1}, f.deps(), nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.cfg, c.deps)
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestNewStartingHealth(t *testing.T) {
	cases := []struct {
		name    string
		initial float64
		want    float64
	}{
		{"zero_starts_full", 0, 100},
		{"explicit", 40, 40},
		{"above_max_clamped", 250, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h, f := newTestCharacter(t, Config{MaxHealth: 100, Health: c.initial})
			if h.Health() != c.want {
				t.Fatalf("expected health %v, got %v", c.want, h.Health())
			}
			if len(f.shown) != 1 || f.shown[0] != [2]float64{c.want, 100} {
				t.Fatalf("expected initial display of %v/100, got %v", c.want, f.shown)
			}
		})
	}
}

func TestApplyDamageScenario(t *testing.T) {
	h, f := newTestCharacter(t, Config{MaxHealth: 100, ParticleCount: 3})

	h.ApplyDamage(10, KnockbackParams{ForceX: 5, ForceY: 2, FromRight: true, Duration: 3})

	if h.Health() != 90 {
		t.Fatalf("expected health 90, got %v", h.Health())
	}
	kb := h.Knockback()
	if kb.Remaining != 3 {
		t.Fatalf("expected remaining 3, got %v", kb.Remaining)
	}
	vx, vy := kb.Velocity()
	if vx != -5 || vy != 2 {
		t.Fatalf("expected push left (-5, 2), got (%v, %v)", vx, vy)
	}
	if len(f.requests) != 1 || f.requests[0] != (FeedbackRequest{Count: 3, Color: ColorDamage}) {
		t.Fatalf("unexpected feedback %v", f.requests)
	}
	if last := f.shown[len(f.shown)-1]; last != [2]float64{90, 100} {
		t.Fatalf("expected display 90/100, got %v", last)
	}
}

func TestApplyDamageHasNoFloorByDefault(t *testing.T) {
	cases := []struct {
		name   string
		start  float64
		damage float64
		floor  bool
		want   float64
	}{
		{"partial", 50, 20, false, 30},
		{"to_zero", 20, 20, false, 0},
		{"below_zero", 5, 20, false, -15},
		{"below_zero_floored", 5, 20, true, 0},
		{"zero_damage", 50, 0, false, 50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h, _ := newTestCharacter(t, Config{MaxHealth: 100, Health: c.start, FloorHealth: c.floor})
			h.ApplyDamage(c.damage, KnockbackParams{})
			if h.Health() != c.want {
				t.Fatalf("expected %v, got %v", c.want, h.Health())
			}
		})
	}
}

func TestZeroDamageStillEmitsFeedback(t *testing.T) {
	h, f := newTestCharacter(t, Config{MaxHealth: 100})
	h.ApplyDamage(0, KnockbackParams{Duration: 0})
	if len(f.requests) != 1 || f.requests[0].Color != ColorDamage {
		t.Fatalf("expected one damage feedback, got %v", f.requests)
	}
	if h.Knockback().Active() {
		t.Fatalf("zero duration knockback should not be active")
	}
}

func TestApplyHeal(t *testing.T) {
	cases := []struct {
		name  string
		start float64
		heal  float64
		want  float64
	}{
		{"below_max", 90, 5, 95},
		{"clamped", 98, 5, 100},
		{"exact", 95, 5, 100},
		{"zero", 40, 0, 40},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h, f := newTestCharacter(t, Config{MaxHealth: 100, Health: c.start, ParticleCount: 1})
			h.ApplyHeal(c.heal)
			if h.Health() != c.want {
				t.Fatalf("expected %v, got %v", c.want, h.Health())
			}
			if len(f.requests) != 1 || f.requests[0] != (FeedbackRequest{Count: 1, Color: ColorHeal}) {
				t.Fatalf("unexpected feedback %v", f.requests)
			}
		})
	}
}

func TestTickKnockback(t *testing.T) {
	h, f := newTestCharacter(t, Config{MaxHealth: 100, Speed: 4})
	h.ApplyDamage(10, KnockbackParams{ForceX: 5, ForceY: 2, FromRight: false, Duration: 0.25})
	h.SetInput(-1)

	prev := h.Knockback().Remaining
	for i := 0; i < 3; i++ {
		h.Tick(0.1)
		rem := h.Knockback().Remaining
		if rem > prev {
			t.Fatalf("timer increased from %v to %v", prev, rem)
		}
		prev = rem
	}
	if f.vx != 5 || f.vy != 2 {
		t.Fatalf("expected push right (5, 2), got (%v, %v)", f.vx, f.vy)
	}
	if f.moved != 0 {
		t.Fatalf("input should be ignored during knockback, moved %v", f.moved)
	}
	if h.Knockback().Active() {
		t.Fatalf("knockback should have elapsed, remaining %v", h.Knockback().Remaining)
	}
	if len(f.triggers) != 3 {
		t.Fatalf("expected a hit trigger per knockback tick, got %v", f.triggers)
	}

	settled := h.Knockback().Remaining
	setVel := f.setVel
	h.Tick(0.1)
	if h.Knockback().Remaining != settled {
		t.Fatalf("timer kept decaying after elapsing: %v -> %v", settled, h.Knockback().Remaining)
	}
	if f.setVel != setVel {
		t.Fatalf("velocity forced after knockback ended")
	}
	if f.moved != 0.1*-1*4 {
		t.Fatalf("expected locomotion of -0.4, got %v", f.moved)
	}
}

func TestTickZeroDtIsIdempotent(t *testing.T) {
	h, f := newTestCharacter(t, Config{MaxHealth: 100, Speed: 4})
	h.ApplyDamage(10, KnockbackParams{ForceX: 5, ForceY: 2, Duration: 1})
	h.SetInput(1)

	before := *h
	h.Tick(0)
	h.Tick(0)
	if h.health != before.health || h.knockback != before.knockback || h.facingLeft != before.facingLeft {
		t.Fatalf("state changed under dt=0")
	}
	if f.moved != 0 {
		t.Fatalf("moved under dt=0: %v", f.moved)
	}
}

func TestTickLocomotion(t *testing.T) {
	h, f := newTestCharacter(t, Config{MaxHealth: 100, Speed: 5})
	h.SetInput(1)
	h.Tick(0.5)
	if f.moved != 2.5 {
		t.Fatalf("expected 2.5, got %v", f.moved)
	}
	if f.floats[FloatRunning] != 1 {
		t.Fatalf("expected running float 1, got %v", f.floats[FloatRunning])
	}
	if h.FacingLeft() {
		t.Fatalf("expected facing right")
	}
	h.SetInput(-1)
	if !h.FacingLeft() {
		t.Fatalf("expected facing left")
	}
	h.SetInput(0)
	if !h.FacingLeft() {
		t.Fatalf("facing should be kept while idle")
	}
}

func TestJump(t *testing.T) {
	h, f := newTestCharacter(t, Config{MaxHealth: 100, JumpForce: 12})
	f.vx = 3

	if h.Jump() {
		t.Fatalf("jumped while airborne")
	}
	h.SetGrounded(true)
	if !h.CanJump() {
		t.Fatalf("expected CanJump when grounded")
	}
	if !h.Jump() {
		t.Fatalf("expected jump when grounded")
	}
	if f.vx != 3 || f.vy != 12 {
		t.Fatalf("expected (3, 12), got (%v, %v)", f.vx, f.vy)
	}
}

func TestSetParticleSprite(t *testing.T) {
	h, f := newTestCharacter(t, Config{MaxHealth: 100, SpriteCount: 3})
	if err := h.SetParticleSprite(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := h.SetParticleSprite(3); !errors.Is(err, ErrSpriteIndex) {
		t.Fatalf("expected ErrSpriteIndex, got %v", err)
	}
	h.ApplyHeal(1)
	if f.requests[0].Sprite != 2 {
		t.Fatalf("expected sprite 2, got %d", f.requests[0].Sprite)
	}
}
