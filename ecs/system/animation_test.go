package system

import (
	"testing"

	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func TestAnimationSystemStartsHitFlash(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	anim := &component.Animator{
		Triggers: map[string]bool{character.TriggerAttacked: true},
		Floats:   map[string]float64{character.FloatRunning: -1},
	}
	_ = ecs.Add(w, e, component.AnimatorComponent.Kind(), anim)

	sys := NewAnimationSystem()
	sys.Update(w)

	if anim.Triggers[character.TriggerAttacked] {
		t.Fatalf("trigger not consumed")
	}
	if !anim.Running {
		t.Fatalf("expected running pose")
	}
	hf, ok := ecs.Get(w, e, component.HitFlashComponent.Kind())
	if !ok || hf.Frames != hitFlashFrames || !hf.On {
		t.Fatalf("unexpected hit flash %+v ok=%v", hf, ok)
	}

	hf.Frames = 7
	anim.Triggers[character.TriggerAttacked] = true
	sys.Update(w)
	if hf2, _ := ecs.Get(w, e, component.HitFlashComponent.Kind()); hf2.Frames != 7 {
		t.Fatalf("running flash was restarted")
	}

	anim.Floats[character.FloatRunning] = 0
	sys.Update(w)
	if anim.Running {
		t.Fatalf("expected idle pose")
	}
}

func TestHitFlashSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	hf := &component.HitFlash{Frames: hitFlashFrames, Interval: hitFlashInterval, On: true}
	_ = ecs.Add(w, e, component.HitFlashComponent.Kind(), hf)

	sys := NewHitFlashSystem()
	toggles := 0
	last := hf.On
	for i := 0; i < hitFlashFrames-1; i++ {
		sys.Update(w)
		if hf.On != last {
			toggles++
			last = hf.On
		}
		if !ecs.Has(w, e, component.HitFlashComponent.Kind()) {
			t.Fatalf("flash removed early at frame %d", i+1)
		}
	}
	if toggles != hitFlashFrames/hitFlashInterval-1 {
		t.Fatalf("expected %d toggles, got %d", hitFlashFrames/hitFlashInterval-1, toggles)
	}

	sys.Update(w)
	if ecs.Has(w, e, component.HitFlashComponent.Kind()) {
		t.Fatalf("flash should be removed after %d frames", hitFlashFrames)
	}
}

func TestTTLSystem(t *testing.T) {
	cases := []struct {
		name   string
		frames int
		alive  []bool
	}{
		{"two_frames", 2, []bool{true, false}},
		{"one_frame", 1, []bool{false}},
		{"zero", 0, []bool{false}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: c.frames})
			sys := NewTTLSystem()
			for i, want := range c.alive {
				sys.Update(w)
				if ecs.IsAlive(w, e) != want {
					t.Fatalf("update %d: expected alive=%v", i+1, want)
				}
			}
		})
	}
}
