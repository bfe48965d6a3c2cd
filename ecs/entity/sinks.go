package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/character"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CharacterDeps wires a character's collaborators to components on e.
func CharacterDeps(w *ecs.World, e ecs.Entity) character.Deps {
	return character.Deps{
		Display:  healthDisplay{w: w, e: e},
		Feedback: feedbackSink{w: w, e: e},
		Body:     physicsBody{w: w, e: e},
		Animator: animatorSink{w: w, e: e},
	}
}

// physicsBody drives the entity's chipmunk body. The character works in
// y-up world units; the space is in y-down pixels.
type physicsBody struct {
	w *ecs.World
	e ecs.Entity
}

func (b physicsBody) body() *cp.Body {
	pb, ok := ecs.Get(b.w, b.e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil || pb.Static {
		return nil
	}
	return pb.Body
}

func (b physicsBody) Velocity() (float64, float64) {
	body := b.body()
	if body == nil {
		return 0, 0
	}
	v := body.Velocity()
	return v.X / common.PixelsPerUnit, -v.Y / common.PixelsPerUnit
}

func (b physicsBody) SetVelocity(vx, vy float64) {
	body := b.body()
	if body == nil {
		return
	}
	body.SetVelocity(vx*common.PixelsPerUnit, -vy*common.PixelsPerUnit)
}

func (b physicsBody) Translate(dx float64) {
	body := b.body()
	if body == nil || dx == 0 {
		return
	}
	pos := body.Position()
	body.SetPosition(cp.Vector{X: pos.X + dx*common.PixelsPerUnit, Y: pos.Y})
}

type feedbackSink struct {
	w *ecs.World
	e ecs.Entity
}

func (f feedbackSink) EmitFeedback(req character.FeedbackRequest) {
	if q, ok := ecs.Get(f.w, f.e, component.FeedbackQueueComponent.Kind()); ok {
		q.Requests = append(q.Requests, req)
		return
	}
	_ = ecs.Add(f.w, f.e, component.FeedbackQueueComponent.Kind(), &component.FeedbackQueue{
		Requests: []character.FeedbackRequest{req},
	})
}

type healthDisplay struct {
	w *ecs.World
	e ecs.Entity
}

func (d healthDisplay) ShowHealth(current, max float64) {
	ht, ok := ecs.Get(d.w, d.e, component.HealthTextComponent.Kind())
	if !ok {
		ht = &component.HealthText{}
		_ = ecs.Add(d.w, d.e, component.HealthTextComponent.Kind(), ht)
	}
	ht.Current = current
	ht.Max = max
	ht.Dirty = true
}

type animatorSink struct {
	w *ecs.World
	e ecs.Entity
}

func (a animatorSink) animator() *component.Animator {
	anim, ok := ecs.Get(a.w, a.e, component.AnimatorComponent.Kind())
	if !ok {
		anim = &component.Animator{}
		_ = ecs.Add(a.w, a.e, component.AnimatorComponent.Kind(), anim)
	}
	return anim
}

func (a animatorSink) SetTrigger(name string) {
	anim := a.animator()
	if anim.Triggers == nil {
		anim.Triggers = map[string]bool{}
	}
	anim.Triggers[name] = true
}

func (a animatorSink) SetFloat(name string, v float64) {
	anim := a.animator()
	if anim.Floats == nil {
		anim.Floats = map[string]float64{}
	}
	anim.Floats[name] = v
}
