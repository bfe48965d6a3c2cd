package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
	collisionTypeEnemy
	collisionTypePickup
)

// Shape filter categories. Ground blocks are the only shapes in
// categoryGround so the ground check can ignore enemies and pickups.
const (
	categoryGround uint = 1 << iota
	categoryBody
	categorySensor
)

type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
	// contacts collects begin callbacks during Step; they become events once
	// the step has finished.
	contacts []ecs.ContactEvent
	// touching holds player pairs between their begin and separate callbacks.
	touching map[ecs.ContactEvent]struct{}
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	kind   cp.CollisionType
	static bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
		touching: make(map[ecs.ContactEvent]struct{}),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	if ps.space == nil {
		ps.space = newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncEntities(w)

	ps.contacts = ps.contacts[:0]
	ps.space.Step(common.DeltaTime)

	ps.syncTransforms(w)
	reported := make(map[ecs.ContactEvent]struct{}, len(ps.contacts))
	for _, c := range ps.contacts {
		if ecs.IsAlive(w, c.A) && ecs.IsAlive(w, c.B) {
			w.Events().Push(ecs.Event{Type: ecs.EventContact, Data: c})
			reported[c] = struct{}{}
		}
	}
	ps.reportReactivatedPickups(w, reported)
}

// reportReactivatedPickups re-sends the contact of every active pickup the
// player is still inside. A pickup is used on its first contact, so an
// active one still being touched was reset while the player stood on it.
func (ps *PhysicsSystem) reportReactivatedPickups(w *ecs.World, reported map[ecs.ContactEvent]struct{}) {
	for c := range ps.touching {
		if !ecs.IsAlive(w, c.A) || !ecs.IsAlive(w, c.B) {
			delete(ps.touching, c)
			continue
		}
		if _, ok := reported[c]; ok {
			continue
		}
		pickup, ok := ecs.Get(w, c.B, component.PickupComponent.Kind())
		if !ok || !pickup.Item.Active() {
			continue
		}
		w.Events().Push(ecs.Event{Type: ecs.EventContact, Data: c})
	}
}

// Reset drops every body so the next Update rebuilds the space from the
// world.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	ps.space = nil
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.shapes = make(map[*cp.Shape]ecs.Entity)
	ps.contacts = nil
	ps.touching = make(map[ecs.ContactEvent]struct{})
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	for _, other := range []cp.CollisionType{collisionTypeEnemy, collisionTypePickup} {
		handler := ps.space.NewCollisionHandler(collisionTypePlayer, other)
		handler.UserData = ps
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			sys, ok := userData.(*PhysicsSystem)
			if !ok || sys == nil {
				return true
			}
			if c, ok := sys.playerPair(arb); ok {
				sys.contacts = append(sys.contacts, c)
				sys.touching[c] = struct{}{}
			}
			return true
		}
		handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
			sys, ok := userData.(*PhysicsSystem)
			if !ok || sys == nil {
				return
			}
			if c, ok := sys.playerPair(arb); ok {
				delete(sys.touching, c)
			}
		}
	}

	ps.handlersReady = true
}

// playerPair maps an arbiter's shapes to a contact with the player as A.
func (ps *PhysicsSystem) playerPair(arb *cp.Arbiter) (ecs.ContactEvent, bool) {
	shapeA, shapeB := arb.Shapes()
	a, okA := ps.shapes[shapeA]
	b, okB := ps.shapes[shapeB]
	if !okA || !okB {
		return ecs.ContactEvent{}, false
	}
	if info := ps.entities[a]; info == nil || info.kind != collisionTypePlayer {
		a, b = b, a
	}
	return ecs.ContactEvent{A: a, B: b}, true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if info := ps.entities[e]; info != nil {
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
			return
		}

		info := ps.createBodyInfo(transform, bodyComp, collisionTypeFor(w, e))
		if info == nil {
			return
		}
		ps.entities[e] = info
		ps.shapes[info.shape] = e
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	})
}

func collisionTypeFor(w *ecs.World, e ecs.Entity) cp.CollisionType {
	switch {
	case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
		return collisionTypePlayer
	case ecs.Has(w, e, component.EnemyComponent.Kind()):
		return collisionTypeEnemy
	case ecs.Has(w, e, component.PickupComponent.Kind()):
		return collisionTypePickup
	default:
		return collisionTypeSolid
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, ct cp.CollisionType) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = 32
		height = 32
	}

	category := categoryBody
	switch {
	case bodyComp.Sensor:
		category = categorySensor
	case ct == collisionTypeSolid:
		category = categoryGround
	}
	filter := cp.NewShapeFilter(cp.NO_GROUP, category, cp.ALL_CATEGORIES)

	if bodyComp.Static {
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetCollisionType(ct)
		shape.SetSensor(bodyComp.Sensor)
		shape.SetFilter(filter)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, kind: ct, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	// Infinite moment keeps characters upright.
	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetCollisionType(ct)
	shape.SetSensor(bodyComp.Sensor)
	shape.SetFilter(filter)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape, kind: ct}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.shapes, info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
