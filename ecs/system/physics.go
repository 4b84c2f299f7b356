package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/arena/common"
	"github.com/milk9111/arena/ecs"
	"github.com/milk9111/arena/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeEnemy
	collisionTypeMeteor
	collisionTypeBullet
)

const (
	categoryPlayer uint = 1 << iota
	categoryEnemy
	categoryMeteor
	categoryBullet
)

// contactPairs lists the only pairs that generate contacts. Every other pair
// is filtered out before narrow phase.
var contactPairs = []struct {
	a, b cp.CollisionType
	kind ecs.ContactKind
}{
	{collisionTypeBullet, collisionTypeEnemy, ecs.ContactBulletEnemy},
	{collisionTypePlayer, collisionTypeEnemy, ecs.ContactPlayerEnemy},
	{collisionTypePlayer, collisionTypeMeteor, ecs.ContactPlayerMeteor},
}

// PhysicsSystem steps a Chipmunk space holding one circle per collidable
// entity. Bodies never push each other: every handler rejects the collision
// in its begin callback, which also makes Chipmunk report each overlapping
// pair once per contact onset rather than once per frame.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity

	pending []ecs.ContactEvent
}

type bodyInfo struct {
	body  *cp.Body
	shape *cp.Shape
	kind  component.EntityKind
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Bodies returns the number of entities currently simulated.
func (ps *PhysicsSystem) Bodies() int {
	if ps == nil {
		return 0
	}
	return len(ps.entities)
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

	dt := w.DeltaTime()
	if dt <= 0 {
		dt = 1.0 / common.TPS
	}
	ps.pending = ps.pending[:0]
	ps.space.Step(dt)

	ps.syncTransforms(w)

	events := w.Events()
	for _, c := range ps.pending {
		events.PushContact(c.Kind, c.A, c.B)
	}
	ps.checkBounds(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	for _, pair := range contactPairs {
		handler := ps.space.NewCollisionHandler(pair.a, pair.b)
		handler.UserData = ps
		kind := pair.kind
		first := pair.a
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			sys, ok := userData.(*PhysicsSystem)
			if !ok || sys == nil {
				return false
			}
			shapeA, shapeB := arb.Shapes()
			a, okA := sys.shapes[shapeA]
			b, okB := sys.shapes[shapeB]
			if !okA || !okB {
				return false
			}
			if sys.collisionType(a) != first {
				a, b = b, a
			}
			sys.pending = append(sys.pending, ecs.ContactEvent{Kind: kind, A: a, B: b})
			return false
		}
	}

	ps.handlersReady = true
}

// active reports whether an entity belongs in the space this frame.
func active(w *ecs.World, e ecs.Entity, body *component.PhysicsBody) bool {
	if body.Disabled {
		return false
	}
	if b, ok := ecs.Get(w, e, component.BulletComponent.Kind()); ok && !b.InUse() {
		return false
	}
	return true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach3(w,
		component.PhysicsBodyComponent.Kind(),
		component.TransformComponent.Kind(),
		component.TagComponent.Kind(),
		func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform, tag *component.Tag) {
			if !active(w, e, bodyComp) {
				ps.removeEntity(e)
				bodyComp.Body = nil
				bodyComp.Shape = nil
				return
			}

			info := ps.entities[e]
			if info == nil {
				info = ps.createBodyInfo(transform, bodyComp, tag.Kind)
				if info == nil {
					return
				}
				ps.entities[e] = info
				ps.shapes[info.shape] = e
				bodyComp.Body = info.body
				bodyComp.Shape = info.shape
			}

			info.body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
			vel := cp.Vector{}
			if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
				vel = cp.Vector{X: v.X, Y: v.Y}
			}
			info.body.SetVelocityVector(vel)
		})
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, kind component.EntityKind) *bodyInfo {
	collisionType, filter, ok := collisionFor(kind)
	if !ok || bodyComp.Radius <= 0 {
		return nil
	}

	// Infinite moment keeps bodies from spinning; they only ever move by
	// their assigned velocity.
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})

	shape := cp.NewCircle(body, bodyComp.Radius, cp.Vector{})
	shape.SetCollisionType(collisionType)
	shape.SetFilter(filter)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	return &bodyInfo{body: body, shape: shape, kind: kind}
}

func (ps *PhysicsSystem) collisionType(e ecs.Entity) cp.CollisionType {
	info, ok := ps.entities[e]
	if !ok {
		return 0
	}
	t, _, _ := collisionFor(info.kind)
	return t
}

func collisionFor(kind component.EntityKind) (cp.CollisionType, cp.ShapeFilter, bool) {
	switch kind {
	case component.KindPlayer:
		return collisionTypePlayer, cp.ShapeFilter{Categories: categoryPlayer, Mask: categoryEnemy | categoryMeteor}, true
	case component.KindEnemy:
		return collisionTypeEnemy, cp.ShapeFilter{Categories: categoryEnemy, Mask: categoryPlayer | categoryBullet}, true
	case component.KindMeteor:
		return collisionTypeMeteor, cp.ShapeFilter{Categories: categoryMeteor, Mask: categoryPlayer}, true
	case component.KindBullet:
		return collisionTypeBullet, cp.ShapeFilter{Categories: categoryBullet, Mask: categoryEnemy}, true
	}
	return 0, cp.ShapeFilter{}, false
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	}
}

// checkBounds clamps bounded bodies and reports everything else that touches
// or leaves the field. Bullets only leave through the top edge.
func (ps *PhysicsSystem) checkBounds(w *ecs.World) {
	arena, ok := ecs.First(w, component.ArenaBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, ok := ecs.Get(w, arena, component.ArenaBoundsComponent.Kind())
	if !ok || bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	events := w.Events()
	ecs.ForEach3(w,
		component.PhysicsBodyComponent.Kind(),
		component.TransformComponent.Kind(),
		component.TagComponent.Kind(),
		func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform, tag *component.Tag) {
			if _, simulated := ps.entities[e]; !simulated {
				return
			}
			r := bodyComp.Radius

			if bodyComp.ClampToBounds {
				transform.X = common.Clamp(transform.X, r, bounds.Width-r)
				transform.Y = common.Clamp(transform.Y, r, bounds.Height-r)
				return
			}

			switch tag.Kind {
			case component.KindBullet:
				if transform.Y < 0 {
					events.PushBoundsExit(e)
				}
			default:
				if transform.X-r <= 0 || transform.X+r >= bounds.Width ||
					transform.Y-r <= 0 || transform.Y+r >= bounds.Height {
					events.PushBoundsExit(e)
				}
			}
		})
}

func (ps *PhysicsSystem) removeEntity(e ecs.Entity) {
	info, ok := ps.entities[e]
	if !ok {
		return
	}
	if ps.space != nil {
		ps.space.RemoveShape(info.shape)
		ps.space.RemoveBody(info.body)
	}
	delete(ps.shapes, info.shape)
	delete(ps.entities, e)
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		ps.removeEntity(e)
	}
}

// Reset drops every body so the next update rebuilds the space from the
// world.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	for e := range ps.entities {
		ps.removeEntity(e)
	}
	ps.space = newSpace()
	ps.handlersReady = false
	ps.pending = ps.pending[:0]
}
