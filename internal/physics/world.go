// Package physics wraps a box2d world behind handle-based access.
// Bodies are owned by the World and referenced elsewhere by BodyID only.
package physics

import (
	"fmt"

	"github.com/ByteArena/box2d"

	"github.com/vovakirdan/launchland/internal/core"
)

// BodyID is an opaque handle to a body owned by a World.
type BodyID uint64

// ContactEvent is a contact reported during Step.
type ContactEvent struct {
	A, B     Role
	IDA, IDB BodyID
	Begin    bool // false for end-contact
}

// PlayerSpec describes the player body.
type PlayerSpec struct {
	Position    core.Vec
	HalfSize    float64
	Density     float64
	Friction    float64
	Restitution float64
}

// GroundSpec describes a static ground box.
type GroundSpec struct {
	Center   core.Vec
	Width    float64
	Height   float64
	Angle    float64
	Friction float64
}

type entry struct {
	body *box2d.B2Body
	role Role
}

// World owns the rigid-body simulation.
type World struct {
	b2       *box2d.B2World
	gravity  core.Vec
	bodies   map[BodyID]*entry
	nextID   BodyID
	stepping bool
	contacts []ContactEvent
}

// NewWorld creates a world with the given gravity.
func NewWorld(gravity core.Vec) *World {
	b2 := box2d.MakeB2World(toB2(gravity))
	w := &World{
		b2:      &b2,
		gravity: gravity,
		bodies:  make(map[BodyID]*entry),
	}
	w.b2.SetContactListener(&contactQueue{w: w})
	return w
}

// SetGravity changes gravity. It applies from the next step.
func (w *World) SetGravity(g core.Vec) {
	if g == w.gravity {
		return
	}
	w.gravity = g
	w.b2.SetGravity(toB2(g))
}

// Gravity returns the current gravity.
func (w *World) Gravity() core.Vec {
	return w.gravity
}

// Step advances the simulation by exactly dt.
// Contacts reported during the step are queued for DrainContacts.
func (w *World) Step(dt float64, velocityIterations, positionIterations int) {
	w.stepping = true
	defer func() { w.stepping = false }()
	w.b2.Step(dt, velocityIterations, positionIterations)
}

// IsLocked reports whether the world is mid-step or inside a callback.
func (w *World) IsLocked() bool {
	return w.stepping || w.b2.IsLocked()
}

// DrainContacts returns contacts queued since the last drain, in report order.
func (w *World) DrainContacts() []ContactEvent {
	out := w.contacts
	w.contacts = nil
	return out
}

// CreatePlayer adds the dynamic player box.
func (w *World) CreatePlayer(spec PlayerSpec) (BodyID, error) {
	if w.IsLocked() {
		return 0, ErrWorldLocked
	}

	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_dynamicBody
	bd.Position = toB2(spec.Position)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(spec.HalfSize, spec.HalfSize)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Density = spec.Density
	fd.Friction = spec.Friction
	fd.Restitution = spec.Restitution

	return w.add(&bd, &fd, PlayerRole{}), nil
}

// CreateGround adds a static ground box. meta may be nil.
func (w *World) CreateGround(spec GroundSpec, meta *GroundMeta) (BodyID, error) {
	if w.IsLocked() {
		return 0, ErrWorldLocked
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return 0, fmt.Errorf("physics: ground %gx%g: non-positive size", spec.Width, spec.Height)
	}

	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_staticBody
	bd.Position = toB2(spec.Center)
	bd.Angle = spec.Angle

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(spec.Width/2, spec.Height/2)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &shape
	fd.Friction = spec.Friction

	return w.add(&bd, &fd, GroundRole{Meta: meta}), nil
}

func (w *World) add(bd *box2d.B2BodyDef, fd *box2d.B2FixtureDef, role Role) BodyID {
	w.nextID++
	id := w.nextID
	bd.UserData = id

	body := w.b2.CreateBody(bd)
	body.CreateFixtureFromDef(fd)
	w.bodies[id] = &entry{body: body, role: role}
	return id
}

// DestroyBody removes a body. It never destroys while the world is locked.
func (w *World) DestroyBody(id BodyID) error {
	if w.IsLocked() {
		return ErrWorldLocked
	}
	e, ok := w.bodies[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBody, id)
	}
	w.b2.DestroyBody(e.body)
	delete(w.bodies, id)
	return nil
}

// Exists reports whether the handle refers to a live body.
func (w *World) Exists(id BodyID) bool {
	_, ok := w.bodies[id]
	return ok
}

// BodyCount returns the number of live bodies.
func (w *World) BodyCount() int {
	return len(w.bodies)
}

// Role returns the role attached to a body.
func (w *World) Role(id BodyID) (Role, bool) {
	e, ok := w.bodies[id]
	if !ok {
		return nil, false
	}
	return e.role, true
}

// Body returns a handle view for per-body queries.
func (w *World) Body(id BodyID) Body {
	return Body{w: w, id: id}
}

func (w *World) lookup(id BodyID) *box2d.B2Body {
	if e, ok := w.bodies[id]; ok {
		return e.body
	}
	return nil
}

// idOf maps a box2d fixture back to its body handle.
func idOf(f *box2d.B2Fixture) (BodyID, bool) {
	if f == nil || f.GetBody() == nil {
		return 0, false
	}
	id, ok := f.GetBody().GetUserData().(BodyID)
	return id, ok
}

func toB2(v core.Vec) box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X, v.Y)
}

func fromB2(v box2d.B2Vec2) core.Vec {
	return core.Vec{X: v.X, Y: v.Y}
}
