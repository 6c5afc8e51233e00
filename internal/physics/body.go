package physics

import "github.com/vovakirdan/launchland/internal/core"

// Body is a lightweight handle view over a World body.
// Queries on a destroyed body return zero values.
type Body struct {
	w  *World
	id BodyID
}

// ID returns the handle.
func (b Body) ID() BodyID {
	return b.id
}

// Position returns the body origin in world space.
func (b Body) Position() core.Vec {
	if body := b.w.lookup(b.id); body != nil {
		return fromB2(body.GetPosition())
	}
	return core.Vec{}
}

// Angle returns the body rotation in radians.
func (b Body) Angle() float64 {
	if body := b.w.lookup(b.id); body != nil {
		return body.GetAngle()
	}
	return 0
}

// LinearVelocity returns the body velocity.
func (b Body) LinearVelocity() core.Vec {
	if body := b.w.lookup(b.id); body != nil {
		return fromB2(body.GetLinearVelocity())
	}
	return core.Vec{}
}

// SetLinearVelocity overwrites the body velocity.
func (b Body) SetLinearVelocity(v core.Vec) {
	if body := b.w.lookup(b.id); body != nil {
		body.SetLinearVelocity(toB2(v))
	}
}

// ApplyForceToCenter applies a force at the center of mass for the next step.
func (b Body) ApplyForceToCenter(f core.Vec) {
	if body := b.w.lookup(b.id); body != nil {
		body.ApplyForceToCenter(toB2(f), true)
	}
}

// TestPoint reports whether a world point lies inside any of the body's fixtures.
func (b Body) TestPoint(p core.Vec) bool {
	body := b.w.lookup(b.id)
	if body == nil {
		return false
	}
	for f := body.GetFixtureList(); f != nil; f = f.GetNext() {
		if f.TestPoint(toB2(p)) {
			return true
		}
	}
	return false
}
