package physics

import "github.com/ByteArena/box2d"

// contactQueue records contacts during Step without touching the world.
type contactQueue struct {
	w *World
}

func (q *contactQueue) record(contact box2d.B2ContactInterface, begin bool) {
	idA, okA := idOf(contact.GetFixtureA())
	idB, okB := idOf(contact.GetFixtureB())
	if !okA || !okB {
		return
	}
	roleA, okA := q.w.Role(idA)
	roleB, okB := q.w.Role(idB)
	if !okA || !okB {
		return
	}
	q.w.contacts = append(q.w.contacts, ContactEvent{
		A:     roleA,
		B:     roleB,
		IDA:   idA,
		IDB:   idB,
		Begin: begin,
	})
}

func (q *contactQueue) BeginContact(contact box2d.B2ContactInterface) {
	q.record(contact, true)
}

func (q *contactQueue) EndContact(contact box2d.B2ContactInterface) {
	q.record(contact, false)
}

func (q *contactQueue) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {}

func (q *contactQueue) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {}
