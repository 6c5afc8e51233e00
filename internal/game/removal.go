package game

import (
	"errors"

	"github.com/vovakirdan/launchland/internal/physics"
)

// BodyRemover destroys bodies when the world is not mid-step.
type BodyRemover interface {
	IsLocked() bool
	DestroyBody(id physics.BodyID) error
}

// RemovalQueue holds bodies waiting to be destroyed outside the step.
// Entries survive a locked flush and are retried on the next one.
type RemovalQueue struct {
	pending []physics.BodyID
	queued  map[physics.BodyID]bool
}

// Enqueue adds bodies, ignoring ones already queued.
func (q *RemovalQueue) Enqueue(ids ...physics.BodyID) {
	if q.queued == nil {
		q.queued = make(map[physics.BodyID]bool)
	}
	for _, id := range ids {
		if q.queued[id] {
			continue
		}
		q.queued[id] = true
		q.pending = append(q.pending, id)
	}
}

// Len returns the number of queued bodies.
func (q *RemovalQueue) Len() int {
	return len(q.pending)
}

// Flush destroys queued bodies if the world is unlocked. It returns the
// bodies that are gone and whether any removal was deferred.
func (q *RemovalQueue) Flush(w BodyRemover) ([]physics.BodyID, bool) {
	if len(q.pending) == 0 {
		return nil, false
	}
	if w.IsLocked() {
		return nil, true
	}

	var removed []physics.BodyID
	kept := q.pending[:0]
	for _, id := range q.pending {
		err := w.DestroyBody(id)
		switch {
		case err == nil, errors.Is(err, physics.ErrUnknownBody):
			removed = append(removed, id)
			delete(q.queued, id)
		default:
			kept = append(kept, id)
		}
	}
	q.pending = kept
	return removed, len(kept) > 0
}
