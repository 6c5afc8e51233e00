package game

import "github.com/vovakirdan/launchland/internal/physics"

// JumpResetter restores the jump budget on landing.
type JumpResetter interface {
	ResetJumps()
}

// Landing is the outcome of a player/ground begin-contact.
type Landing struct {
	Segment *physics.GroundMeta
	Scored  bool
	Change  ScoreChange
}

// ContactResolver applies player/ground contacts drained after a step.
type ContactResolver struct {
	jumps        JumpResetter
	progress     *ProgressionTracker
	landingScore int
}

// NewContactResolver creates a resolver awarding landingScore on first contact.
func NewContactResolver(jumps JumpResetter, progress *ProgressionTracker, landingScore int) *ContactResolver {
	return &ContactResolver{
		jumps:        jumps,
		progress:     progress,
		landingScore: landingScore,
	}
}

// OnBeginContact handles a begin-contact between two bodies in either order.
// It reports false when the pair is not exactly one player and one ground
// segment with metadata.
func (r *ContactResolver) OnBeginContact(a, b physics.Role) (Landing, bool) {
	meta, ok := playerOnGround(a, b)
	if !ok {
		meta, ok = playerOnGround(b, a)
	}
	if !ok {
		return Landing{}, false
	}

	r.jumps.ResetJumps()

	landing := Landing{Segment: meta}
	if !meta.Touched {
		meta.Touched = true
		landing.Scored = true
		landing.Change = r.progress.AddScore(r.landingScore)
	}
	return landing, true
}

// OnEndContact is a no-op.
func (r *ContactResolver) OnEndContact(a, b physics.Role) {}

func playerOnGround(p, g physics.Role) (*physics.GroundMeta, bool) {
	if _, ok := p.(physics.PlayerRole); !ok {
		return nil, false
	}
	switch ground := g.(type) {
	case physics.GroundRole:
		if ground.Meta == nil {
			return nil, false
		}
		return ground.Meta, true
	default:
		return nil, false
	}
}
