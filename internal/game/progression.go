package game

import "github.com/vovakirdan/launchland/internal/config"

// ScoreChange describes the effect of one AddScore call.
type ScoreChange struct {
	Score   int
	Stage   int
	StageUp bool // Stage increased on this call
	Cleared bool // Clear score reached on this call
	Ignored bool // Tracker was already cleared
}

// ProgressionTracker maintains score, stage and the cleared flag.
// Stage never decreases and everything freezes once cleared.
type ProgressionTracker struct {
	score         int
	stage         int
	cleared       bool
	scorePerStage int
	clearScore    int
}

// NewProgressionTracker creates a tracker at score 0, stage 1.
func NewProgressionTracker(cfg config.ProgressionConfig) *ProgressionTracker {
	perStage := cfg.ScorePerStage
	if perStage <= 0 {
		perStage = 1000
	}
	return &ProgressionTracker{
		stage:         1,
		scorePerStage: perStage,
		clearScore:    cfg.ClearScore,
	}
}

// AddScore adds amount to the score and reconciles stage.
// Non-positive amounts and calls after clearing change nothing.
func (p *ProgressionTracker) AddScore(amount int) ScoreChange {
	if p.cleared {
		return ScoreChange{Score: p.score, Stage: p.stage, Ignored: true}
	}
	if amount <= 0 {
		return ScoreChange{Score: p.score, Stage: p.stage}
	}

	p.score += amount
	if p.clearScore > 0 && p.score >= p.clearScore {
		p.cleared = true
		return ScoreChange{Score: p.score, Stage: p.stage, Cleared: true}
	}

	change := ScoreChange{Score: p.score, Stage: p.stage}
	if next := p.score/p.scorePerStage + 1; next > p.stage {
		p.stage = next
		change.Stage = next
		change.StageUp = true
	}
	return change
}

// Score returns the current score.
func (p *ProgressionTracker) Score() int {
	return p.score
}

// Stage returns the current stage (>= 1).
func (p *ProgressionTracker) Stage() int {
	return p.stage
}

// Cleared reports whether the clear score has been reached.
func (p *ProgressionTracker) Cleared() bool {
	return p.cleared
}
