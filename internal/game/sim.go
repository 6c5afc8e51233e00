package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/launchland/internal/config"
	"github.com/vovakirdan/launchland/internal/core"
)

// Run end reasons.
const (
	ReasonFell   = "fell"
	ReasonFrames = "frames" // Frame budget ran out mid-run
)

// SimRun is one session played by the autopilot.
type SimRun struct {
	Stats  RunStats
	Reason string
}

// Simulate plays frames steps with an autopilot, starting a new session
// after each fall-out. Seeds follow the game's per-run increment. The last
// entry is the unfinished session, if it played any frames.
func Simulate(cfg config.LaunchConfig, rt core.RuntimeConfig, frames int, logger *log.Logger) ([]SimRun, error) {
	g, err := New(cfg, rt, logger)
	if err != nil {
		return nil, err
	}

	var runs []SimRun
	pilot := NewAutopilot(cfg)
	snap := g.Snapshot()
	for i := 0; i < frames; i++ {
		res, err := g.Step(pilot.Next(snap))
		if err != nil {
			return runs, err
		}
		if res.State.GameOver {
			last, _ := g.LastRun()
			runs = append(runs, SimRun{Stats: last, Reason: ReasonFell})
			pilot = NewAutopilot(cfg)
		}
		snap = g.Snapshot()
	}

	if st := g.Session().Stats(); st.Frames > 0 {
		runs = append(runs, SimRun{Stats: st, Reason: ReasonFrames})
	}
	return runs, nil
}
