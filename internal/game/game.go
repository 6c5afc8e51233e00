package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/launchland/internal/config"
	"github.com/vovakirdan/launchland/internal/core"
)

// Game runs sessions back to back. When a session ends, it is discarded and
// a fresh one is constructed with the next seed.
type Game struct {
	cfg     config.LaunchConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	session *Session
	runs    int
	last    RunStats
	hasLast bool
}

// New creates a game and its first session.
func New(cfg config.LaunchConfig, rt core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		runtime: rt,
		logger:  logger,
	}
	if err := g.start(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) start() error {
	rt := g.runtime
	rt.Seed = g.runtime.Seed + int64(g.runs)
	s, err := NewSession(g.cfg, rt, g.logger)
	if err != nil {
		return err
	}
	g.session = s
	g.runs++
	return nil
}

// Step advances the current session by one frame. On the frame the player
// falls out, the returned state has GameOver set and a new session is
// already in place for the next call.
func (g *Game) Step(in core.InputSource) (core.StepResult, error) {
	if in.IsKeyDown(core.KeyRestart) {
		g.finish()
		if err := g.start(); err != nil {
			return core.StepResult{}, err
		}
		return core.StepResult{State: g.session.State()}, nil
	}

	if _, err := g.session.Step(in); err != nil {
		return core.StepResult{State: g.session.State()}, err
	}
	state := g.session.State()

	if state.GameOver {
		g.finish()
		if err := g.start(); err != nil {
			return core.StepResult{State: state}, err
		}
	}
	return core.StepResult{State: state}, nil
}

func (g *Game) finish() {
	g.last = g.session.Stats()
	g.hasLast = true
}

// Snapshot returns the current session's render state.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// State returns the current session's state.
func (g *Game) State() core.GameState {
	return g.session.State()
}

// Resize forwards a screen size change to the current and future sessions.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.session.Resize(screenW, screenH)
}

// Session returns the active session.
func (g *Game) Session() *Session {
	return g.session
}

// Runs returns how many sessions have been started.
func (g *Game) Runs() int {
	return g.runs
}

// LastRun returns stats of the most recently finished session.
func (g *Game) LastRun() (RunStats, bool) {
	return g.last, g.hasLast
}
