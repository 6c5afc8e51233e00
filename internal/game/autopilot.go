package game

import (
	"math"

	"github.com/vovakirdan/launchland/internal/config"
	"github.com/vovakirdan/launchland/internal/core"
)

type autopilotPhase int

const (
	phaseWait autopilotPhase = iota
	phaseDrag
	phaseRelease
)

const (
	restSpeed   = 0.05
	restFrames  = 12
	waitTimeout = 240
)

// launchAngles are tried in order until one reaches the target.
var launchAngles = []float64{45, 55, 65, 75}

// Autopilot is a scripted player for headless runs. Each frame it observes
// the last snapshot and produces the next input: wait for the player to
// settle, press on it, drag away from the next unscored segment, release.
type Autopilot struct {
	gravity  float64
	perDrag  float64 // Launch speed per unit of drag
	maxDrag  float64
	phase    autopilotPhase
	rest     int
	waited   int
	drag     core.Vec // origin - release, in world units
	origin   core.Vec
	frame    core.InputFrame
	launches int
}

// NewAutopilot creates an autopilot tuned to the session's control law.
func NewAutopilot(cfg config.LaunchConfig) *Autopilot {
	side := 2 * cfg.Player.HalfSize
	mass := side * side * cfg.Player.Density
	return &Autopilot{
		gravity: math.Abs(cfg.World.Gravity),
		perDrag: cfg.Launch.ForceMultiplier * cfg.World.TimeStep / mass,
		maxDrag: cfg.Launch.MaxDrag,
		frame:   core.NewInputFrame(),
	}
}

// Launches returns how many releases the autopilot has issued.
func (a *Autopilot) Launches() int {
	return a.launches
}

// Next returns the input for the frame after s.
func (a *Autopilot) Next(s Snapshot) core.InputFrame {
	a.frame.Advance()

	if s.GameOver || s.Paused {
		a.reset()
		return a.frame
	}

	switch a.phase {
	case phaseWait:
		a.waitForRest(s)
	case phaseDrag:
		if s.Drag == nil {
			// Press missed the player
			a.reset()
			break
		}
		a.origin = s.Drag.Origin
		a.point(s.View, a.origin.Sub(a.drag), true)
		a.phase = phaseRelease
	case phaseRelease:
		a.point(s.View, a.origin.Sub(a.drag), false)
		a.launches++
		a.phase = phaseWait
		a.rest = 0
		a.waited = 0
	}
	return a.frame
}

func (a *Autopilot) waitForRest(s Snapshot) {
	a.frame.Pressed = false
	p := s.Player
	if p.JumpCount >= p.MaxJumps {
		return
	}

	a.waited++
	if p.Velocity.Len() < restSpeed {
		a.rest++
	} else {
		a.rest = 0
	}
	if a.rest < restFrames && a.waited < waitTimeout {
		return
	}

	target, ok := nextTarget(s)
	if !ok {
		return
	}
	a.drag = a.aim(target.Sub(p.Position))
	a.point(s.View, p.Position, true)
	a.phase = phaseDrag
}

// aim returns the drag vector that launches along a ballistic arc covering
// delta, clamped to the max drag.
func (a *Autopilot) aim(delta core.Vec) core.Vec {
	if delta.X <= 0 {
		delta.X = 0.5
	}
	for _, deg := range launchAngles {
		theta := deg * math.Pi / 180
		sin, cos := math.Sincos(theta)
		denom := 2 * cos * cos * (delta.X*sin/cos - delta.Y)
		if denom <= 0 {
			continue
		}
		speed := math.Sqrt(a.gravity * delta.X * delta.X / denom)
		length := speed / a.perDrag
		if length <= a.maxDrag {
			return core.V(cos, sin).Scale(length)
		}
	}
	theta := 60 * math.Pi / 180
	return core.V(math.Cos(theta), math.Sin(theta)).Scale(a.maxDrag)
}

func (a *Autopilot) point(view core.Viewport, world core.Vec, pressed bool) {
	x, y := view.Project(world)
	a.frame.SetPointer(x, y, pressed)
}

func (a *Autopilot) reset() {
	a.frame.Pressed = false
	a.phase = phaseWait
	a.rest = 0
	a.waited = 0
}

// nextTarget picks the top of the nearest unscored segment ahead of the player.
func nextTarget(s Snapshot) (core.Vec, bool) {
	p := s.Player
	best := math.Inf(1)
	var target core.Vec
	for _, seg := range s.Segments {
		if seg.Touched || seg.Unknown {
			continue
		}
		if seg.Center.X-seg.Width/2 <= p.Position.X+p.HalfSize {
			continue
		}
		if seg.Center.X < best {
			best = seg.Center.X
			target = core.V(seg.Center.X, seg.Center.Y+seg.Height/2+p.HalfSize)
		}
	}
	return target, !math.IsInf(best, 1)
}
