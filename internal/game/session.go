// Package game implements the launch-and-land simulation: terrain streaming,
// contact scoring, the drag-to-launch control law, camera follow and the
// per-frame loop that ties them to a physics world.
package game

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/launchland/internal/config"
	"github.com/vovakirdan/launchland/internal/core"
	"github.com/vovakirdan/launchland/internal/physics"
)

// RunStats summarizes a session.
type RunStats struct {
	Seed           int64
	Frames         int
	Score          int
	Stage          int
	Cleared        bool
	Landings       int // First-contact landings that scored
	Launches       int
	Segments       int // Segments created, start platform included
	Retired        int
	RemovalRetries int // Flushes deferred because the world was locked
	MaxX           float64
}

// Session is one run from spawn to fall-out. It is not reusable: after game
// over a new Session must be constructed.
type Session struct {
	cfg     config.LaunchConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	world    *physics.World
	remover  BodyRemover
	player   physics.BodyID
	progress *ProgressionTracker
	launch   *LaunchController
	contacts *ContactResolver
	terrain  *TerrainGenerator
	camera   *CameraRig
	removals RemovalQueue

	worldW, worldH float64
	frame          int
	paused         bool
	over           bool
	boosting       bool
	stats          RunStats
}

// NewSession builds the world, the player and the start platform.
// A nil logger discards diagnostics.
func NewSession(cfg config.LaunchConfig, rt core.RuntimeConfig, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	worldW := cfg.World.Width
	worldH := core.WorldHeightFor(worldW, rt.ScreenW, rt.ScreenH, rt.Aspect())

	s := &Session{
		cfg:     cfg,
		runtime: rt,
		logger:  logger,
		world:   physics.NewWorld(core.V(0, cfg.World.Gravity)),
		worldW:  worldW,
		worldH:  worldH,
	}
	s.remover = s.world
	s.progress = NewProgressionTracker(cfg.Progression)
	s.launch = NewLaunchController(cfg.Launch)
	s.contacts = NewContactResolver(s.launch, s.progress, cfg.Progression.LandingScore)
	s.camera = NewCameraRig(cfg.Camera, worldW, worldH)

	player, err := s.world.CreatePlayer(physics.PlayerSpec{
		Position:    core.V(cfg.Player.StartX, cfg.Player.StartY),
		HalfSize:    cfg.Player.HalfSize,
		Density:     cfg.Player.Density,
		Friction:    cfg.Player.Friction,
		Restitution: cfg.Player.Restitution,
	})
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	s.player = player

	rng := rand.New(rand.NewSource(rt.Seed))
	s.terrain, err = NewTerrainGenerator(s.world, cfg, s.progress, rng, logger)
	if err != nil {
		return nil, err
	}

	s.stats = RunStats{Seed: rt.Seed, Stage: 1, Segments: s.terrain.Created()}
	return s, nil
}

// Step runs one frame: pause, gravity boost, launch, physics step, contacts,
// terrain generation and retirement, removal flush, camera and game-over check.
func (s *Session) Step(in core.InputSource) (Snapshot, error) {
	if s.over {
		return s.Snapshot(), nil
	}
	s.frame++

	if in.IsKeyDown(core.KeyPause) {
		s.paused = !s.paused
		if s.paused {
			s.launch.Cancel()
		}
	}
	if s.paused {
		return s.Snapshot(), nil
	}
	s.stats.Frames++

	// Gravity is set every frame so releasing the key restores it
	s.boosting = in.IsKeyDown(core.KeyBoost)
	gravity := core.V(0, s.cfg.World.Gravity)
	if s.boosting {
		gravity = gravity.Scale(s.cfg.World.BoostFactor)
	}
	s.world.SetGravity(gravity)

	px, py := in.PointerPosition()
	pointer := s.Viewport().Unproject(px, py)
	if l, ok := s.launch.Update(in.IsPressed(), pointer, s.world.Body(s.player)); ok {
		s.stats.Launches++
		s.logger.Debug("launch", "force", fmt.Sprintf("%.1f,%.1f", l.Force.X, l.Force.Y), "jumps", s.launch.JumpCount())
	}

	s.world.Step(s.cfg.World.TimeStep, s.cfg.World.VelocityIterations, s.cfg.World.PositionIterations)
	s.resolveContacts()

	halfW := s.camera.HalfWidth()
	created, err := s.terrain.Generate(s.camera.X, halfW, s.cfg.Terrain.GenerateDistance)
	s.stats.Segments += len(created)
	if err != nil {
		return s.Snapshot(), err
	}
	s.removals.Enqueue(s.terrain.Retire(s.camera.X, halfW, s.cfg.Terrain.RemoveDistance)...)
	s.flushRemovals()

	pos := s.world.Body(s.player).Position()
	if pos.X > s.stats.MaxX {
		s.stats.MaxX = pos.X
	}
	s.camera.Update(pos.X)

	if s.camera.FellOut(pos.Y) {
		s.over = true
		s.logger.Info("game over", "score", s.progress.Score(), "stage", s.progress.Stage(), "frames", s.stats.Frames)
	}

	return s.Snapshot(), nil
}

func (s *Session) resolveContacts() {
	for _, ev := range s.world.DrainContacts() {
		if !ev.Begin {
			s.contacts.OnEndContact(ev.A, ev.B)
			continue
		}
		landing, ok := s.contacts.OnBeginContact(ev.A, ev.B)
		if !ok || !landing.Scored {
			continue
		}
		s.stats.Landings++

		c := landing.Change
		s.logger.Debug("score", "score", c.Score, "friction", landing.Segment.Friction)
		if c.StageUp {
			s.logger.Info("stage up", "stage", c.Stage)
		}
		if c.Cleared {
			s.logger.Info("cleared", "score", c.Score, "stage", c.Stage)
		}
	}
}

func (s *Session) flushRemovals() {
	removed, deferred := s.removals.Flush(s.remover)
	if deferred {
		s.stats.RemovalRetries++
		s.logger.Debug("removal deferred", "pending", s.removals.Len())
	}
	if len(removed) > 0 {
		s.terrain.Remove(removed...)
		s.stats.Retired += len(removed)
	}
}

// Resize adapts the visible world height to a new screen size.
func (s *Session) Resize(screenW, screenH int) {
	s.runtime.ScreenW = screenW
	s.runtime.ScreenH = screenH
	s.worldH = core.WorldHeightFor(s.worldW, screenW, screenH, s.runtime.Aspect())
	s.camera.Resize(s.worldH)
}

// Viewport returns the current camera projection.
func (s *Session) Viewport() core.Viewport {
	return s.camera.Viewport(s.runtime.ScreenW, s.runtime.ScreenH)
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.progress.Score(),
		Stage:    s.progress.Stage(),
		GameOver: s.over,
		Paused:   s.paused,
		Cleared:  s.progress.Cleared(),
	}
}

// Stats returns the run summary so far.
func (s *Session) Stats() RunStats {
	st := s.stats
	st.Score = s.progress.Score()
	st.Stage = s.progress.Stage()
	st.Cleared = s.progress.Cleared()
	return st
}

// Over reports whether the player has fallen out.
func (s *Session) Over() bool {
	return s.over
}

// Snapshot captures the current frame for rendering.
func (s *Session) Snapshot() Snapshot {
	body := s.world.Body(s.player)
	snap := Snapshot{
		Frame: s.frame,
		Player: PlayerView{
			Position:  body.Position(),
			Velocity:  body.LinearVelocity(),
			Angle:     body.Angle(),
			HalfSize:  s.cfg.Player.HalfSize,
			JumpCount: s.launch.JumpCount(),
			MaxJumps:  s.launch.MaxJumps(),
			Dragging:  s.launch.Dragging(),
		},
		View:     s.Viewport(),
		Score:    s.progress.Score(),
		Stage:    s.progress.Stage(),
		Paused:   s.paused,
		Cleared:  s.progress.Cleared(),
		GameOver: s.over,
		Boosting: s.boosting,
	}
	if ind, ok := s.launch.Indicator(); ok {
		snap.Drag = &ind
	}

	active := s.terrain.Active()
	snap.Segments = make([]SegmentView, 0, len(active))
	for _, id := range active {
		snap.Segments = append(snap.Segments, s.segmentView(id))
	}
	return snap
}

func (s *Session) segmentView(id physics.BodyID) SegmentView {
	b := s.world.Body(id)
	view := SegmentView{
		ID:      id,
		Center:  b.Position(),
		Angle:   b.Angle(),
		Width:   2 * s.cfg.Terrain.FallbackHalfWidth,
		Height:  s.cfg.Terrain.SegmentHeight,
		Color:   core.ColorGray,
		Unknown: true,
	}
	role, _ := s.world.Role(id)
	if ground, ok := role.(physics.GroundRole); ok && ground.Meta != nil {
		m := ground.Meta
		view.Width = m.Width
		view.Height = m.Height
		view.Friction = m.Friction
		view.Color = m.Friction.Color()
		view.Touched = m.Touched
		view.Unknown = false
	}
	return view
}
