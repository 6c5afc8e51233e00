package game

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/launchland/internal/config"
	"github.com/vovakirdan/launchland/internal/core"
	"github.com/vovakirdan/launchland/internal/physics"
)

func testRuntime(seed int64) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.Seed = seed
	return rt
}

func newTestSession(t *testing.T, cfg config.LaunchConfig, seed int64) *Session {
	t.Helper()
	s, err := NewSession(cfg, testRuntime(seed), nil)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

func stepN(t *testing.T, s *Session, in *core.InputFrame, n int) Snapshot {
	t.Helper()
	var snap Snapshot
	for i := 0; i < n; i++ {
		var err error
		snap, err = s.Step(*in)
		if err != nil {
			t.Fatalf("Step() failed at frame %d: %v", i, err)
		}
		in.Advance()
	}
	return snap
}

// lockingRemover reports the world as mid-step until unlocked.
type lockingRemover struct {
	w      *physics.World
	locked bool
}

func (r *lockingRemover) IsLocked() bool { return r.locked || r.w.IsLocked() }

func (r *lockingRemover) DestroyBody(id physics.BodyID) error {
	if r.locked {
		return physics.ErrWorldLocked
	}
	return r.w.DestroyBody(id)
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultLaunchConfig()
	cfg.Launch.MaxJumps = 0
	if _, err := NewSession(cfg, testRuntime(1), nil); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("NewSession() = %v, expected ErrInvalidConfig", err)
	}
}

func TestSessionInitialState(t *testing.T) {
	s := newTestSession(t, config.DefaultLaunchConfig(), 1)
	snap := s.Snapshot()

	if snap.Score != 0 || snap.Stage != 1 {
		t.Errorf("score=%d stage=%d, expected 0 and 1", snap.Score, snap.Stage)
	}
	if snap.Player.Position != core.V(2, 5) {
		t.Errorf("player at %v, expected (2, 5)", snap.Player.Position)
	}
	if len(snap.Segments) != 1 {
		t.Fatalf("expected start platform only, got %d segments", len(snap.Segments))
	}
	if snap.Segments[0].Color != core.ColorGreen {
		t.Errorf("start platform color = %v, expected green", snap.Segments[0].Color)
	}

	// 80x24 cells at aspect 2 show 20x12 world units
	if snap.View.WorldW != 20 || snap.View.WorldH != 12 {
		t.Errorf("view = %gx%g, expected 20x12", snap.View.WorldW, snap.View.WorldH)
	}
}

func TestSessionLandingScoresOnce(t *testing.T) {
	s := newTestSession(t, config.DefaultLaunchConfig(), 1)
	in := core.NewInputFrame()

	snap := stepN(t, s, &in, 120)
	if snap.Score != 100 {
		t.Fatalf("score after landing = %d, expected 100", snap.Score)
	}
	if !snap.Segments[0].Touched {
		t.Error("start platform should be marked touched")
	}
	if snap.GameOver {
		t.Fatal("resting on the start platform must not end the run")
	}

	snap = stepN(t, s, &in, 120)
	if snap.Score != 100 {
		t.Errorf("score while resting = %d, expected 100", snap.Score)
	}
	if got := s.Stats().Landings; got != 1 {
		t.Errorf("Landings = %d, expected 1", got)
	}
}

func TestSessionLaunchAndRelandResetsJumps(t *testing.T) {
	s := newTestSession(t, config.DefaultLaunchConfig(), 1)
	in := core.NewInputFrame()
	snap := stepN(t, s, &in, 120)

	// Press on the player, release one unit below: straight up
	p := snap.Player.Position
	x, y := snap.View.Project(p)
	in.SetPointer(x, y, true)
	snap = stepN(t, s, &in, 1)
	if !snap.Player.Dragging || snap.Drag == nil {
		t.Fatal("expected drag to start on the player")
	}

	x, y = snap.View.Project(p.Sub(core.V(0, 1)))
	in.SetPointer(x, y, false)
	snap = stepN(t, s, &in, 1)
	if snap.Player.JumpCount != 1 {
		t.Fatalf("JumpCount = %d after launch, expected 1", snap.Player.JumpCount)
	}
	if snap.Player.Velocity.Y <= 0 {
		t.Errorf("velocity %v after upward launch", snap.Player.Velocity)
	}

	snap = stepN(t, s, &in, 180)
	if snap.Player.JumpCount != 0 {
		t.Errorf("JumpCount = %d after landing, expected 0", snap.Player.JumpCount)
	}
	if snap.Score != 100 {
		t.Errorf("score = %d, relanding on a touched segment must not score", snap.Score)
	}
	if got := s.Stats().Launches; got != 1 {
		t.Errorf("Launches = %d, expected 1", got)
	}
}

func TestSessionRetirementDeferredWhileLocked(t *testing.T) {
	s := newTestSession(t, config.DefaultLaunchConfig(), 3)
	remover := &lockingRemover{w: s.world, locked: true}
	s.remover = remover
	start := s.terrain.Active()[0]

	// Jump the camera far enough that the start platform is past retirement
	s.camera.X = 100
	in := core.NewInputFrame()

	for frame := 0; frame < 3; frame++ {
		stepN(t, s, &in, 1)
		if !s.world.Exists(start) {
			t.Fatalf("frame %d: start platform destroyed while locked", frame)
		}
		if s.terrain.Active()[0] != start {
			t.Fatalf("frame %d: start platform left the active list while locked", frame)
		}
	}
	if got := s.Stats().RemovalRetries; got != 3 {
		t.Errorf("RemovalRetries = %d, expected 3", got)
	}

	remover.locked = false
	stepN(t, s, &in, 1)
	if s.world.Exists(start) {
		t.Error("start platform should be destroyed once unlocked")
	}
	for _, id := range s.terrain.Active() {
		if id == start {
			t.Error("start platform still active after removal")
		}
	}
	if s.Stats().Retired == 0 {
		t.Error("Retired should count the removal")
	}
}

func TestSessionPauseFreezesSimulation(t *testing.T) {
	s := newTestSession(t, config.DefaultLaunchConfig(), 1)
	in := core.NewInputFrame()
	stepN(t, s, &in, 10)
	before := s.Snapshot().Player.Position

	in.SetKey(core.KeyPause)
	snap := stepN(t, s, &in, 1)
	if !snap.Paused || !s.State().Paused {
		t.Fatal("expected paused state")
	}
	frames := s.Stats().Frames

	snap = stepN(t, s, &in, 30)
	if snap.Player.Position != before {
		t.Errorf("player moved while paused: %v -> %v", before, snap.Player.Position)
	}
	if s.Stats().Frames != frames {
		t.Error("paused frames must not be simulated")
	}

	in.SetKey(core.KeyPause)
	snap = stepN(t, s, &in, 1)
	if snap.Paused {
		t.Error("second pause toggle should resume")
	}
}

func TestSessionPauseCancelsDrag(t *testing.T) {
	s := newTestSession(t, config.DefaultLaunchConfig(), 1)
	in := core.NewInputFrame()
	snap := stepN(t, s, &in, 120)

	x, y := snap.View.Project(snap.Player.Position)
	in.SetPointer(x, y, true)
	stepN(t, s, &in, 1)

	in.SetKey(core.KeyPause)
	snap = stepN(t, s, &in, 1)
	if snap.Drag != nil || snap.Player.Dragging {
		t.Error("pausing should cancel the drag")
	}
}

func TestSessionBoostDoublesGravity(t *testing.T) {
	s := newTestSession(t, config.DefaultLaunchConfig(), 1)
	in := core.NewInputFrame()

	in.SetKey(core.KeyBoost)
	snap := stepN(t, s, &in, 1)
	if !snap.Boosting {
		t.Error("snapshot should report boosting")
	}
	if g := s.world.Gravity(); g != core.V(0, -10) {
		t.Errorf("gravity while boosting = %v, expected (0, -10)", g)
	}

	snap = stepN(t, s, &in, 1)
	if snap.Boosting {
		t.Error("boost should end when the key is released")
	}
	if g := s.world.Gravity(); g != core.V(0, -5) {
		t.Errorf("gravity after boost = %v, expected (0, -5)", g)
	}
}

func TestSessionFallOutEndsRun(t *testing.T) {
	cfg := config.DefaultLaunchConfig()
	cfg.Terrain.Start.Y = -20
	s := newTestSession(t, cfg, 1)
	in := core.NewInputFrame()

	for i := 0; i < 600 && !s.Over(); i++ {
		stepN(t, s, &in, 1)
	}
	if !s.Over() {
		t.Fatal("player should fall out of view")
	}
	st := s.State()
	if !st.GameOver || st.Score != 0 {
		t.Errorf("state = %+v", st)
	}

	// Further steps are no-ops
	frames := s.Stats().Frames
	stepN(t, s, &in, 5)
	if s.Stats().Frames != frames {
		t.Error("a finished session must not advance")
	}
}

func TestSessionDeterministic(t *testing.T) {
	run := func() (Snapshot, RunStats) {
		cfg := config.DefaultLaunchConfig()
		s := newTestSession(t, cfg, 99)
		pilot := NewAutopilot(cfg)
		snap := s.Snapshot()
		for i := 0; i < 900 && !s.Over(); i++ {
			var err error
			snap, err = s.Step(pilot.Next(snap))
			if err != nil {
				t.Fatal(err)
			}
		}
		return snap, s.Stats()
	}

	snapA, statsA := run()
	snapB, statsB := run()
	if !reflect.DeepEqual(statsA, statsB) {
		t.Errorf("stats differ:\n%+v\n%+v", statsA, statsB)
	}
	if !reflect.DeepEqual(snapA, snapB) {
		t.Error("final snapshots differ for the same seed and input")
	}
}

func TestSessionResize(t *testing.T) {
	s := newTestSession(t, config.DefaultLaunchConfig(), 1)
	s.Resize(160, 24)

	v := s.Viewport()
	if v.WorldW != 20 || v.WorldH != 6 {
		t.Errorf("view = %gx%g after resize, expected 20x6", v.WorldW, v.WorldH)
	}
	if v.ScreenW != 160 {
		t.Errorf("ScreenW = %g, expected 160", v.ScreenW)
	}
}

func TestSegmentViewWithoutMetadata(t *testing.T) {
	s := newTestSession(t, config.DefaultLaunchConfig(), 1)
	id, err := s.world.CreateGround(physics.GroundSpec{Center: core.V(8, 1), Width: 3, Height: 0.5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.terrain.Track(id)

	var found *SegmentView
	snap := s.Snapshot()
	for i := range snap.Segments {
		if snap.Segments[i].ID == id {
			found = &snap.Segments[i]
		}
	}
	if found == nil {
		t.Fatal("tracked segment missing from snapshot")
	}
	if !found.Unknown || found.Color != core.ColorGray || found.Width != 4 {
		t.Errorf("segment view = %+v", *found)
	}
}
