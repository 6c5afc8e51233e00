package game

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/launchland/internal/config"
	"github.com/vovakirdan/launchland/internal/core"
	"github.com/vovakirdan/launchland/internal/physics"
)

type fixedStage int

func (f fixedStage) Stage() int { return int(f) }

func newTestTerrain(t *testing.T, cfg config.LaunchConfig, stage int, seed int64) (*TerrainGenerator, *physics.World) {
	t.Helper()
	w := physics.NewWorld(core.V(0, -5))
	g, err := NewTerrainGenerator(w, cfg, fixedStage(stage), rand.New(rand.NewSource(seed)), nil)
	if err != nil {
		t.Fatalf("NewTerrainGenerator() failed: %v", err)
	}
	return g, w
}

func metas(t *testing.T, w *physics.World, ids []physics.BodyID) []*physics.GroundMeta {
	t.Helper()
	out := make([]*physics.GroundMeta, 0, len(ids))
	for _, id := range ids {
		role, ok := w.Role(id)
		if !ok {
			t.Fatalf("body %d missing", id)
		}
		g, ok := role.(physics.GroundRole)
		if !ok || g.Meta == nil {
			t.Fatalf("body %d is not a ground segment with metadata", id)
		}
		out = append(out, g.Meta)
	}
	return out
}

func TestTerrainSegmentsArePositiveAndDisjoint(t *testing.T) {
	for _, stage := range []int{1, 2, 5, 12} {
		for seed := int64(1); seed <= 5; seed++ {
			g, w := newTestTerrain(t, config.DefaultLaunchConfig(), stage, seed)
			if _, err := g.Generate(0, 10, 400); err != nil {
				t.Fatalf("Generate() failed: %v", err)
			}

			segs := metas(t, w, g.Active())
			if len(segs) < 50 {
				t.Fatalf("stage %d seed %d: only %d segments", stage, seed, len(segs))
			}
			for i, m := range segs {
				if m.Width <= 0 || m.Height <= 0 {
					t.Errorf("segment %d: size %fx%f", i, m.Width, m.Height)
				}
				if m.Width < 1.5 || m.Width > 4 {
					t.Errorf("segment %d: width %f outside [1.5, 4]", i, m.Width)
				}
				if m.Y < 1 || m.Y > 6 {
					t.Errorf("segment %d: y %f outside [1, 6]", i, m.Y)
				}
				if i == 0 {
					continue
				}
				prev := segs[i-1]
				if m.Left() <= prev.Right() {
					t.Errorf("stage %d seed %d: segment %d [%f, %f] overlaps previous [%f, %f]",
						stage, seed, i, m.Left(), m.Right(), prev.Left(), prev.Right())
				}
				if m.X <= prev.X {
					t.Errorf("segment %d created out of order", i)
				}
			}
		}
	}
}

func TestTerrainCursorCoversLookahead(t *testing.T) {
	g, _ := newTestTerrain(t, config.DefaultLaunchConfig(), 1, 7)

	before := g.NextX()
	created, err := g.Generate(5, 10, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(created) == 0 {
		t.Fatal("expected segments to be created")
	}
	if g.NextX() < 35 {
		t.Errorf("NextX = %f, expected >= 35", g.NextX())
	}
	if g.NextX() <= before {
		t.Error("cursor must advance")
	}

	// Nothing new while the camera stays put
	again, _ := g.Generate(5, 10, 20)
	if len(again) != 0 {
		t.Errorf("second Generate created %d segments, expected 0", len(again))
	}
}

func TestTerrainStageGating(t *testing.T) {
	count := func(stage int) (high, low, tilted int) {
		g, w := newTestTerrain(t, config.DefaultLaunchConfig(), stage, 42)
		if _, err := g.Generate(0, 10, 2000); err != nil {
			t.Fatal(err)
		}
		maxTilt := config.NewStageScaler(config.DefaultLaunchConfig().Difficulty, config.DefaultLaunchConfig().Terrain).MaxTilt(stage)
		for _, m := range metas(t, w, g.Active()) {
			switch m.Friction {
			case physics.FrictionHigh:
				high++
			case physics.FrictionLow:
				low++
			}
			if m.Angle != 0 {
				tilted++
			}
			if math.Abs(m.Angle) > maxTilt+1e-12 {
				t.Errorf("stage %d: angle %f exceeds max tilt %f", stage, m.Angle, maxTilt)
			}
		}
		return high, low, tilted
	}

	high, low, tilted := count(1)
	if high != 0 {
		t.Errorf("stage 1 produced %d high-friction segments", high)
	}
	if tilted != 0 {
		t.Errorf("stage 1 produced %d tilted segments", tilted)
	}
	if low == 0 {
		t.Error("stage 1 should produce low-friction segments")
	}

	high, _, tilted = count(3)
	if high == 0 {
		t.Error("stage 3 should produce high-friction segments")
	}
	if tilted == 0 {
		t.Error("stage 3 should produce tilted segments")
	}
}

func TestTerrainFrictionColors(t *testing.T) {
	g, w := newTestTerrain(t, config.DefaultLaunchConfig(), 3, 9)
	if _, err := g.Generate(0, 10, 300); err != nil {
		t.Fatal(err)
	}
	for _, m := range metas(t, w, g.Active()) {
		var wantCoeff float64
		switch m.Friction {
		case physics.FrictionHigh:
			wantCoeff = 100
		case physics.FrictionLow:
			wantCoeff = 0.05
		default:
			wantCoeff = 0.6
		}
		if m.Coefficient != wantCoeff {
			t.Errorf("%s segment has coefficient %f, expected %f", m.Friction, m.Coefficient, wantCoeff)
		}
	}
}

func TestTerrainStartPlatform(t *testing.T) {
	g, w := newTestTerrain(t, config.DefaultLaunchConfig(), 1, 3)

	segs := metas(t, w, g.Active())
	if len(segs) != 1 {
		t.Fatalf("expected only the start platform, got %d", len(segs))
	}
	start := segs[0]
	if start.X != 2 || start.Y != 2 || start.Width != 4 || start.Friction != physics.FrictionNormal {
		t.Errorf("start platform = %+v", start)
	}
	if g.NextX() < 5 || g.NextX() > 7 {
		t.Errorf("NextX = %f, expected in [5, 7]", g.NextX())
	}
}

func TestTerrainInvalidParameters(t *testing.T) {
	cfg := config.DefaultLaunchConfig()
	cfg.Terrain.MinWidth = -1
	cfg.Terrain.MaxWidth = -0.5

	t.Run("strict fails", func(t *testing.T) {
		strict := cfg
		strict.Debug.StrictGeneration = true
		g, _ := newTestTerrain(t, strict, 1, 1)
		if _, err := g.Generate(0, 10, 20); !errors.Is(err, ErrInvalidGenerationParameters) {
			t.Errorf("Generate() = %v, expected ErrInvalidGenerationParameters", err)
		}
	})

	t.Run("release clamps", func(t *testing.T) {
		g, w := newTestTerrain(t, cfg, 1, 1)
		if _, err := g.Generate(0, 10, 20); err != nil {
			t.Fatalf("Generate() = %v, expected clamping", err)
		}
		for _, m := range metas(t, w, g.Active()) {
			if m.Width <= 0 {
				t.Errorf("clamped width = %f", m.Width)
			}
		}
	})
}

func TestTerrainRetire(t *testing.T) {
	g, w := newTestTerrain(t, config.DefaultLaunchConfig(), 1, 5)
	if _, err := g.Generate(0, 10, 60); err != nil {
		t.Fatal(err)
	}
	segs := metas(t, w, g.Active())

	// Threshold at x=20: camera 55, half width 10, remove distance 25
	threshold := 55.0 - 10 - 25
	got := map[physics.BodyID]bool{}
	for _, id := range g.Retire(55, 10, 25) {
		got[id] = true
	}
	for i, id := range g.Active() {
		want := segs[i].Right() < threshold
		if got[id] != want {
			t.Errorf("segment right=%f: retired=%v, expected %v", segs[i].Right(), got[id], want)
		}
	}

	// Retire only selects; the active list is unchanged until Remove
	n := len(g.Active())
	ids := g.Retire(55, 10, 25)
	if len(g.Active()) != n {
		t.Error("Retire must not modify the active list")
	}
	g.Remove(ids...)
	if len(g.Active()) != n-len(ids) {
		t.Errorf("Remove left %d active, expected %d", len(g.Active()), n-len(ids))
	}
}

func TestTerrainRetireMissingMetadataUsesFallback(t *testing.T) {
	g, w := newTestTerrain(t, config.DefaultLaunchConfig(), 1, 5)

	// A 10-wide body without metadata at x=100 is judged by x + 2.0
	id, err := w.CreateGround(physics.GroundSpec{Center: core.V(100, 2), Width: 10, Height: 0.5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	g.Track(id)

	tests := []struct {
		name    string
		cameraX float64
		retired bool
	}{
		{"threshold before fallback edge", 136.9, false},
		{"threshold past fallback edge", 137.5, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			found := false
			for _, r := range g.Retire(tc.cameraX, 10, 25) {
				if r == id {
					found = true
				}
			}
			if found != tc.retired {
				t.Errorf("camera %f: retired=%v, expected %v", tc.cameraX, found, tc.retired)
			}
		})
	}
}
