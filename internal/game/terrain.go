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

// GroundWorld is the part of the physics world the terrain needs.
type GroundWorld interface {
	CreateGround(spec physics.GroundSpec, meta *physics.GroundMeta) (physics.BodyID, error)
	Role(id physics.BodyID) (physics.Role, bool)
	Body(id physics.BodyID) physics.Body
}

// StageSource exposes the current difficulty stage.
type StageSource interface {
	Stage() int
}

// TerrainGenerator creates ground segments ahead of the camera and selects
// segments far enough behind it for retirement.
type TerrainGenerator struct {
	cfg    config.TerrainConfig
	scaler *config.StageScaler
	world  GroundWorld
	stages StageSource
	rng    *rand.Rand
	logger *log.Logger
	strict bool

	nextX   float64 // Left edge of the next segment; only ever increases
	active  []physics.BodyID
	created int
}

// NewTerrainGenerator creates a generator and places the start platform.
func NewTerrainGenerator(world GroundWorld, cfg config.LaunchConfig, stages StageSource, rng *rand.Rand, logger *log.Logger) (*TerrainGenerator, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &TerrainGenerator{
		cfg:    cfg.Terrain,
		scaler: config.NewStageScaler(cfg.Difficulty, cfg.Terrain),
		world:  world,
		stages: stages,
		rng:    rng,
		logger: logger,
		strict: cfg.Debug.StrictGeneration,
	}

	start := cfg.Terrain.Start
	meta := &physics.GroundMeta{
		X:           start.X,
		Y:           start.Y,
		Width:       start.Width,
		Height:      cfg.Terrain.SegmentHeight,
		Friction:    physics.FrictionNormal,
		Coefficient: cfg.Terrain.Friction.Normal,
	}
	if err := g.place(meta); err != nil {
		return nil, err
	}

	gapLo, gapHi := g.scaler.GapRange(1)
	g.nextX = meta.Right() + g.uniform(gapLo, gapHi)
	return g, nil
}

// NextX returns the generation cursor.
func (g *TerrainGenerator) NextX() float64 {
	return g.nextX
}

// Active returns the live segments in creation order.
func (g *TerrainGenerator) Active() []physics.BodyID {
	return g.active
}

// Created returns the number of segments placed so far, start platform included.
func (g *TerrainGenerator) Created() int {
	return g.created
}

// Track adds an externally created ground body to the active list.
func (g *TerrainGenerator) Track(id physics.BodyID) {
	g.active = append(g.active, id)
}

// Generate creates segments until the cursor is lookahead past the right
// edge of the view. It returns the segments created on this call.
func (g *TerrainGenerator) Generate(cameraX, viewportHalfWidth, lookahead float64) ([]physics.BodyID, error) {
	var created []physics.BodyID
	limit := cameraX + viewportHalfWidth + lookahead

	for g.nextX < limit {
		meta, gap, err := g.draw(g.stages.Stage())
		if err != nil {
			return created, err
		}
		if err := g.place(meta); err != nil {
			return created, err
		}
		created = append(created, g.active[len(g.active)-1])
		g.nextX += meta.Width + gap
	}
	return created, nil
}

// draw picks the next segment's parameters for the given stage.
func (g *TerrainGenerator) draw(stage int) (*physics.GroundMeta, float64, error) {
	def := config.DefaultLaunchConfig().Terrain

	width, err := g.checked("width", g.uniform(g.cfg.MinWidth, g.cfg.MaxWidth), g.cfg.MinWidth, g.cfg.MaxWidth, def.MinWidth)
	if err != nil {
		return nil, 0, err
	}
	height, err := g.checked("height", g.cfg.SegmentHeight, g.cfg.SegmentHeight, g.cfg.SegmentHeight, def.SegmentHeight)
	if err != nil {
		return nil, 0, err
	}
	y := g.uniform(g.cfg.MinY, g.cfg.MaxY)

	class := physics.FrictionNormal
	coefficient := g.cfg.Friction.Normal
	angle := 0.0
	maxTilt := g.scaler.MaxTilt(stage)

	roll := g.rng.Intn(100)
	switch {
	case g.scaler.HighFrictionAllowed(stage) && roll < g.cfg.Mix.HighBelow:
		class = physics.FrictionHigh
		coefficient = g.cfg.Friction.High
		if maxTilt > 0 && g.chance(g.cfg.Mix.HighTiltChance) {
			angle = g.uniform(-maxTilt, maxTilt)
		}
	case roll < g.cfg.Mix.LowBelow:
		class = physics.FrictionLow
		coefficient = g.cfg.Friction.Low
	}
	if class != physics.FrictionHigh && maxTilt > 0 && g.chance(g.cfg.Mix.TiltChance) {
		angle = g.uniform(-maxTilt, maxTilt)
	}

	gapLo, gapHi := g.scaler.GapRange(stage)
	gap, err := g.checked("gap", g.uniform(gapLo, gapHi), gapLo, gapHi, def.GapMin)
	if err != nil {
		return nil, 0, err
	}

	return &physics.GroundMeta{
		X:           g.nextX + width/2,
		Y:           y,
		Width:       width,
		Height:      height,
		Angle:       angle,
		Friction:    class,
		Coefficient: coefficient,
	}, gap, nil
}

// checked clamps v into [lo, hi]. A value that is out of range or not
// positive is an error in strict mode; otherwise it is clamped, falling back
// to floor when the range itself is not positive.
func (g *TerrainGenerator) checked(name string, v, lo, hi, floor float64) (float64, error) {
	clamped := core.ClampF(v, lo, hi)
	if clamped > 0 && clamped == v {
		return v, nil
	}
	if g.strict {
		return 0, fmt.Errorf("%w: %s=%g outside [%g, %g]", ErrInvalidGenerationParameters, name, v, lo, hi)
	}
	if clamped <= 0 {
		clamped = floor
	}
	g.logger.Warn("clamped terrain parameter", "param", name, "value", v, "used", clamped)
	return clamped, nil
}

func (g *TerrainGenerator) place(meta *physics.GroundMeta) error {
	id, err := g.world.CreateGround(physics.GroundSpec{
		Center:   core.V(meta.X, meta.Y),
		Width:    meta.Width,
		Height:   meta.Height,
		Angle:    meta.Angle,
		Friction: meta.Coefficient,
	}, meta)
	if err != nil {
		return fmt.Errorf("place segment at x=%.2f: %w", meta.X, err)
	}
	g.active = append(g.active, id)
	g.created++
	return nil
}

// Retire returns active segments whose trailing edge is more than
// removeDistance behind the left edge of the view. Segments stay active
// until Remove confirms their destruction.
func (g *TerrainGenerator) Retire(cameraX, viewportHalfWidth, removeDistance float64) []physics.BodyID {
	threshold := cameraX - viewportHalfWidth - removeDistance
	var out []physics.BodyID
	for _, id := range g.active {
		if g.trailingEdge(id) < threshold {
			out = append(out, id)
		}
	}
	return out
}

// trailingEdge returns the right edge used for retirement. Bodies without
// generation metadata use the fallback half width.
func (g *TerrainGenerator) trailingEdge(id physics.BodyID) float64 {
	x := g.world.Body(id).Position().X
	if role, ok := g.world.Role(id); ok {
		if ground, ok := role.(physics.GroundRole); ok && ground.Meta != nil {
			return x + ground.Meta.Width/2
		}
	}
	return x + g.cfg.FallbackHalfWidth
}

// Remove drops destroyed segments from the active list.
func (g *TerrainGenerator) Remove(ids ...physics.BodyID) {
	if len(ids) == 0 {
		return
	}
	gone := make(map[physics.BodyID]bool, len(ids))
	for _, id := range ids {
		gone[id] = true
	}
	kept := g.active[:0]
	for _, id := range g.active {
		if !gone[id] {
			kept = append(kept, id)
		}
	}
	g.active = kept
}

func (g *TerrainGenerator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *TerrainGenerator) chance(p float64) bool {
	return g.rng.Float64() < p
}
