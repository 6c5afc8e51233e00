// Package desktop runs launchland in a window through Ebitengine.
package desktop

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/launchland/internal/config"
	"github.com/vovakirdan/launchland/internal/core"
	"github.com/vovakirdan/launchland/internal/game"
	"github.com/vovakirdan/launchland/internal/platform/banner"
	"github.com/vovakirdan/launchland/internal/storage"
)

// Logical screen size in pixels.
const (
	ScreenW = 960
	ScreenH = 540
)

// Options configure a desktop session.
type Options struct {
	Config     config.LaunchConfig
	Seed       int64
	TickRate   int
	Preset     string
	Difficulty string
	Store      *storage.Store // Optional; runs are recorded when set
	Logger     *log.Logger
}

// App implements ebiten.Game.
type App struct {
	game     *game.Game
	board    *banner.Board
	input    core.InputFrame
	opts     Options
	logger   *log.Logger
	renderer *renderer
	tickRate int
}

// NewApp creates the app and its first session.
func NewApp(opts Options) (*App, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rt := core.RuntimeConfig{
		ScreenW:     ScreenW,
		ScreenH:     ScreenH,
		TickRate:    tickRate,
		Seed:        seed,
		PixelAspect: 1,
	}
	g, err := game.New(opts.Config, rt, logger)
	if err != nil {
		return nil, err
	}

	r, err := newRenderer()
	if err != nil {
		return nil, err
	}

	return &App{
		game:     g,
		board:    banner.NewBoard(),
		input:    core.NewInputFrame(),
		opts:     opts,
		logger:   logger,
		renderer: r,
		tickRate: tickRate,
	}, nil
}

// Update samples devices and steps the simulation once.
func (a *App) Update() error {
	if sampleInput(&a.input) {
		a.record(a.game.Session().Stats(), "quit")
		return ebiten.Termination
	}
	restart := a.input.IsKeyDown(core.KeyRestart)

	res, err := a.game.Step(a.input)
	if err != nil {
		return err
	}
	a.board.Observe(res.State)
	a.board.Update(1 / float64(a.tickRate))

	switch {
	case res.State.GameOver:
		if last, ok := a.game.LastRun(); ok {
			a.record(last, "fell")
		}
	case restart:
		if last, ok := a.game.LastRun(); ok {
			a.record(last, "restart")
		}
	}

	a.input.Advance()
	return nil
}

// Draw renders the current snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	var b *banner.Banner
	if cur, ok := a.board.Current(); ok {
		b = &cur
	}
	a.renderer.draw(screen, a.game.Snapshot(), b)
}

// Layout keeps a fixed logical resolution.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenW, ScreenH
}

func (a *App) record(st game.RunStats, reason string) {
	if a.opts.Store == nil || st.Score <= 0 {
		return
	}
	_, err := a.opts.Store.SaveRun(storage.Run{
		Source:     "play",
		Preset:     a.opts.Preset,
		Difficulty: a.opts.Difficulty,
		Seed:       st.Seed,
		Frames:     st.Frames,
		Score:      st.Score,
		Stage:      st.Stage,
		Cleared:    st.Cleared,
		Landings:   st.Landings,
		Launches:   st.Launches,
		Segments:   st.Segments,
		MaxX:       st.MaxX,
		Reason:     reason,
	})
	if err != nil {
		a.logger.Warn("could not record run", "err", err)
	}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	app, err := NewApp(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(ScreenW, ScreenH)
	ebiten.SetWindowTitle("Launchland")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.tickRate)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
