package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/launchland/internal/config"
	"github.com/vovakirdan/launchland/internal/core"
	"github.com/vovakirdan/launchland/internal/game"
	"github.com/vovakirdan/launchland/internal/platform/banner"
	"github.com/vovakirdan/launchland/internal/storage"
)

// Options configure a terminal session.
type Options struct {
	Config     config.LaunchConfig
	Runtime    core.RuntimeConfig
	Preset     string
	Difficulty string
	Store      *storage.Store // Optional; runs are recorded when set
	Logger     *log.Logger
}

// Model is the Bubble Tea model running launchland in a terminal.
type Model struct {
	game    *game.Game
	screen  *core.Screen
	board   *banner.Board
	keys    KeyMap
	help    help.Model
	opts    Options
	logger  *log.Logger
	runtime core.RuntimeConfig

	input       core.InputFrame
	boostFrames int
	showHelp    bool
	quitting    bool
	err         error
}

// NewModel creates a model and its first session.
func NewModel(opts Options) (Model, error) {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g, err := game.New(opts.Config, rt, logger)
	if err != nil {
		return Model{}, err
	}

	return Model{
		game:    g,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		board:   banner.NewBoard(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		opts:    opts,
		logger:  logger,
		runtime: rt,
		input:   core.NewInputFrame(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if p := mapMouse(msg); p.ok {
			m.input.SetPointer(p.x, p.y, p.pressed)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	switch k := m.keys.MapKey(msg); k {
	case core.KeyQuit:
		m.record(m.game.Session().Stats(), "quit")
		m.quitting = true
		return m, tea.Quit
	case core.KeyBoost:
		m.boostFrames = BoostHoldFrames
	case core.KeyPause, core.KeyRestart:
		m.input.SetKey(k)
	}

	return m, nil
}

// handleResize keeps the session running with a new viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.boostFrames > 0 {
		m.input.SetKey(core.KeyBoost)
		m.boostFrames--
	}
	restart := m.input.IsKeyDown(core.KeyRestart)

	res, err := m.game.Step(m.input)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.board.Observe(res.State)
	m.board.Update(1 / float64(m.runtime.TickRate))

	switch {
	case res.State.GameOver:
		if last, ok := m.game.LastRun(); ok {
			m.record(last, "fell")
		}
	case restart:
		if last, ok := m.game.LastRun(); ok {
			m.record(last, "restart")
		}
	}

	m.input.Advance()
	return m, tickCmd(m.runtime.TickRate)
}

// record stores a finished run. Runs without a landing are skipped.
func (m Model) record(st game.RunStats, reason string) {
	if m.opts.Store == nil || st.Score <= 0 {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		Source:     "play",
		Preset:     m.opts.Preset,
		Difficulty: m.opts.Difficulty,
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
		m.logger.Warn("could not record run", "err", err)
	}
}

// saveScreenshot saves the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".launchland", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("launchland_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) draw() {
	var b *banner.Banner
	if cur, ok := m.board.Current(); ok {
		b = &cur
	}
	DrawScene(m.screen, m.game.Snapshot(), b)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	if !m.showHelp {
		return RenderScreen(m.screen)
	}
	helpView := m.help.View(m.keys)
	rows := m.screen.Height() - lipgloss.Height(helpView)
	return renderRows(m.screen, rows) + "\n" + helpView
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press, drag and release with the left button
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
