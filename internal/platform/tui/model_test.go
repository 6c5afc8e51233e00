package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/launchland/internal/config"
	"github.com/vovakirdan/launchland/internal/core"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	rt := core.DefaultConfig()
	rt.Seed = 7
	m, err := NewModel(Options{Config: config.DefaultLaunchConfig(), Runtime: rt, Preset: "classic"})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Key
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyBoost},
		{keyRunes("p"), core.KeyPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.KeyPause},
		{keyRunes("r"), core.KeyRestart},
		{keyRunes("q"), core.KeyQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyQuit},
		{keyRunes("x"), core.KeyNone},
	}
	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	tests := []struct {
		name        string
		msg         tea.MouseMsg
		wantOK      bool
		wantPressed bool
	}{
		{"left press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true, true},
		{"left drag", tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, true, true},
		{"release", tea.MouseMsg{X: 9, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, true, false},
		{"right press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := mapMouse(tc.msg)
			if p.ok != tc.wantOK || p.pressed != tc.wantPressed {
				t.Errorf("mapMouse() = %+v", p)
			}
			if p.x != float64(tc.msg.X)+0.5 || p.y != float64(tc.msg.Y)+0.5 {
				t.Errorf("pointer = (%f, %f), expected cell center", p.x, p.y)
			}
		})
	}
}

func TestModelTicksAndLands(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 120; i++ {
		m = update(t, m, TickMsg{})
	}
	if got := m.game.State().Score; got != 100 {
		t.Errorf("score after landing = %d, expected 100", got)
	}
	if m.View() == "" {
		t.Error("View() should render the scene")
	}
}

func TestModelBoostLatch(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	for i := 0; i < BoostHoldFrames; i++ {
		m = update(t, m, TickMsg{})
		if !m.game.Snapshot().Boosting {
			t.Fatalf("boost dropped after %d frames", i)
		}
	}
	m = update(t, m, TickMsg{})
	if m.game.Snapshot().Boosting {
		t.Error("boost should end after the hold window")
	}
}

func TestModelPauseKey(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, keyRunes("p"))
	m = update(t, m, TickMsg{})
	if !m.game.State().Paused {
		t.Fatal("expected paused after p")
	}
	// Key is consumed by the tick
	m = update(t, m, TickMsg{})
	if !m.game.State().Paused {
		t.Error("pause should persist until toggled again")
	}
}

func TestModelMouseDrag(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 120; i++ {
		m = update(t, m, TickMsg{})
	}

	snap := m.game.Snapshot()
	x, y := snap.View.Project(snap.Player.Position)
	m = update(t, m, tea.MouseMsg{X: int(x), Y: int(y), Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})
	if !m.game.Snapshot().Player.Dragging {
		t.Fatal("press on the player should start a drag")
	}

	m = update(t, m, tea.MouseMsg{X: int(x) - 8, Y: int(y) + 4, Action: tea.MouseActionRelease})
	m = update(t, m, TickMsg{})
	if got := m.game.Snapshot().Player.JumpCount; got != 1 {
		t.Errorf("JumpCount = %d after release, expected 1", got)
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 10; i++ {
		m = update(t, m, TickMsg{})
	}
	before := m.game.Session()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.game.Session() != before {
		t.Error("resize should not restart the session")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if nm := next.(Model); !nm.quitting || nm.View() != "" {
		t.Error("expected quitting model with empty view")
	}
}
