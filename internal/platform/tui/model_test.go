package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crates/internal/config"
	"github.com/vovakirdan/tui-crates/internal/core"
	"github.com/vovakirdan/tui-crates/internal/levels"
	"github.com/vovakirdan/tui-crates/internal/scores"
	"github.com/vovakirdan/tui-crates/internal/session"
)

func testOptions() Options {
	return Options{
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30},
		Glyphs:   config.Default().Glyphs,
		CellW:    2,
		ShowHelp: true,
		Theme:    MonochromeTheme(),
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelAppliesQueuedKeysOnTick(t *testing.T) {
	sess := testSession(t, "######\n#@ $.#\n######\n")
	m := NewModel(sess, testOptions())

	if !strings.Contains(m.View(), "moves: 0000") {
		t.Fatalf("initial view lacks status: %q", m.View())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if sess.View().Moves != 0 {
		t.Fatal("key applied before the tick")
	}

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil || isQuit(cmd) {
		t.Fatal("tick did not schedule the next tick")
	}
	if !strings.Contains(m.View(), "moves: 0001") {
		t.Errorf("view not refreshed after move")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, TickMsg(time.Now()))
	if sess.Status() != session.StatusWin {
		t.Fatalf("status = %v, want win", sess.Status())
	}
	if !strings.Contains(m.View(), "You win!") {
		t.Error("win hint missing")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd = update(t, m, TickMsg(time.Now()))
	if !isQuit(cmd) || !sess.GameOver() {
		t.Error("advancing past the last level did not quit")
	}
}

func TestModelQuitKey(t *testing.T) {
	sess := testSession(t, "#####\n#@$.#\n#####\n")
	m := NewModel(sess, testOptions())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !isQuit(cmd) || !sess.Quit() {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("view not cleared after quit")
	}
}

func TestModelHelpToggle(t *testing.T) {
	sess := testSession(t, "#####\n#@$.#\n#####\n")
	m := NewModel(sess, testOptions())
	short := m.View()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !m.help.ShowAll {
		t.Fatal("help not expanded")
	}
	if m.View() == short {
		t.Error("view unchanged after expanding help")
	}
}

func TestModelResize(t *testing.T) {
	sess := testSession(t, "#####\n#@$.#\n#####\n")
	m := NewModel(sess, testOptions())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}
	if m.layout.OriginX != (100-10)/2 {
		t.Errorf("layout not recomputed: %+v", m.layout)
	}
}

func TestModelStopsOnScoreSaveError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}
	lvls, err := levels.Parse(strings.NewReader("#####\n#@$.#\n#####\n"))
	if err != nil {
		t.Fatal(err)
	}
	sess, err := session.New(lvls, scores.NewBook(path, nil))
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(sess, testOptions())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, TickMsg(time.Now()))
	if !isQuit(cmd) {
		t.Error("model kept running after a fatal error")
	}
	if m.Err() == nil {
		t.Error("error not reported")
	}
}
