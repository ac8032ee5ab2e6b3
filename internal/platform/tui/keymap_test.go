package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crates/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDefaultKeyMapCommands(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Command
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.CommandMoveUp},
		{"k", runeKey("k"), core.CommandMoveUp},
		{"w", runeKey("w"), core.CommandMoveUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.CommandMoveDown},
		{"j", runeKey("j"), core.CommandMoveDown},
		{"s", runeKey("s"), core.CommandMoveDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.CommandMoveLeft},
		{"h", runeKey("h"), core.CommandMoveLeft},
		{"a", runeKey("a"), core.CommandMoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.CommandMoveRight},
		{"l", runeKey("l"), core.CommandMoveRight},
		{"d", runeKey("d"), core.CommandMoveRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.CommandPause},
		{"r", runeKey("r"), core.CommandRestart},
		{"u", runeKey("u"), core.CommandUndo},
		{"z", runeKey("z"), core.CommandUndo},
		{"f5", tea.KeyMsg{Type: tea.KeyF5}, core.CommandSaveSnapshot},
		{"f9", tea.KeyMsg{Type: tea.KeyF9}, core.CommandLoadSnapshot},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.CommandAdvance},
		{"ctrl+w", tea.KeyMsg{Type: tea.KeyCtrlW}, core.CommandForceWin},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, core.CommandToggleDebug},
		{"q", runeKey("q"), core.CommandQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.CommandQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.CommandQuit},
		{"help", runeKey("?"), core.CommandNone},
		{"unbound", runeKey("x"), core.CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Command(tt.msg); got != tt.want {
				t.Errorf("Command(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHelpListsBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp is empty")
	}
	n := 0
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	if n < 10 {
		t.Errorf("FullHelp lists only %d bindings", n)
	}
}
