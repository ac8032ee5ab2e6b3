package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crates/internal/core"
)

// KeyMap defines the key bindings for play.
// Each binding maps to exactly one core.Command, except Help which is
// handled by the front end itself.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Pause        key.Binding
	Restart      key.Binding
	Undo         key.Binding
	SaveSnapshot key.Binding
	LoadSnapshot key.Binding
	Advance      key.Binding
	ForceWin     key.Binding
	Debug        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Undo, k.Restart, k.Pause, k.Advance, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Undo, k.Restart, k.SaveSnapshot, k.LoadSnapshot},
		{k.Pause, k.Advance, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "z"),
			key.WithHelp("u", "undo"),
		),
		SaveSnapshot: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("F5", "save"),
		),
		LoadSnapshot: key.NewBinding(
			key.WithKeys("f9"),
			key.WithHelp("F9", "load"),
		),
		Advance: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next level"),
		),
		ForceWin: key.NewBinding(
			key.WithKeys("ctrl+w"),
		),
		Debug: key.NewBinding(
			key.WithKeys("ctrl+d"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command translates a key message to a session command.
// Unbound keys and Help yield core.CommandNone.
func (k KeyMap) Command(msg tea.KeyMsg) core.Command {
	switch {
	case key.Matches(msg, k.Quit):
		return core.CommandQuit
	case key.Matches(msg, k.Up):
		return core.CommandMoveUp
	case key.Matches(msg, k.Down):
		return core.CommandMoveDown
	case key.Matches(msg, k.Left):
		return core.CommandMoveLeft
	case key.Matches(msg, k.Right):
		return core.CommandMoveRight
	case key.Matches(msg, k.Pause):
		return core.CommandPause
	case key.Matches(msg, k.Restart):
		return core.CommandRestart
	case key.Matches(msg, k.Undo):
		return core.CommandUndo
	case key.Matches(msg, k.SaveSnapshot):
		return core.CommandSaveSnapshot
	case key.Matches(msg, k.LoadSnapshot):
		return core.CommandLoadSnapshot
	case key.Matches(msg, k.Advance):
		return core.CommandAdvance
	case key.Matches(msg, k.ForceWin):
		return core.CommandForceWin
	case key.Matches(msg, k.Debug):
		return core.CommandToggleDebug
	}
	return core.CommandNone
}
