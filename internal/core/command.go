package core

// Command is a semantic player intent, abstracted from physical key presses.
// The front end maps keys to commands; the session only ever sees commands.
type Command int

const (
	CommandNone Command = iota
	CommandMoveUp
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
	CommandPause        // toggles Play <-> Pause
	CommandRestart      // re-enter the current level
	CommandForceWin     // debug: jump straight to Win
	CommandUndo         // revert the last accepted move
	CommandSaveSnapshot // store the one-slot checkpoint
	CommandLoadSnapshot // restore the checkpoint
	CommandAdvance      // accept a win and enter the next level
	CommandQuit
	CommandToggleDebug
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandMoveUp:
		return "MoveUp"
	case CommandMoveDown:
		return "MoveDown"
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandPause:
		return "Pause"
	case CommandRestart:
		return "Restart"
	case CommandForceWin:
		return "ForceWin"
	case CommandUndo:
		return "Undo"
	case CommandSaveSnapshot:
		return "SaveSnapshot"
	case CommandLoadSnapshot:
		return "LoadSnapshot"
	case CommandAdvance:
		return "Advance"
	case CommandQuit:
		return "Quit"
	case CommandToggleDebug:
		return "ToggleDebug"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction for a move command.
// ok is false for every non-move command.
func (c Command) Direction() (d Dir, ok bool) {
	switch c {
	case CommandMoveUp:
		return DirUp, true
	case CommandMoveDown:
		return DirDown, true
	case CommandMoveLeft:
		return DirLeft, true
	case CommandMoveRight:
		return DirRight, true
	}
	return 0, false
}

// InputQueue buffers commands received between two frames.
// Order is preserved: each command is applied fully before the next.
type InputQueue struct {
	pending []Command
}

// Push appends a command. CommandNone is dropped.
func (q *InputQueue) Push(c Command) {
	if c == CommandNone {
		return
	}
	q.pending = append(q.pending, c)
}

// Len returns the number of pending commands.
func (q *InputQueue) Len() int {
	return len(q.pending)
}

// Drain returns all pending commands in arrival order and empties the queue.
func (q *InputQueue) Drain() []Command {
	out := q.pending
	q.pending = nil
	return out
}
