package session

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-crates/internal/core"
	"github.com/vovakirdan/tui-crates/internal/puzzle"
)

// View is everything the front end needs to draw one frame.
// Grid is shared with the session and must not be modified.
type View struct {
	Level  int // 1-based
	Levels int
	Title  string

	Grid   *puzzle.Grid // nil in StatusComplete
	Player core.Coord
	Facing core.Dir

	Moves   int
	Pushes  int
	Elapsed uint32
	Stored  int
	Crates  int
	Undos   int

	Status      Status
	Label       string
	HasSnapshot bool
	UndoDepth   int
	Debug       bool
}

// View builds the render model for the current frame.
func (s *Session) View() View {
	v := View{
		Level:       s.index + 1,
		Levels:      len(s.levels),
		Status:      s.status,
		HasSnapshot: s.history.HasSnapshot(),
		UndoDepth:   s.history.Len(),
		Debug:       s.debug,
	}
	if s.status == StatusComplete || s.state == nil {
		v.Level = len(s.levels)
		v.Label = fmt.Sprintf("all %d levels solved", len(s.levels))
		return v
	}

	lvl := &s.levels[s.index]
	st := s.state
	v.Title = lvl.Title
	v.Grid = st.Grid
	v.Player = st.Player
	v.Facing = st.Facing
	v.Moves = st.Moves
	v.Pushes = st.Pushes
	v.Elapsed = st.Elapsed
	v.Stored = st.Stored
	v.Crates = lvl.Crates
	v.Undos = st.Undos
	v.Label = StatusLabel(v.Level, st.Moves, st.Pushes, st.Elapsed, s.status)
	return v
}

// StatusLabel formats the status line, e.g.
// "03| moves: 0042 pushes: 0007 time:0:01:05 paused".
func StatusLabel(level, moves, pushes int, elapsed uint32, st Status) string {
	var suffix string
	switch st {
	case StatusPause:
		suffix = "paused"
	case StatusWin:
		suffix = "win"
	}
	label := fmt.Sprintf("%02d| moves: %04d pushes: %04d time:%s %s",
		level, moves, pushes, FormatElapsed(elapsed), suffix)
	return strings.TrimRight(label, " ")
}

// FormatElapsed renders seconds as H:MM:SS.
func FormatElapsed(sec uint32) string {
	return fmt.Sprintf("%d:%02d:%02d", sec/3600, sec/60%60, sec%60)
}
