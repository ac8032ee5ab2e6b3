// Package session drives one play-through: it owns the live puzzle state,
// the undo history and the score book, and turns commands into state
// changes. It is single-threaded; the front end is its only caller.
package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crates/internal/core"
	"github.com/vovakirdan/tui-crates/internal/levels"
	"github.com/vovakirdan/tui-crates/internal/puzzle"
	"github.com/vovakirdan/tui-crates/internal/scores"
	"github.com/vovakirdan/tui-crates/internal/storage"
)

// Status is the session state machine.
type Status int

const (
	StatusPlay Status = iota
	StatusPause
	StatusWin
	StatusComplete // every level has a score; nothing left to play
)

func (s Status) String() string {
	switch s {
	case StatusPlay:
		return "play"
	case StatusPause:
		return "pause"
	case StatusWin:
		return "win"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// SolveRecorder receives every solve, repeat wins included.
// *storage.Store implements it.
type SolveRecorder interface {
	RecordSolve(storage.Solve) error
}

// ErrNoLevels is returned by New for an empty level set.
var ErrNoLevels = errors.New("session: no levels")

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithRecorder attaches a solve history.
func WithRecorder(r SolveRecorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithDebug starts the session with the counter dump enabled.
func WithDebug(on bool) Option {
	return func(s *Session) { s.debug = on }
}

// Session is the controller for a run over a level set.
type Session struct {
	levels  []levels.Level
	book    *scores.Book
	index   int
	state   *puzzle.State
	history *puzzle.History
	status  Status

	quit       bool
	gameOver   bool
	debug      bool
	mustDraw   bool
	lastTick   time.Time
	totalUndos int

	now      func() time.Time
	logger   *log.Logger
	recorder SolveRecorder
}

// New creates a session positioned on the first level without a score.
// When every level already has one, the session starts in StatusComplete.
func New(lvls []levels.Level, book *scores.Book, opts ...Option) (*Session, error) {
	if len(lvls) == 0 {
		return nil, ErrNoLevels
	}
	if book == nil {
		book = scores.NewBook("", nil)
	}

	s := &Session{
		levels:  lvls,
		book:    book,
		history: puzzle.NewHistory(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.applyDebugLevel()

	start := book.FirstUnsolved(len(lvls))
	if start >= len(lvls) {
		s.index = len(lvls)
		s.status = StatusComplete
		s.lastTick = s.now()
		s.mustDraw = true
		s.logger.Info("all levels solved", "levels", len(lvls))
		return s, nil
	}

	s.enter(start)
	return s, nil
}

// enter sets up level i. Entering a different level empties the snapshot
// slot; re-entering the same one (restart) keeps it.
func (s *Session) enter(i int) {
	if i != s.index || s.state == nil {
		s.history.ClearSnapshot()
	}
	lvl := &s.levels[i]
	s.index = i
	s.state = lvl.NewState()
	s.history.Reset()
	s.status = StatusPlay
	s.lastTick = s.now()
	s.mustDraw = true
	s.logger.Info("entering level", "level", lvl.Number, "title", lvl.Title, "crates", lvl.Crates)
	s.dump()
}

// Apply executes one command. The only error is a failure to persist the
// score file, which the caller must treat as fatal.
func (s *Session) Apply(cmd core.Command) error {
	switch cmd {
	case core.CommandNone:
		return nil
	case core.CommandQuit:
		s.quit = true
		return nil
	case core.CommandToggleDebug:
		s.debug = !s.debug
		s.applyDebugLevel()
		s.logger.Info("debug", "enabled", s.debug)
		s.dump()
		return nil
	case core.CommandRestart:
		if s.status == StatusComplete {
			s.enter(0)
		} else {
			s.enter(s.index)
		}
		return nil
	}

	switch s.status {
	case StatusPlay:
		return s.applyPlay(cmd)
	case StatusPause:
		if cmd == core.CommandPause {
			s.setStatus(StatusPlay)
		}
	case StatusWin:
		return s.applyWin(cmd)
	case StatusComplete:
		if cmd == core.CommandAdvance {
			s.gameOver = true
			s.quit = true
		}
	}
	return nil
}

func (s *Session) applyPlay(cmd core.Command) error {
	if d, ok := cmd.Direction(); ok {
		return s.move(d)
	}
	switch cmd {
	case core.CommandPause:
		s.setStatus(StatusPause)
	case core.CommandForceWin:
		s.logger.Debug("forced win", "level", s.index+1)
		s.setStatus(StatusWin)
	case core.CommandUndo:
		return s.undo()
	case core.CommandSaveSnapshot:
		s.history.SaveSnapshot(s.state)
		s.mustDraw = true
		s.logger.Debug("snapshot saved", "level", s.index+1, "moves", s.state.Moves)
		s.dump()
	case core.CommandLoadSnapshot:
		return s.loadSnapshot()
	}
	return nil
}

func (s *Session) applyWin(cmd core.Command) error {
	switch cmd {
	case core.CommandAdvance:
		if s.index+1 < len(s.levels) {
			s.enter(s.index + 1)
			return nil
		}
		s.logger.Info("game over", "levels", len(s.levels))
		s.gameOver = true
		s.quit = true
	case core.CommandUndo:
		return s.undo()
	case core.CommandLoadSnapshot:
		return s.loadSnapshot()
	}
	return nil
}

func (s *Session) move(d core.Dir) error {
	lvl := &s.levels[s.index]
	res := s.state.TryMove(d, lvl.Crates, s.history)
	if !res.Accepted {
		return nil
	}
	s.mustDraw = true
	s.dump()
	if res.Solved {
		return s.win()
	}
	return nil
}

// win records the solve: first win into the score book (persisted at
// once), every win into the optional history.
func (s *Session) win() error {
	s.setStatus(StatusWin)
	st := s.state
	rec := scores.NewRecord(s.index, st.Pushes, st.Moves, st.Elapsed)
	first := s.book.Add(rec)
	s.logger.Info("level solved",
		"level", s.index+1, "moves", st.Moves, "pushes", st.Pushes,
		"time", FormatElapsed(st.Elapsed), "first", first)

	if s.recorder != nil {
		err := s.recorder.RecordSolve(storage.Solve{
			Level:   s.index,
			Moves:   st.Moves,
			Pushes:  st.Pushes,
			Elapsed: int(st.Elapsed),
			Undos:   st.Undos,
		})
		if err != nil {
			s.logger.Warn("could not record solve", "error", err)
		}
	}
	return s.saveScores()
}

func (s *Session) undo() error {
	if !s.history.Pop(s.state) {
		return nil
	}
	s.totalUndos++
	s.status = StatusPlay
	s.mustDraw = true
	s.dump()
	return s.saveScores()
}

func (s *Session) loadSnapshot() error {
	if !s.history.LoadSnapshot(s.state) {
		return nil
	}
	s.status = StatusPlay
	s.mustDraw = true
	s.logger.Debug("snapshot loaded", "level", s.index+1, "moves", s.state.Moves)
	s.dump()
	return s.saveScores()
}

func (s *Session) saveScores() error {
	if err := s.book.Save(); err != nil {
		return fmt.Errorf("session: saving scores: %w", err)
	}
	if s.book.Len() > 0 && s.book.Path() != "" {
		s.logger.Debug("scores saved", "path", s.book.Path(), "records", s.book.Len())
	}
	return nil
}

func (s *Session) setStatus(st Status) {
	s.status = st
	s.mustDraw = true
}

// Tick advances the elapsed-time clock. Whole seconds accrue only in
// StatusPlay; the reference instant moves on regardless so paused time is
// never counted.
func (s *Session) Tick(now time.Time) {
	d := now.Sub(s.lastTick)
	if d <= time.Second {
		return
	}
	if s.status == StatusPlay && s.state != nil {
		s.state.Elapsed += uint32(d / time.Second)
	}
	s.lastTick = now
	s.mustDraw = true
}

// MustDraw reports whether anything visible changed since the last call,
// and resets the flag.
func (s *Session) MustDraw() bool {
	d := s.mustDraw
	s.mustDraw = false
	return d
}

// Status returns the current state machine status.
func (s *Session) Status() Status { return s.status }

// Quit reports whether the session has ended.
func (s *Session) Quit() bool { return s.quit }

// GameOver reports whether the session ended by advancing past the last
// level.
func (s *Session) GameOver() bool { return s.gameOver }

// Level returns the 0-based index of the current level. It equals the
// number of levels in StatusComplete.
func (s *Session) Level() int { return s.index }

// Levels returns the number of levels in the set.
func (s *Session) Levels() int { return len(s.levels) }

// Debug reports whether the counter dump is on.
func (s *Session) Debug() bool { return s.debug }

// Book returns the score book.
func (s *Session) Book() *scores.Book { return s.book }

func (s *Session) applyDebugLevel() {
	if s.debug {
		s.logger.SetLevel(log.DebugLevel)
	} else {
		s.logger.SetLevel(log.InfoLevel)
	}
}

// dump logs the counters at debug level.
func (s *Session) dump() {
	if !s.debug || s.state == nil {
		return
	}
	st := s.state
	s.logger.Debug("state",
		"level", s.index+1,
		"crates", fmt.Sprintf("%d/%d", st.Stored, s.levels[s.index].Crates),
		"moves", st.Moves,
		"pushes", st.Pushes,
		"undos", fmt.Sprintf("%d/%d", st.Undos, s.totalUndos),
		"history", s.history.Len(),
		"snapshot", s.history.HasSnapshot(),
		"time", st.Elapsed,
	)
}
