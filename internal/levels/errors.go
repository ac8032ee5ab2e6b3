package levels

import (
	"errors"
	"fmt"
)

var (
	ErrMultiplePlayers = errors.New("player found multiple times")
	ErrNoPlayer        = errors.New("player not found")
	ErrInvalidChar     = errors.New("invalid element")
	ErrUnbalanced      = errors.New("mismatch between crates and targets")
	ErrNoLevels        = errors.New("no levels found")
)

// ParseError describes why a level source was rejected.
type ParseError struct {
	Source string // file path, empty for in-memory sources
	Level  int    // 1-based level number, 0 when not tied to a level
	Line   int    // 1-based line in the source
	Char   rune   // offending character for ErrInvalidChar / ErrMultiplePlayers
	Err    error
}

func (e *ParseError) Error() string {
	msg := "levels: "
	if e.Source != "" {
		msg += e.Source + ": "
	}
	if e.Level > 0 {
		msg += fmt.Sprintf("level %d (line %d): ", e.Level, e.Line)
	}
	msg += e.Err.Error()
	if errors.Is(e.Err, ErrInvalidChar) {
		msg += fmt.Sprintf(" %q", e.Char)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
