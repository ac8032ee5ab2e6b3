// Package levels loads level definitions from the plain-text level format.
// This package depends on puzzle but puzzle does not depend on levels.
package levels

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vovakirdan/tui-crates/internal/core"
	"github.com/vovakirdan/tui-crates/internal/puzzle"
)

//go:embed defaults/levels.txt
var defaultLevels []byte

// Level characters.
const (
	charEmpty         = ' '
	charTarget        = '.'
	charStored        = '*'
	charCrate         = '$'
	charPlayer        = '@'
	charPlayerOnStore = '&'
	charWall          = '#'
	charComment       = ';'
)

// Level is an immutable level template.
type Level struct {
	Number int    // 1-based position in the source
	Title  string // last comment line before the block, may be empty
	Width  int
	Height int
	Grid   *puzzle.Grid
	Crates int
	Stored int // crates already on a target at load time
	Start  core.Coord
}

// NewState creates a fresh puzzle state from this level.
func (l *Level) NewState() *puzzle.State {
	return puzzle.NewState(l.Grid, l.Start, l.Stored)
}

// Rows renders the level at its start position in level-file notation.
func (l *Level) Rows() []string {
	return l.Grid.Rows(l.Start)
}

// Parse reads every level block from r.
//
// Lines starting with ';' are dropped before segmentation, and the last of
// them before a block becomes its title. Empty lines separate blocks. Rows
// shorter than the block's longest line are padded with empty cells.
// Any malformed block fails the whole parse with a *ParseError.
func Parse(r io.Reader) ([]Level, error) {
	var (
		levels  []Level
		block   []string
		first   int // file line of the block's first row
		comment string
		title   string
		lineNo  int
	)

	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		lvl, err := parseBlock(len(levels)+1, first, block)
		if err != nil {
			return err
		}
		lvl.Title = title
		levels = append(levels, lvl)
		block = nil
		title = ""
		return nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSuffix(sc.Text(), "\r")

		if strings.HasPrefix(line, string(charComment)) {
			// Comments inside a block never title the next one.
			if len(block) == 0 {
				comment = strings.TrimSpace(strings.TrimPrefix(line, string(charComment)))
			}
			continue
		}
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if len(block) == 0 {
			first = lineNo
			title = comment
			comment = ""
		}
		block = append(block, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("levels: reading: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(levels) == 0 {
		return nil, &ParseError{Line: lineNo, Err: ErrNoLevels}
	}
	return levels, nil
}

func parseBlock(number, firstLine int, rows []string) (Level, error) {
	w := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}

	grid := puzzle.NewGrid(w, len(rows))
	var (
		crates, targets, stored int
		start                   core.Coord
		playerFound             bool
	)

	for y, row := range rows {
		x := 0
		for _, ch := range row {
			c := core.C(x, y)
			switch ch {
			case charEmpty:
			case charTarget:
				grid.Set(c, puzzle.Target)
				targets++
			case charCrate:
				grid.Set(c, puzzle.Crate)
				crates++
			case charStored:
				grid.Set(c, puzzle.Crate|puzzle.Target)
				crates++
				targets++
				stored++
			case charWall:
				grid.Set(c, puzzle.Wall)
			case charPlayer, charPlayerOnStore:
				if playerFound {
					return Level{}, &ParseError{Level: number, Line: firstLine + y, Char: ch, Err: ErrMultiplePlayers}
				}
				playerFound = true
				start = c
				if ch == charPlayerOnStore {
					grid.Set(c, puzzle.Target)
					targets++
				}
			default:
				return Level{}, &ParseError{Level: number, Line: firstLine + y, Char: ch, Err: ErrInvalidChar}
			}
			x++
		}
	}

	if !playerFound {
		return Level{}, &ParseError{Level: number, Line: firstLine, Err: ErrNoPlayer}
	}
	if crates != targets {
		return Level{}, &ParseError{
			Level: number,
			Line:  firstLine,
			Err:   fmt.Errorf("%w: crates=%d targets=%d", ErrUnbalanced, crates, targets),
		}
	}

	return Level{
		Number: number,
		Width:  w,
		Height: len(rows),
		Grid:   grid,
		Crates: crates,
		Stored: stored,
		Start:  start,
	}, nil
}

// LoadFile parses the level file at path.
func LoadFile(path string) ([]Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("levels: opening %s: %w", path, err)
	}
	defer f.Close()

	lvls, err := Parse(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Source = path
		}
		return nil, err
	}
	return lvls, nil
}

// LoadDefault parses the level set compiled into the binary.
func LoadDefault() ([]Level, error) {
	lvls, err := Parse(bytes.NewReader(defaultLevels))
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Source = "embedded"
		}
		return nil, err
	}
	return lvls, nil
}

// Load reads path, or the embedded level set when path is empty.
func Load(path string) ([]Level, error) {
	if path == "" {
		return LoadDefault()
	}
	return LoadFile(path)
}
