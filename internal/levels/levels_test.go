package levels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crates/internal/core"
	"github.com/vovakirdan/tui-crates/internal/puzzle"
)

func TestParseSingleLevel(t *testing.T) {
	src := "; Tiny\n#####\n#@$.#\n#####\n"
	lvls, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(lvls) != 1 {
		t.Fatalf("got %d levels, want 1", len(lvls))
	}
	l := lvls[0]
	if l.Number != 1 || l.Title != "Tiny" {
		t.Errorf("number=%d title=%q", l.Number, l.Title)
	}
	if l.Width != 5 || l.Height != 3 {
		t.Errorf("size = %dx%d, want 5x3", l.Width, l.Height)
	}
	if l.Crates != 1 || l.Stored != 0 {
		t.Errorf("crates=%d stored=%d", l.Crates, l.Stored)
	}
	if l.Start != core.C(1, 1) {
		t.Errorf("start = %v, want (1,1)", l.Start)
	}
	if l.Grid.Get(core.C(2, 1)) != puzzle.Crate || l.Grid.Get(core.C(3, 1)) != puzzle.Target {
		t.Error("crate or target misplaced")
	}
}

func TestParseRaggedRowsArePadded(t *testing.T) {
	src := "####\n#@.####\n#$   #\n######\n"
	lvls, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	l := lvls[0]
	if l.Width != 7 {
		t.Fatalf("width = %d, want 7", l.Width)
	}
	for x := 4; x < 7; x++ {
		if c := l.Grid.Get(core.C(x, 0)); c != puzzle.Empty {
			t.Errorf("padding at (%d,0) = %v", x, c)
		}
	}
	rows := l.Rows()
	if rows[0] != "####   " || rows[1] != "#@.####" {
		t.Errorf("rows = %q", rows)
	}
}

func TestParseMultipleBlocks(t *testing.T) {
	src := strings.Join([]string{
		"; header",
		"",
		"; one",
		"#####",
		"#@$.#",
		"; inside a block",
		"#####",
		"",
		"",
		"#####",
		"#&*$#",
		"#####",
	}, "\n")

	lvls, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(lvls) != 2 {
		t.Fatalf("got %d levels, want 2", len(lvls))
	}
	if lvls[0].Height != 3 {
		t.Errorf("comment inside block changed height to %d", lvls[0].Height)
	}
	if lvls[0].Title != "one" || lvls[1].Title != "" {
		t.Errorf("titles = %q, %q", lvls[0].Title, lvls[1].Title)
	}
	second := lvls[1]
	if second.Number != 2 {
		t.Errorf("number = %d", second.Number)
	}
	if second.Grid.Get(second.Start) != puzzle.Target {
		t.Error("player-on-target start is not a target")
	}
	if second.Stored != 1 || second.Crates != 2 {
		t.Errorf("crates=%d stored=%d, want 2/1", second.Crates, second.Stored)
	}
}

func TestParseCRLF(t *testing.T) {
	src := "#####\r\n#@$.#\r\n#####\r\n\r\n#####\r\n#@$.#\r\n#####\r\n"
	lvls, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(lvls) != 2 || lvls[0].Width != 5 {
		t.Errorf("got %d levels, width %d", len(lvls), lvls[0].Width)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		want  error
		level int
		line  int
	}{
		{"two players", "#####\n#@$.#\n#@  #\n#####", ErrMultiplePlayers, 1, 3},
		{"no player", "#####\n# $.#\n#####", ErrNoPlayer, 1, 1},
		{"bad char", "#####\n#@$.#\n##x##", ErrInvalidChar, 1, 3},
		{"unbalanced", "#####\n#@$$.#\n#####", ErrUnbalanced, 1, 1},
		{"second level bad", "#####\n#@$.#\n#####\n\n; c\n#####\n#@$$#", ErrUnbalanced, 2, 6},
		{"empty source", "; only comments\n\n", ErrNoLevels, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("err %T is not *ParseError", err)
			}
			if pe.Level != tt.level || pe.Line != tt.line {
				t.Errorf("level=%d line=%d, want %d/%d", pe.Level, pe.Line, tt.level, tt.line)
			}
		})
	}
}

func TestInvalidCharMessage(t *testing.T) {
	_, err := Parse(strings.NewReader("#@x#"))
	if err == nil || !strings.Contains(err.Error(), `'x'`) {
		t.Errorf("error %v does not name the character", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "set.txt")
	if err := os.WriteFile(path, []byte("#####\n#@#.#\n#####\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if pe.Source != path || !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not carry the path", err)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("missing file loaded")
	}
}

func TestDefaultLevelsLoad(t *testing.T) {
	lvls, err := Load("")
	if err != nil {
		t.Fatalf("default levels: %v", err)
	}
	if len(lvls) < 5 {
		t.Fatalf("got %d default levels", len(lvls))
	}
	for _, l := range lvls {
		if l.Title == "" {
			t.Errorf("level %d has no title", l.Number)
		}
		if got := l.Grid.Count(puzzle.Target); got != l.Crates {
			t.Errorf("level %d: %d targets, %d crates", l.Number, got, l.Crates)
		}
	}
}

func TestDefaultLevelsSolvable(t *testing.T) {
	lvls, err := LoadDefault()
	if err != nil {
		t.Fatal(err)
	}
	solutions := map[int]string{
		1: "R",
		2: "URULL",
		3: "DLULURDDRRRUULDRDL",
		4: "DDRURULRRD",
	}
	dirs := map[rune]core.Dir{'U': core.DirUp, 'D': core.DirDown, 'L': core.DirLeft, 'R': core.DirRight}

	for n, moves := range solutions {
		l := lvls[n-1]
		s := l.NewState()
		h := puzzle.NewHistory()
		var res puzzle.MoveResult
		for i, m := range moves {
			res = s.TryMove(dirs[m], l.Crates, h)
			if !res.Accepted {
				t.Fatalf("level %d: move %d (%c) rejected", n, i, m)
			}
		}
		if !res.Solved {
			t.Errorf("level %d: not solved after %q (stored %d/%d)", n, moves, s.Stored, l.Crates)
		}
	}
}
