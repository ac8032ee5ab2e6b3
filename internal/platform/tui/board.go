package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-crates/internal/config"
	"github.com/vovakirdan/tui-crates/internal/core"
	"github.com/vovakirdan/tui-crates/internal/puzzle"
	"github.com/vovakirdan/tui-crates/internal/session"
)

// Rows taken by the HUD on the screen buffer: title on top, hint and status
// bar at the bottom.
const (
	titleRows  = 1
	bottomRows = 2
)

// facingRunes is indexed by core.Dir.
var facingRunes = [...]rune{core.DirDown: 'v', core.DirUp: '^', core.DirLeft: '<', core.DirRight: '>'}

// Layout places the board on the screen. It is recomputed on every level
// entry and every resize.
type Layout struct {
	OriginX int
	OriginY int
	CellW   int
	Fits    bool
}

// ComputeLayout centers a gridW x gridH board in the free area of the
// screen, narrowing cells down to one column when the board is too wide.
func ComputeLayout(screenW, screenH, gridW, gridH, cellW int) Layout {
	cellW = core.Clamp(cellW, config.MinCellWidth, config.MaxCellWidth)
	for cellW > 1 && gridW*cellW > screenW {
		cellW--
	}
	availH := screenH - titleRows - bottomRows
	return Layout{
		OriginX: max(0, (screenW-gridW*cellW)/2),
		OriginY: titleRows + max(0, (availH-gridH)/2),
		CellW:   cellW,
		Fits:    gridW*cellW <= screenW && gridH <= availH,
	}
}

// fitGlyph repeats or cuts glyph to exactly w runes.
func fitGlyph(glyph string, w int) []rune {
	src := []rune(glyph)
	if len(src) == 0 {
		src = []rune{' '}
	}
	out := make([]rune, w)
	for i := range out {
		out[i] = src[i%len(src)]
	}
	return out
}

// cellGlyph picks the runes and color for one board cell.
func cellGlyph(g config.GlyphsConfig, c puzzle.Cell, player bool, facing core.Dir, w int) ([]rune, core.Color) {
	if player {
		glyph := g.Player
		if c.IsTarget() {
			glyph = g.PlayerOnTarget
		}
		r := fitGlyph(glyph, w)
		if w > 1 && int(facing) < len(facingRunes) {
			r[w-1] = facingRunes[facing]
		}
		return r, core.ColorPlayer
	}

	switch {
	case c.IsWall():
		return fitGlyph(g.Wall, w), core.ColorWall
	case c.IsStored():
		return fitGlyph(g.Stored, w), core.ColorStored
	case c.IsCrate():
		return fitGlyph(g.Crate, w), core.ColorCrate
	case c.IsTarget():
		return fitGlyph(g.Target, w), core.ColorTarget
	default:
		return fitGlyph(g.Floor, w), core.ColorFloor
	}
}

// DrawBoard draws the grid of v at the layout position.
func DrawBoard(s *core.Screen, v session.View, g config.GlyphsConfig, l Layout) {
	if v.Grid == nil {
		return
	}
	for y := 0; y < v.Grid.H; y++ {
		for x := 0; x < v.Grid.W; x++ {
			pos := core.C(x, y)
			runes, color := cellGlyph(g, v.Grid.Get(pos), pos == v.Player, v.Facing, l.CellW)
			sx := l.OriginX + x*l.CellW
			for i, r := range runes {
				s.SetWithColor(sx+i, l.OriginY+y, r, color)
			}
		}
	}
}

// DrawFrame draws one full frame of the session view: title, board, hint
// and status bar.
func DrawFrame(s *core.Screen, v session.View, g config.GlyphsConfig, l Layout) {
	s.Clear()
	w, h := s.Width(), s.Height()
	if w == 0 || h == 0 {
		return
	}

	title := fmt.Sprintf("Level %d/%d", v.Level, v.Levels)
	if v.Title != "" {
		title += " - " + v.Title
	}
	s.DrawTextCentered(0, title, core.ColorHint)

	switch {
	case v.Status == session.StatusComplete:
		s.DrawTextCentered(h/2, fmt.Sprintf("All %d levels solved!", v.Levels), core.ColorStored)
	case !l.Fits:
		s.DrawTextCentered(h/2, "Terminal too small for this level", core.ColorHint)
	default:
		DrawBoard(s, v, g, l)
	}

	if hint := statusHint(v.Status); hint != "" {
		s.DrawTextCentered(h-2, hint, core.ColorHint)
	}

	// Status bar
	s.DrawHLine(0, h-1, w, ' ', core.ColorStatus)
	s.DrawTextWithColor(1, h-1, v.Label, core.ColorStatus)
	if v.Grid != nil {
		right := fmt.Sprintf("crates %d/%d", v.Stored, v.Crates)
		if v.HasSnapshot {
			right = "[snap] " + right
		}
		if v.Debug {
			right = "[debug] " + right
		}
		x := w - len([]rune(right)) - 1
		if x > len([]rune(v.Label))+2 {
			s.DrawTextWithColor(x, h-1, right, core.ColorStatus)
		}
	}
}

func statusHint(st session.Status) string {
	switch st {
	case session.StatusPause:
		return "*PAUSE* Press Space.."
	case session.StatusWin:
		return "You win! Press Return.."
	case session.StatusComplete:
		return "Press R to play again or Return to quit.."
	}
	return ""
}
