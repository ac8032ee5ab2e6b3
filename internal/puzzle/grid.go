package puzzle

import (
	"strings"

	"github.com/vovakirdan/tui-crates/internal/core"
)

// Grid is a rectangular board of cells stored in row-major order:
// index = y*W + x.
type Grid struct {
	W     int
	H     int
	Cells []Cell
}

// NewGrid creates an all-empty grid.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Cell, w*h),
	}
}

func (g *Grid) index(c core.Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate lies on the grid.
func (g *Grid) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the cell at c, or Empty when out of bounds.
func (g *Grid) Get(c core.Coord) Cell {
	if !g.InBounds(c) {
		return Empty
	}
	return g.Cells[g.index(c)]
}

// Set stores a cell at c. Out-of-bounds writes are ignored.
func (g *Grid) Set(c core.Coord, cell Cell) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = cell
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Count returns the number of cells that have every bit of f set.
func (g *Grid) Count(f Cell) int {
	n := 0
	for _, c := range g.Cells {
		if c&f == f {
			n++
		}
	}
	return n
}

// CountStored returns the number of crates resting on targets.
func (g *Grid) CountStored() int {
	return g.Count(Crate | Target)
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

// Rows renders the grid in level-file notation, one string per row, with the
// player marker drawn at p ('@' or '&' on a target).
func (g *Grid) Rows(p core.Coord) []string {
	rows := make([]string, g.H)
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		sb.Reset()
		for x := 0; x < g.W; x++ {
			c := g.Get(core.C(x, y))
			switch {
			case p.X == x && p.Y == y && c.IsTarget():
				sb.WriteByte('&')
			case p.X == x && p.Y == y:
				sb.WriteByte('@')
			default:
				sb.WriteString(c.String())
			}
		}
		rows[y] = sb.String()
	}
	return rows
}
