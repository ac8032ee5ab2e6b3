// Package puzzle implements the box-pushing rules: the cell model, the live
// puzzle state, the move evaluator and the undo/snapshot history.
// It depends only on internal/core.
package puzzle

// Cell is a bit set over the flags Target, Crate and Wall.
// A cell can be Crate and Target at once (a stored crate); the level parser
// never combines Wall with anything else.
type Cell uint8

const (
	Empty  Cell = 0
	Target Cell = 1 << 0
	Crate  Cell = 1 << 1
	Wall   Cell = 1 << 2
)

// IsEmpty reports whether no flag is set.
func (c Cell) IsEmpty() bool { return c == Empty }

// IsWall reports whether the cell is a wall.
func (c Cell) IsWall() bool { return c&Wall != 0 }

// IsCrate reports whether a crate occupies the cell.
func (c Cell) IsCrate() bool { return c&Crate != 0 }

// IsTarget reports whether the cell is a target.
func (c Cell) IsTarget() bool { return c&Target != 0 }

// IsStored reports whether the cell holds a crate on a target.
func (c Cell) IsStored() bool { return c&(Crate|Target) == Crate|Target }

// Walkable reports whether a player or a pushed crate may enter the cell:
// it is either empty or a bare target.
func (c Cell) Walkable() bool { return c == Empty || c == Target }

// With returns the cell with flag f set.
func (c Cell) With(f Cell) Cell { return c | f }

// Without returns the cell with flag f cleared.
func (c Cell) Without(f Cell) Cell { return c &^ f }

// String returns the level-file character for the cell (player excluded).
func (c Cell) String() string {
	switch {
	case c.IsWall():
		return "#"
	case c.IsStored():
		return "*"
	case c.IsCrate():
		return "$"
	case c.IsTarget():
		return "."
	default:
		return " "
	}
}
