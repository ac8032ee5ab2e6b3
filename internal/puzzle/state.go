package puzzle

import "github.com/vovakirdan/tui-crates/internal/core"

// Counters are the scalar fields of a State, copied by every undo entry.
type Counters struct {
	Player  core.Coord
	Facing  core.Dir
	Moves   int
	Pushes  int
	Stored  int
	Elapsed uint32 // whole seconds
}

// State is the live, mutable puzzle for the level being played.
// It is created from a level template on every level entry or restart.
type State struct {
	Grid *Grid
	Counters

	// Undos counts undos performed on this level since entry. Neither an
	// undo nor a snapshot load rewinds it.
	Undos int
}

// NewState builds a fresh state. The grid is cloned so the template stays
// untouched.
func NewState(grid *Grid, start core.Coord, stored int) *State {
	return &State{
		Grid: grid.Clone(),
		Counters: Counters{
			Player: start,
			Facing: core.DirDown,
			Stored: stored,
		},
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Grid = s.Grid.Clone()
	return &c
}

// Equal compares every field including the grid contents.
func (s *State) Equal(other *State) bool {
	if other == nil {
		return false
	}
	return s.Counters == other.Counters && s.Undos == other.Undos && s.Grid.Equal(other.Grid)
}

// CanEnter reports whether (x, y) is on the grid and free: empty or a bare
// target. Walls and crates block.
func (s *State) CanEnter(c core.Coord) bool {
	if !s.Grid.InBounds(c) {
		return false
	}
	return s.Grid.Get(c).Walkable()
}

// RecountStored counts stored crates from scratch. The incremental Stored
// counter must always equal it.
func (s *State) RecountStored() int {
	return s.Grid.CountStored()
}
