package puzzle

import "github.com/vovakirdan/tui-crates/internal/core"

// MoveResult reports the outcome of TryMove.
type MoveResult struct {
	Accepted bool // the player moved
	Pushed   bool // a crate was displaced
	Solved   bool // the push left every crate on a target
}

// Recorder receives the undo entry of an accepted move before the state is
// mutated.
type Recorder interface {
	Push(e Entry)
}

// TryMove applies one step in direction d.
//
// A destination off the grid is rejected. A destination holding a crate is a
// push, legal only when the cell beyond the crate passes CanEnter (a wall,
// another crate and the grid edge all block alike). Any other destination is
// a step, legal when CanEnter holds. Rejected moves change nothing and record
// nothing. crates is the level's crate count used for the solved check.
func (s *State) TryMove(d core.Dir, crates int, rec Recorder) MoveResult {
	dx, dy := d.Delta()
	dest := s.Player.Add(dx, dy)
	if !s.Grid.InBounds(dest) {
		return MoveResult{}
	}

	var res MoveResult
	cell := s.Grid.Get(dest)
	if cell.IsCrate() {
		beyond := dest.Add(dx, dy)
		if !s.CanEnter(beyond) {
			return MoveResult{}
		}
		if rec != nil {
			rec.Push(FullEntry{Counters: s.Counters, Grid: s.Grid.Clone()})
		}
		s.Pushes++

		s.Grid.Set(dest, cell.Without(Crate))
		if cell.IsTarget() {
			s.Stored--
		}
		far := s.Grid.Get(beyond)
		s.Grid.Set(beyond, far.With(Crate))
		if far.IsTarget() {
			s.Stored++
		}

		res.Pushed = true
		res.Solved = s.Stored == crates
	} else {
		if !s.CanEnter(dest) {
			return MoveResult{}
		}
		if rec != nil {
			rec.Push(LightEntry{Counters: s.Counters})
		}
	}

	s.Moves++
	s.Player = dest
	s.Facing = core.Facing(s.Facing, dx, dy)
	res.Accepted = true
	return res
}
