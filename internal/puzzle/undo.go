package puzzle

// Entry is one undo record. It is either a LightEntry (the move left the
// grid alone) or a FullEntry (the move pushed a crate and the grid must be
// restored as well).
type Entry interface {
	restore(s *State)
	clone() Entry
}

// LightEntry records a plain step: counters only, no grid.
type LightEntry struct {
	Counters Counters
}

func (e LightEntry) restore(s *State) {
	// The grid did not change, keep the live one.
	s.Counters = e.Counters
}

func (e LightEntry) clone() Entry { return e }

// FullEntry records a push: counters plus the grid before the push.
type FullEntry struct {
	Counters Counters
	Grid     *Grid
}

func (e FullEntry) restore(s *State) {
	s.Counters = e.Counters
	s.Grid = e.Grid
}

func (e FullEntry) clone() Entry {
	return FullEntry{Counters: e.Counters, Grid: e.Grid.Clone()}
}

// Snapshot is the one manually saved checkpoint: a state copy plus the undo
// stack as it was at save time.
type Snapshot struct {
	State *State
	Undo  []Entry
}

// History owns the undo stack and the single snapshot slot.
// The two are independent: saving a snapshot leaves the undo stack alone,
// loading one replaces the stack with the snapshot's own copy.
type History struct {
	undo     []Entry
	snapshot *Snapshot
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Push records an undo entry. Implements Recorder.
func (h *History) Push(e Entry) {
	h.undo = append(h.undo, e)
}

// Len returns the depth of the undo stack.
func (h *History) Len() int {
	return len(h.undo)
}

// Pop reverts s to the most recent entry and bumps s.Undos.
// It returns false, changing nothing, when the stack is empty.
func (h *History) Pop(s *State) bool {
	n := len(h.undo)
	if n == 0 {
		return false
	}
	e := h.undo[n-1]
	h.undo[n-1] = nil
	h.undo = h.undo[:n-1]

	undos := s.Undos
	e.restore(s)
	s.Undos = undos + 1
	return true
}

// Reset drops the undo stack. The snapshot slot is kept.
func (h *History) Reset() {
	h.undo = nil
}

// HasSnapshot reports whether the slot is populated.
func (h *History) HasSnapshot() bool {
	return h.snapshot != nil
}

// SaveSnapshot stores s and the current undo stack in the slot, replacing
// whatever was there.
func (h *History) SaveSnapshot(s *State) {
	h.snapshot = &Snapshot{
		State: s.Clone(),
		Undo:  cloneEntries(h.undo),
	}
}

// LoadSnapshot overwrites s and the undo stack with the slot contents, then
// saves the slot again from the restored state so it can be loaded any
// number of times. s.Undos keeps its live value. It returns false when the
// slot is empty.
func (h *History) LoadSnapshot(s *State) bool {
	if h.snapshot == nil {
		return false
	}
	undos := s.Undos
	*s = *h.snapshot.State.Clone()
	s.Undos = undos
	h.undo = cloneEntries(h.snapshot.Undo)
	h.SaveSnapshot(s)
	return true
}

// ClearSnapshot empties the slot.
func (h *History) ClearSnapshot() {
	h.snapshot = nil
}

func cloneEntries(src []Entry) []Entry {
	if len(src) == 0 {
		return nil
	}
	out := make([]Entry, len(src))
	for i, e := range src {
		out[i] = e.clone()
	}
	return out
}
