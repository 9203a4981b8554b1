package dayz

import (
	"maps"

	"chosenoffset.com/endofdayz/internal/world/grid"
)

// DefaultMaxStates is how many steps the time machine can rewind.
const DefaultMaxStates = 5

// Snapshot is an immutable copy of the world at the start of a step.
type Snapshot struct {
	Rows, Cols int
	Cells      map[grid.Position]Kind
	Inventory  []Item
	Steps      int
	Moves      int
}

// Restore builds a transient world from the snapshot, for drawing only.
// It has no history and never steps.
func (s Snapshot) Restore() *World {
	w := &World{}
	w.ApplyState(s)
	return w
}

// TimeMachine keeps the most recent snapshots, oldest first.
type TimeMachine struct {
	maxStates int
	states    []Snapshot
}

// NewTimeMachine creates a history holding at most maxStates snapshots.
func NewTimeMachine(maxStates int) *TimeMachine {
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}
	return &TimeMachine{maxStates: maxStates}
}

// MaxStates returns the history capacity.
func (tm *TimeMachine) MaxStates() int {
	return tm.maxStates
}

// Record appends a snapshot, dropping the oldest beyond capacity.
func (tm *TimeMachine) Record(s Snapshot) {
	tm.states = append(tm.states, s)
	if over := len(tm.states) - tm.maxStates; over > 0 {
		tm.states = append(tm.states[:0], tm.states[over:]...)
	}
}

// Snapshots returns the recorded states, oldest first.
func (tm *TimeMachine) Snapshots() []Snapshot {
	out := make([]Snapshot, len(tm.states))
	copy(out, tm.states)
	return out
}

// Len returns the number of recorded states.
func (tm *TimeMachine) Len() int {
	return len(tm.states)
}

// Reset forgets every recorded state.
func (tm *TimeMachine) Reset() {
	tm.states = nil
}

// Use rewinds the world to the oldest recorded state and consumes the
// time machine from the player's inventory. It reports false when there is
// nothing to rewind to.
func (tm *TimeMachine) Use(w *World) bool {
	if len(tm.states) == 0 {
		return false
	}
	w.ApplyState(tm.states[0])
	if item := w.inventory.Find(KindTimeMachine); item != nil {
		w.inventory.Remove(item)
	}
	w.lost = false
	w.won = false
	tm.Reset()
	return true
}

func (s Snapshot) clone() Snapshot {
	out := s
	out.Cells = maps.Clone(s.Cells)
	out.Inventory = append([]Item(nil), s.Inventory...)
	return out
}
