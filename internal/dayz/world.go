package dayz

import (
	"math/rand/v2"

	"chosenoffset.com/endofdayz/internal/world/grid"
)

// directions lists the four moves in the order zombies try them.
var directions = []grid.Position{grid.OffsetUp, grid.OffsetLeft, grid.OffsetDown, grid.OffsetRight}

// World is a running game: the grid, the player's inventory, the step and
// move counters and the time machine history.
type World struct {
	grid      *Grid
	inventory *Inventory
	history   *TimeMachine
	rng       *rand.Rand

	initial Snapshot
	steps   int
	moves   int
	won     bool
	lost    bool
}

// Options tunes a new world.
type Options struct {
	// MaxStates is the time machine capacity. Zero means DefaultMaxStates.
	MaxStates int

	// Seed drives zombie wandering.
	Seed uint64
}

// NewWorld starts a game on the given grid. The grid must hold a player.
func NewWorld(g *Grid, opts Options) (*World, error) {
	if _, ok := g.FindPlayer(); !ok {
		return nil, ErrNoPlayer
	}
	w := &World{
		grid:      g,
		inventory: NewInventory(),
		history:   NewTimeMachine(opts.MaxStates),
		rng:       rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
	}
	w.initial = w.Snapshot()
	return w, nil
}

// Grid returns the live grid.
func (w *World) Grid() *Grid { return w.grid }

// Inventory returns the player's inventory.
func (w *World) Inventory() *Inventory { return w.inventory }

// Steps returns how many steps have run.
func (w *World) Steps() int { return w.steps }

// Moves returns how many successful player moves have been made.
func (w *World) Moves() int { return w.moves }

// HasWon reports whether the player reached the hospital.
func (w *World) HasWon() bool { return w.won }

// HasLost reports whether a zombie caught the player.
func (w *World) HasLost() bool { return w.lost }

// TimeMachine returns the history when the player carries a time machine,
// or nil.
func (w *World) TimeMachine() *TimeMachine {
	if w.history == nil || !w.inventory.Contains(KindTimeMachine) {
		return nil
	}
	return w.history
}

// DirectionToOffset maps a WASD key to a grid offset.
func (w *World) DirectionToOffset(key string) (grid.Position, bool) {
	switch key {
	case "W", "w":
		return grid.OffsetUp, true
	case "A", "a":
		return grid.OffsetLeft, true
	case "S", "s":
		return grid.OffsetDown, true
	case "D", "d":
		return grid.OffsetRight, true
	}
	return grid.Position{}, false
}

// MovePlayer moves the player by offset. Pickups go into the inventory and
// reaching the hospital wins. It reports whether the player moved.
func (w *World) MovePlayer(offset grid.Position) bool {
	if w.won || w.lost {
		return false
	}
	from, ok := w.grid.FindPlayer()
	if !ok {
		return false
	}
	to := from.Add(offset)
	if !w.grid.InBounds(to) {
		return false
	}

	if target := w.grid.Get(to); target != nil {
		switch {
		case target.Kind.IsPickup():
			w.grid.Remove(to)
			w.inventory.Add(NewItem(target.Kind))
		case target.Kind == KindHospital:
			w.grid.Remove(to)
			w.won = true
		default:
			return false
		}
	}

	if err := w.grid.Move(from, to); err != nil {
		return false
	}
	w.moves++
	return true
}

// Step records the current state, ages the inventory and moves every
// zombie once. Frozen zombies skip this step.
func (w *World) Step() {
	if w.won || w.lost {
		return
	}
	w.history.Record(w.Snapshot())
	w.steps++
	w.inventory.Step()

	moved := make(map[*Entity]bool)
	for _, p := range w.grid.Positions() {
		e := w.grid.Get(p)
		if e == nil || !e.Kind.IsZombie() || moved[e] {
			continue
		}
		moved[e] = true
		if e.thaw() {
			continue
		}
		w.stepZombie(p, e)
		if w.lost {
			return
		}
	}
}

func (w *World) stepZombie(from grid.Position, e *Entity) {
	for _, offset := range w.zombieOffsets(from, e) {
		to := from.Add(offset)
		if !w.grid.InBounds(to) {
			continue
		}
		target := w.grid.Get(to)
		if target == nil {
			w.grid.Move(from, to)
			return
		}
		if target.Kind == KindPlayer {
			if w.inventory.HasActive(KindGarlic) {
				w.grid.Remove(from)
			} else {
				w.lost = true
			}
			return
		}
	}
}

// zombieOffsets orders the moves a zombie tries: shuffled for a wandering
// zombie, closest to the player first for a tracking one.
func (w *World) zombieOffsets(from grid.Position, e *Entity) []grid.Position {
	offsets := make([]grid.Position, len(directions))
	copy(offsets, directions)

	player, ok := w.grid.FindPlayer()
	if e.Kind != KindTrackingZombie || !ok {
		w.rng.Shuffle(len(offsets), func(i, j int) {
			offsets[i], offsets[j] = offsets[j], offsets[i]
		})
		return offsets
	}

	dist := func(o grid.Position) int {
		p := from.Add(o)
		return abs(p.Row-player.Row) + abs(p.Col-player.Col)
	}
	// insertion sort keeps the fixed preference among equal distances
	for i := 1; i < len(offsets); i++ {
		for j := i; j > 0 && dist(offsets[j]) < dist(offsets[j-1]); j-- {
			offsets[j], offsets[j-1] = offsets[j-1], offsets[j]
		}
	}
	return offsets
}

// Snapshot captures the current state.
func (w *World) Snapshot() Snapshot {
	rows, cols := w.grid.Size()
	s := Snapshot{
		Rows:  rows,
		Cols:  cols,
		Cells: w.grid.Serialize(),
		Steps: w.steps,
		Moves: w.moves,
	}
	for _, item := range w.inventory.Items() {
		s.Inventory = append(s.Inventory, *item)
	}
	return s
}

// Restart returns to the state the world was created with.
func (w *World) Restart() {
	w.ApplyState(w.initial)
	w.won = false
	w.lost = false
	w.history.Reset()
}

// ApplyState replaces the grid, inventory items and counters with the
// snapshot. The Inventory itself and the history are kept.
func (w *World) ApplyState(s Snapshot) {
	s = s.clone()
	w.grid = gridFromSerialized(s.Rows, s.Cols, s.Cells)
	if w.inventory == nil {
		w.inventory = NewInventory()
	}
	items := make([]*Item, len(s.Inventory))
	for i := range s.Inventory {
		items[i] = &s.Inventory[i]
	}
	w.inventory.items = items
	w.inventory.notifyChange()
	w.steps = s.Steps
	w.moves = s.Moves
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
