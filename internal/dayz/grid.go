package dayz

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"chosenoffset.com/endofdayz/internal/world/grid"
)

var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrOccupied    = errors.New("position occupied")
	ErrEmpty       = errors.New("position empty")
)

// Grid stores entities by position.
type Grid struct {
	rows, cols int
	entities   map[grid.Position]*Entity
}

// NewGrid creates an empty rows x cols grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:     rows,
		cols:     cols,
		entities: make(map[grid.Position]*Entity),
	}
}

// Size returns the number of rows and columns.
func (g *Grid) Size() (rows, cols int) {
	return g.rows, g.cols
}

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p grid.Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Get returns the entity at p, or nil.
func (g *Grid) Get(p grid.Position) *Entity {
	return g.entities[p]
}

// Add places an entity on an empty, in-bounds cell.
func (g *Grid) Add(p grid.Position, e *Entity) error {
	if !g.InBounds(p) {
		return fmt.Errorf("add %v: %w", p, ErrOutOfBounds)
	}
	if _, ok := g.entities[p]; ok {
		return fmt.Errorf("add %v: %w", p, ErrOccupied)
	}
	g.entities[p] = e
	return nil
}

// Remove takes the entity at p off the grid and returns it, or nil.
func (g *Grid) Remove(p grid.Position) *Entity {
	e := g.entities[p]
	delete(g.entities, p)
	return e
}

// Move relocates the entity at from to the empty cell to.
func (g *Grid) Move(from, to grid.Position) error {
	e, ok := g.entities[from]
	if !ok {
		return fmt.Errorf("move %v: %w", from, ErrEmpty)
	}
	if !g.InBounds(to) {
		return fmt.Errorf("move to %v: %w", to, ErrOutOfBounds)
	}
	if _, ok := g.entities[to]; ok {
		return fmt.Errorf("move to %v: %w", to, ErrOccupied)
	}
	delete(g.entities, from)
	g.entities[to] = e
	return nil
}

// FindPlayer returns the player's position.
func (g *Grid) FindPlayer() (grid.Position, bool) {
	for p, e := range g.entities {
		if e.Kind == KindPlayer {
			return p, true
		}
	}
	return grid.Position{}, false
}

// Positions returns every occupied position in row-major order.
func (g *Grid) Positions() []grid.Position {
	positions := make([]grid.Position, 0, len(g.entities))
	for p := range g.entities {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Row != positions[j].Row {
			return positions[i].Row < positions[j].Row
		}
		return positions[i].Col < positions[j].Col
	})
	return positions
}

// Serialize maps each occupied position to its kind.
func (g *Grid) Serialize() map[grid.Position]Kind {
	out := make(map[grid.Position]Kind, len(g.entities))
	for p, e := range g.entities {
		out[p] = e.Kind
	}
	return out
}

// FirstInDirection walks from start by offset and returns the first
// entity met before leaving the grid.
func (g *Grid) FirstInDirection(start, offset grid.Position) (grid.Position, *Entity, bool) {
	if offset == (grid.Position{}) {
		return grid.Position{}, nil, false
	}
	for p := start.Add(offset); g.InBounds(p); p = p.Add(offset) {
		if e := g.entities[p]; e != nil {
			return p, e, true
		}
	}
	return grid.Position{}, nil, false
}

// String renders the grid in map file format, '.' for empty cells.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if e := g.entities[grid.Pos(r, c)]; e != nil {
				sb.WriteRune(rune(e.Kind))
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// gridFromSerialized rebuilds a grid from Serialize output.
func gridFromSerialized(rows, cols int, cells map[grid.Position]Kind) *Grid {
	g := NewGrid(rows, cols)
	for p, k := range cells {
		g.entities[p] = NewEntity(k)
	}
	return g
}
