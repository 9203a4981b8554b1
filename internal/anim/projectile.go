package anim

import (
	"fmt"
	"time"

	"chosenoffset.com/endofdayz/internal/world/grid"
)

// Direction is one of the four axis-aligned travel directions.
type Direction int

const (
	DirRight Direction = iota
	DirUp
	DirLeft
	DirDown
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Vector returns the unit pixel vector for d. Screen y grows downward.
func (d Direction) Vector() (dx, dy float64) {
	v := directionVectors[d]
	return v[0], v[1]
}

// Angle returns the sprite rotation for d in degrees, counter-clockwise
// from a sprite that points right.
func (d Direction) Angle() int {
	return directionAngles[d]
}

var directionVectors = map[Direction][2]float64{
	DirRight: {1, 0},
	DirUp:    {0, -1},
	DirLeft:  {-1, 0},
	DirDown:  {0, 1},
}

var directionAngles = map[Direction]int{
	DirUp:    90,
	DirDown:  270,
	DirLeft:  180,
	DirRight: 0,
}

// DirectionBetween returns the travel direction from one cell to another.
// A row difference wins over a column difference.
func DirectionBetween(from, to grid.Position) (Direction, error) {
	switch {
	case from.Row < to.Row:
		return DirDown, nil
	case from.Row > to.Row:
		return DirUp, nil
	case from.Col < to.Col:
		return DirRight, nil
	case from.Col > to.Col:
		return DirLeft, nil
	default:
		return 0, ErrSamePosition
	}
}

// Layout locates cell centres in pixel space. grid.Geometry implements it.
type Layout interface {
	Center(p grid.Position) (x, y float64)
}

// Projectile defaults.
const (
	DefaultProjectileSprite   = "arrow"
	DefaultProjectileStep     = 25.0
	DefaultProjectileInterval = time.Second / 10
)

// ProjectileConfig tunes a projectile. Zero fields take the defaults.
type ProjectileConfig struct {
	Sprite   string
	StepSize float64
	Interval time.Duration
}

// Projectile flies a sprite in a straight line from the centre of one
// cell to the centre of another.
type Projectile struct {
	Hooks

	sprite   string
	step     float64
	interval time.Duration

	dir            Direction
	dx, dy         float64
	x, y           float64
	targetX        float64
	targetY        float64
	drawn          SpriteID
	hasDrawnSprite bool
}

// NewProjectile creates a projectile from start to target. It returns
// ErrSamePosition when both cells are equal.
func NewProjectile(layout Layout, start, target grid.Position, cfg ProjectileConfig) (*Projectile, error) {
	dir, err := DirectionBetween(start, target)
	if err != nil {
		return nil, fmt.Errorf("projectile %v -> %v: %w", start, target, err)
	}

	if cfg.Sprite == "" {
		cfg.Sprite = DefaultProjectileSprite
	}
	if cfg.StepSize <= 0 {
		cfg.StepSize = DefaultProjectileStep
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultProjectileInterval
	}

	p := &Projectile{
		sprite:   cfg.Sprite,
		step:     cfg.StepSize,
		interval: cfg.Interval,
		dir:      dir,
	}
	p.dx, p.dy = dir.Vector()
	p.x, p.y = layout.Center(start)
	p.targetX, p.targetY = layout.Center(target)
	return p, nil
}

// Direction returns the direction of travel.
func (p *Projectile) Direction() Direction { return p.dir }

// Position returns the current pixel position.
func (p *Projectile) Position() (x, y float64) { return p.x, p.y }

// Interval returns the delay between frames.
func (p *Projectile) Interval() time.Duration { return p.interval }

// Step draws the sprite at its current position and moves it one step
// towards the target. It returns false without drawing once the sprite
// has reached or passed the target.
func (p *Projectile) Step(s Surface) bool {
	if p.passedTarget() {
		return false
	}
	p.draw(s)
	p.x += p.step * p.dx
	p.y += p.step * p.dy
	return true
}

// Finish erases the last drawn sprite and fires the finish hook.
func (p *Projectile) Finish(s Surface) {
	p.clear(s)
	p.Hooks.Finish(s)
}

// passedTarget measures the remaining distance to the target along the
// direction of travel. Directions are axis-aligned, so the off-axis term
// is always zero.
func (p *Projectile) passedTarget() bool {
	remaining := (p.targetX-p.x)*p.dx + (p.targetY-p.y)*p.dy
	return remaining <= 0
}

func (p *Projectile) draw(s Surface) {
	p.clear(s)
	p.drawn = s.DrawSprite(p.sprite, p.x, p.y, p.dir.Angle())
	p.hasDrawnSprite = true
}

func (p *Projectile) clear(s Surface) {
	if !p.hasDrawnSprite {
		return
	}
	s.Erase(p.drawn)
	p.hasDrawnSprite = false
}
