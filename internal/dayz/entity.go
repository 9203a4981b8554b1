// Package dayz holds the game state for EndOfDayz: a rectangular grid of
// entities, the player's inventory and the time machine's history.
// Every method runs on the game goroutine; nothing here is safe for
// concurrent use.
package dayz

import "fmt"

// Kind identifies what occupies a cell. Values are the map file characters.
type Kind rune

const (
	KindPlayer         Kind = 'P'
	KindHospital       Kind = 'H'
	KindZombie         Kind = 'Z'
	KindTrackingZombie Kind = 'T'
	KindGarlic         Kind = 'G'
	KindCrossbow       Kind = 'C'
	KindTimeMachine    Kind = 'M'
)

// Item lifetimes in steps once activated.
const (
	GarlicLifetime   = 10
	CrossbowLifetime = 5
)

var kindNames = map[Kind]string{
	KindPlayer:         "player",
	KindHospital:       "hospital",
	KindZombie:         "zombie",
	KindTrackingZombie: "tracking_zombie",
	KindGarlic:         "garlic",
	KindCrossbow:       "crossbow",
	KindTimeMachine:    "time_machine",
}

// ParseKind converts a map character to a Kind.
func ParseKind(r rune) (Kind, error) {
	k := Kind(r)
	if _, ok := kindNames[k]; !ok {
		return 0, fmt.Errorf("unknown entity %q", r)
	}
	return k, nil
}

// Sprite returns the sprite name used to draw this kind.
func (k Kind) Sprite() string {
	return kindNames[k]
}

// String returns the map character.
func (k Kind) String() string {
	return string(rune(k))
}

// IsZombie reports whether the kind moves on its own and hunts the player.
func (k Kind) IsZombie() bool {
	return k == KindZombie || k == KindTrackingZombie
}

// IsPickup reports whether the player can collect the kind.
func (k Kind) IsPickup() bool {
	return k == KindGarlic || k == KindCrossbow || k == KindTimeMachine
}

// Entity is a single occupant of the grid.
type Entity struct {
	Kind Kind

	// skip the next step
	frozen bool
}

// NewEntity creates an entity of the given kind.
func NewEntity(kind Kind) *Entity {
	return &Entity{Kind: kind}
}

// Freeze cancels the entity's next step.
func (e *Entity) Freeze() {
	e.frozen = true
}

// Frozen reports whether the next step will be skipped.
func (e *Entity) Frozen() bool {
	return e.frozen
}

// thaw clears the freeze and reports whether it was set.
func (e *Entity) thaw() bool {
	was := e.frozen
	e.frozen = false
	return was
}
