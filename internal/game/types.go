package game

import (
	"time"

	"chosenoffset.com/endofdayz/internal/render"
)

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft time.Duration // Time remaining
	MaxTime  time.Duration // Initial duration
}

// StatusView shows the elapsed time and move count under the map.
type StatusView interface {
	SetTime(elapsed time.Duration)
	SetMoves(n int)
	Update()
	Draw(screen render.Image)
}

// ConfigWatcher reports changes to the config file.
type ConfigWatcher interface {
	Changed() (bool, error)
}
