// Package anim sequences short visual effects against a drawable surface.
//
// An Animation is stepped one frame at a time by a Manager. Each frame is a
// separate callback handed to a Scheduler, so the game loop keeps running
// between frames. Two effects exist: Projectile, which flies a sprite in a
// straight line between two cells, and Replay, which redraws a list of
// recorded frames from newest to oldest.
package anim

import (
	"errors"
	"time"
)

// DefaultFramerate is the number of frames per second used by animations
// that do not override Interval.
const DefaultFramerate = 20

// DefaultInterval is the delay between frames at DefaultFramerate.
const DefaultInterval = time.Second / DefaultFramerate

var (
	// ErrSamePosition is returned when a directional effect starts and ends
	// on the same cell, leaving no direction to travel in.
	ErrSamePosition = errors.New("anim: start and target are the same cell")

	// ErrNoFrames is returned when a replay is built from an empty list.
	ErrNoFrames = errors.New("anim: replay has no frames")

	// ErrNilDraw is returned when a replay is built without a draw function.
	ErrNilDraw = errors.New("anim: replay draw function is nil")

	// ErrAlreadyPlayed is returned when an animation is handed to a manager
	// a second time.
	ErrAlreadyPlayed = errors.New("anim: animation already played")

	// ErrNilAnimation is returned when Play is called with nil.
	ErrNilAnimation = errors.New("anim: nil animation")
)

// SpriteID identifies a sprite drawn on a Surface.
type SpriteID uint64

// Surface is what animations draw on.
type Surface interface {
	// DrawSprite draws the named sprite centred on (x, y), rotated
	// counter-clockwise by angle degrees, and returns a handle for Erase.
	DrawSprite(sprite string, x, y float64, angle int) SpriteID

	// Erase removes a previously drawn sprite. Unknown ids are ignored.
	Erase(id SpriteID)
}

// Animation is a single playable effect. The set of implementations is
// closed: *Projectile and *Replay.
type Animation interface {
	// Interval is the delay between successive Step calls.
	Interval() time.Duration

	// Step advances one frame and draws it. It returns false once the
	// effect is complete; Step is not called again after that.
	Step(s Surface) bool

	// Start runs once before the first Step.
	Start(s Surface)

	// Finish runs once after Step has returned false.
	Finish(s Surface)

	lifecycle() *Hooks
}

// Hooks carries the start and finish callbacks of an animation and tracks
// where it is in its lifecycle. It is embedded by every animation.
type Hooks struct {
	onStart  func()
	onFinish func()

	started  bool
	finished bool
}

// OnStart registers the callback fired by Start. Only the last
// registration is kept.
func (h *Hooks) OnStart(fn func()) {
	h.onStart = fn
}

// OnFinish registers the callback fired by Finish. Only the last
// registration is kept.
func (h *Hooks) OnFinish(fn func()) {
	h.onFinish = fn
}

// Start fires the start hook.
func (h *Hooks) Start(Surface) {
	h.started = true
	if h.onStart != nil {
		h.onStart()
	}
}

// Finish fires the finish hook.
func (h *Hooks) Finish(Surface) {
	h.finished = true
	if h.onFinish != nil {
		h.onFinish()
	}
}

// Started reports whether Start has run.
func (h *Hooks) Started() bool { return h.started }

// Finished reports whether Finish has run.
func (h *Hooks) Finished() bool { return h.finished }

func (h *Hooks) lifecycle() *Hooks { return h }
