package anim

import "time"

// DefaultReplayBudget is the total playback time of a replay, however
// many frames it has.
const DefaultReplayBudget = time.Second

// minReplayInterval keeps very long replays from scheduling zero delays.
const minReplayInterval = time.Millisecond

// Replay redraws recorded frames from the newest (last) to the oldest
// (first), one per step.
type Replay[T any] struct {
	Hooks

	frames   []T
	cursor   int
	draw     func(T)
	interval time.Duration
}

// NewReplay creates a replay over frames that fits the whole playback into
// budget. A non-positive budget uses DefaultReplayBudget. Empty frames are
// rejected with ErrNoFrames.
func NewReplay[T any](frames []T, budget time.Duration, draw func(T)) (*Replay[T], error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if draw == nil {
		return nil, ErrNilDraw
	}
	if budget <= 0 {
		budget = DefaultReplayBudget
	}

	interval := budget / time.Duration(len(frames))
	if interval < minReplayInterval {
		interval = minReplayInterval
	}

	return &Replay[T]{
		frames:   frames,
		cursor:   len(frames) - 1,
		draw:     draw,
		interval: interval,
	}, nil
}

// Interval returns budget divided by the number of frames.
func (r *Replay[T]) Interval() time.Duration { return r.interval }

// Remaining returns how many frames are left to draw.
func (r *Replay[T]) Remaining() int { return r.cursor + 1 }

// Step draws the frame under the cursor and moves the cursor back.
func (r *Replay[T]) Step(Surface) bool {
	if r.cursor < 0 {
		return false
	}
	r.draw(r.frames[r.cursor])
	r.cursor--
	return true
}
