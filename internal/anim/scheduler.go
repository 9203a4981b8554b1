package anim

import (
	"sort"
	"time"
)

// TimerID identifies a scheduled callback.
type TimerID uint64

// Scheduler defers callbacks onto the game loop.
type Scheduler interface {
	// After arranges for fn to run once at least d has elapsed.
	After(d time.Duration, fn func()) TimerID
}

type timer struct {
	id  TimerID
	due time.Duration
	fn  func()
}

// TickScheduler is a Scheduler driven by the game loop. Its clock only
// moves when Advance is called, typically once per Update with the tick
// duration, so callbacks always run on the loop's goroutine.
type TickScheduler struct {
	now     time.Duration
	nextID  TimerID
	pending []*timer
}

// NewTickScheduler creates a scheduler with its clock at zero.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

// After schedules fn to run on the first Advance that brings the clock to
// now+d or later. Negative delays are treated as zero.
func (s *TickScheduler) After(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	s.nextID++
	t := &timer{id: s.nextID, due: s.now + d, fn: fn}

	// Keep pending ordered by due time, then by submission.
	i := sort.Search(len(s.pending), func(i int) bool {
		return s.pending[i].due > t.due
	})
	s.pending = append(s.pending, nil)
	copy(s.pending[i+1:], s.pending[i:])
	s.pending[i] = t
	return t.id
}

// Cancel removes a pending callback. It reports whether one was removed.
func (s *TickScheduler) Cancel(id TimerID) bool {
	for i, t := range s.pending {
		if t.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the clock forward by dt and runs every callback that has
// come due, returning how many ran. Callbacks scheduled while advancing
// wait for a later Advance, even with a zero delay.
func (s *TickScheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}
	limit := s.nextID
	ran := 0
	for {
		t := s.popDue(limit)
		if t == nil {
			return ran
		}
		if t.fn != nil {
			t.fn()
		}
		ran++
	}
}

func (s *TickScheduler) popDue(limit TimerID) *timer {
	for i, t := range s.pending {
		if t.due > s.now {
			return nil
		}
		if t.id <= limit {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return t
		}
	}
	return nil
}

// Now returns the scheduler's clock.
func (s *TickScheduler) Now() time.Duration {
	return s.now
}

// Len returns the number of pending callbacks.
func (s *TickScheduler) Len() int {
	return len(s.pending)
}
