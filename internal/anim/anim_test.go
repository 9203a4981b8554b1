package anim

import "time"

// drawCall records one DrawSprite on a recordingSurface.
type drawCall struct {
	id     SpriteID
	sprite string
	x, y   float64
	angle  int
}

// recordingSurface keeps every draw and erase, plus the sprites still live.
type recordingSurface struct {
	nextID SpriteID
	draws  []drawCall
	erased []SpriteID
	live   map[SpriteID]drawCall
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{live: make(map[SpriteID]drawCall)}
}

func (s *recordingSurface) DrawSprite(sprite string, x, y float64, angle int) SpriteID {
	s.nextID++
	call := drawCall{id: s.nextID, sprite: sprite, x: x, y: y, angle: angle}
	s.draws = append(s.draws, call)
	s.live[call.id] = call
	return call.id
}

func (s *recordingSurface) Erase(id SpriteID) {
	s.erased = append(s.erased, id)
	delete(s.live, id)
}

// immediateScheduler runs callbacks straight away, one after another, and
// remembers the delays it was asked for.
type immediateScheduler struct {
	delays  []time.Duration
	queue   []func()
	running bool
}

func (s *immediateScheduler) After(d time.Duration, fn func()) TimerID {
	s.delays = append(s.delays, d)
	s.queue = append(s.queue, fn)
	id := TimerID(len(s.delays))
	if s.running {
		return id
	}
	s.running = true
	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		next()
	}
	s.running = false
	return id
}

// scriptedAnimation runs a fixed number of frames and logs every call.
type scriptedAnimation struct {
	Hooks

	frames   int
	interval time.Duration
	log      *[]string
}

func (a *scriptedAnimation) Interval() time.Duration { return a.interval }

func (a *scriptedAnimation) Step(Surface) bool {
	if a.frames == 0 {
		*a.log = append(*a.log, "step:false")
		return false
	}
	a.frames--
	*a.log = append(*a.log, "step:true")
	return true
}

func (a *scriptedAnimation) Start(s Surface) {
	*a.log = append(*a.log, "start")
	a.Hooks.Start(s)
}

func (a *scriptedAnimation) Finish(s Surface) {
	*a.log = append(*a.log, "finish")
	a.Hooks.Finish(s)
}
