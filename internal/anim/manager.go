package anim

// Manager plays animations on one surface. It holds no animation state:
// each animation drives itself to completion through scheduled steps.
// Manager does not queue or serialise animations; starting a second one
// while another is in flight interleaves their drawing.
type Manager struct {
	surface   Surface
	scheduler Scheduler
}

// NewManager creates a manager for the given surface.
func NewManager(surface Surface, scheduler Scheduler) *Manager {
	return &Manager{
		surface:   surface,
		scheduler: scheduler,
	}
}

// Play starts an animation and returns immediately. The first frame is
// drawn before Play returns; later frames run from the scheduler. An
// animation can only be played once.
func (m *Manager) Play(a Animation) error {
	if a == nil {
		return ErrNilAnimation
	}
	if a.lifecycle().Started() {
		return ErrAlreadyPlayed
	}
	a.Start(m.surface)
	m.step(a)
	return nil
}

func (m *Manager) step(a Animation) {
	if !a.Step(m.surface) {
		a.Finish(m.surface)
		return
	}
	m.scheduler.After(a.Interval(), func() {
		m.step(a)
	})
}
