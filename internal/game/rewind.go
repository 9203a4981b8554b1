package game

import (
	"log"

	"chosenoffset.com/endofdayz/internal/anim"
	"chosenoffset.com/endofdayz/internal/dayz"
)

// reverseTime replays the time machine's history newest to oldest, then
// applies the oldest state and resumes. It reports false, leaving the game
// untouched, when there is nothing to replay.
func (g *Game) reverseTime(tm *dayz.TimeMachine) bool {
	gen := g.generation
	replay, err := anim.NewReplay(tm.Snapshots(), g.Config.Animation.ReplayBudget, func(s dayz.Snapshot) {
		if gen == g.generation {
			g.redraw(s.Restore())
		}
	})
	if err != nil {
		log.Printf("Time machine declined: %v", err)
		return false
	}

	replay.OnStart(func() {
		g.pause()
		g.rewinding = true
	})
	replay.OnFinish(func() {
		if gen != g.generation {
			return
		}
		g.rewinding = false
		g.useTimeMachine(tm)
	})

	if err := g.Animator.Play(replay); err != nil {
		log.Printf("Warning: Failed to play rewind: %v", err)
		return false
	}
	return true
}

func (g *Game) useTimeMachine(tm *dayz.TimeMachine) {
	if !tm.Use(g.World) {
		g.redraw(g.World)
		g.lose()
		return
	}
	g.redraw(g.World)
	g.ShowMessage("Time rewound!")
	g.resume()
}
