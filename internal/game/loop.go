package game

import (
	"fmt"
	"log"

	"chosenoffset.com/endofdayz/internal/ui/status"
)

// resume schedules the next world step.
func (g *Game) resume() {
	g.running = true
	if g.stepPending {
		return
	}
	g.stepTimer = g.Clock.After(g.Config.Timing.StepInterval, g.step)
	g.stepPending = true
}

// pause cancels the pending world step.
func (g *Game) pause() {
	if g.stepPending {
		g.Clock.Cancel(g.stepTimer)
		g.stepPending = false
	}
	g.running = false
}

// step advances the world once and schedules the next step, unless the
// game ended.
func (g *Game) step() {
	g.stepPending = false
	if !g.running {
		return
	}

	g.World.Step()
	g.redraw(g.World)

	if g.World.HasLost() {
		g.handleLoss()
		return
	}
	g.resume()
}

// handleLoss rewinds time when the player carries a time machine and ends
// the game otherwise.
func (g *Game) handleLoss() {
	if tm := g.World.TimeMachine(); tm != nil && g.reverseTime(tm) {
		return
	}
	g.lose()
}

func (g *Game) lose() {
	g.pause()
	g.over = true
	g.Result = "You lose!"
	g.ShowMessage(g.Result)
}

func (g *Game) win() {
	g.pause()
	g.over = true
	mins, secs := status.SplitElapsed(g.Elapsed())
	g.Result = fmt.Sprintf("You win in %dm %ds!", mins, secs)
	g.ShowMessage(g.Result)
	log.Printf("Won after %d moves", g.World.Moves())
}
