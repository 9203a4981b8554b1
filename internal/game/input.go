package game

import (
	"chosenoffset.com/endofdayz/internal/render"
	"chosenoffset.com/endofdayz/internal/world/grid"
)

var moveKeys = []struct {
	key  render.Key
	name string
}{
	{render.KeyW, "W"},
	{render.KeyA, "A"},
	{render.KeyS, "S"},
	{render.KeyD, "D"},
}

var fireKeys = []struct {
	key    render.Key
	offset grid.Position
}{
	{render.KeyUp, grid.OffsetUp},
	{render.KeyDown, grid.OffsetDown},
	{render.KeyLeft, grid.OffsetLeft},
	{render.KeyRight, grid.OffsetRight},
}

// handleInput reads the keys and mouse for this tick.
func (g *Game) handleInput() {
	if g.InputMgr == nil {
		return
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		g.Quit()
		return
	}
	// The world is frozen while rewinding and after the game ends.
	if g.over || g.rewinding {
		return
	}

	for _, mk := range moveKeys {
		if g.InputMgr.IsKeyJustPressed(mk.key) {
			g.move(mk.name)
			if g.over {
				return
			}
		}
	}

	for _, fk := range fireKeys {
		if g.InputMgr.IsKeyJustPressed(fk.key) {
			g.tryFireCrossbow(fk.offset)
		}
	}

	if g.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		x, y := g.InputMgr.GetCursorPosition()
		if i, ok := g.inventoryRowAt(x, y); ok {
			g.World.Inventory().Toggle(i)
			g.redraw(g.World)
		}
	}
}

// move handles a WASD press.
func (g *Game) move(key string) {
	offset, ok := g.World.DirectionToOffset(key)
	if !ok {
		return
	}
	if g.World.MovePlayer(offset) {
		g.redraw(g.World)
	}
	if g.World.HasWon() {
		g.win()
	}
}
