package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/endofdayz/internal/dayz"
	"chosenoffset.com/endofdayz/internal/placeholders"
	"chosenoffset.com/endofdayz/internal/render"
	"chosenoffset.com/endofdayz/internal/world/grid"
)

var (
	backgroundColor = color.RGBA{216, 216, 194, 255}
	panelColor      = color.RGBA{233, 228, 210, 255}
	accentColor     = color.RGBA{255, 214, 120, 255}
	textColor       = color.RGBA{20, 20, 20, 255}
	resultColor     = color.RGBA{160, 20, 20, 255}
)

var itemNames = map[dayz.Kind]string{
	dayz.KindGarlic:      "Garlic",
	dayz.KindCrossbow:    "Crossbow",
	dayz.KindTimeMachine: "Time Machine",
}

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)
	g.Canvas.Draw(screen)
	g.drawInventory(screen)
	g.drawUI(screen)
	if g.Status != nil {
		g.Status.Draw(screen)
	}
}

// redraw rebuilds the map canvas from a world. Sprites in flight are
// dropped and repainted by their animation on its next frame.
func (g *Game) redraw(view *dayz.World) {
	g.view = view
	g.panelDirty = true
	g.Canvas.Clear()

	for r := 0; r < g.Geometry.Rows; r++ {
		for c := 0; c < g.Geometry.Cols; c++ {
			x, y := g.Geometry.Center(grid.Pos(r, c))
			g.Canvas.DrawSprite(placeholders.SpriteBackground, x, y, 0)
		}
	}

	entities := view.Grid()
	for _, p := range entities.Positions() {
		x, y := g.Geometry.Center(p)
		g.Canvas.DrawSprite(entities.Get(p).Kind.Sprite(), x, y, 0)
	}
}

// panelRow is one drawn inventory line.
type panelRow struct {
	name   string
	status string
	active bool
}

func (g *Game) inventoryChanged() {
	g.panelDirty = true
}

// inventoryRowAt maps a click to an inventory index.
func (g *Game) inventoryRowAt(x, y int) (int, bool) {
	p := g.Panel.PixelToPosition(x, y)
	if !g.Panel.Contains(p) || p.Row == 0 {
		return 0, false
	}
	i := p.Row - 1
	if i >= g.World.Inventory().Len() {
		return 0, false
	}
	return i, true
}

func (g *Game) panelRows() []panelRow {
	if g.panelDirty {
		g.panel = g.panel[:0]
		for _, item := range g.view.Inventory().Items() {
			g.panel = append(g.panel, panelRow{
				name:   itemNames[item.Kind],
				status: itemStatus(item),
				active: item.Active,
			})
		}
		g.panelDirty = false
	}
	return g.panel
}

func (g *Game) drawInventory(screen render.Image) {
	if g.Panel.CellWidth <= 0 || g.view == nil {
		return
	}
	width, height := g.Panel.Size()
	left := int(g.Panel.OriginX)
	g.Renderer.FillRect(screen, float32(left), 0, float32(width), float32(height), panelColor)

	title := g.Panel.BBox(grid.Pos(0, 0))
	g.drawCentred(screen, "Inventory", left, width, int(title.MinY+title.Height()/2)-7, textColor)

	for i, row := range g.panelRows() {
		p := grid.Pos(i+1, 0)
		if !g.Panel.Contains(p) {
			break
		}
		box := g.Panel.BBox(p)
		if row.active {
			g.Renderer.FillRect(screen, float32(box.MinX), float32(box.MinY), float32(box.Width()), float32(box.Height()), accentColor)
		}
		mid := int(box.MinY + box.Height()/2)
		g.drawCentred(screen, row.name, left, width, mid-14, textColor)
		g.drawCentred(screen, row.status, left, width, mid+2, textColor)
	}
}

func itemStatus(item *dayz.Item) string {
	if !item.Usable() {
		return "ready"
	}
	return fmt.Sprintf("%d moves remaining", item.Lifetime)
}

func (g *Game) drawCentred(screen render.Image, text string, left, width, y int, clr color.Color) {
	w, _ := g.Renderer.MeasureText(text, 1.0)
	g.Renderer.DrawText(screen, text, left+(width-w)/2, y, clr, 1.0)
}

func (g *Game) drawUI(screen render.Image) {
	// Draw on-screen messages
	y := 10
	for _, msg := range g.Messages {
		alpha := uint8(255)
		if msg.MaxTime > 0 {
			alpha = uint8(255 * float64(msg.TimeLeft) / float64(msg.MaxTime))
		}
		g.Renderer.DrawText(screen, msg.Text, 10, y, color.NRGBA{20, 20, 20, alpha}, 1.0)
		y += 20
	}

	if g.Result != "" {
		g.drawCentred(screen, g.Result, 0, g.MapWidth, g.MapHeight/2-13, resultColor)
	}
}
