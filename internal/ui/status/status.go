// Package status draws the bar under the map: elapsed time, moves made and
// the Restart and Quit buttons.
package status

import (
	"fmt"
	"image/color"
	"time"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"chosenoffset.com/endofdayz/internal/render"
	ebitenrender "chosenoffset.com/endofdayz/internal/render/ebiten"
)

var (
	barColor    = color.NRGBA{R: 0xe0, G: 0xd8, B: 0xc0, A: 0xff}
	buttonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	pressColor  = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	textColor   = color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	labelColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Bar is the status bar UI.
type Bar struct {
	ui    *ebitenui.UI
	timer *widget.Text
	moves *widget.Text
}

// New builds a status bar of the given size, anchored to the bottom of the
// screen.
func New(width, height int, onRestart, onQuit func()) *Bar {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	panelImg := imageui.NewNineSliceColor(barColor)
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(buttonColor),
		Pressed: imageui.NewNineSliceColor(pressColor),
	}
	btnTextColor := &widget.ButtonTextColor{Idle: labelColor}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	b := &Bar{}
	b.timer = widget.NewText(
		widget.TextOpts.Text(FormatElapsed(0), &face, textColor),
		widget.TextOpts.WidgetOpts(centered),
	)
	b.moves = widget.NewText(
		widget.TextOpts.Text(FormatMoves(0), &face, textColor),
		widget.TextOpts.WidgetOpts(centered),
	)

	button := func(label string, handler func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(centered, widget.WidgetOpts.MinSize(120, 28)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if handler != nil {
					handler()
				}
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(24),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, height),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	panel.AddChild(b.timer)
	panel.AddChild(b.moves)
	panel.AddChild(button("Restart Game", onRestart))
	panel.AddChild(button("Quit Game", onQuit))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	b.ui = &ebitenui.UI{Container: root}
	return b
}

// SetTime shows the elapsed game time.
func (b *Bar) SetTime(elapsed time.Duration) {
	b.timer.Label = FormatElapsed(elapsed)
}

// SetMoves shows the number of moves made.
func (b *Bar) SetMoves(n int) {
	b.moves.Label = FormatMoves(n)
}

// Update handles clicks.
func (b *Bar) Update() {
	b.ui.Update()
}

// Draw paints the bar. Images from other backends are ignored.
func (b *Bar) Draw(screen render.Image) {
	if img := ebitenrender.Unwrap(screen); img != nil {
		b.ui.Draw(img)
	}
}

// FormatElapsed renders whole minutes and seconds, e.g. "Timer: 1m 5s".
func FormatElapsed(elapsed time.Duration) string {
	mins, secs := SplitElapsed(elapsed)
	return fmt.Sprintf("Timer: %dm %ds", mins, secs)
}

// SplitElapsed returns the whole minutes and remaining seconds.
func SplitElapsed(elapsed time.Duration) (mins, secs int) {
	if elapsed < 0 {
		elapsed = 0
	}
	total := int(elapsed / time.Second)
	return total / 60, total % 60
}

// FormatMoves renders the move counter.
func FormatMoves(n int) string {
	return fmt.Sprintf("Moves made: %d", n)
}
