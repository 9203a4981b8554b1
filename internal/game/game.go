// Package game is the EndOfDayz front end: it runs the step loop, reads
// input, plays the crossbow and rewind animations and draws the world.
package game

import (
	"log"
	"time"

	"chosenoffset.com/endofdayz/internal/anim"
	"chosenoffset.com/endofdayz/internal/config"
	"chosenoffset.com/endofdayz/internal/dayz"
	"chosenoffset.com/endofdayz/internal/render"
	"chosenoffset.com/endofdayz/internal/world/grid"
)

// defaultTPS is used when the engine does not report a tick rate.
const defaultTPS = 60

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	MapWidth     int
	MapHeight    int

	Config     *config.Config
	ConfigPath string
	Watcher    ConfigWatcher

	World    *dayz.World
	Geometry grid.Geometry
	// Panel lays out the inventory as one column beside the map; row 0
	// holds the title.
	Panel    grid.Geometry
	Renderer render.Renderer
	InputMgr render.InputManager

	// Map drawing
	Sprites  *render.SpriteCache
	Canvas   *render.Canvas
	Animator *anim.Manager
	Clock    *anim.TickScheduler

	// Status bar; optional
	Status StatusView

	// UI state
	Messages []Message
	Result   string

	// world currently drawn; a restored snapshot while rewinding
	view *dayz.World

	// inventory rows, rebuilt when the drawn inventory changes
	panel      []panelRow
	panelDirty bool

	tick        time.Duration
	running     bool
	stepPending bool
	stepTimer   anim.TimerID
	rewinding   bool
	over        bool
	quit        bool

	// bumped on restart so callbacks from earlier animations are ignored
	generation int
}

// Options holds what New needs to build a game.
type Options struct {
	Config     *config.Config
	ConfigPath string
	World      *dayz.World
	Renderer   render.Renderer
	Input      render.InputManager
	Sprites    render.SpriteSource
	TPS        int
}

// New creates a game, draws the starting world and starts the step loop.
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	tps := opts.TPS
	if tps <= 0 {
		tps = defaultTPS
	}

	rows, cols := opts.World.Grid().Size()
	cell := cfg.Window.CellSize
	geometry := grid.Geometry{Rows: rows, Cols: cols, CellWidth: cell, CellHeight: cell}
	mapWidth, mapHeight := geometry.Size()

	sprites := render.NewSpriteCache(opts.Renderer, cell, opts.Sprites)
	canvas := render.NewCanvas(sprites)
	clock := anim.NewTickScheduler()

	g := &Game{
		ScreenWidth:  mapWidth + cfg.Window.InventoryWidth,
		ScreenHeight: mapHeight + cfg.Window.StatusHeight,
		MapWidth:     mapWidth,
		MapHeight:    mapHeight,
		Config:       cfg,
		ConfigPath:   opts.ConfigPath,
		World:        opts.World,
		Geometry:     geometry,
		Panel: grid.Geometry{
			Rows:       rows,
			Cols:       1,
			CellWidth:  cfg.Window.InventoryWidth,
			CellHeight: cell,
			OriginX:    float64(mapWidth),
		},
		Renderer:     opts.Renderer,
		InputMgr:     opts.Input,
		Sprites:      sprites,
		Canvas:       canvas,
		Animator:     anim.NewManager(canvas, clock),
		Clock:        clock,
		tick:         time.Second / time.Duration(tps),
	}

	// The world keeps this inventory through restarts and rewinds.
	g.World.Inventory().OnChange = g.inventoryChanged

	g.redraw(g.World)
	g.resume()
	return g
}

// Update handles game logic updates.
func (g *Game) Update() error {
	if g.quit {
		return render.ErrTerminate
	}

	g.reloadConfig()

	if g.Status != nil {
		g.Status.Update()
	}
	if g.quit {
		return render.ErrTerminate
	}

	g.handleInput()
	if g.quit {
		return render.ErrTerminate
	}

	g.Clock.Advance(g.tick)
	g.updateMessages(g.tick)

	// The bar follows the drawn world, so it winds back during a rewind.
	if g.Status != nil {
		g.Status.SetTime(g.gameTime(g.view))
		g.Status.SetMoves(g.view.Moves())
	}
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// Elapsed returns the game time: world steps times the step interval.
// Rewinding with the time machine takes it back.
func (g *Game) Elapsed() time.Duration { return g.gameTime(g.World) }

func (g *Game) gameTime(w *dayz.World) time.Duration {
	return time.Duration(w.Steps()) * g.Config.Timing.StepInterval
}

// Running reports whether the step loop is scheduled.
func (g *Game) Running() bool { return g.running }

// Rewinding reports whether the time machine replay is playing.
func (g *Game) Rewinding() bool { return g.rewinding }

// Over reports whether the game has been won or lost.
func (g *Game) Over() bool { return g.over }

// Restart puts the world back to its starting state.
func (g *Game) Restart() {
	g.pause()
	g.generation++
	g.World.Restart()
	g.Messages = nil
	g.Result = ""
	g.over = false
	g.rewinding = false
	g.redraw(g.World)
	g.resume()
	log.Printf("Game restarted")
}

// Quit ends the game loop on the next update.
func (g *Game) Quit() {
	g.quit = true
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	d := g.Config.Timing.MessageDuration
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: d,
		MaxTime:  d,
	})

	log.Printf("Message: %s", text)
}

func (g *Game) updateMessages(dt time.Duration) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// reloadConfig applies timing and animation settings when the file
// changes. Window and world settings need a restart of the program.
func (g *Game) reloadConfig() {
	if g.Watcher == nil {
		return
	}
	changed, err := g.Watcher.Changed()
	if err != nil {
		log.Printf("Warning: Config watcher error: %v", err)
	}
	if !changed {
		return
	}

	cfg, err := config.Load(g.ConfigPath)
	if err != nil {
		log.Printf("Warning: Failed to reload config: %v", err)
		return
	}
	g.Config.Timing = cfg.Timing
	g.Config.Animation = cfg.Animation
	log.Printf("Reloaded config from %s", g.ConfigPath)
	g.ShowMessage("Settings reloaded")
}
