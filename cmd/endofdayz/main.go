package main

import (
	"log"

	"chosenoffset.com/endofdayz/internal/config"
	"chosenoffset.com/endofdayz/internal/game"
	ebitenrender "chosenoffset.com/endofdayz/internal/render/ebiten"
	"chosenoffset.com/endofdayz/internal/ui/status"
)

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	g, err := game.Load(cfg, config.DefaultPath, game.Resources{
		Renderer: renderer,
		Input:    inputMgr,
		Loader:   loader,
		TPS:      engine.TPS(),
	})
	if err != nil {
		log.Fatalf("Failed to load game: %v", err)
	}
	g.Status = status.New(g.ScreenWidth, cfg.Window.StatusHeight, g.Restart, g.Quit)

	// Timing and animation settings follow edits to the config file
	watcher, err := config.Watch(config.DefaultPath)
	if err != nil {
		log.Printf("Warning: Failed to watch config: %v", err)
	} else {
		defer watcher.Close()
		g.Watcher = watcher
	}

	// Set up the window
	engine.SetWindowSize(g.ScreenWidth, g.ScreenHeight)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(false)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
