package game

import (
	"fmt"
	"log"
	"time"

	"chosenoffset.com/endofdayz/internal/config"
	"chosenoffset.com/endofdayz/internal/dayz"
	"chosenoffset.com/endofdayz/internal/placeholders"
	"chosenoffset.com/endofdayz/internal/render"
	"chosenoffset.com/endofdayz/internal/world/atlas"
)

// Resources are the backend services a game is loaded with.
type Resources struct {
	Renderer render.Renderer
	Input    render.InputManager
	Loader   render.ResourceLoader
	TPS      int
}

// Load builds a game from settings: it loads the map and sprite art and
// starts a new world.
func Load(cfg *config.Config, configPath string, res Resources) (*Game, error) {
	log.Printf("Loading map: %s", cfg.World.Map)
	g, err := dayz.LoadMap(cfg.World.Map)
	if err != nil {
		return nil, fmt.Errorf("failed to load map: %w", err)
	}
	rows, cols := g.Size()
	log.Printf("Loaded map (%dx%d)", cols, rows)

	seed := cfg.World.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	world, err := dayz.NewWorld(g, dayz.Options{MaxStates: cfg.World.MaxStates, Seed: seed})
	if err != nil {
		return nil, fmt.Errorf("failed to start world: %w", err)
	}

	game := New(Options{
		Config:     cfg,
		ConfigPath: configPath,
		World:      world,
		Renderer:   res.Renderer,
		Input:      res.Input,
		Sprites:    LoadSprites(cfg.World.Atlas, res.Renderer, res.Loader),
		TPS:        res.TPS,
	})

	log.Printf("Game loaded successfully")
	return game, nil
}

// LoadSprites returns atlas art when an atlas is configured and loads,
// with placeholder tiles for anything the atlas lacks.
func LoadSprites(atlasPath string, r render.Renderer, loader render.ResourceLoader) render.SpriteSource {
	fallback := placeholders.Source(r)
	if atlasPath == "" || loader == nil {
		return fallback
	}

	a, err := atlas.LoadAtlas(atlasPath, loader)
	if err != nil {
		log.Printf("Warning: Failed to load sprite atlas: %v", err)
		return fallback
	}
	log.Printf("Loaded sprite atlas %s (%d tiles)", a.Config.Name, len(a.Config.Tiles))

	return func(name string) (render.Image, error) {
		if img, err := a.Sprite(name); err == nil {
			return img, nil
		}
		return fallback(name)
	}
}
