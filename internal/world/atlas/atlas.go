// Package atlas loads sprite atlases: one image holding every sprite on a
// fixed tile grid, plus a JSON file naming each tile.
package atlas

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"chosenoffset.com/endofdayz/internal/render"
)

// TileDefinition defines a single tile within an atlas
type TileDefinition struct {
	Name   string `json:"name"`    // Sprite name (e.g., "zombie", "arrow")
	AtlasX int    `json:"atlas_x"` // X position in atlas (in tiles)
	AtlasY int    `json:"atlas_y"` // Y position in atlas (in tiles)
}

// AtlasConfig defines the JSON configuration for a sprite atlas
type AtlasConfig struct {
	Name       string           `json:"name"`        // Atlas name
	ImagePath  string           `json:"image_path"`  // Atlas image, relative to the config file
	TileWidth  int              `json:"tile_width"`  // Width of each tile in pixels
	TileHeight int              `json:"tile_height"` // Height of each tile in pixels
	Tiles      []TileDefinition `json:"tiles"`       // Array of tile definitions
}

// Atlas represents a loaded sprite atlas
type Atlas struct {
	Config      *AtlasConfig
	Image       render.Image
	TilesByName map[string]*TileDefinition // Quick lookup by name
}

// ParseConfig decodes and validates an atlas configuration.
func ParseConfig(data []byte) (*AtlasConfig, error) {
	var config AtlasConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse atlas config: %w", err)
	}

	if config.TileWidth <= 0 || config.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile dimensions: %dx%d", config.TileWidth, config.TileHeight)
	}
	if config.ImagePath == "" {
		return nil, fmt.Errorf("image_path is required in atlas config")
	}
	for i, tile := range config.Tiles {
		if tile.Name == "" {
			return nil, fmt.Errorf("tile %d has no name", i)
		}
		if tile.AtlasX < 0 || tile.AtlasY < 0 {
			return nil, fmt.Errorf("tile %s has negative atlas position", tile.Name)
		}
	}

	return &config, nil
}

// LoadAtlas loads a sprite atlas from a JSON configuration file
func LoadAtlas(configPath string, loader render.ResourceLoader) (*Atlas, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas config %s: %w", configPath, err)
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	imagePath := config.ImagePath
	if !filepath.IsAbs(imagePath) {
		imagePath = filepath.Join(filepath.Dir(configPath), imagePath)
	}

	img, err := loader.LoadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas image %s: %w", imagePath, err)
	}

	return New(config, img), nil
}

// New builds an atlas from a parsed config and its image.
func New(config *AtlasConfig, img render.Image) *Atlas {
	tilesByName := make(map[string]*TileDefinition)
	for i := range config.Tiles {
		tile := &config.Tiles[i]
		tilesByName[tile.Name] = tile
	}

	return &Atlas{
		Config:      config,
		Image:       img,
		TilesByName: tilesByName,
	}
}

// GetTile returns a tile definition by name
func (a *Atlas) GetTile(name string) (*TileDefinition, bool) {
	tile, ok := a.TilesByName[name]
	return tile, ok
}

// TileRect returns the pixel rectangle of a tile inside the atlas image.
func (a *Atlas) TileRect(tile *TileDefinition) image.Rectangle {
	x := tile.AtlasX * a.Config.TileWidth
	y := tile.AtlasY * a.Config.TileHeight
	return image.Rect(x, y, x+a.Config.TileWidth, y+a.Config.TileHeight)
}

// Sprite returns the sub-image for a tile by name. Its signature matches
// render.SpriteSource.
func (a *Atlas) Sprite(name string) (render.Image, error) {
	tile, ok := a.GetTile(name)
	if !ok {
		return nil, fmt.Errorf("tile not found: %s", name)
	}
	return a.Image.SubImage(a.TileRect(tile)), nil
}
