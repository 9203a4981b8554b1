package placeholders

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"chosenoffset.com/endofdayz/internal/render"
	"chosenoffset.com/endofdayz/internal/world/atlas"
)

// Sprite names produced by this package. Entity sprites match dayz.Kind.Sprite.
const (
	SpriteBackground     = "background"
	SpriteArrow          = "arrow"
	SpritePlayer         = "player"
	SpriteHospital       = "hospital"
	SpriteZombie         = "zombie"
	SpriteTrackingZombie = "tracking_zombie"
	SpriteGarlic         = "garlic"
	SpriteCrossbow       = "crossbow"
	SpriteTimeMachine    = "time_machine"
)

// atlasColumns is the width of the generated atlas in tiles.
const atlasColumns = 3

// spriteOrder fixes each sprite's cell in the generated atlas.
var spriteOrder = []string{
	SpriteBackground, SpriteArrow, SpritePlayer,
	SpriteHospital, SpriteZombie, SpriteTrackingZombie,
	SpriteGarlic, SpriteCrossbow, SpriteTimeMachine,
}

// Names returns every sprite name in atlas order.
func Names() []string {
	names := make([]string, len(spriteOrder))
	copy(names, spriteOrder)
	return names
}

// Tile generates the placeholder image for a sprite name.
func Tile(name string) (*image.RGBA, error) {
	p := ColorPalette
	switch name {
	case SpriteBackground:
		return CreateBorderedTile(p.Background, p.GridLine, 1), nil
	case SpriteArrow:
		return CreateArrow(p.Arrow), nil
	case SpritePlayer:
		return CreateCircle(p.Player, p.Border), nil
	case SpriteHospital:
		return CreateCross(p.Hospital, p.HospitalCross), nil
	case SpriteZombie:
		return CreateCircle(p.Zombie, Darken(p.Zombie, 0.5)), nil
	case SpriteTrackingZombie:
		return CreateCircle(p.TrackingZombie, p.Border), nil
	case SpriteGarlic:
		return CreateDiamond(p.Garlic, Darken(p.Garlic, 0.6)), nil
	case SpriteCrossbow:
		return CreateDiamond(p.Crossbow, p.Border), nil
	case SpriteTimeMachine:
		return CreateDiamond(p.TimeMachine, p.Border), nil
	}
	return nil, fmt.Errorf("no placeholder for sprite %q", name)
}

// Source returns a sprite source that uploads generated tiles through the
// renderer, once per name.
func Source(r render.Renderer) render.SpriteSource {
	uploaded := make(map[string]render.Image)
	return func(name string) (render.Image, error) {
		if img, ok := uploaded[name]; ok {
			return img, nil
		}
		tile, err := Tile(name)
		if err != nil {
			return nil, err
		}
		img := r.NewImageFromImage(tile)
		uploaded[name] = img
		return img, nil
	}
}

// GenerateAtlas builds the placeholder atlas image and the matching config.
func GenerateAtlas(imagePath string) (*image.RGBA, *atlas.AtlasConfig, error) {
	tiles := make([]*image.RGBA, len(spriteOrder))
	config := &atlas.AtlasConfig{
		Name:       "placeholders",
		ImagePath:  imagePath,
		TileWidth:  TileSize,
		TileHeight: TileSize,
	}

	for i, name := range spriteOrder {
		tile, err := Tile(name)
		if err != nil {
			return nil, nil, err
		}
		tiles[i] = tile
		config.Tiles = append(config.Tiles, atlas.TileDefinition{
			Name:   name,
			AtlasX: i % atlasColumns,
			AtlasY: i / atlasColumns,
		})
	}

	return CreateAtlas(tiles, atlasColumns), config, nil
}

// GenerateAndSave writes sprites.png and sprites.json into dir.
func GenerateAndSave(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	img, config, err := GenerateAtlas("sprites.png")
	if err != nil {
		return err
	}

	pngPath := filepath.Join(dir, "sprites.png")
	if err := SavePNG(img, pngPath); err != nil {
		return fmt.Errorf("failed to save %s: %w", pngPath, err)
	}
	fmt.Printf("  Created %s\n", pngPath)

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode atlas config: %w", err)
	}
	jsonPath := filepath.Join(dir, "sprites.json")
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to save %s: %w", jsonPath, err)
	}
	fmt.Printf("  Created %s\n", jsonPath)

	return nil
}
