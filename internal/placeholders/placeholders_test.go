package placeholders

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/endofdayz/internal/world/atlas"
)

func TestTileCoversEveryName(t *testing.T) {
	for _, name := range Names() {
		tile, err := Tile(name)
		if err != nil {
			t.Errorf("Tile(%q) failed: %v", name, err)
			continue
		}
		if tile.Bounds() != image.Rect(0, 0, TileSize, TileSize) {
			t.Errorf("Tile(%q) has bounds %v", name, tile.Bounds())
		}
	}

	if _, err := Tile("dragon"); err == nil {
		t.Error("Expected error for unknown sprite")
	}
}

func TestArrowPointsRight(t *testing.T) {
	tile := CreateArrow(ColorPalette.Arrow)
	mid := TileSize / 2

	// The head is widest near the right edge, the tip is a single column.
	if tile.RGBAAt(TileSize-8, mid-4).A == 0 {
		t.Error("Expected arrow head near the right edge")
	}
	if tile.RGBAAt(2, mid).A != 0 {
		t.Error("Expected nothing drawn left of the fletching")
	}
}

func TestGenerateAtlasLayout(t *testing.T) {
	img, config, err := GenerateAtlas("sprites.png")
	if err != nil {
		t.Fatalf("GenerateAtlas failed: %v", err)
	}

	if len(config.Tiles) != len(Names()) {
		t.Fatalf("Expected %d tiles, got %d", len(Names()), len(config.Tiles))
	}
	wantBounds := image.Rect(0, 0, atlasColumns*TileSize, 3*TileSize)
	if img.Bounds() != wantBounds {
		t.Errorf("Expected atlas bounds %v, got %v", wantBounds, img.Bounds())
	}

	last := config.Tiles[len(config.Tiles)-1]
	if last.Name != SpriteTimeMachine || last.AtlasX != 2 || last.AtlasY != 2 {
		t.Errorf("Unexpected last tile %+v", last)
	}

	// The generated config must satisfy the atlas loader's validation.
	a := atlas.New(config, nil)
	tile, ok := a.GetTile(SpriteArrow)
	if !ok {
		t.Fatal("Expected arrow tile in atlas")
	}
	if a.TileRect(tile) != image.Rect(TileSize, 0, 2*TileSize, TileSize) {
		t.Errorf("Unexpected arrow rect %v", a.TileRect(tile))
	}
}

func TestGenerateAndSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")
	if err := GenerateAndSave(dir); err != nil {
		t.Fatalf("GenerateAndSave failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sprites.json"))
	if err != nil {
		t.Fatalf("Expected sprites.json: %v", err)
	}
	config, err := atlas.ParseConfig(data)
	if err != nil {
		t.Fatalf("Generated config does not parse: %v", err)
	}
	if config.ImagePath != "sprites.png" {
		t.Errorf("Expected image path sprites.png, got %s", config.ImagePath)
	}
	if _, err := os.Stat(filepath.Join(dir, "sprites.png")); err != nil {
		t.Errorf("Expected sprites.png: %v", err)
	}
}
