package atlas

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/endofdayz/internal/render"
)

type stubImage struct {
	path string
	rect image.Rectangle
}

func (i *stubImage) Bounds() image.Rectangle { return i.rect }
func (i *stubImage) Size() (int, int)        { return i.rect.Dx(), i.rect.Dy() }
func (i *stubImage) SubImage(r image.Rectangle) render.Image {
	return &stubImage{path: i.path, rect: r}
}
func (i *stubImage) Fill(color.Color)                               {}
func (i *stubImage) Clear()                                         {}
func (i *stubImage) DrawImage(render.Image, *render.DrawImageOptions) {}
func (i *stubImage) Dispose()                                       {}

type stubLoader struct {
	loaded []string
}

func (l *stubLoader) LoadImage(path string) (render.Image, error) {
	l.loaded = append(l.loaded, path)
	return &stubImage{path: path, rect: image.Rect(0, 0, 256, 128)}, nil
}

func TestParseConfig(t *testing.T) {
	jsonData := `{
		"name": "dayz",
		"image_path": "sprites.png",
		"tile_width": 64,
		"tile_height": 64,
		"tiles": [
			{"name": "zombie", "atlas_x": 0, "atlas_y": 0},
			{"name": "arrow", "atlas_x": 3, "atlas_y": 1}
		]
	}`

	config, err := ParseConfig([]byte(jsonData))
	if err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	if config.Name != "dayz" {
		t.Errorf("Expected name 'dayz', got '%s'", config.Name)
	}
	if config.TileWidth != 64 || config.TileHeight != 64 {
		t.Errorf("Expected 64x64 tiles, got %dx%d", config.TileWidth, config.TileHeight)
	}
	if len(config.Tiles) != 2 {
		t.Fatalf("Expected 2 tiles, got %d", len(config.Tiles))
	}
	if config.Tiles[1].AtlasX != 3 || config.Tiles[1].AtlasY != 1 {
		t.Errorf("Expected atlas position (3, 1), got (%d, %d)", config.Tiles[1].AtlasX, config.Tiles[1].AtlasY)
	}
}

func TestParseConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero tile size", `{"image_path": "a.png", "tile_width": 0, "tile_height": 0}`},
		{"missing image", `{"tile_width": 32, "tile_height": 32}`},
		{"unnamed tile", `{"image_path": "a.png", "tile_width": 32, "tile_height": 32, "tiles": [{"atlas_x": 0}]}`},
		{"negative position", `{"image_path": "a.png", "tile_width": 32, "tile_height": 32, "tiles": [{"name": "x", "atlas_x": -1}]}`},
		{"bad json", `{"image_path":`},
	}

	for _, tt := range tests {
		if _, err := ParseConfig([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

func TestLoadAtlasResolvesImagePath(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "sprites.json")
	config := `{
		"name": "dayz",
		"image_path": "sprites.png",
		"tile_width": 64,
		"tile_height": 64,
		"tiles": [{"name": "arrow", "atlas_x": 3, "atlas_y": 1}]
	}`
	if err := os.WriteFile(configPath, []byte(config), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	loader := &stubLoader{}
	a, err := LoadAtlas(configPath, loader)
	if err != nil {
		t.Fatalf("LoadAtlas failed: %v", err)
	}
	if len(loader.loaded) != 1 || loader.loaded[0] != filepath.Join(dir, "sprites.png") {
		t.Errorf("Expected image loaded next to config, got %v", loader.loaded)
	}

	img, err := a.Sprite("arrow")
	if err != nil {
		t.Fatalf("Sprite failed: %v", err)
	}
	if img.Bounds() != image.Rect(192, 64, 256, 128) {
		t.Errorf("Unexpected tile rect: %v", img.Bounds())
	}

	if _, err := a.Sprite("missing"); err == nil {
		t.Error("Expected error for unknown tile")
	}
}

func TestLoadAtlasMissingFile(t *testing.T) {
	if _, err := LoadAtlas(filepath.Join(t.TempDir(), "nope.json"), &stubLoader{}); err == nil {
		t.Error("Expected error for missing config file")
	}
}
