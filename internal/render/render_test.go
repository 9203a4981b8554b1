package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"
)

type fakeGeoM struct {
	ops []string
}

func (g *fakeGeoM) Translate(tx, ty float64) { g.ops = append(g.ops, fmt.Sprintf("T(%g,%g)", tx, ty)) }
func (g *fakeGeoM) Scale(sx, sy float64)     { g.ops = append(g.ops, fmt.Sprintf("S(%g,%g)", sx, sy)) }
func (g *fakeGeoM) Rotate(angle float64)     { g.ops = append(g.ops, fmt.Sprintf("R(%.4f)", angle)) }
func (g *fakeGeoM) Reset()                   { g.ops = nil }

type fakeDraw struct {
	src  *fakeImage
	geoM *fakeGeoM
}

type fakeImage struct {
	name     string
	w, h     int
	draws    []fakeDraw
	disposed bool
}

func (i *fakeImage) Bounds() image.Rectangle            { return image.Rect(0, 0, i.w, i.h) }
func (i *fakeImage) Size() (int, int)                   { return i.w, i.h }
func (i *fakeImage) SubImage(r image.Rectangle) Image   { return &fakeImage{w: r.Dx(), h: r.Dy()} }
func (i *fakeImage) Fill(color.Color)                   {}
func (i *fakeImage) Clear()                             { i.draws = nil }
func (i *fakeImage) Dispose()                           { i.disposed = true }
func (i *fakeImage) DrawImage(src Image, opts *DrawImageOptions) {
	d := fakeDraw{src: src.(*fakeImage)}
	if opts != nil && opts.GeoM != nil {
		d.geoM = opts.GeoM.(*fakeGeoM)
	}
	i.draws = append(i.draws, d)
}

type fakeRenderer struct {
	created []*fakeImage
}

func (r *fakeRenderer) NewImage(w, h int) Image {
	img := &fakeImage{w: w, h: h}
	r.created = append(r.created, img)
	return img
}

func (r *fakeRenderer) NewImageFromImage(src image.Image) Image {
	b := src.Bounds()
	return r.NewImage(b.Dx(), b.Dy())
}

func (r *fakeRenderer) FillRect(Image, float32, float32, float32, float32, color.Color) {}
func (r *fakeRenderer) DrawText(Image, string, int, int, color.Color, float64)         {}
func (r *fakeRenderer) MeasureText(text string, scale float64) (int, int) {
	return len(text) * 7, 13
}

func init() {
	NewGeoM = func() GeoM { return &fakeGeoM{} }
}

func newTestCache(loads map[string]int) (*SpriteCache, *fakeRenderer) {
	r := &fakeRenderer{}
	source := func(name string) (Image, error) {
		if name == "missing" {
			return nil, errors.New("no such sprite")
		}
		loads[name]++
		return &fakeImage{name: name, w: 32, h: 32}, nil
	}
	return NewSpriteCache(r, 64, source), r
}

func TestSpriteCacheReusesImages(t *testing.T) {
	loads := make(map[string]int)
	cache, r := newTestCache(loads)

	a, err := cache.Get("zombie", 0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	b, _ := cache.Get("zombie", 0)
	if a != b {
		t.Error("Expected the same image for the same name and angle")
	}

	if _, err := cache.Get("zombie", 90); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if cache.Len() != 2 {
		t.Errorf("Expected 2 cached images, got %d", cache.Len())
	}
	if loads["zombie"] != 2 {
		t.Errorf("Expected source loaded once per angle, got %d", loads["zombie"])
	}
	if len(r.created) != 2 {
		t.Errorf("Expected 2 images created, got %d", len(r.created))
	}

	w, h := a.Size()
	if w != 64 || h != 64 {
		t.Errorf("Expected 64x64 sprite, got %dx%d", w, h)
	}
}

func TestSpriteCacheRotation(t *testing.T) {
	cache, r := newTestCache(make(map[string]int))
	if _, err := cache.Get("arrow", 90); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	dst := r.created[0]
	if len(dst.draws) != 1 {
		t.Fatalf("Expected one draw into the sprite image, got %d", len(dst.draws))
	}
	ops := dst.draws[0].geoM.ops
	want := []string{"T(-16,-16)", "S(2,2)", "R(-1.5708)", "T(32,32)"}
	if fmt.Sprint(ops) != fmt.Sprint(want) {
		t.Errorf("Expected transform %v, got %v", want, ops)
	}
}

func TestSpriteCacheMissingSource(t *testing.T) {
	cache, _ := newTestCache(make(map[string]int))
	if _, err := cache.Get("missing", 0); err == nil {
		t.Error("Expected an error for a missing sprite")
	}
	if cache.Len() != 0 {
		t.Errorf("Expected nothing cached, got %d", cache.Len())
	}
}

func TestSpriteCacheDispose(t *testing.T) {
	cache, r := newTestCache(make(map[string]int))
	cache.Get("zombie", 0)
	cache.Dispose()
	if cache.Len() != 0 {
		t.Errorf("Expected empty cache, got %d", cache.Len())
	}
	if !r.created[0].disposed {
		t.Error("Expected cached image to be disposed")
	}
}

func TestCanvasDrawAndErase(t *testing.T) {
	cache, _ := newTestCache(make(map[string]int))
	c := NewCanvas(cache)

	a := c.DrawSprite("zombie", 100, 100, 0)
	b := c.DrawSprite("arrow", 150, 100, 180)
	if a == b {
		t.Fatal("Expected distinct sprite ids")
	}
	if c.Len() != 2 {
		t.Fatalf("Expected 2 items, got %d", c.Len())
	}

	c.Erase(a)
	items := c.Items()
	if len(items) != 1 || items[0].ID != b || items[0].Angle != 180 {
		t.Errorf("Unexpected items after erase: %+v", items)
	}

	// Erasing an unknown id is harmless.
	c.Erase(a)
	c.Erase(999)
	if c.Len() != 1 {
		t.Errorf("Expected 1 item, got %d", c.Len())
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Expected empty canvas, got %d", c.Len())
	}
	c.Erase(b)
}

func TestCanvasDrawCentresSprites(t *testing.T) {
	cache, _ := newTestCache(make(map[string]int))
	c := NewCanvas(cache)
	c.DrawSprite("player", 100, 50, 0)
	c.DrawSprite("missing", 10, 10, 0)

	screen := &fakeImage{w: 500, h: 500}
	c.Draw(screen)

	if len(screen.draws) != 1 {
		t.Fatalf("Expected one sprite drawn, got %d", len(screen.draws))
	}
	ops := screen.draws[0].geoM.ops
	if len(ops) != 1 || ops[0] != "T(68,18)" {
		t.Errorf("Expected sprite centred at (100, 50), got %v", ops)
	}
}
