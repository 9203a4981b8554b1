package render

import (
	"fmt"
	"math"
)

// SpriteSource returns the unrotated source image for a sprite name.
type SpriteSource func(name string) (Image, error)

// SpriteCache builds square, rotated sprite images on first use and keeps
// them for the life of the cache. Entries are keyed "<name>_<angle>".
type SpriteCache struct {
	renderer Renderer
	source   SpriteSource
	size     int
	images   map[string]Image
}

// NewSpriteCache creates a cache producing size x size images.
func NewSpriteCache(r Renderer, size int, source SpriteSource) *SpriteCache {
	return &SpriteCache{
		renderer: r,
		source:   source,
		size:     size,
		images:   make(map[string]Image),
	}
}

// Size returns the edge length of cached sprites in pixels.
func (c *SpriteCache) Size() int {
	return c.size
}

// Get returns the sprite scaled to the cache size and rotated
// counter-clockwise by angle degrees.
func (c *SpriteCache) Get(name string, angle int) (Image, error) {
	key := fmt.Sprintf("%s_%d", name, angle)
	if img, ok := c.images[key]; ok {
		return img, nil
	}

	src, err := c.source(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load sprite %s: %w", name, err)
	}
	w, h := src.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("sprite %s has empty size %dx%d", name, w, h)
	}

	size := float64(c.size)
	dst := c.renderer.NewImage(c.size, c.size)
	geo := NewGeoM()
	geo.Translate(-float64(w)/2, -float64(h)/2)
	geo.Scale(size/float64(w), size/float64(h))
	// Screen y points down, so a negative angle turns the image counter-clockwise.
	geo.Rotate(-float64(angle) * math.Pi / 180)
	geo.Translate(size/2, size/2)
	dst.DrawImage(src, &DrawImageOptions{GeoM: geo})

	c.images[key] = dst
	return dst, nil
}

// Len returns the number of cached images.
func (c *SpriteCache) Len() int {
	return len(c.images)
}

// Dispose releases every cached image.
func (c *SpriteCache) Dispose() {
	for key, img := range c.images {
		img.Dispose()
		delete(c.images, key)
	}
}
