package render

import (
	"log"

	"chosenoffset.com/endofdayz/internal/anim"
)

// CanvasItem is a sprite placed on a Canvas.
type CanvasItem struct {
	ID     anim.SpriteID
	Sprite string
	X, Y   float64
	Angle  int
}

// Canvas is a retained drawing layer. Sprites are added and removed by id
// and painted in insertion order every frame. It implements anim.Surface.
type Canvas struct {
	sprites *SpriteCache
	items   []CanvasItem
	nextID  anim.SpriteID

	// sprites that failed to load, so each is only logged once
	broken map[string]bool
}

// NewCanvas creates an empty canvas drawing through the given cache.
func NewCanvas(sprites *SpriteCache) *Canvas {
	return &Canvas{
		sprites: sprites,
		broken:  make(map[string]bool),
	}
}

// DrawSprite places a sprite centred on (x, y) and returns its id.
func (c *Canvas) DrawSprite(sprite string, x, y float64, angle int) anim.SpriteID {
	c.nextID++
	c.items = append(c.items, CanvasItem{
		ID:     c.nextID,
		Sprite: sprite,
		X:      x,
		Y:      y,
		Angle:  angle,
	})
	return c.nextID
}

// Erase removes the sprite with the given id, if it is still present.
func (c *Canvas) Erase(id anim.SpriteID) {
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear removes every sprite.
func (c *Canvas) Clear() {
	c.items = c.items[:0]
}

// Len returns the number of sprites on the canvas.
func (c *Canvas) Len() int {
	return len(c.items)
}

// Items returns a copy of the sprites in paint order.
func (c *Canvas) Items() []CanvasItem {
	items := make([]CanvasItem, len(c.items))
	copy(items, c.items)
	return items
}

// Draw paints every sprite onto dst.
func (c *Canvas) Draw(dst Image) {
	for _, item := range c.items {
		img, err := c.sprites.Get(item.Sprite, item.Angle)
		if err != nil {
			if !c.broken[item.Sprite] {
				log.Printf("Warning: %v", err)
				c.broken[item.Sprite] = true
			}
			continue
		}
		w, h := img.Size()
		geo := NewGeoM()
		geo.Translate(item.X-float64(w)/2, item.Y-float64(h)/2)
		dst.DrawImage(img, &DrawImageOptions{GeoM: geo})
	}
}

var _ anim.Surface = (*Canvas)(nil)
