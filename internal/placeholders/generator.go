package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// TileSize is the standard size for placeholder tiles
const TileSize = 32

// ColorPalette defines colors for the placeholder sprites
var ColorPalette = struct {
	// Map
	Background color.RGBA
	GridLine   color.RGBA

	// Entities
	Player         color.RGBA
	Hospital       color.RGBA
	HospitalCross  color.RGBA
	Zombie         color.RGBA
	TrackingZombie color.RGBA

	// Pickups
	Garlic      color.RGBA
	Crossbow    color.RGBA
	TimeMachine color.RGBA

	// Effects
	Arrow color.RGBA

	// UI
	Border color.RGBA
}{
	Background: color.RGBA{216, 216, 194, 255}, // Washed-out parchment
	GridLine:   color.RGBA{196, 196, 172, 255},

	Player:         color.RGBA{30, 144, 255, 255},  // Blue
	Hospital:       color.RGBA{255, 255, 255, 255}, // White
	HospitalCross:  color.RGBA{220, 20, 60, 255},   // Crimson
	Zombie:         color.RGBA{60, 179, 113, 255},  // Sickly green
	TrackingZombie: color.RGBA{139, 0, 0, 255},     // Dark red

	Garlic:      color.RGBA{245, 222, 179, 255}, // Wheat
	Crossbow:    color.RGBA{139, 90, 43, 255},   // Wood brown
	TimeMachine: color.RGBA{148, 0, 211, 255},   // Violet

	Arrow: color.RGBA{60, 60, 60, 255},

	Border: color.RGBA{40, 40, 40, 255},
}

// CreateSolidTile creates a simple solid-colored tile
func CreateSolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBorderedTile creates a tile with a border
func CreateBorderedTile(fillColor, borderColor color.RGBA, borderWidth int) *image.RGBA {
	img := CreateSolidTile(fillColor)

	for i := 0; i < borderWidth; i++ {
		for x := 0; x < TileSize; x++ {
			img.Set(x, i, borderColor)
			img.Set(x, TileSize-1-i, borderColor)
		}
		for y := 0; y < TileSize; y++ {
			img.Set(i, y, borderColor)
			img.Set(TileSize-1-i, y, borderColor)
		}
	}

	return img
}

// CreateCircle creates a circular sprite on a transparent background
func CreateCircle(fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))

	center := TileSize / 2
	radius := TileSize/2 - 2

	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			dx := x - center
			dy := y - center
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.Set(x, y, fillColor)
			} else if distSq <= (radius+1)*(radius+1) {
				img.Set(x, y, outlineColor)
			}
		}
	}

	return img
}

// CreateCross draws a hospital-style cross on a bordered tile
func CreateCross(fillColor, crossColor color.RGBA) *image.RGBA {
	img := CreateBorderedTile(fillColor, ColorPalette.Border, 1)

	third := TileSize / 3
	for y := third; y < TileSize-third; y++ {
		for x := 4; x < TileSize-4; x++ {
			img.Set(x, y, crossColor)
			img.Set(y, x, crossColor)
		}
	}

	return img
}

// CreateDiamond creates a diamond-shaped pickup sprite
func CreateDiamond(fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))

	center := TileSize / 2
	radius := TileSize/2 - 3

	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			d := abs(x-center) + abs(y-center)
			if d < radius {
				img.Set(x, y, fillColor)
			} else if d == radius {
				img.Set(x, y, outlineColor)
			}
		}
	}

	return img
}

// CreateArrow creates a bolt pointing right, the zero-degree orientation
// for rotated sprites
func CreateArrow(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))

	mid := TileSize / 2
	// Shaft
	for x := 4; x < TileSize-8; x++ {
		img.Set(x, mid-1, col)
		img.Set(x, mid, col)
	}
	// Head
	for i := 0; i < 8; i++ {
		for y := mid - 1 - (7 - i); y <= mid+(7-i); y++ {
			img.Set(TileSize-8+i, y, col)
		}
	}
	// Fletching
	for i := 0; i < 4; i++ {
		img.Set(4+i, mid-2-i, col)
		img.Set(4+i, mid+1+i, col)
	}

	return img
}

// CreateAtlas creates a sprite atlas from multiple tiles
func CreateAtlas(tiles []*image.RGBA, columns int) *image.RGBA {
	rows := (len(tiles) + columns - 1) / columns
	atlas := image.NewRGBA(image.Rect(0, 0, columns*TileSize, rows*TileSize))

	for i, tile := range tiles {
		if tile == nil {
			continue
		}

		x := (i % columns) * TileSize
		y := (i / columns) * TileSize

		destRect := image.Rect(x, y, x+TileSize, y+TileSize)
		draw.Draw(atlas, destRect, tile, image.Point{}, draw.Src)
	}

	return atlas
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
