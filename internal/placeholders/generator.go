// Package placeholders draws stand-in artwork for the board and token so the
// game has images to load before real art exists.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"

	"chosenoffset.com/chaosend/internal/board"
)

// TokenSize is the width and height of the token sprite.
const TokenSize = 32

// Palette defines the placeholder colors.
var Palette = struct {
	Background color.RGBA
	Path       color.RGBA
	Tile       color.RGBA
	TileEdge   color.RGBA
	Goal       color.RGBA
	Token      color.RGBA
	TokenEdge  color.RGBA
}{
	Background: color.RGBA{18, 14, 28, 255},
	Path:       color.RGBA{90, 70, 120, 255},
	Tile:       color.RGBA{60, 45, 90, 255},
	TileEdge:   color.RGBA{170, 140, 220, 255},
	Goal:       color.RGBA{200, 60, 60, 255},
	Token:      color.RGBA{255, 220, 90, 255},
	TokenEdge:  color.RGBA{200, 160, 40, 255},
}

// TileRadius is the radius of a drawn tile.
const TileRadius = 26

// Disc fills an anti-aliased circle onto dst.
func Disc(dst draw.Image, cx, cy, radius float64, clr color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	const segments = 48
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		x := float32(cx + radius*math.Cos(a) - float64(b.Min.X))
		y := float32(cy + radius*math.Sin(a) - float64(b.Min.Y))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(clr), image.Point{})
}

// Segment draws a thick line from a to b onto dst.
func Segment(dst draw.Image, a, b board.Point, width float64, clr color.Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Unit normal scaled to half the width
	nx, ny := -dy/length*width/2, dx/length*width/2

	bounds := dst.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	z.MoveTo(float32(a.X+nx-ox), float32(a.Y+ny-oy))
	z.LineTo(float32(b.X+nx-ox), float32(b.Y+ny-oy))
	z.LineTo(float32(b.X-nx-ox), float32(b.Y-ny-oy))
	z.LineTo(float32(a.X-nx-ox), float32(a.Y-ny-oy))
	z.ClosePath()
	z.Draw(dst, bounds, image.NewUniform(clr), image.Point{})
}

// CreateToken draws the token sprite on a transparent background.
func CreateToken() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TokenSize, TokenSize))
	c := float64(TokenSize) / 2
	Disc(img, c, c, c-1, Palette.TokenEdge)
	Disc(img, c, c, c-3, Palette.Token)
	return img
}

// CreateBoard draws the path and tiles of b on a width x height background.
func CreateBoard(b *board.Board, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Palette.Background), image.Point{}, draw.Src)

	tiles := b.Tiles()
	for i := 1; i < len(tiles); i++ {
		Segment(img, tiles[i-1].Pos(), tiles[i].Pos(), 6, Palette.Path)
	}
	for _, t := range tiles {
		fill := Palette.Tile
		if t.Index == b.Last() {
			fill = Palette.Goal
		}
		Disc(img, t.X, t.Y, TileRadius+2, Palette.TileEdge)
		Disc(img, t.X, t.Y, TileRadius, fill)
	}
	return img
}

// SavePNG saves an image to a PNG file, creating parent directories.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// GenerateAndSave writes board.png and token.png into dir.
func GenerateAndSave(b *board.Board, width, height int, dir string) error {
	if err := SavePNG(CreateBoard(b, width, height), filepath.Join(dir, "board.png")); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}
	if err := SavePNG(CreateToken(), filepath.Join(dir, "token.png")); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}
