// Package board defines the path of tiles the player token travels along.
package board

import (
	"encoding/json"
	"fmt"
	"os"
)

// Point is a screen position in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Tile is one fixed position on the board path.
type Tile struct {
	Index int
	X, Y  float64
}

// Pos returns the tile's screen position.
func (t Tile) Pos() Point {
	return Point{X: t.X, Y: t.Y}
}

// Board is an ordered path of tiles. It is not modified after construction.
type Board struct {
	Name  string
	tiles []Tile
}

// boardFile is the on-disk JSON layout of a board.
type boardFile struct {
	Name  string  `json:"name"`
	Tiles []Point `json:"tiles"`
}

// New builds a board from tile positions in path order.
func New(name string, positions []Point) (*Board, error) {
	if len(positions) < 2 {
		return nil, fmt.Errorf("board %q needs at least 2 tiles, got %d", name, len(positions))
	}
	tiles := make([]Tile, len(positions))
	for i, p := range positions {
		tiles[i] = Tile{Index: i, X: p.X, Y: p.Y}
	}
	return &Board{Name: name, tiles: tiles}, nil
}

// Serpentine builds a board that snakes left-to-right then right-to-left
// across rows, starting at origin.
func Serpentine(cols, rows int, spacing float64, origin Point) (*Board, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid serpentine dimensions: %dx%d", cols, rows)
	}
	positions := make([]Point, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			col := c
			if r%2 == 1 {
				col = cols - 1 - c
			}
			positions = append(positions, Point{
				X: origin.X + float64(col)*spacing,
				Y: origin.Y + float64(r)*spacing,
			})
		}
	}
	return New("serpentine", positions)
}

// Load reads a board from a JSON file.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file %s: %w", path, err)
	}

	var bf boardFile
	if err := json.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("failed to parse board file %s: %w", path, err)
	}

	b, err := New(bf.Name, bf.Tiles)
	if err != nil {
		return nil, fmt.Errorf("invalid board in %s: %w", path, err)
	}
	return b, nil
}

// Len returns the number of tiles.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Last returns the index of the final tile.
func (b *Board) Last() int {
	return len(b.tiles) - 1
}

// Tile returns the tile at index i. Out-of-range indexes are clamped.
func (b *Board) Tile(i int) Tile {
	if i < 0 {
		i = 0
	}
	if i > b.Last() {
		i = b.Last()
	}
	return b.tiles[i]
}

// Tiles returns a copy of the tile sequence.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}
