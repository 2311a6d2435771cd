package world

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// TileGrid is a dense row-major array of tiles addressed by (x, y).
type TileGrid struct {
	width  int
	height int
	tiles  []Tile
}

// NewTileGrid creates a grid filled with walls.
func NewTileGrid(width, height int) *TileGrid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("world: invalid grid size %dx%d", width, height))
	}
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = TileWall
	}
	return &TileGrid{width: width, height: height, tiles: tiles}
}

// Width returns the number of columns.
func (g *TileGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *TileGrid) Height() int { return g.height }

// InBounds returns true if (x, y) addresses a tile of the grid.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index is the only place coordinates are turned into offsets.
// Out-of-range coordinates are a programming error and panic.
func (g *TileGrid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("world: tile (%d,%d) out of bounds for %dx%d grid", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// At returns the tile at (x, y).
func (g *TileGrid) At(x, y int) Tile {
	return g.tiles[g.index(x, y)]
}

// Set replaces the tile at (x, y).
func (g *TileGrid) Set(x, y int, t Tile) {
	g.tiles[g.index(x, y)] = t
}

// MarkExplored sets the explored flag of the tile at (x, y). There is no way to
// clear it.
func (g *TileGrid) MarkExplored(x, y int) {
	g.tiles[g.index(x, y)].Explored = true
}

// IsPassable returns true if the tile at (x, y) can be walked on.
func (g *TileGrid) IsPassable(x, y int) bool {
	return g.At(x, y).IsPassable()
}

// ForEach calls fn for every tile in row-major order.
func (g *TileGrid) ForEach(fn func(x, y int, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.tiles[y*g.width+x])
		}
	}
}

// Fingerprint hashes the grid dimensions and every tile flag. Two grids with equal
// fingerprints have, for all practical purposes, identical contents.
func (g *TileGrid) Fingerprint() uint64 {
	buf := make([]byte, 0, 8+len(g.tiles))
	buf = append(buf,
		byte(g.width>>24), byte(g.width>>16), byte(g.width>>8), byte(g.width),
		byte(g.height>>24), byte(g.height>>16), byte(g.height>>8), byte(g.height))
	for _, t := range g.tiles {
		var b byte
		if t.Blocked {
			b |= 1
		}
		if t.BlocksSight {
			b |= 2
		}
		if t.Explored {
			b |= 4
		}
		buf = append(buf, b)
	}
	return xxhash.Sum64(buf)
}

// String renders the grid with '#' for blocked and '.' for open tiles.
func (g *TileGrid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.tiles[y*g.width+x].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
