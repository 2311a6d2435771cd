// Package world provides dungeon generation and map management.
package world

// Tile describes one grid cell.
type Tile struct {
	Blocked     bool // Movement is impossible
	BlocksSight bool // Light does not pass through
	Explored    bool // Seen at least once; never reset
}

var (
	// TileWall is a blocked, opaque tile.
	TileWall = Tile{Blocked: true, BlocksSight: true}
	// TileFloor is an open, transparent tile.
	TileFloor = Tile{}
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Blocked
}

// Rune returns the tile's debug display character.
func (t Tile) Rune() rune {
	if t.Blocked {
		return '#'
	}
	return '.'
}
