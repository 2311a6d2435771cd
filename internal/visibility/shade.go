package visibility

import "github.com/samdwyer/dungeonsight/internal/world"

// Tier is the shading class a renderer uses for a tile.
type Tier int

const (
	// TierHidden tiles were never seen and are not drawn.
	TierHidden Tier = iota
	TierVisibleWall
	TierVisibleFloor
	TierExploredWall
	TierExploredFloor
)

// String returns the palette key of the tier.
func (t Tier) String() string {
	switch t {
	case TierHidden:
		return "hidden"
	case TierVisibleWall:
		return "lightWall"
	case TierVisibleFloor:
		return "lightGround"
	case TierExploredWall:
		return "darkWall"
	case TierExploredFloor:
		return "darkGround"
	default:
		return "unknown"
	}
}

// Classify picks the tier of a tile. Sight-blocking tiles shade as walls.
func Classify(tile world.Tile, visible bool) Tier {
	wall := tile.BlocksSight
	switch {
	case visible && wall:
		return TierVisibleWall
	case visible:
		return TierVisibleFloor
	case tile.Explored && wall:
		return TierExploredWall
	case tile.Explored:
		return TierExploredFloor
	default:
		return TierHidden
	}
}

// Tier classifies the tile at (x, y) using the last computed visibility.
func (t *Tracker) Tier(grid *world.TileGrid, x, y int) Tier {
	return Classify(grid.At(x, y), t.IsVisible(x, y))
}
