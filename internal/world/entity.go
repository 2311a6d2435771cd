package world

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Entity is the position record shared by the player and everything placed in the
// dungeon. Names, glyphs and colours live in the entity package.
type Entity struct {
	X, Y   int
	Blocks bool // Movement collision treats the entity as an obstacle
}

// Position returns the entity's current x, y coordinates.
func (e *Entity) Position() (int, int) {
	return e.X, e.Y
}

// SetPosition moves the entity to (x, y).
func (e *Entity) SetPosition(x, y int) {
	e.X = x
	e.Y = y
}

// BlockingAt returns the first blocking entity at (x, y), or nil.
func BlockingAt(entities []*Entity, x, y int) *Entity {
	for _, e := range entities {
		if e != nil && e.Blocks && e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// IsBlocked returns true if the tile at (x, y) is blocked or a blocking entity
// stands on it. (x, y) must be inside the grid.
func IsBlocked(grid *TileGrid, entities []*Entity, x, y int) bool {
	if grid.At(x, y).Blocked {
		return true
	}
	return BlockingAt(entities, x, y) != nil
}
