package world

import "github.com/zyedidia/generic/mapset"

var neighbors4 = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Reachable returns every passable tile connected to from through 4-neighbour
// floor adjacency. The set is empty if from is out of bounds or blocked.
func Reachable(grid *TileGrid, from Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !grid.InBounds(from.X, from.Y) || !grid.IsPassable(from.X, from.Y) {
		return visited
	}

	visited.Put(from)
	queue := []Point{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, d := range neighbors4 {
			next := Point{X: current.X + d.X, Y: current.Y + d.Y}
			if !grid.InBounds(next.X, next.Y) || visited.Has(next) {
				continue
			}
			if !grid.IsPassable(next.X, next.Y) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return visited
}

// Connected returns true if the centre of every room is reachable from the centre
// of the first one. No rooms counts as connected.
func Connected(grid *TileGrid, rooms []Rect) bool {
	if len(rooms) == 0 {
		return true
	}
	x, y := rooms[0].Center()
	reached := Reachable(grid, Point{X: x, Y: y})
	for _, room := range rooms[1:] {
		cx, cy := room.Center()
		if !reached.Has(Point{X: cx, Y: cy}) {
			return false
		}
	}
	return true
}
