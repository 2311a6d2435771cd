package world

// Rect is the footprint of a room. X2 and Y2 are one past the last column and row
// of the footprint; the outermost ring stays wall when the room is carved.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a rect with top-left (x, y) and size w x h. Callers must pass
// w > 0 and h > 0.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the floor-division midpoint of the rect.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether the closed intervals of both rects overlap on both
// axes. Rects sharing a boundary line intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// InInterior returns true if (x, y) lies strictly inside the rect.
func (r Rect) InInterior(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}
