// Package fov computes fields of view over a transparency grid. It wraps gruid's
// rl.FOV so that callers only deal with per-cell properties, an origin, a radius
// and the light-walls flag.
package fov

import (
	"fmt"
	"strings"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
	"github.com/zyedidia/generic/mapset"
)

// Algorithm selects how visibility is propagated.
type Algorithm int

const (
	// AlgorithmShadowcast is symmetric shadow casting.
	AlgorithmShadowcast Algorithm = iota
	// AlgorithmRay propagates light tile by tile, stopping at the first opaque tile.
	AlgorithmRay
)

// String returns the configuration name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmShadowcast:
		return "shadowcast"
	case AlgorithmRay:
		return "ray"
	default:
		return "unknown"
	}
}

// ParseAlgorithm converts a configuration name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "shadowcast", "ssc":
		return AlgorithmShadowcast, nil
	case "ray", "basic":
		return AlgorithmRay, nil
	default:
		return AlgorithmShadowcast, fmt.Errorf("unknown fov algorithm %q", name)
	}
}

// Map holds per-cell transparency and walkability and the result of the last
// computation.
type Map struct {
	width, height int
	transparent   []bool
	walkable      []bool
	algorithm     Algorithm

	fov     *rl.FOV
	visible mapset.Set[gruid.Point]
}

// NewMap creates a width x height map where every cell is opaque and blocked.
func NewMap(width, height int, algorithm Algorithm) *Map {
	return &Map{
		width:       width,
		height:      height,
		transparent: make([]bool, width*height),
		walkable:    make([]bool, width*height),
		algorithm:   algorithm,
		fov:         rl.NewFOV(gruid.NewRange(0, 0, width, height)),
		visible:     mapset.New[gruid.Point](),
	}
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Algorithm returns the algorithm used by ComputeFOV.
func (m *Map) Algorithm() Algorithm { return m.algorithm }

func (m *Map) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m *Map) index(x, y int) int {
	if !m.inBounds(x, y) {
		panic(fmt.Sprintf("fov: cell (%d,%d) out of bounds for %dx%d map", x, y, m.width, m.height))
	}
	return y*m.width + x
}

// SetProperties configures one cell.
func (m *Map) SetProperties(x, y int, transparent, walkable bool) {
	i := m.index(x, y)
	m.transparent[i] = transparent
	m.walkable[i] = walkable
}

// IsTransparent returns true if light passes through (x, y).
func (m *Map) IsTransparent(x, y int) bool {
	return m.inBounds(x, y) && m.transparent[y*m.width+x]
}

// IsWalkable returns true if (x, y) was configured as walkable.
func (m *Map) IsWalkable(x, y int) bool {
	return m.inBounds(x, y) && m.walkable[y*m.width+x]
}

// ComputeFOV replaces the visible set with the cells seen from (x, y). A radius of
// 0 means the whole map. With lightWalls false, opaque cells other than the origin
// are left out of the result.
func (m *Map) ComputeFOV(x, y, radius int, lightWalls bool) {
	m.visible = mapset.New[gruid.Point]()
	if !m.inBounds(x, y) {
		return
	}

	src := gruid.Point{X: x, Y: y}
	depth := radius
	if depth <= 0 {
		depth = m.width + m.height
	}

	var seen []gruid.Point
	switch m.algorithm {
	case AlgorithmRay:
		lt := rayLighter{m: m, maxCost: depth}
		for _, n := range m.fov.VisionMap(lt, src) {
			if n.Cost <= depth {
				seen = append(seen, n.P)
			}
		}
	default:
		passable := func(p gruid.Point) bool { return m.IsTransparent(p.X, p.Y) }
		seen = m.fov.SSCVisionMap(src, depth, passable, false)
	}

	r2 := radius * radius
	for _, p := range seen {
		if !m.inBounds(p.X, p.Y) {
			continue
		}
		if radius > 0 {
			dx, dy := p.X-x, p.Y-y
			if dx*dx+dy*dy > r2 {
				continue
			}
		}
		if !lightWalls && p != src && !m.IsTransparent(p.X, p.Y) {
			continue
		}
		m.visible.Put(p)
	}
	m.visible.Put(src)
}

// IsInFOV returns true if (x, y) was visible in the last computation.
func (m *Map) IsInFOV(x, y int) bool {
	return m.visible.Has(gruid.Point{X: x, Y: y})
}

// VisibleCount returns the size of the last visible set.
func (m *Map) VisibleCount() int {
	return m.visible.Size()
}

// rayLighter lets light leave the source and any transparent cell at unit cost.
// Opaque cells are lit but do not pass light on.
type rayLighter struct {
	m       *Map
	maxCost int
}

func (lt rayLighter) Cost(src, from, to gruid.Point) int {
	if from != src && !lt.m.IsTransparent(from.X, from.Y) {
		return lt.maxCost + 1
	}
	return 1
}

func (lt rayLighter) MaxCost(src gruid.Point) int {
	return lt.maxCost
}
