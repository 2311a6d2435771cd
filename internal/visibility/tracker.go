// Package visibility keeps per-tile visible and explored state in step with the
// player's position.
package visibility

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsight/internal/telemetry"
	"github.com/samdwyer/dungeonsight/internal/world"
)

var (
	// ErrNotSynced is returned when a recompute is requested before the FOV grid
	// was populated from the tile grid.
	ErrNotSynced = errors.New("visibility: transparency not synced")
	// ErrStale is returned when folding visibility that was not computed for the
	// current position.
	ErrStale = errors.New("visibility: visible set is stale")
	// ErrSizeMismatch is returned when the tile grid and FOV grid differ in size.
	ErrSizeMismatch = errors.New("visibility: grid size mismatch")
	// ErrOutOfBounds is returned when a recompute origin lies outside the grid.
	ErrOutOfBounds = errors.New("visibility: origin out of bounds")
)

// FOV is the field-of-view capability driven by the tracker. fov.Map implements it.
type FOV interface {
	Width() int
	Height() int
	SetProperties(x, y int, transparent, walkable bool)
	ComputeFOV(x, y, radius int, lightWalls bool)
	IsInFOV(x, y int) bool
}

// State tells whether the visible set matches the tracked position.
type State int

const (
	// StateStale means visibility has not been computed for the current position.
	StateStale State = iota
	// StateFresh means visibility is valid for the current position.
	StateFresh
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStale:
		return "stale"
	case StateFresh:
		return "fresh"
	default:
		return "unknown"
	}
}

// neverComputed lies outside every grid so the first position always differs.
var neverComputed = world.Point{X: -1, Y: -1}

// Tracker folds FOV results into the tile grid's explored flags.
//
// Whenever the position changes the order is always SyncTransparency (once per
// layout), Recompute, FoldExplored. Refresh performs the last two steps.
type Tracker struct {
	fov        FOV
	radius     int
	lightWalls bool

	synced bool
	state  State
	last   world.Point
}

// NewTracker creates a tracker computing visibility with the given radius (0 for
// unlimited) and light-walls flag.
func NewTracker(fov FOV, radius int, lightWalls bool) *Tracker {
	return &Tracker{
		fov:        fov,
		radius:     radius,
		lightWalls: lightWalls,
		state:      StateStale,
		last:       neverComputed,
	}
}

// State returns the current state.
func (t *Tracker) State() State { return t.state }

// Position returns the position of the last recompute, or (-1,-1).
func (t *Tracker) Position() world.Point { return t.last }

// SyncTransparency copies sight and movement blocking of every tile into the FOV
// grid. Visibility becomes stale and the next Refresh always recomputes.
func (t *Tracker) SyncTransparency(grid *world.TileGrid) error {
	if grid.Width() != t.fov.Width() || grid.Height() != t.fov.Height() {
		return fmt.Errorf("%w: tiles %dx%d, fov %dx%d", ErrSizeMismatch,
			grid.Width(), grid.Height(), t.fov.Width(), t.fov.Height())
	}
	grid.ForEach(func(x, y int, tile world.Tile) {
		t.fov.SetProperties(x, y, !tile.BlocksSight, !tile.Blocked)
	})
	t.synced = true
	t.state = StateStale
	t.last = neverComputed
	return nil
}

// NeedsRecompute returns true if nothing was computed yet or (x, y) differs from
// the last computed position.
func (t *Tracker) NeedsRecompute(x, y int) bool {
	return t.last == neverComputed || t.last != (world.Point{X: x, Y: y})
}

// Invalidate marks visibility stale until the next Refresh or Recompute. Callers
// moving the player use it so a pending FoldExplored cannot run on old data.
func (t *Tracker) Invalidate() {
	t.state = StateStale
}

// Recompute computes visibility from (x, y).
func (t *Tracker) Recompute(x, y int) error {
	if !t.synced {
		return ErrNotSynced
	}
	if x < 0 || x >= t.fov.Width() || y < 0 || y >= t.fov.Height() {
		return fmt.Errorf("%w: (%d,%d) for %dx%d grid", ErrOutOfBounds, x, y, t.fov.Width(), t.fov.Height())
	}
	t.fov.ComputeFOV(x, y, t.radius, t.lightWalls)
	t.last = world.Point{X: x, Y: y}
	t.state = StateFresh
	return nil
}

// IsVisible returns true if (x, y) was visible in the last recompute.
func (t *Tracker) IsVisible(x, y int) bool {
	return t.fov.IsInFOV(x, y)
}

// FoldExplored marks every visible tile as explored. It never clears the flag.
func (t *Tracker) FoldExplored(grid *world.TileGrid) error {
	_, _, err := t.fold(grid)
	return err
}

func (t *Tracker) fold(grid *world.TileGrid) (visible, discovered int, err error) {
	if t.state != StateFresh {
		return 0, 0, ErrStale
	}
	if grid.Width() != t.fov.Width() || grid.Height() != t.fov.Height() {
		return 0, 0, ErrSizeMismatch
	}
	grid.ForEach(func(x, y int, tile world.Tile) {
		if !t.fov.IsInFOV(x, y) {
			return
		}
		visible++
		if !tile.Explored {
			discovered++
			grid.MarkExplored(x, y)
		}
	})
	return visible, discovered, nil
}

// Refresh recomputes and folds visibility if (x, y) differs from the last
// computed position. It returns whether a recompute happened. Returning to the
// last computed position makes the existing visible set fresh again.
func (t *Tracker) Refresh(ctx context.Context, grid *world.TileGrid, x, y int) (bool, error) {
	if !t.NeedsRecompute(x, y) {
		t.state = StateFresh
		return false, nil
	}

	tracer := telemetry.Tracer("visibility")
	_, span := tracer.Start(ctx, "visibility.refresh")
	defer span.End()

	t.state = StateStale
	if err := t.Recompute(x, y); err != nil {
		span.RecordError(err)
		return false, err
	}
	visible, discovered, err := t.fold(grid)
	if err != nil {
		// Nothing was folded; the next Refresh must retry.
		t.last = neverComputed
		t.state = StateStale
		span.RecordError(err)
		return true, err
	}

	span.SetAttributes(
		attribute.Int("fov.origin_x", x),
		attribute.Int("fov.origin_y", y),
		attribute.Int("fov.radius", t.radius),
		attribute.Bool("fov.light_walls", t.lightWalls),
		attribute.Int("fov.visible_count", visible),
		attribute.Int("fov.newly_explored", discovered),
	)
	return true, nil
}
