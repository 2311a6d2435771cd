package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsight/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 45

	// Room placement parameters
	DefaultMaxRooms    = 30
	DefaultRoomMinSize = 6
	DefaultRoomMaxSize = 10
)

// RNG is the random source threaded through every sampling step.
// *rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// Params controls room placement.
type Params struct {
	Width       int `json:"width"`
	Height      int `json:"height"`
	MaxRooms    int `json:"maxRooms"`    // Placement attempts, not a room count
	RoomMinSize int `json:"roomMinSize"` // Inclusive
	RoomMaxSize int `json:"roomMaxSize"` // Inclusive
}

// DefaultParams returns the classic 80x45, 30 attempt, 6..10 room layout.
func DefaultParams() Params {
	return Params{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MaxRooms:    DefaultMaxRooms,
		RoomMinSize: DefaultRoomMinSize,
		RoomMaxSize: DefaultRoomMaxSize,
	}
}

// Validate reports parameters that cannot describe any dungeon. Rooms larger than
// the map are allowed; they simply never fit.
func (p Params) Validate() error {
	var errs []error
	if p.Width <= 0 || p.Height <= 0 {
		errs = append(errs, fmt.Errorf("dungeon size %dx%d must be positive", p.Width, p.Height))
	}
	if p.MaxRooms < 0 {
		errs = append(errs, fmt.Errorf("maxRooms %d must not be negative", p.MaxRooms))
	}
	if p.RoomMinSize <= 0 {
		errs = append(errs, fmt.Errorf("roomMinSize %d must be positive", p.RoomMinSize))
	}
	if p.RoomMaxSize < p.RoomMinSize {
		errs = append(errs, fmt.Errorf("roomMaxSize %d is below roomMinSize %d", p.RoomMaxSize, p.RoomMinSize))
	}
	return errors.Join(errs...)
}

// Dungeon is the result of one generation run.
type Dungeon struct {
	Grid     *TileGrid
	Rooms    []Rect    // Accepted rooms in placement order
	Spawn    Point     // Centre of the first room, (0,0) without rooms
	Entities []*Entity // Entities seeded by the placer, in placement order
}

// Width returns the map width.
func (d *Dungeon) Width() int { return d.Grid.Width() }

// Height returns the map height.
func (d *Dungeon) Height() int { return d.Grid.Height() }

// RoomIndexAt returns the index of the room whose interior holds the position,
// or -1 if it is not inside a room.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.InInterior(x, y) {
			return i
		}
	}
	return -1
}

// Generate builds a dungeon by rejection sampling up to params.MaxRooms rooms.
// A rejected room consumes its attempt. Each accepted room after the first is
// joined to the previously accepted one by an L-shaped corridor, and placer (if
// not nil) seeds entities into it. The spawn point is reserved so nothing is
// placed on it.
func Generate(ctx context.Context, params Params, rng RNG, placer *Placer) *Dungeon {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	d := &Dungeon{
		Grid:     NewTileGrid(params.Width, params.Height),
		Rooms:    make([]Rect, 0),
		Entities: make([]*Entity, 0),
	}

	rejected := 0
	if params.RoomMinSize > 0 && params.RoomMaxSize >= params.RoomMinSize {
		var spawnMarker *Entity
		for i := 0; i < params.MaxRooms; i++ {
			w := params.RoomMinSize + rng.Intn(params.RoomMaxSize-params.RoomMinSize+1)
			h := params.RoomMinSize + rng.Intn(params.RoomMaxSize-params.RoomMinSize+1)
			if w >= params.Width || h >= params.Height {
				rejected++
				continue
			}
			x := rng.Intn(params.Width - w)
			y := rng.Intn(params.Height - h)

			room := NewRect(x, y, w, h)
			if d.overlapsAny(room) {
				rejected++
				continue
			}

			d.carveRoom(room)
			newX, newY := room.Center()

			if len(d.Rooms) == 0 {
				d.Spawn = Point{X: newX, Y: newY}
				spawnMarker = &Entity{X: newX, Y: newY, Blocks: true}
			} else {
				prevX, prevY := d.Rooms[len(d.Rooms)-1].Center()
				d.carveCorridor(prevX, prevY, newX, newY, rng)
			}

			if placer != nil {
				occupied := append([]*Entity{spawnMarker}, d.Entities...)
				d.Entities = append(d.Entities, placer.Place(room, d.Grid, occupied, rng)...)
			}

			d.Rooms = append(d.Rooms, room)
		}
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", params.Width),
		attribute.Int("dungeon.height", params.Height),
		attribute.Int("dungeon.max_rooms", params.MaxRooms),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.rejected", rejected),
		attribute.Int("dungeon.entities", len(d.Entities)),
		attribute.Int("dungeon.spawn_x", d.Spawn.X),
		attribute.Int("dungeon.spawn_y", d.Spawn.Y),
		attribute.String("dungeon.fingerprint", fmt.Sprintf("%016x", d.Grid.Fingerprint())),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	if len(d.Rooms) == 0 {
		span.SetAttributes(attribute.String("warning", "no rooms placed, spawn defaults to origin"))
	}

	return d
}

// overlapsAny returns true if room intersects an accepted room.
func (d *Dungeon) overlapsAny(room Rect) bool {
	for _, other := range d.Rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom turns the interior of the room into floor.
func (d *Dungeon) carveRoom(room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			d.Grid.Set(x, y, TileFloor)
		}
	}
}

// carveCorridor joins two room centres, randomly choosing horizontal-then-vertical
// or vertical-then-horizontal.
func (d *Dungeon) carveCorridor(x1, y1, x2, y2 int, rng RNG) {
	if rng.Intn(2) == 0 {
		d.carveHorizontalTunnel(x1, x2, y1)
		d.carveVerticalTunnel(y1, y2, x2)
	} else {
		d.carveVerticalTunnel(y1, y2, x1)
		d.carveHorizontalTunnel(x1, x2, y2)
	}
}

// carveHorizontalTunnel carves row y between x1 and x2 inclusive.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.Grid.Set(x, y, TileFloor)
	}
}

// carveVerticalTunnel carves column x between y1 and y2 inclusive.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.Grid.Set(x, y, TileFloor)
	}
}
