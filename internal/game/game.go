// Package game ties dungeon generation, movement and visibility into a session.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsight/internal/entity"
	"github.com/samdwyer/dungeonsight/internal/fov"
	"github.com/samdwyer/dungeonsight/internal/gamedata"
	"github.com/samdwyer/dungeonsight/internal/telemetry"
	"github.com/samdwyer/dungeonsight/internal/visibility"
	"github.com/samdwyer/dungeonsight/internal/world"
)

// Session holds the state of one explored dungeon.
type Session struct {
	ID      uuid.UUID
	Config  Config
	Palette gamedata.Palette

	Dungeon  *world.Dungeon
	Player   *entity.Player
	Monsters []*entity.Monster
	Tracker  *visibility.Tracker

	seed     int64
	rng      *rand.Rand
	spawns   *gamedata.SpawnTable
	placer   *world.Placer
	entities []*world.Entity // player first, then monster bodies
	level    int
}

// New creates a session and generates its first dungeon.
func New(ctx context.Context, cfg Config) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.new")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	spawns, err := gamedata.LoadSpawnTable()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load monsters: %w", err)
	}
	palette, err := gamedata.LoadPalette()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load palette: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		ID:       uuid.New(),
		Config:   cfg,
		Palette:  palette,
		seed:     seed,
		rng:      rand.New(rand.NewSource(seed)),
		spawns:   spawns,
		placer:   world.NewPlacer(cfg.MaxRoomMonsters),
	}

	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.Int64("session.seed", seed),
		attribute.String("fov.algorithm", cfg.FOVAlgorithm.String()),
	)

	if err := s.Regenerate(ctx); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return s, nil
}

// Seed returns the seed the session's random stream started from.
func (s *Session) Seed() int64 { return s.seed }

// Level returns how many dungeons this session has generated.
func (s *Session) Level() int { return s.level }

// Regenerate discards the current dungeon and builds the next one from the
// session's random stream. The player starts at the new spawn point and
// visibility is computed there.
func (s *Session) Regenerate(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.regenerate")
	defer span.End()

	d := world.Generate(ctx, s.Config.Dungeon, s.rng, s.placer)

	monsters := make([]*entity.Monster, 0, len(d.Entities))
	for _, body := range d.Entities {
		def := s.spawns.Pick(s.rng)
		monsters = append(monsters, entity.NewMonster(def, body, d.RoomIndexAt(body.X, body.Y)))
	}

	player := entity.NewPlayer(d.Spawn.X, d.Spawn.Y)
	entities := make([]*world.Entity, 0, len(monsters)+1)
	entities = append(entities, player.Entity)
	for _, m := range monsters {
		entities = append(entities, m.Entity)
	}

	fovMap := fov.NewMap(d.Width(), d.Height(), s.Config.FOVAlgorithm)
	tracker := visibility.NewTracker(fovMap, s.Config.FOVRadius, s.Config.LightWalls)
	if err := tracker.SyncTransparency(d.Grid); err != nil {
		span.RecordError(err)
		return fmt.Errorf("sync transparency: %w", err)
	}

	s.Dungeon = d
	s.Player = player
	s.Monsters = monsters
	s.entities = entities
	s.Tracker = tracker
	s.level++

	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.Int("session.level", s.level),
		attribute.Int("dungeon.rooms", len(d.Rooms)),
		attribute.Int("session.monsters", len(monsters)),
	)

	if _, err := s.Refresh(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// IsBlocked reports whether (x, y) is a blocked tile or holds a blocking entity.
// The coordinates must be inside the map.
func (s *Session) IsBlocked(x, y int) bool {
	return world.IsBlocked(s.Dungeon.Grid, s.entities, x, y)
}

// MoveBy attempts to move the player by the given delta. Moves that leave the
// map or end on a blocked position are refused. Visibility goes stale after a
// successful move until the next Refresh.
func (s *Session) MoveBy(ctx context.Context, dx, dy int) bool {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.move")
	defer span.End()

	newX := s.Player.X + dx
	newY := s.Player.Y + dy

	moved := s.Dungeon.Grid.InBounds(newX, newY) && !s.IsBlocked(newX, newY)
	if moved {
		s.Player.Move(dx, dy)
		s.Tracker.Invalidate()
	}

	span.SetAttributes(
		attribute.Int("move.dx", dx),
		attribute.Int("move.dy", dy),
		attribute.Int("player.x", s.Player.X),
		attribute.Int("player.y", s.Player.Y),
		attribute.Bool("move.success", moved),
	)
	return moved
}

// Refresh recomputes visibility from the player's position if it has changed
// and folds the result into the explored flags.
func (s *Session) Refresh(ctx context.Context) (bool, error) {
	return s.Tracker.Refresh(ctx, s.Dungeon.Grid, s.Player.X, s.Player.Y)
}

// VisibleMonsters returns the living monsters standing on visible tiles.
func (s *Session) VisibleMonsters() []*entity.Monster {
	var visible []*entity.Monster
	for _, m := range s.Monsters {
		if m.Alive && s.Tracker.IsVisible(m.X, m.Y) {
			visible = append(visible, m)
		}
	}
	return visible
}

// MonsterAt returns the living monster at (x, y), or nil.
func (s *Session) MonsterAt(x, y int) *entity.Monster {
	for _, m := range s.Monsters {
		if m.Alive && m.X == x && m.Y == y {
			return m
		}
	}
	return nil
}

// Tier returns the display tier of the tile at (x, y).
func (s *Session) Tier(x, y int) visibility.Tier {
	return s.Tracker.Tier(s.Dungeon.Grid, x, y)
}
