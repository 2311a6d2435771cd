package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/dungeonsight/internal/entity"
	"github.com/samdwyer/dungeonsight/internal/gamedata"
	"github.com/samdwyer/dungeonsight/internal/visibility"
	"github.com/samdwyer/dungeonsight/internal/world"
)

func newTestSession(t *testing.T, seed int64, monsters int) *Session {
	t.Helper()
	cfg, err := DefaultConfig()
	require.NoError(t, err)
	cfg.Seed = seed
	cfg.MaxRoomMonsters = monsters

	s, err := New(context.Background(), cfg)
	require.NoError(t, err)
	return s
}

// addMonster drops a blocking monster at (x, y).
func addMonster(t *testing.T, s *Session, x, y int) *entity.Monster {
	t.Helper()
	def := &gamedata.MonsterDef{ID: "orc", Name: "Orc", Glyph: "o", Color: "#FF0000", Blocks: true, SpawnWeight: 1}
	m := entity.NewMonster(def, &world.Entity{X: x, Y: y, Blocks: true}, s.Dungeon.RoomIndexAt(x, y))
	s.Monsters = append(s.Monsters, m)
	s.entities = append(s.entities, m.Entity)
	return m
}

func TestNewIsReproducible(t *testing.T) {
	a := newTestSession(t, 42, 3)
	b := newTestSession(t, 42, 3)

	assert.Equal(t, a.Dungeon.Grid.Fingerprint(), b.Dungeon.Grid.Fingerprint())
	assert.Equal(t, a.Dungeon.Rooms, b.Dungeon.Rooms)
	require.Len(t, b.Monsters, len(a.Monsters))
	for i := range a.Monsters {
		assert.Equal(t, a.Monsters[i].ID(), b.Monsters[i].ID())
		assert.Equal(t, a.Monsters[i].X, b.Monsters[i].X)
		assert.Equal(t, a.Monsters[i].Y, b.Monsters[i].Y)
	}
	assert.NotEqual(t, a.ID, b.ID, "each session gets its own id")
}

func TestNewPlacesPlayerAtSpawn(t *testing.T) {
	s := newTestSession(t, 7, 3)

	require.NotEmpty(t, s.Dungeon.Rooms)
	cx, cy := s.Dungeon.Rooms[0].Center()
	assert.Equal(t, cx, s.Player.X)
	assert.Equal(t, cy, s.Player.Y)
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, int64(7), s.Seed())

	assert.Equal(t, visibility.StateFresh, s.Tracker.State())
	assert.True(t, s.Dungeon.Grid.At(cx, cy).Explored)
	assert.Nil(t, s.MonsterAt(cx, cy), "spawn is never occupied by a monster")
}

func TestNewZeroSeedPicksOne(t *testing.T) {
	s := newTestSession(t, 0, 0)
	assert.NotZero(t, s.Seed())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg, err := DefaultConfig()
	require.NoError(t, err)
	cfg.Dungeon.Width = -1

	_, err = New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestMonstersCarryDefinitions(t *testing.T) {
	s := newTestSession(t, 99, 3)

	require.Len(t, s.Monsters, len(s.Dungeon.Entities))
	for _, m := range s.Monsters {
		assert.Contains(t, []string{"orc", "troll"}, m.ID())
		assert.True(t, m.Blocks)
		assert.True(t, m.Alive)
		assert.True(t, s.IsBlocked(m.X, m.Y))
		require.GreaterOrEqual(t, m.RoomIndex, 0)
		assert.True(t, s.Dungeon.Rooms[m.RoomIndex].InInterior(m.X, m.Y))
	}
}

func TestMoveByIntoWall(t *testing.T) {
	s := newTestSession(t, 3, 0)

	// Walk left until the room wall stops the player.
	moves := 0
	for s.MoveBy(context.Background(), -1, 0) {
		moves++
		require.Less(t, moves, s.Dungeon.Width())
	}
	assert.False(t, s.Dungeon.Grid.IsPassable(s.Player.X-1, s.Player.Y))
}

func TestMoveByIntoMonster(t *testing.T) {
	s := newTestSession(t, 5, 0)
	x, y := s.Player.X+1, s.Player.Y
	require.True(t, s.Dungeon.Grid.IsPassable(x, y))

	addMonster(t, s, x, y)

	assert.False(t, s.MoveBy(context.Background(), 1, 0))
	assert.Equal(t, x-1, s.Player.X)
	assert.Equal(t, visibility.StateFresh, s.Tracker.State(), "refused move keeps visibility")
}

func TestMoveByOutsideMap(t *testing.T) {
	s := newTestSession(t, 5, 0)
	assert.False(t, s.MoveBy(context.Background(), -1000, 0))
}

func TestMoveThenRefresh(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, 11, 0)

	recomputed, err := s.Refresh(ctx)
	require.NoError(t, err)
	assert.False(t, recomputed, "nothing moved since New")

	require.True(t, s.MoveBy(ctx, 0, 1))
	assert.Equal(t, visibility.StateStale, s.Tracker.State())

	recomputed, err = s.Refresh(ctx)
	require.NoError(t, err)
	assert.True(t, recomputed)
	assert.Equal(t, world.Point{X: s.Player.X, Y: s.Player.Y}, s.Tracker.Position())
	assert.True(t, s.Dungeon.Grid.At(s.Player.X, s.Player.Y).Explored)
	assert.Equal(t, visibility.TierVisibleFloor, s.Tier(s.Player.X, s.Player.Y))
}

func TestStepAwayAndBackKeepsVisibility(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, 11, 0)

	require.True(t, s.MoveBy(ctx, 0, 1))
	require.True(t, s.MoveBy(ctx, 0, -1))
	assert.Equal(t, visibility.StateStale, s.Tracker.State())

	recomputed, err := s.Refresh(ctx)
	require.NoError(t, err)
	assert.False(t, recomputed)
	assert.Equal(t, visibility.StateFresh, s.Tracker.State())
}

func TestVisibleMonsters(t *testing.T) {
	s := newTestSession(t, 13, 0)
	assert.Empty(t, s.VisibleMonsters())

	near := addMonster(t, s, s.Player.X+1, s.Player.Y)
	visible := s.VisibleMonsters()
	require.Len(t, visible, 1)
	assert.Same(t, near, visible[0])

	near.Alive = false
	assert.Empty(t, s.VisibleMonsters(), "dead monsters are not reported")
}

func TestVisibleMonstersMatchesTracker(t *testing.T) {
	s := newTestSession(t, 21, 3)

	visible := s.VisibleMonsters()
	count := 0
	for _, m := range s.Monsters {
		if s.Tracker.IsVisible(m.X, m.Y) {
			count++
		}
	}
	assert.Len(t, visible, count)
}

func TestRegenerate(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, 17, 3)
	first := s.Dungeon.Grid.Fingerprint()

	require.NoError(t, s.Regenerate(ctx))

	assert.Equal(t, 2, s.Level())
	assert.NotEqual(t, first, s.Dungeon.Grid.Fingerprint(), "next level comes from the continued stream")
	assert.Equal(t, s.Dungeon.Spawn, world.Point{X: s.Player.X, Y: s.Player.Y})
	assert.Equal(t, visibility.StateFresh, s.Tracker.State())
	assert.True(t, s.Dungeon.Grid.At(s.Player.X, s.Player.Y).Explored)
}

func TestNewRecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	s := newTestSession(t, 42, 3)

	names := make(map[string]sdktrace.ReadOnlySpan)
	for _, span := range recorder.Ended() {
		names[span.Name()] = span
	}
	for _, want := range []string{"session.new", "session.regenerate", "dungeon.generate", "visibility.refresh"} {
		assert.Contains(t, names, want)
	}

	newSpan, ok := names["session.new"]
	require.True(t, ok)
	assert.Contains(t, newSpan.Attributes(), attribute.String("session.id", s.ID.String()))
	assert.Contains(t, newSpan.Attributes(), attribute.Int64("session.seed", 42))
}
