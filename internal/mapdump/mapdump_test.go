package mapdump

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonsight/internal/game"
)

func newSession(t *testing.T, seed int64) *game.Session {
	t.Helper()
	cfg, err := game.DefaultConfig()
	require.NoError(t, err)
	cfg.Seed = seed

	s, err := game.New(context.Background(), cfg)
	require.NoError(t, err)
	return s
}

func dump(t *testing.T, s *game.Session, opts Options) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, s, opts))
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestWriteShape(t *testing.T) {
	s := newSession(t, 42)
	lines := dump(t, s, Options{})

	require.Len(t, lines, s.Dungeon.Height())
	for _, line := range lines {
		assert.Len(t, []rune(line), s.Dungeon.Width())
	}
	assert.Equal(t, '@', []rune(lines[s.Player.Y])[s.Player.X])
}

func TestWriteHidesUnexplored(t *testing.T) {
	s := newSession(t, 42)
	lines := dump(t, s, Options{})

	for y, line := range lines {
		for x, r := range []rune(line) {
			if !s.Dungeon.Grid.At(x, y).Explored {
				assert.Equal(t, ' ', r, "unexplored tile at (%d,%d) drawn", x, y)
			}
		}
	}
}

func TestWriteReveal(t *testing.T) {
	s := newSession(t, 42)
	lines := dump(t, s, Options{Reveal: true})

	for y, line := range lines {
		for x, r := range []rune(line) {
			assert.NotEqual(t, ' ', r, "revealed tile at (%d,%d) is blank", x, y)
		}
	}
}

func TestWriteMonstersOnlyWhenVisible(t *testing.T) {
	s := newSession(t, 7)
	lines := dump(t, s, Options{Reveal: true})

	for _, m := range s.Monsters {
		got := []rune(lines[m.Y])[m.X]
		if s.Tracker.IsVisible(m.X, m.Y) {
			assert.Equal(t, m.Symbol, got)
		} else {
			assert.Equal(t, s.Dungeon.Grid.At(m.X, m.Y).Rune(), got)
		}
	}
}

func TestWriteLegend(t *testing.T) {
	s := newSession(t, 42)
	lines := dump(t, s, Options{Legend: true})

	require.Len(t, lines, s.Dungeon.Height()+1)
	assert.Contains(t, lines[len(lines)-1], "seed 42")
	assert.Contains(t, lines[len(lines)-1], "level 1")
}

func TestWriteColorKeepsGlyphs(t *testing.T) {
	s := newSession(t, 42)

	var plain, colored bytes.Buffer
	require.NoError(t, Write(&plain, s, Options{}))
	require.NoError(t, Write(&colored, s, Options{Color: true}))

	assert.Equal(t, plain.String(), color.ClearCode(colored.String()))
}
