// Package mapdump writes a text picture of a session: what the player has
// explored, what is visible now and who stands there.
package mapdump

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/samdwyer/dungeonsight/internal/game"
	"github.com/samdwyer/dungeonsight/internal/visibility"
)

// Options control the dump.
type Options struct {
	// Reveal draws unexplored tiles as if they had been explored.
	Reveal bool
	// Color wraps glyphs in ANSI colour codes from the session palette.
	Color bool
	// Legend appends a summary line with the seed, level and visible monsters.
	Legend bool
}

// Write dumps the session's map to w, one line per row.
func Write(w io.Writer, s *game.Session, opts Options) error {
	bw := bufio.NewWriter(w)
	grid := s.Dungeon.Grid

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			glyph, hex := cell(s, x, y, opts.Reveal)
			if opts.Color && hex != "" {
				bw.WriteString(color.HEX(hex).Sprint(string(glyph)))
				continue
			}
			bw.WriteRune(glyph)
		}
		bw.WriteByte('\n')
	}

	if opts.Legend {
		fmt.Fprintf(bw, "seed %d  level %d  rooms %d  monsters %d/%d visible\n",
			s.Seed(), s.Level(), len(s.Dungeon.Rooms), len(s.VisibleMonsters()), len(s.Monsters))
	}

	return bw.Flush()
}

// cell returns the glyph drawn at (x, y) and its palette colour, if any.
func cell(s *game.Session, x, y int, reveal bool) (rune, string) {
	tier := s.Tier(x, y)
	if tier == visibility.TierHidden {
		if !reveal {
			return ' ', ""
		}
		tile := s.Dungeon.Grid.At(x, y)
		tile.Explored = true
		tier = visibility.Classify(tile, false)
	}

	if x == s.Player.X && y == s.Player.Y {
		hex, _ := s.Palette.Hex("player")
		return s.Player.Symbol, hex
	}
	// Monsters show only while their tile is in view.
	if m := s.MonsterAt(x, y); m != nil && s.Tracker.IsVisible(x, y) {
		return m.Symbol, m.Def.Color
	}

	hex, _ := s.Palette.Hex(tier.String())
	return s.Dungeon.Grid.At(x, y).Rune(), hex
}
