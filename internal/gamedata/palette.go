package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Palette maps shading keys ("darkWall", "lightGround", "player", ...) to hex
// colours.
type Palette map[string]string

// LoadPalette loads the embedded palette.json and checks every colour parses.
func LoadPalette() (Palette, error) {
	p, err := Load[Palette]("palette.json")
	if err != nil {
		return nil, err
	}
	for key, hex := range p {
		if _, err := ParseHexColor(hex); err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", key, err)
		}
	}
	return p, nil
}

// Hex returns the hex colour for key.
func (p Palette) Hex(key string) (string, bool) {
	hex, ok := p[key]
	return hex, ok
}

// TCellColor returns the colour for key, or tcell.ColorDefault if it is missing.
func (p Palette) TCellColor(key string) tcell.Color {
	hex, ok := p[key]
	if !ok {
		return tcell.ColorDefault
	}
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	return color
}
