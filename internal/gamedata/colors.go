package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexRGB splits a "#RRGGBB" or "RRGGBB" colour into its components.
func ParseHexRGB(hex string) (r, g, b int32, err error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: want 6 digits", hex)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return int32(v >> 16 & 0xFF), int32(v >> 8 & 0xFF), int32(v & 0xFF), nil
}

// ParseHexColor converts a hex colour string to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	r, g, b, err := ParseHexRGB(hex)
	if err != nil {
		return tcell.ColorDefault, err
	}
	return tcell.NewRGBColor(r, g, b), nil
}
