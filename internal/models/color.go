package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// ParseHex parses "#RGB" or "#RRGGBB"; the leading '#' is optional.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func mustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultPalette is the fixed eight-color cycle assigned to schedule
// blocks in parse order.
var DefaultPalette = []Color{
	mustHex("#FFF200"), // yellow
	mustHex("#B5E61D"), // green
	mustHex("#FFAEC9"), // pink
	mustHex("#FFC90E"), // orange
	mustHex("#ED1C24"), // red
	mustHex("#99D9EA"), // blue
	mustHex("#FFD54F"), // light yellow
	mustHex("#90CAF9"), // light blue
}
