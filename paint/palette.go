package paint

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrColor occurs when a colour string can't be parsed
var ErrColor = errors.New("unrecognised colour")

// Palette is the classic 28 swatch colour box.
var Palette = mustParseAll(
	"#000000", "#808080", "#800000", "#808000", "#008000", "#008080", "#000080", "#800080",
	"#808040", "#004040", "#0080FF", "#004080", "#8000FF", "#804000", "#FFFFFF", "#C0C0C0",
	"#FF0000", "#FFFF00", "#00FF00", "#00FFFF", "#0000FF", "#FF00FF", "#FFFF80", "#00FF80",
	"#80FFFF", "#8080FF", "#FF0080", "#FF8040",
)

// ParseColor accepts "#RRGGBB", "RRGGBB" or a CSS colour name.
// The result is always opaque.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return opaque(c), nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Hex formats c as "#RRGGBB".
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 0xff
	return c
}

func mustParseAll(hexes ...string) []color.RGBA {
	colors := make([]color.RGBA, len(hexes))
	for i, h := range hexes {
		c, err := ParseColor(h)
		if err != nil {
			panic(err)
		}
		colors[i] = c
	}
	return colors
}
