package paint_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	. "github.com/zucenko/retrodesk/paint"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		err  error
	}{
		{in: "#000000", want: color.RGBA{A: 0xff}},
		{in: "FF8040", want: color.RGBA{R: 0xff, G: 0x80, B: 0x40, A: 0xff}},
		{in: "#0080ff", want: color.RGBA{G: 0x80, B: 0xff, A: 0xff}},
		{in: "  Teal ", want: color.RGBA{G: 0x80, B: 0x80, A: 0xff}},
		{in: "#GG0000", err: ErrColor},
		{in: "#FFF", err: ErrColor},
		{in: "", err: ErrColor},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got, err := ParseColor(test.in)
			if !errors.Is(err, test.err) {
				t.Fatalf("Unexpected ParseColor error:\nwant: %v,\ngot: %v", test.err, err)
			}
			assert.Equal(t, test.want, got)
		})
	}
}

func TestPalette(t *testing.T) {
	assert.Len(t, Palette, 28)
	assert.Equal(t, "#000000", Hex(Palette[0]))
	assert.Equal(t, "#FF8040", Hex(Palette[27]))
	for _, c := range Palette {
		assert.Equal(t, uint8(0xff), c.A)
	}
}
