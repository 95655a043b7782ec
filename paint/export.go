package paint

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// ErrFormat occurs when an export format is not supported
var ErrFormat = errors.New("unsupported image format")

type Format int

const (
	PNG Format = iota
	BMP
)

func (f Format) Ext() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	default:
		return fmt.Sprintf("n/a:%d", f)
	}
}

// ParseFormat maps "png" or "bmp" (any case, optional dot) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	}
	return PNG, fmt.Errorf("%w: %q", ErrFormat, s)
}

// ExportImage encodes the current buffer. It does not touch the canvas.
func (cv *Canvas) ExportImage(w io.Writer, f Format) error {
	img := cv.Image()
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %d", ErrFormat, f)
	}
}

// ExportName is the file name used when saving a drawing made at t.
func ExportName(t time.Time, f Format) string {
	return fmt.Sprintf("paint-%d.%s", t.UnixNano()/int64(time.Millisecond), f.Ext())
}
