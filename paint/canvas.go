package paint

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/retrodesk/model"
	"golang.org/x/image/colornames"
)

var (
	// ErrCanvasSize occurs when a canvas is created with non-positive dimensions
	ErrCanvasSize = errors.New("canvas size must be positive")
	// ErrOutOfBounds occurs when a stroke or fill starts outside the canvas
	ErrOutOfBounds = errors.New("point is outside the canvas")
	// ErrUnknownTool occurs when selecting a tool that does not exist
	ErrUnknownTool = errors.New("unknown tool")
	// ErrBrushSize occurs when the stroke size is less than one pixel
	ErrBrushSize = errors.New("brush size must be at least 1")
)

const DefaultSize = 2

// Canvas is a raster editor: a pixel buffer, the current tool and an undo
// history. It is not safe for concurrent use.
type Canvas struct {
	img        *image.RGBA
	background color.RGBA

	tool      model.Tool
	primary   color.RGBA
	secondary color.RGBA
	size      int

	drawing      bool
	lastX, lastY int

	history   *History
	fillLimit int
}

type Option func(*Canvas)

// WithBackground sets the colour of a blank canvas and of erased pixels.
func WithBackground(c color.RGBA) Option {
	return func(cv *Canvas) {
		cv.background = c
	}
}

// WithHistoryLimit bounds the number of kept snapshots.
func WithHistoryLimit(n int) Option {
	return func(cv *Canvas) {
		cv.history = NewHistory(n)
	}
}

// WithFillLimit caps how many pixels a single flood fill may paint.
// Non-positive values keep the default.
func WithFillLimit(n int) Option {
	return func(cv *Canvas) {
		if n > 0 {
			cv.fillLimit = n
		}
	}
}

// New creates a blank width x height canvas and records it as the first
// history snapshot.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrCanvasSize, width, height)
	}
	cv := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: colornames.White,
		tool:       model.Pencil,
		primary:    colornames.Black,
		secondary:  colornames.White,
		size:       DefaultSize,
		fillLimit:  DefaultFillLimit,
	}
	for _, opt := range opts {
		opt(cv)
	}
	if cv.history == nil {
		cv.history = NewHistory(DefaultHistoryLimit)
	}
	cv.fillRect(cv.img.Bounds(), cv.background)
	cv.snapshot()
	return cv, nil
}

func (cv *Canvas) Bounds() image.Rectangle {
	return cv.img.Bounds()
}

// Image returns a copy of the current pixel buffer.
func (cv *Canvas) Image() *image.RGBA {
	out := image.NewRGBA(cv.img.Bounds())
	copy(out.Pix, cv.img.Pix)
	return out
}

// At returns the colour of one pixel.
func (cv *Canvas) At(x, y int) color.RGBA {
	return cv.img.RGBAAt(x, y)
}

func (cv *Canvas) Tool() model.Tool {
	return cv.tool
}

// SelectTool switches the tool used by the next stroke.
func (cv *Canvas) SelectTool(t model.Tool) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTool, t)
	}
	cv.tool = t
	return nil
}

func (cv *Canvas) Color() color.RGBA {
	return cv.primary
}

// SetColor sets the primary colour. Alpha is forced to opaque.
func (cv *Canvas) SetColor(c color.RGBA) {
	cv.primary = opaque(c)
}

// SetColorString parses s with ParseColor and makes it primary.
func (cv *Canvas) SetColorString(s string) error {
	c, err := ParseColor(s)
	if err != nil {
		return err
	}
	cv.primary = c
	return nil
}

func (cv *Canvas) SecondaryColor() color.RGBA {
	return cv.secondary
}

func (cv *Canvas) SetSecondaryColor(c color.RGBA) {
	cv.secondary = opaque(c)
}

// SwapColors exchanges primary and secondary colours.
func (cv *Canvas) SwapColors() {
	cv.primary, cv.secondary = cv.secondary, cv.primary
}

func (cv *Canvas) Size() int {
	return cv.size
}

// SetSize sets the stroke width in pixels.
func (cv *Canvas) SetSize(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrBrushSize, n)
	}
	cv.size = n
	return nil
}

// Drawing reports whether a stroke is in progress.
func (cv *Canvas) Drawing() bool {
	return cv.drawing
}

// BeginStroke starts a stroke at (x, y). With the fill tool it fills right
// away and no stroke is left open.
func (cv *Canvas) BeginStroke(x, y int) (image.Rectangle, error) {
	if !image.Pt(x, y).In(cv.img.Bounds()) {
		return image.ZR, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if cv.tool == model.Fill {
		res, err := cv.FloodFill(x, y)
		return res.Damage, err
	}
	cv.drawing = true
	cv.lastX, cv.lastY = x, y
	return image.ZR, nil
}

// ContinueStroke extends the open stroke to (x, y). Points outside the
// canvas are allowed; only the visible part is painted.
func (cv *Canvas) ContinueStroke(x, y int) image.Rectangle {
	if !cv.drawing {
		return image.ZR
	}
	var damage image.Rectangle
	switch cv.tool {
	case model.Pencil, model.Brush:
		damage = cv.line(cv.lastX, cv.lastY, x, y, cv.size, cv.primary)
	case model.Eraser:
		r := image.Rect(x-cv.size, y-cv.size, x+cv.size, y+cv.size)
		damage = cv.fillRect(r, cv.background)
	}
	cv.lastX, cv.lastY = x, y
	return damage
}

// EndStroke closes the open stroke and records a snapshot. It reports
// whether a stroke was open.
func (cv *Canvas) EndStroke() bool {
	if !cv.drawing {
		return false
	}
	cv.drawing = false
	cv.snapshot()
	return true
}

// Undo restores the previous snapshot. It is a no-op at the oldest one.
func (cv *Canvas) Undo() (image.Rectangle, bool) {
	pix, ok := cv.history.Undo()
	if !ok {
		return image.ZR, false
	}
	copy(cv.img.Pix, pix)
	return cv.img.Bounds(), true
}

// Redo restores the snapshot undone last, if nothing was drawn since.
func (cv *Canvas) Redo() (image.Rectangle, bool) {
	pix, ok := cv.history.Redo()
	if !ok {
		return image.ZR, false
	}
	copy(cv.img.Pix, pix)
	return cv.img.Bounds(), true
}

// Clear paints the whole canvas with the background colour and records a
// snapshot. Asking the user first is up to the caller.
func (cv *Canvas) Clear() image.Rectangle {
	cv.drawing = false
	damage := cv.fillRect(cv.img.Bounds(), cv.background)
	cv.snapshot()
	log.Debug("canvas cleared")
	return damage
}

// HistoryStep returns the cursor and length of the undo history.
func (cv *Canvas) HistoryStep() (int, int) {
	return cv.history.Step(), cv.history.Len()
}

func (cv *Canvas) snapshot() {
	cv.history.Push(cv.img.Pix)
}

// fillRect paints r clipped to the canvas and returns the painted area.
func (cv *Canvas) fillRect(r image.Rectangle, c color.RGBA) image.Rectangle {
	r = r.Intersect(cv.img.Bounds())
	if r.Empty() {
		return image.ZR
	}
	draw.Draw(cv.img, r, image.NewUniform(c), image.ZP, draw.Src)
	return r
}
