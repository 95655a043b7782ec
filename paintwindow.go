package main

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/zucenko/retrodesk/model"
	"github.com/zucenko/retrodesk/paint"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
)

const (
	toolW       = 28
	toolH       = 24
	swatchSize  = 14
	swatchCols  = 14
	previewSize = 28
	statusH     = 18
)

var tools = []model.Tool{model.Pencil, model.Brush, model.Eraser, model.Fill}

// PaintWindow lays out and paints the Paint window. The canvas pixels are
// kept in an ebiten image refreshed only when the engine reports damage.
type PaintWindow struct {
	origin    image.Point
	canvas    image.Rectangle
	canvasImg *ebiten.Image
}

func NewPaintWindow(origin image.Point, canvasBounds image.Rectangle) (*PaintWindow, error) {
	img, err := ebiten.NewImage(canvasBounds.Dx(), canvasBounds.Dy(), ebiten.FilterNearest)
	if err != nil {
		return nil, err
	}
	return &PaintWindow{origin: origin, canvas: canvasBounds, canvasImg: img}, nil
}

func (w *PaintWindow) toolsY() int   { return w.origin.Y + titleH + 4 }
func (w *PaintWindow) paletteY() int { return w.toolsY() + toolH + 4 }
func (w *PaintWindow) canvasY() int  { return w.paletteY() + 2*swatchSize + 6 }

func (w *PaintWindow) Bounds() image.Rectangle {
	inner := w.canvas.Dx()
	if minW := previewSize + 8 + swatchCols*swatchSize; inner < minW {
		inner = minW
	}
	height := w.canvasY() - w.origin.Y + w.canvas.Dy() + statusH + windowPad
	return image.Rectangle{Min: w.origin, Max: w.origin.Add(image.Pt(inner+2*windowPad, height))}
}

func (w *PaintWindow) canvasOrigin() image.Point {
	return image.Pt(w.origin.X+windowPad, w.canvasY())
}

// CanvasRect is where the canvas is shown on screen.
func (w *PaintWindow) CanvasRect() image.Rectangle {
	return w.canvas.Add(w.canvasOrigin())
}

// ToCanvas converts a screen point to canvas coordinates. The result may
// lie outside the canvas.
func (w *PaintWindow) ToCanvas(p image.Point) image.Point {
	return p.Sub(w.canvasOrigin())
}

func (w *PaintWindow) toolRect(i int) image.Rectangle {
	x := w.origin.X + windowPad + i*(toolW+4)
	return image.Rect(x, w.toolsY(), x+toolW, w.toolsY()+toolH)
}

func (w *PaintWindow) ToolAt(p image.Point) (model.Tool, bool) {
	for i, t := range tools {
		if p.In(w.toolRect(i)) {
			return t, true
		}
	}
	return 0, false
}

func (w *PaintWindow) swatchRect(i int) image.Rectangle {
	x := w.origin.X + windowPad + previewSize + 8 + (i%swatchCols)*swatchSize
	y := w.paletteY() + (i/swatchCols)*swatchSize
	return image.Rect(x, y, x+swatchSize, y+swatchSize)
}

func (w *PaintWindow) SwatchAt(p image.Point) (int, bool) {
	for i := range paint.Palette {
		if p.In(w.swatchRect(i)) {
			return i, true
		}
	}
	return 0, false
}

// Refresh uploads the canvas pixels.
func (w *PaintWindow) Refresh(cv *paint.Canvas) error {
	return w.canvasImg.ReplacePixels(cv.Image().Pix)
}

func (w *PaintWindow) Draw(screen *ebiten.Image, frame *Nine, face font.Face, cv *paint.Canvas, confirmClear bool) {
	b := w.Bounds()
	frame.SetRect(b)
	frame.Draw(screen)
	ebitenutil.DrawRect(screen, float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), titleH, frameBlue)
	text.Draw(screen, "untitled - Paint", face, b.Min.X+6, b.Min.Y+16, colornames.White)

	for i, t := range tools {
		r := w.toolRect(i)
		bg := colornames.Silver
		if t == cv.Tool() {
			bg = colornames.Lightsteelblue
		}
		ebitenutil.DrawRect(screen, float64(r.Min.X), float64(r.Min.Y), toolW, toolH, bg)
		text.Draw(screen, fmt.Sprint(i+1), face, r.Min.X+9, r.Min.Y+18, colornames.Black)
	}

	px, py := float64(w.origin.X+windowPad), float64(w.paletteY())
	ebitenutil.DrawRect(screen, px+10, py+10, 16, 16, cv.SecondaryColor())
	ebitenutil.DrawRect(screen, px, py, 16, 16, cv.Color())
	for i, c := range paint.Palette {
		r := w.swatchRect(i)
		ebitenutil.DrawRect(screen, float64(r.Min.X), float64(r.Min.Y), swatchSize-1, swatchSize-1, c)
	}

	op := &ebiten.DrawImageOptions{}
	o := w.canvasOrigin()
	op.GeoM.Translate(float64(o.X), float64(o.Y))
	screen.DrawImage(w.canvasImg, op)

	step, length := cv.HistoryStep()
	status := fmt.Sprintf("%s  size %d  %s  undo %d/%d", cv.Tool().Name(), cv.Size(), paint.Hex(cv.Color()), step, length-1)
	if confirmClear {
		status = "Clear the whole drawing? Enter = OK, Esc = Cancel"
	}
	text.Draw(screen, status, face, o.X, o.Y+w.canvas.Dy()+statusH-4, colornames.Black)
}
