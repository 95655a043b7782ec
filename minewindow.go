package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/zucenko/retrodesk/model"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
)

const (
	cellSize  = 24
	windowPad = 8
	titleH    = 22
	headerH   = 36
	faceSize  = 28
)

var numberColors = []color.Color{
	colornames.Black, // unused, zero cells show no number
	colornames.Blue,
	colornames.Green,
	colornames.Red,
	colornames.Navy,
	colornames.Maroon,
	colornames.Teal,
	colornames.Black,
	colornames.Gray,
}

var faces = map[model.Face]string{
	model.Smile: ":)",
	model.Dead:  "X(",
	model.Cool:  "B)",
}

// MineWindow lays out and paints the Minesweeper window.
type MineWindow struct {
	origin     image.Point
	rows, cols int
}

func (w *MineWindow) Bounds() image.Rectangle {
	width := w.cols*cellSize + 2*windowPad
	height := titleH + headerH + w.rows*cellSize + 2*windowPad
	return image.Rectangle{Min: w.origin, Max: w.origin.Add(image.Pt(width, height))}
}

func (w *MineWindow) gridOrigin() image.Point {
	return w.origin.Add(image.Pt(windowPad, titleH+headerH+windowPad))
}

func (w *MineWindow) FaceRect() image.Rectangle {
	b := w.Bounds()
	cx := (b.Min.X + b.Max.X) / 2
	y := b.Min.Y + titleH + (headerH-faceSize)/2
	return image.Rect(cx-faceSize/2, y, cx+faceSize/2, y+faceSize)
}

// CellAt maps a screen point to a grid cell.
func (w *MineWindow) CellAt(p image.Point) (int, int, bool) {
	g := w.gridOrigin()
	grid := image.Rectangle{Min: g, Max: g.Add(image.Pt(w.cols*cellSize, w.rows*cellSize))}
	if !p.In(grid) {
		return 0, 0, false
	}
	return (p.Y - g.Y) / cellSize, (p.X - g.X) / cellSize, true
}

func (w *MineWindow) Draw(screen *ebiten.Image, frame *Nine, face font.Face, state *model.FieldState, elapsed int, bannerAlpha float64) {
	w.rows, w.cols = state.Rows, state.Cols
	b := w.Bounds()

	frame.SetRect(b)
	frame.Draw(screen)
	ebitenutil.DrawRect(screen, float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), titleH, frameBlue)
	text.Draw(screen, "Minesweeper", face, b.Min.X+6, b.Min.Y+16, colornames.White)

	counterY := b.Min.Y + titleH + 25
	text.Draw(screen, counter(state.MinesRemaining()), face, b.Min.X+windowPad, counterY, colornames.Red)
	text.Draw(screen, counter(elapsed), face, b.Max.X-windowPad-36, counterY, colornames.Red)

	fr := w.FaceRect()
	ebitenutil.DrawRect(screen, float64(fr.Min.X), float64(fr.Min.Y), faceSize, faceSize, colornames.Silver)
	text.Draw(screen, faces[state.Face()], face, fr.Min.X+5, fr.Min.Y+20, colornames.Black)

	g := w.gridOrigin()
	for r := 0; r < state.Rows; r++ {
		for c := 0; c < state.Cols; c++ {
			x, y := g.X+c*cellSize, g.Y+r*cellSize
			drawCell(screen, face, state.Cells[r][c], x, y)
		}
	}

	if state.IsOver && bannerAlpha > 0 {
		msg := "GAME OVER"
		if state.Outcome == model.Win {
			msg = "YOU WIN!"
		}
		a := uint8(bannerAlpha * 0xff)
		ebitenutil.DrawRect(screen, float64(g.X), float64(g.Y+state.Rows*cellSize/2-16), float64(state.Cols*cellSize), 28, color.RGBA{0, 0, 0, a / 2})
		text.Draw(screen, msg, face, g.X+8, g.Y+state.Rows*cellSize/2+4, color.RGBA{0xff, 0xff, 0xff, a})
	}
}

func drawCell(screen *ebiten.Image, face font.Face, cell model.Cell, x, y int) {
	fx, fy := float64(x), float64(y)
	switch {
	case cell.Revealed && cell.Mine:
		ebitenutil.DrawRect(screen, fx, fy, cellSize-1, cellSize-1, colornames.Red)
		text.Draw(screen, "*", face, x+7, y+19, colornames.Black)
	case cell.Revealed:
		ebitenutil.DrawRect(screen, fx, fy, cellSize-1, cellSize-1, colornames.Gainsboro)
		if cell.NeighborMines > 0 {
			text.Draw(screen, fmt.Sprint(cell.NeighborMines), face, x+7, y+18, numberColors[cell.NeighborMines])
		}
	case cell.Flagged:
		ebitenutil.DrawRect(screen, fx, fy, cellSize-1, cellSize-1, colornames.Silver)
		text.Draw(screen, "F", face, x+7, y+18, colornames.Red)
	default:
		ebitenutil.DrawRect(screen, fx, fy, cellSize-1, cellSize-1, colornames.Silver)
	}
}

// counter formats a 3 digit LED value, clamped to what fits.
func counter(n int) string {
	if n > 999 {
		n = 999
	}
	if n < -99 {
		n = -99
	}
	return fmt.Sprintf("%03d", n)
}
