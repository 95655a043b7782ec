package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

var (
	frameBlue  = color.RGBA{0x00, 0x54, 0xe3, 0xff}
	windowFace = color.RGBA{0xec, 0xe9, 0xd8, 0xff}
)

// Nine draws a nine-patch: corners keep their size, edges and the center
// stretch to fill the target rectangle.
type Nine struct {
	images    *ebiten.Image
	alpha     float64
	R, G, B   float64
	positions [4][2]int
	rect      image.Rectangle
}

// NewWindowFrame builds the nine-patch used as the chrome of every window.
func NewWindowFrame() (*Nine, error) {
	const size, border = 12, 3
	src := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x < border || y < border || x >= size-border || y >= size-border {
				src.SetRGBA(x, y, frameBlue)
			} else {
				src.SetRGBA(x, y, windowFace)
			}
		}
	}
	img, err := ebiten.NewImageFromImage(src, ebiten.FilterNearest)
	if err != nil {
		return nil, err
	}
	return &Nine{
		images:    img,
		alpha:     1,
		R:         1, G: 1, B: 1,
		positions: [4][2]int{{0, 0}, {border, border}, {size - border, size - border}, {size, size}},
	}, nil
}

func (n *Nine) SetRect(r image.Rectangle) {
	n.rect = r
}

func (n *Nine) Draw(screen *ebiten.Image) {
	left := n.positions[1][0] - n.positions[0][0]
	right := n.positions[3][0] - n.positions[2][0]
	top := n.positions[1][1] - n.positions[0][1]
	bottom := n.positions[3][1] - n.positions[2][1]

	dstX := [3]int{n.rect.Min.X, n.rect.Min.X + left, n.rect.Max.X - right}
	dstY := [3]int{n.rect.Min.Y, n.rect.Min.Y + top, n.rect.Max.Y - bottom}
	dstW := [3]int{left, n.rect.Dx() - left - right, right}
	dstH := [3]int{top, n.rect.Dy() - top - bottom, bottom}

	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			src := image.Rect(n.positions[i][0], n.positions[j][1], n.positions[i+1][0], n.positions[j+1][1])
			if src.Empty() || dstW[i] <= 0 || dstH[j] <= 0 {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(dstW[i])/float64(src.Dx()), float64(dstH[j])/float64(src.Dy()))
			op.GeoM.Translate(float64(dstX[i]), float64(dstY[j]))
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
		}
	}
}
