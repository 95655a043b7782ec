package paint

import (
	"fmt"
	"image"

	log "github.com/sirupsen/logrus"
)

// DefaultFillLimit bounds a single flood fill. Larger uniform regions are
// left partially filled and reported through FillResult.Truncated.
const DefaultFillLimit = 10000

type FillResult struct {
	Filled    int
	Truncated bool
	Damage    image.Rectangle
}

// FloodFill replaces the 4-connected region of the colour found at (x, y)
// with the primary colour and records a snapshot. Filling a pixel that
// already has the primary colour changes nothing.
func (cv *Canvas) FloodFill(x, y int) (FillResult, error) {
	b := cv.img.Bounds()
	if !image.Pt(x, y).In(b) {
		return FillResult{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	target := cv.img.RGBAAt(x, y)
	fill := cv.primary
	if target == fill {
		return FillResult{}, nil
	}

	var res FillResult
	visited := make([]bool, b.Dx()*b.Dy())
	stack := []image.Point{{X: x, Y: y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !p.In(b) {
			continue
		}
		i := (p.Y-b.Min.Y)*b.Dx() + (p.X - b.Min.X)
		if visited[i] || cv.img.RGBAAt(p.X, p.Y) != target {
			continue
		}
		if res.Filled >= cv.fillLimit {
			res.Truncated = true
			break
		}
		visited[i] = true
		cv.img.SetRGBA(p.X, p.Y, fill)
		res.Filled++
		res.Damage = res.Damage.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})

		stack = append(stack,
			image.Pt(p.X+1, p.Y),
			image.Pt(p.X-1, p.Y),
			image.Pt(p.X, p.Y+1),
			image.Pt(p.X, p.Y-1),
		)
	}

	if res.Truncated {
		log.WithFields(log.Fields{
			"x":      x,
			"y":      y,
			"filled": res.Filled,
		}).Warn("flood fill stopped at pixel limit")
	}
	cv.snapshot()
	return res, nil
}
