package paint

import (
	"image"
	"image/color"
	"math"
)

// line stamps a round pen of the given width on every point of the
// Bresenham segment from (x0, y0) to (x1, y1).
func (cv *Canvas) line(x0, y0, x1, y1, width int, c color.RGBA) image.Rectangle {
	pad := width/2 + 1
	area := cv.img.Bounds().Inset(-pad)
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, area)
	if !ok {
		return image.ZR
	}
	pen := penOffsets(width)
	damage := image.ZR

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	x, y := x0, y0
	for {
		damage = damage.Union(cv.stamp(x, y, pen, c))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
	return damage
}

// clipSegment cuts the segment down to the part inside r (Liang-Barsky).
// Segments already inside r come back unchanged.
func clipSegment(x0, y0, x1, y1 int, r image.Rectangle) (int, int, int, int, bool) {
	p0, p1 := image.Pt(x0, y0), image.Pt(x1, y1)
	if p0.In(r) && p1.In(r) {
		return x0, y0, x1, y1, true
	}
	minX, minY := float64(r.Min.X), float64(r.Min.Y)
	maxX, maxY := float64(r.Max.X-1), float64(r.Max.Y-1)
	fx, fy := float64(x0), float64(y0)
	dx, dy := float64(x1-x0), float64(y1-y0)

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx - minX},
		{dx, maxX - fx},
		{-dy, fy - minY},
		{dy, maxY - fy},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	round := func(v float64) int { return int(math.Round(v)) }
	return round(fx + t0*dx), round(fy + t0*dy), round(fx + t1*dx), round(fy + t1*dy), true
}

func (cv *Canvas) stamp(x, y int, pen []image.Point, c color.RGBA) image.Rectangle {
	b := cv.img.Bounds()
	damage := image.ZR
	for _, o := range pen {
		p := image.Pt(x+o.X, y+o.Y)
		if !p.In(b) {
			continue
		}
		cv.img.SetRGBA(p.X, p.Y, c)
		damage = damage.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	return damage
}

// penOffsets lists the pixels of a disc with the given diameter.
func penOffsets(width int) []image.Point {
	lo := -(width / 2)
	hi := lo + width - 1
	center := float64(lo+hi) / 2
	r2 := float64(width) * float64(width) / 4

	pen := make([]image.Point, 0, width*width)
	for j := lo; j <= hi; j++ {
		for i := lo; i <= hi; i++ {
			di, dj := float64(i)-center, float64(j)-center
			if di*di+dj*dj <= r2 {
				pen = append(pen, image.Pt(i, j))
			}
		}
	}
	return pen
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
