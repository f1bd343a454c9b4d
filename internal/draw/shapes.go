package draw

import "math"

// FillRect fills the logical rectangle spanning lo to hi (inclusive) on the canvas.
func (c *Canvas) FillRect(lo, hi Point) {
	c.rect(lo, hi, true)
}

// EraseRect clears every pixel inside the logical rectangle spanning lo to hi.
// Used to cut openings into shapes drawn earlier in the frame.
func (c *Canvas) EraseRect(lo, hi Point) {
	c.rect(lo, hi, false)
}

func (c *Canvas) rect(lo, hi Point, on bool) {
	x0 := int(math.Round(lo.X * c.scaleX))
	y0 := int(math.Round(lo.Y * c.scaleY))
	x1 := int(math.Round(hi.X * c.scaleX))
	y1 := int(math.Round(hi.Y * c.scaleY))
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.putPixel(x, y, on)
		}
	}
}

// circleSegments is the polygon resolution used for circles.
const circleSegments = 16

// FillCircle draws a filled circle with its center and radius in logical units.
func (c *Canvas) FillCircle(center Point, radius float64) {
	points := c.BorrowPoints(circleSegments)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / circleSegments
		points[i] = Point{
			X: center.X + math.Cos(angle)*radius,
			Y: center.Y + math.Sin(angle)*radius,
		}
	}
	c.DrawPolygon(points, true)
}
