// seehuhn.de/go/sparkline - scrolling line graphs for indexed-colour displays
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sparkline

import "math"

// Point is an integer pixel coordinate on a Surface.
type Point struct {
	X, Y int
}

// DrawPolyline draws line segments connecting consecutive points onto
// dst using colour index ci. When close is true an additional segment
// connects the last point back to the first. Fewer than two points
// draw nothing.
func DrawPolyline(dst Surface, points []Point, ci uint8, close bool) {
	if len(points) < 2 {
		return
	}
	for i := 0; i < len(points)-1; i++ {
		drawLine(dst, points[i], points[i+1], ci)
	}
	if close {
		drawLine(dst, points[len(points)-1], points[0], ci)
	}
}

// drawLine rasterises the segment p0–p1 with Bresenham's algorithm.
// Vertical and horizontal segments take direct fill paths. Iteration
// is normalised to run from the lower to the higher coordinate on the
// major axis, so the pixel coverage is independent of endpoint order.
func drawLine(dst Surface, p0, p1 Point, ci uint8) {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y

	switch {
	case x0 == x1:
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for y := y0; y <= y1; y++ {
			dst.SetPixel(x0, y, ci)
		}

	case y0 == y1:
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			dst.SetPixel(x, y0, ci)
		}

	default:
		// Steeper than 45°: step along y instead, swapping the axes
		// back when writing pixels.
		steep := abs(y1-y0) > abs(x1-x0)
		if steep {
			x0, y0 = y0, x0
			x1, y1 = y1, x1
		}
		if x0 > x1 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}

		dx := x1 - x0
		dy := abs(y1 - y0)
		err := dx / 2
		ystep := 1
		if y0 > y1 {
			ystep = -1
		}

		for x := x0; x <= x1; x++ {
			if steep {
				dst.SetPixel(y0, x, ci)
			} else {
				dst.SetPixel(x, y0, ci)
			}
			err -= dy
			if err < 0 {
				y0 += ystep
				err += dx
			}
		}
	}
}

// roundRectIndent returns the number of pixels a corner row is inset
// from the left edge of a rounded rectangle. rowOffset counts down
// from the top edge and must be in [0, radius).
func roundRectIndent(radius, rowOffset int) int {
	d := float64(rowOffset - radius)
	return radius - int(math.Sqrt(float64(radius*radius)-d*d))
}

// FillRoundRect fills a width×height rectangle with its top-left
// corner at (x, y), rounding all four corners with the given radius.
// The radius is clamped to half the shorter side; radius 0 fills a
// plain rectangle.
func FillRoundRect(dst Surface, x, y, width, height, radius int, ci uint8) {
	if width <= 0 || height <= 0 {
		return
	}
	radius = min(radius, width/2, height/2)

	for row := 0; row < height; row++ {
		left, right := 0, width-1

		// Corner rows are inset symmetrically top and bottom.
		off := row
		if off >= height-radius {
			off = height - 1 - row
		}
		if off < radius {
			left = roundRectIndent(radius, off)
			right = width - left - 1
		}

		for px := left; px <= right; px++ {
			dst.SetPixel(x+px, y+row, ci)
		}
	}
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
