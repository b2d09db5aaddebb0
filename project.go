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

import "seehuhn.de/go/geom/vec"

// projectY maps a sample value to a pixel row so that top lands on
// row 0 and bottom on row height-1. When top == bottom every value
// maps to the middle row; this keeps a flat line drawable without
// dividing by zero.
func projectY(value, bottom, top float64, height int) int {
	if top == bottom {
		return (height - 1) / 2
	}
	return int(float64(height-1) * (top - value) / (top - bottom))
}

// xIntercept returns the pixel column where the segment p0–p1 crosses
// the horizontal line y = bound. The segment lives in sample space:
// X is the pixel column, Y the sample value. A degenerate segment
// (zero horizontal extent) or a horizontal segment away from the
// bound has no crossing; ok is false in both cases.
func xIntercept(p0, p1 vec.Vec2, bound float64) (x int, ok bool) {
	if p1.X == p0.X {
		return 0, false
	}
	slope := (p1.Y - p0.Y) / (p1.X - p0.X)
	if slope == 0 {
		if p0.Y != bound {
			return 0, false
		}
		return int(p0.X), true
	}
	b := p0.Y - slope*p0.X
	return int((bound - b) / slope), true
}

// appendPoints projects the buffered values onto pixel coordinates,
// clipping each segment against [bottom, top], and appends the
// resulting polyline points to dst. The boundary is closed: values
// equal to bottom or top count as in range.
//
// For a segment crossing a boundary the out-of-range endpoint is
// replaced by the crossing point, with the value pinned exactly to
// the boundary so the drawn pixel lies on the visible edge. Segments
// entirely outside on one side contribute no point.
func appendPoints(dst []Point, values []float64, xpitch float64, bottom, top float64, height int) []Point {
	var last float64
	for count, value := range values {
		if count == 0 {
			dst = append(dst, Point{0, projectY(value, bottom, top, height)})
			last = value
			continue
		}

		x := int(xpitch * float64(count))
		lastX := int(xpitch * float64(count-1))

		switch {
		case bottom <= last && last <= top && bottom <= value && value <= top:
			// Both endpoints in range: no clipping needed.
			dst = append(dst, Point{x, projectY(value, bottom, top, height)})

		case (last > top && value > top) || (last < bottom && value < bottom):
			// Both endpoints out of range on the same side.

		default:
			p0 := vec.Vec2{X: float64(lastX), Y: last}
			p1 := vec.Vec2{X: float64(x), Y: value}
			xintBottom, okBottom := xIntercept(p0, p1, bottom)
			xintTop, okTop := xIntercept(p0, p1, top)
			if okBottom && okTop {
				adjX, adjValue := x, value
				if value > last {
					// Rising segment: can only leave through the top.
					if xintTop <= x {
						adjX = xintTop
						adjValue = top
					}
				} else {
					// Falling segment: can only leave through the bottom.
					if xintBottom <= x {
						adjX = xintBottom
						adjValue = bottom
					}
				}
				dst = append(dst, Point{adjX, projectY(adjValue, bottom, top, height)})
			}
		}

		last = value
	}
	return dst
}
