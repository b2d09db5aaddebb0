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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seehuhn.de/go/geom/vec"
)

func TestProjectY(t *testing.T) {
	// top maps to row 0, bottom to row height-1.
	assert.Equal(t, 0, projectY(10, 0, 10, 5))
	assert.Equal(t, 4, projectY(0, 0, 10, 5))
	assert.Equal(t, 2, projectY(5, 0, 10, 5))
}

func TestProjectYDegenerate(t *testing.T) {
	// With bottom == top every value lands on the middle row,
	// independent of the value.
	for _, v := range []float64{-100, 0, 3, 1e9} {
		assert.Equal(t, 2, projectY(v, 7, 7, 5))
		assert.Equal(t, 1, projectY(v, 7, 7, 4))
	}
}

func TestXIntercept(t *testing.T) {
	// Segment from (0, 0) to (10, 10) crosses y=5 at x=5.
	x, ok := xIntercept(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 10}, 5)
	assert.True(t, ok)
	assert.Equal(t, 5, x)

	// Falling segment.
	x, ok = xIntercept(vec.Vec2{X: 0, Y: 10}, vec.Vec2{X: 10, Y: 0}, 5)
	assert.True(t, ok)
	assert.Equal(t, 5, x)

	// Horizontal segment away from the bound: no crossing.
	_, ok = xIntercept(vec.Vec2{X: 0, Y: 3}, vec.Vec2{X: 10, Y: 3}, 5)
	assert.False(t, ok)

	// Zero horizontal extent: no crossing.
	_, ok = xIntercept(vec.Vec2{X: 4, Y: 0}, vec.Vec2{X: 4, Y: 10}, 5)
	assert.False(t, ok)
}

func TestAppendPointsInRange(t *testing.T) {
	// All values inside the range: endpoints unchanged.
	pts := appendPoints(nil, []float64{0, 10}, 9, 0, 10, 5)
	assert.Equal(t, []Point{{0, 4}, {9, 0}}, pts)
}

func TestAppendPointsOutOfRangeSkipped(t *testing.T) {
	// The middle segment lies entirely above the range and must not
	// contribute a point.
	pts := appendPoints(nil, []float64{20, 30}, 9, 0, 10, 5)
	// First point is always emitted; the following segment is
	// entirely out of range.
	assert.Len(t, pts, 1)

	pts = appendPoints(nil, []float64{-20, -30}, 9, 0, 10, 5)
	assert.Len(t, pts, 1)
}

func TestAppendPointsClippedAtTop(t *testing.T) {
	// Rising segment from 0 to 20 with top=10: the out-of-range
	// endpoint is replaced by the crossing point, pinned exactly to
	// the boundary value, so the drawn pixel lies on row 0.
	pts := appendPoints(nil, []float64{0, 20}, 10, 0, 10, 5)
	assert.Len(t, pts, 2)
	assert.Equal(t, Point{0, 4}, pts[0])
	assert.Equal(t, 0, pts[1].Y, "clipped point must sit on the top row")
	assert.Equal(t, 5, pts[1].X, "crossing of y=10 between (0,0) and (10,20)")
}

func TestAppendPointsClippedAtBottom(t *testing.T) {
	// Falling segment from 10 to -10 with bottom=0.
	pts := appendPoints(nil, []float64{10, -10}, 10, 0, 10, 5)
	assert.Len(t, pts, 2)
	assert.Equal(t, Point{0, 0}, pts[0])
	assert.Equal(t, 4, pts[1].Y, "clipped point must sit on the bottom row")
	assert.Equal(t, 5, pts[1].X)
}

func TestAppendPointsDegenerateRange(t *testing.T) {
	// bottom == top: every value projects to the middle row and the
	// closed boundary keeps on-bound values in range.
	pts := appendPoints(nil, []float64{7, 7, 7}, 2, 7, 7, 5)
	assert.Equal(t, []Point{{0, 2}, {2, 2}, {4, 2}}, pts)
}

func TestAppendPointsBoundaryInclusive(t *testing.T) {
	// Values exactly on the bounds count as in range.
	pts := appendPoints(nil, []float64{0, 10}, 9, 0, 10, 11)
	assert.Equal(t, []Point{{0, 10}, {9, 0}}, pts)
}
