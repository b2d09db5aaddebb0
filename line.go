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

// line bundles the sample buffer, vertical scale and projected point
// list of a single series. It owns no pixels; charts hand it a pitch
// and a height and draw the resulting points themselves.
type line struct {
	buf    *Buffer
	scale  *scale
	points []Point

	// scratch buffer for Values reads during eviction rescans,
	// reused to avoid per-push allocations
	tmp []float64
}

func newLine(maxItems int, min, max float64) *line {
	return &line{
		buf:   NewBuffer(maxItems),
		scale: newScale(min, max),
	}
}

// add absorbs one sample. NaN samples are ignored without touching
// buffer or scale state. When the buffer is at capacity the oldest
// sample is evicted first and the scale is given a chance to rescan.
func (l *line) add(v float64) error {
	if math.IsNaN(v) {
		return nil
	}
	if l.buf.Len() >= l.buf.Cap() {
		first, err := l.buf.Pop()
		if err != nil {
			return err
		}
		l.tmp = l.buf.AppendValues(l.tmp[:0])
		l.scale.evict(first, l.tmp)
	}
	if err := l.buf.Push(v); err != nil {
		return err
	}
	l.scale.observe(v)
	return nil
}

// rebuild recomputes the projected point list for the current buffer
// contents. It reports whether the line produced a drawable polyline;
// with fewer than two samples the previous points are kept unchanged
// so that prior rendering survives until the caller clears it.
func (l *line) rebuild(xpitch float64, height int) bool {
	if l.buf.Len() < 2 {
		return false
	}
	l.tmp = l.buf.AppendValues(l.tmp[:0])
	l.points = appendPoints(l.points[:0], l.tmp, xpitch, l.scale.bottom, l.scale.top, height)
	return true
}

// clear resets the line to the empty state.
func (l *line) clear() {
	l.buf.Clear()
	l.scale.reset()
	l.points = l.points[:0]
}
