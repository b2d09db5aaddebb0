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

// scale tracks the vertical bounds of one line. Each bound is either
// fixed (supplied by the caller, never modified) or autoscaling
// (kept equal to the minimum/maximum of the buffered samples).
//
// Autoscaling bounds are undefined until the first sample arrives.
// bottom == top is legal and is resolved by the projection, not here.
type scale struct {
	bottom, top           float64
	hasBottom, hasTop     bool
	fixedBottom, fixedTop bool
}

// newScale returns a scale with the given fixed bounds. Passing NaN
// for a bound leaves it autoscaling.
func newScale(min, max float64) *scale {
	s := &scale{}
	if !math.IsNaN(min) {
		s.bottom = min
		s.hasBottom = true
		s.fixedBottom = true
	}
	if !math.IsNaN(max) {
		s.top = max
		s.hasTop = true
		s.fixedTop = true
	}
	return s
}

// observe widens autoscaling bounds to cover v. Called after each push.
func (s *scale) observe(v float64) {
	if !s.fixedBottom && (!s.hasBottom || v < s.bottom) {
		s.bottom = v
		s.hasBottom = true
	}
	if !s.fixedTop && (!s.hasTop || v > s.top) {
		s.top = v
		s.hasTop = true
	}
}

// evict re-establishes autoscaling bounds after the oldest sample has
// been removed from the buffer. A full rescan of the remaining values
// runs only when the evicted sample sat exactly on the current bound;
// any other sample cannot have been the extreme, so the bound is
// already correct.
func (s *scale) evict(old float64, remaining []float64) {
	if !s.fixedBottom && s.hasBottom && old == s.bottom {
		if len(remaining) == 0 {
			s.hasBottom = false
		} else {
			m := remaining[0]
			for _, v := range remaining[1:] {
				if v < m {
					m = v
				}
			}
			s.bottom = m
		}
	}
	if !s.fixedTop && s.hasTop && old == s.top {
		if len(remaining) == 0 {
			s.hasTop = false
		} else {
			m := remaining[0]
			for _, v := range remaining[1:] {
				if v > m {
					m = v
				}
			}
			s.top = m
		}
	}
}

// reset clears autoscaling bounds back to undefined. Fixed bounds keep
// their values.
func (s *scale) reset() {
	if !s.fixedBottom {
		s.hasBottom = false
	}
	if !s.fixedTop {
		s.hasTop = false
	}
}
