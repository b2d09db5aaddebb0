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

// Package sparkline renders scrolling line graphs into fixed-size
// indexed-colour bitmaps, sized for embedded and other low-resource
// displays.
//
// A chart holds a rolling buffer of recent samples per line. New
// samples push the oldest ones out once the buffer is full, so the
// graph scrolls to the left. The vertical scale of each line either
// follows the buffered data (autoscaling, the default) or is fixed by
// the caller; segments leaving a fixed scale are clipped against its
// bounds. Rendering is a full redraw on every update: the shared
// bitmap is cleared and each line's polyline is rasterised with
// 1-pixel Bresenham segments, without anti-aliasing.
//
// Sparkline draws a single line, MultiSparkline any number of lines
// onto one shared bitmap. Both write palette indices only; the
// mapping to RGBA happens when the host composites the bitmap, via
// Image or Compose, or in the host's own display pipeline through the
// Surface interface.
package sparkline

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Sparkline is a single scrolling line graph. It is a chart with
// exactly one line, drawn with colour index 1 over the transparent
// index 0.
//
// A Sparkline is not safe for concurrent use.
type Sparkline struct {
	chart *MultiSparkline
}

// New returns a width×height sparkline holding at most maxItems
// samples, drawn in the given colour.
func New(width, height, maxItems int, c color.RGBA, opts ...Option) (*Sparkline, error) {
	chart, err := NewMulti(width, height, maxItems, []color.RGBA{c}, opts...)
	if err != nil {
		return nil, err
	}
	return &Sparkline{chart: chart}, nil
}

// AddValue absorbs one sample and redraws the graph. NaN is ignored.
//
// When adding many samples at once it is cheaper to queue them with
// QueueValue and call Update once at the end.
func (s *Sparkline) AddValue(v float64) error {
	return s.chart.AddValues(v)
}

// QueueValue absorbs one sample without redrawing.
func (s *Sparkline) QueueValue(v float64) error {
	return s.chart.QueueValues(v)
}

// Update recomputes the line's points and redraws the bitmap. With
// fewer than two samples the previous rendering is left in place.
func (s *Sparkline) Update() {
	s.chart.Update()
}

// ClearValues empties the sample buffer and erases the bitmap.
func (s *Sparkline) ClearValues() {
	s.chart.ClearValues()
}

// Values returns the currently displayed samples, oldest first.
func (s *Sparkline) Values() []float64 {
	return s.chart.ValuesOf(0)
}

// Width returns the width of the graph in pixels.
func (s *Sparkline) Width() int { return s.chart.Width() }

// Height returns the height of the graph in pixels.
func (s *Sparkline) Height() int { return s.chart.Height() }

// Offset returns the placement offset used by Compose.
func (s *Sparkline) Offset() (x, y int) { return s.chart.Offset() }

// Bitmap returns the pixel surface of the graph.
func (s *Sparkline) Bitmap() *Bitmap { return s.chart.Bitmap() }

// Palette returns the graph's palette: slot 0 transparent, slot 1
// the line colour.
func (s *Sparkline) Palette() *Palette { return s.chart.Palette() }

// Image resolves the graph through its palette into an RGBA image.
func (s *Sparkline) Image() *image.RGBA { return s.chart.Image() }

// Compose draws the graph onto dst at its placement offset.
func (s *Sparkline) Compose(dst xdraw.Image) { s.chart.Compose(dst) }

// ComposeScaled draws the graph scaled to cover r.
func (s *Sparkline) ComposeScaled(dst xdraw.Image, r image.Rectangle) {
	s.chart.ComposeScaled(dst, r)
}
