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
	"image"
	"image/color"
	"math"

	"github.com/cockroachdb/errors"
	xdraw "golang.org/x/image/draw"
)

// MultiSparkline renders several independent lines onto one shared
// indexed-colour bitmap. Line i draws with colour index i+1; index 0
// is the transparent background.
//
// A MultiSparkline is not safe for concurrent use.
type MultiSparkline struct {
	bmp *Bitmap
	pal *Palette

	offsetX, offsetY int
	maxItems         int
	dynPitch         bool
	xpitch           float64 // only valid when dynPitch is false

	lines []*line
}

// config collects the optional settings of a chart.
type config struct {
	dynPitch         bool
	offsetX, offsetY int
	ranges           []lineRange
}

type lineRange struct {
	line     int // -1 applies to every line
	min, max float64
}

// Option configures a Sparkline or MultiSparkline at construction.
type Option func(*config)

// WithFixedPitch precomputes the horizontal pitch from the maximum
// sample count instead of the current one. The line then grows from
// the left as samples arrive and starts scrolling only once the
// buffer is full. Requires maxItems >= 2.
func WithFixedPitch() Option {
	return func(c *config) { c.dynPitch = false }
}

// WithOffset sets the placement offset used by Compose.
func WithOffset(x, y int) Option {
	return func(c *config) {
		c.offsetX = x
		c.offsetY = y
	}
}

// WithRange fixes the vertical bounds of every line. Passing NaN for
// a bound keeps that bound autoscaling.
func WithRange(min, max float64) Option {
	return func(c *config) {
		c.ranges = append(c.ranges, lineRange{line: -1, min: min, max: max})
	}
}

// WithLineRange fixes the vertical bounds of a single line. Passing
// NaN for a bound keeps that bound autoscaling.
func WithLineRange(line int, min, max float64) Option {
	return func(c *config) {
		c.ranges = append(c.ranges, lineRange{line: line, min: min, max: max})
	}
}

// NewMulti returns a chart of len(colors) lines sharing a
// width×height bitmap, each line holding at most maxItems samples.
// The palette has len(colors)+1 slots with slot 0 transparent.
func NewMulti(width, height, maxItems int, colors []color.RGBA, opts ...Option) (*MultiSparkline, error) {
	if width < 2 || height < 1 {
		return nil, errors.Newf("invalid chart size %dx%d", width, height)
	}
	if maxItems < 1 {
		return nil, errors.Newf("invalid sample capacity %d", maxItems)
	}
	if len(colors) < 1 || len(colors) > 255 {
		return nil, errors.Newf("invalid line count %d", len(colors))
	}

	cfg := config{dynPitch: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.dynPitch && maxItems < 2 {
		return nil, errors.Newf("fixed pitch needs at least 2 samples, have %d", maxItems)
	}

	// Resolve per-line bounds; later options win.
	mins := make([]float64, len(colors))
	maxs := make([]float64, len(colors))
	for i := range colors {
		mins[i] = math.NaN()
		maxs[i] = math.NaN()
	}
	for _, r := range cfg.ranges {
		if r.line >= len(colors) {
			return nil, errors.Newf("range for line %d, chart has %d lines", r.line, len(colors))
		}
		if r.line < 0 {
			for i := range colors {
				mins[i], maxs[i] = r.min, r.max
			}
		} else {
			mins[r.line], maxs[r.line] = r.min, r.max
		}
	}

	pal := NewPalette(len(colors) + 1)
	pal.MakeTransparent(0)
	for i, c := range colors {
		pal.Set(i+1, c)
	}

	m := &MultiSparkline{
		bmp:      NewBitmap(width, height),
		pal:      pal,
		offsetX:  cfg.offsetX,
		offsetY:  cfg.offsetY,
		maxItems: maxItems,
		dynPitch: cfg.dynPitch,
		lines:    make([]*line, len(colors)),
	}
	if !m.dynPitch {
		m.xpitch = float64(width-1) / float64(maxItems-1)
	}
	for i := range m.lines {
		m.lines[i] = newLine(maxItems, mins[i], maxs[i])
	}
	return m, nil
}

// pitchFor returns the horizontal pitch for a line currently holding
// n samples. Requires n >= 2.
func (m *MultiSparkline) pitchFor(n int) float64 {
	if m.dynPitch {
		return float64(m.bmp.Width()-1) / float64(n-1)
	}
	return m.xpitch
}

// rebuildLine recomputes a line's projected points and reports whether
// the line is drawable. Lines with fewer than two samples keep their
// previous points.
func (m *MultiSparkline) rebuildLine(l *line) bool {
	n := l.buf.Len()
	if n < 2 {
		return false
	}
	return l.rebuild(m.pitchFor(n), m.bmp.Height())
}

// AddValues routes values[i] to line i and redraws the chart.
// The number of values must match the number of lines; NaN skips the
// corresponding line without touching its state.
//
// When feeding many samples per line it is cheaper to queue them with
// QueueValues and call Update once at the end.
func (m *MultiSparkline) AddValues(values ...float64) error {
	if err := m.QueueValues(values...); err != nil {
		return err
	}
	m.Update()
	return nil
}

// QueueValues routes values[i] to line i without redrawing.
func (m *MultiSparkline) QueueValues(values ...float64) error {
	if len(values) != len(m.lines) {
		return errors.Newf("got %d values for %d lines", len(values), len(m.lines))
	}
	for i, v := range values {
		if err := m.lines[i].add(v); err != nil {
			return errors.Wrapf(err, "line %d", i)
		}
	}
	return nil
}

// Update recomputes every line's points and redraws the shared
// bitmap. Lines with fewer than two samples keep their previous
// points; if no line is drawable the bitmap is left untouched.
func (m *MultiSparkline) Update() {
	redraw := false
	for _, l := range m.lines {
		if m.rebuildLine(l) {
			redraw = true
		}
	}
	if redraw {
		m.draw()
	}
}

// UpdateLine recomputes the points of a single line and, if the line
// is drawable, redraws the shared bitmap. The line index must be in
// [0, Lines()).
func (m *MultiSparkline) UpdateLine(line int) {
	if m.rebuildLine(m.lines[line]) {
		m.draw()
	}
}

// draw clears the whole bitmap and redraws every line in index order,
// so later lines paint over earlier ones where they overlap.
func (m *MultiSparkline) draw() {
	m.bmp.Fill(0)
	for i, l := range m.lines {
		DrawPolyline(m.bmp, l.points, uint8(i+1), false)
	}
}

// ClearValues empties every line and erases the bitmap. Fixed bounds
// keep their values; autoscaling bounds become undefined until the
// next sample.
func (m *MultiSparkline) ClearValues() {
	m.bmp.Fill(0)
	for _, l := range m.lines {
		l.clear()
	}
}

// ValuesOf returns the samples currently held by a line, oldest
// first. The line index must be in [0, Lines()).
func (m *MultiSparkline) ValuesOf(line int) []float64 {
	return m.lines[line].buf.Values()
}

// Lines returns the number of lines in the chart.
func (m *MultiSparkline) Lines() int { return len(m.lines) }

// Width returns the width of the chart in pixels.
func (m *MultiSparkline) Width() int { return m.bmp.Width() }

// Height returns the height of the chart in pixels.
func (m *MultiSparkline) Height() int { return m.bmp.Height() }

// Offset returns the placement offset used by Compose.
func (m *MultiSparkline) Offset() (x, y int) { return m.offsetX, m.offsetY }

// Bitmap returns the shared pixel surface.
func (m *MultiSparkline) Bitmap() *Bitmap { return m.bmp }

// Palette returns the chart's palette. Slot 0 is the transparent
// background, slot i+1 the colour of line i.
func (m *MultiSparkline) Palette() *Palette { return m.pal }

// Image resolves the chart through its palette into an RGBA image.
func (m *MultiSparkline) Image() *image.RGBA {
	return m.bmp.Image(m.pal)
}

// Compose draws the chart onto dst with its top-left corner at the
// configured placement offset. Transparent pixels leave dst
// unchanged.
func (m *MultiSparkline) Compose(dst xdraw.Image) {
	src := m.Image()
	r := image.Rect(m.offsetX, m.offsetY, m.offsetX+m.bmp.Width(), m.offsetY+m.bmp.Height())
	xdraw.Draw(dst, r, src, image.Point{}, xdraw.Over)
}

// ComposeScaled draws the chart scaled to cover r, using
// nearest-neighbour interpolation to keep hard pixel edges. Useful
// for displays that upscale small charts.
func (m *MultiSparkline) ComposeScaled(dst xdraw.Image, r image.Rectangle) {
	src := m.Image()
	xdraw.NearestNeighbor.Scale(dst, r, src, src.Bounds(), xdraw.Over, nil)
}
