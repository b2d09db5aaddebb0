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
)

// Surface is an indexed-colour pixel buffer that charts draw onto.
// Hosts with their own display memory can implement Surface directly;
// Bitmap is the in-memory implementation used by default.
type Surface interface {
	// SetPixel stores a colour index at (x, y). Out-of-range
	// coordinates must be ignored.
	SetPixel(x, y int, ci uint8)

	// Fill sets every pixel to the given colour index.
	Fill(ci uint8)

	Width() int
	Height() int
}

// Bitmap is a width×height grid of palette indices.
type Bitmap struct {
	width, height int
	pix           []uint8
}

// NewBitmap returns a Bitmap with all pixels set to index 0.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// Width returns the width of the bitmap in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the height of the bitmap in pixels.
func (b *Bitmap) Height() int { return b.height }

// SetPixel stores colour index ci at (x, y).
// Coordinates outside the bitmap are ignored.
func (b *Bitmap) SetPixel(x, y int, ci uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = ci
}

// At returns the colour index stored at (x, y).
// Coordinates outside the bitmap read as 0.
func (b *Bitmap) At(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[y*b.width+x]
}

// Fill sets every pixel to colour index ci.
func (b *Bitmap) Fill(ci uint8) {
	for i := range b.pix {
		b.pix[i] = ci
	}
}

// Image resolves the bitmap through the palette into an RGBA image.
// Indices flagged transparent in the palette, and indices beyond the
// palette, map to fully transparent pixels.
func (b *Bitmap) Image(p *Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c, opaque := p.Color(int(b.pix[y*b.width+x]))
			if opaque {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}

// Palette maps colour indices to RGBA values. Each slot carries an
// explicit opaque/transparent flag so that index 0 can act as a
// see-through background without sacrificing a colour value.
type Palette struct {
	colors []color.RGBA
	opaque []bool
}

// NewPalette returns a Palette with n slots, all opaque black.
func NewPalette(n int) *Palette {
	opaque := make([]bool, n)
	for i := range opaque {
		opaque[i] = true
	}
	return &Palette{
		colors: make([]color.RGBA, n),
		opaque: opaque,
	}
}

// Len returns the number of palette slots.
func (p *Palette) Len() int { return len(p.colors) }

// Set assigns a colour to slot i. The slot's transparency flag is not
// changed.
func (p *Palette) Set(i int, c color.RGBA) {
	p.colors[i] = c
}

// MakeTransparent marks slot i as see-through. The stored colour value
// is kept and becomes visible again after MakeOpaque.
func (p *Palette) MakeTransparent(i int) {
	p.opaque[i] = false
}

// MakeOpaque marks slot i as visible.
func (p *Palette) MakeOpaque(i int) {
	p.opaque[i] = true
}

// Color returns the colour of slot i and whether the slot is opaque.
// Slots outside the palette read as transparent.
func (p *Palette) Color(i int) (color.RGBA, bool) {
	if i < 0 || i >= len(p.colors) {
		return color.RGBA{}, false
	}
	return p.colors[i], p.opaque[i]
}
