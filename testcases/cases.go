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

// Package testcases defines sample streams for sparkline tests and
// benchmarks.
package testcases

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// Case describes one chart configuration together with a stream of
// samples to feed it.
type Case struct {
	Name     string  // lowercase a-z and _ only
	Width    int     // chart width in pixels
	Height   int     // chart height in pixels
	MaxItems int     // sample capacity per line
	Min, Max float64 // fixed bounds; NaN keeps a bound autoscaling
	Color    color.RGBA
	Samples  []float64
}

// All lists the shared test cases.
var All = []Case{
	{
		Name:     "ramp",
		Width:    64,
		Height:   32,
		MaxItems: 32,
		Min:      math.NaN(),
		Max:      math.NaN(),
		Color:    colornames.White,
		Samples:  Ramp(32, 0, 31),
	},
	{
		Name:     "sine",
		Width:    100,
		Height:   40,
		MaxItems: 50,
		Min:      math.NaN(),
		Max:      math.NaN(),
		Color:    colornames.Deepskyblue,
		Samples:  Sine(105, 15, 60),
	},
	{
		Name:     "sine_clipped",
		Width:    100,
		Height:   40,
		MaxItems: 50,
		Min:      -10,
		Max:      10,
		Color:    colornames.Orange,
		Samples:  Sine(105, 15, 60),
	},
	{
		Name:     "spike",
		Width:    64,
		Height:   16,
		MaxItems: 16,
		Min:      0,
		Max:      1,
		Color:    colornames.Crimson,
		Samples:  Spike(16, 8, 100),
	},
	{
		Name:     "flat",
		Width:    32,
		Height:   8,
		MaxItems: 8,
		Min:      math.NaN(),
		Max:      math.NaN(),
		Color:    colornames.Lime,
		Samples:  Ramp(8, 5, 5),
	},
	{
		Name:     "scroll",
		Width:    64,
		Height:   32,
		MaxItems: 16,
		Min:      math.NaN(),
		Max:      math.NaN(),
		Color:    colornames.Gold,
		Samples:  Sine(200, 20, 30),
	},
}

// Ramp returns n samples linearly interpolated from first to last.
func Ramp(n int, first, last float64) []float64 {
	samples := make([]float64, n)
	if n == 1 {
		samples[0] = first
		return samples
	}
	step := (last - first) / float64(n-1)
	for i := range samples {
		samples[i] = first + float64(i)*step
	}
	return samples
}

// Sine returns n samples of a sine curve with the given amplitude
// and period (in samples).
func Sine(n int, amplitude, period float64) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = amplitude * math.Sin(float64(i)*2*math.Pi/period)
	}
	return samples
}

// Spike returns n zero samples with a single peak of the given
// height at index at.
func Spike(n, at int, height float64) []float64 {
	samples := make([]float64, n)
	samples[at] = height
	return samples
}
