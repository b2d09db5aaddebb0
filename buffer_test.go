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

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferPushPop(t *testing.T) {
	b := NewBuffer(3)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 3, b.Cap())

	require.NoError(t, b.Push(1))
	require.NoError(t, b.Push(2))
	assert.Equal(t, 2, b.Len())

	v, err := b.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	v, err = b.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	assert.Equal(t, 0, b.Len())
}

func TestBufferFull(t *testing.T) {
	b := NewBuffer(2)
	require.NoError(t, b.Push(1))
	require.NoError(t, b.Push(2))

	err := b.Push(3)
	assert.True(t, errors.Is(err, ErrBufferFull))
	assert.Equal(t, []float64{1, 2}, b.Values())
}

func TestBufferEmptyPop(t *testing.T) {
	b := NewBuffer(2)
	_, err := b.Pop()
	assert.True(t, errors.Is(err, ErrBufferEmpty))
}

func TestBufferValuesWrapped(t *testing.T) {
	// Drive the cursors past the physical end of the store so that
	// Values has to stitch the tail and head runs together.
	b := NewBuffer(3)
	require.NoError(t, b.Push(1))
	require.NoError(t, b.Push(2))
	require.NoError(t, b.Push(3))
	_, err := b.Pop()
	require.NoError(t, err)
	require.NoError(t, b.Push(4))

	assert.Equal(t, []float64{2, 3, 4}, b.Values())
}

func TestBufferInsertionOrder(t *testing.T) {
	// Scroll a capacity-4 buffer through a long stream; after every
	// step the buffer must hold the last 4 values in insertion order.
	b := NewBuffer(4)
	var want []float64
	for i := 0; i < 20; i++ {
		v := float64(i)
		if b.Len() == b.Cap() {
			_, err := b.Pop()
			require.NoError(t, err)
			want = want[1:]
		}
		require.NoError(t, b.Push(v))
		want = append(want, v)
		assert.Equal(t, want, b.Values(), "step %d", i)
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(3)
	require.NoError(t, b.Push(1))
	require.NoError(t, b.Push(2))

	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Values())

	// The buffer stays usable after a clear.
	require.NoError(t, b.Push(7))
	assert.Equal(t, []float64{7}, b.Values())
}

func TestBufferAppendValues(t *testing.T) {
	b := NewBuffer(2)
	require.NoError(t, b.Push(1))
	require.NoError(t, b.Push(2))

	scratch := make([]float64, 0, 4)
	got := b.AppendValues(scratch)
	assert.Equal(t, []float64{1, 2}, got)

	// An empty buffer appends nothing.
	b.Clear()
	assert.Empty(t, b.AppendValues(nil))
}
