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

import "github.com/cockroachdb/errors"

// Errors reported by Buffer. Both indicate a caller bug: a chart always
// evicts before pushing at capacity, so neither occurs during normal
// operation.
var (
	ErrBufferFull  = errors.New("push to full buffer")
	ErrBufferEmpty = errors.New("pop from empty buffer")
)

// Buffer is a fixed-capacity FIFO over a preallocated backing store.
// It never grows after construction.
//
// The start cursor stays in [0, cap); the end cursor runs in [0, 2*cap)
// and is wrapped back on Pop once start passes the physical end of the
// store. Keeping end beyond the physical capacity distinguishes a full
// buffer from an empty one without a separate flag.
type Buffer struct {
	data  []float64
	start int // in [0, len(data))
	end   int // in [0, 2*len(data))
}

// NewBuffer returns a Buffer holding at most capacity values.
// Capacity must be at least 1.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{data: make([]float64, capacity)}
}

// Push appends v at the end of the buffer.
// It fails with ErrBufferFull if the buffer is at capacity.
func (b *Buffer) Push(v float64) error {
	if b.Len() == len(b.data) {
		return errors.WithStack(ErrBufferFull)
	}
	b.data[b.end%len(b.data)] = v
	b.end++
	return nil
}

// Pop removes and returns the oldest value.
// It fails with ErrBufferEmpty if the buffer holds no values.
func (b *Buffer) Pop() (float64, error) {
	if b.Len() == 0 {
		return 0, errors.WithStack(ErrBufferEmpty)
	}
	v := b.data[b.start]
	b.start++
	if b.start == len(b.data) {
		b.start -= len(b.data)
		b.end -= len(b.data)
	}
	return v, nil
}

// Len returns the number of buffered values.
func (b *Buffer) Len() int {
	return b.end - b.start
}

// Cap returns the fixed capacity of the buffer.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Clear marks all buffered values as invalid. The backing store is not
// zeroed.
func (b *Buffer) Clear() {
	b.start = 0
	b.end = 0
}

// AppendValues appends the buffered values, oldest first, to dst and
// returns the extended slice. When the buffer has wrapped past the
// physical end of the store the result is assembled from the tail run
// followed by the head run.
func (b *Buffer) AppendValues(dst []float64) []float64 {
	if b.Len() == 0 {
		return dst
	}
	end := b.end % len(b.data)
	if b.start < end {
		return append(dst, b.data[b.start:end]...)
	}
	dst = append(dst, b.data[b.start:]...)
	return append(dst, b.data[:end]...)
}

// Values returns the buffered values, oldest first, in a fresh slice.
func (b *Buffer) Values() []float64 {
	return b.AppendValues(nil)
}
