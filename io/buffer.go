package io

import (
	"iter"
	"slices"
)

// Buffer records the outputs of an organism. It keeps the Capacity most
// recent values, dropping the oldest, and counts every value sent since
// the last rewind. A zero Capacity keeps no values.
type Buffer struct {
	Capacity int // Most recent values kept.

	total  int
	recent []int32
}

var _ Channel = (*Buffer)(nil)

// Rewind forgets every recorded value.
func (buf *Buffer) Rewind() {
	buf.total = 0
	buf.recent = buf.recent[:0]
}

// Receive drains the kept values, oldest first.
func (buf *Buffer) Receive() iter.Seq[int32] {
	return func(yield func(value int32) bool) {
		for len(buf.recent) > 0 {
			value := buf.recent[0]
			buf.recent = buf.recent[1:]
			if !yield(value) {
				return
			}
		}
	}
}

// Send records a value. Sending never fails.
func (buf *Buffer) Send(value int32) error {
	buf.total++
	if buf.Capacity <= 0 {
		return nil
	}

	if len(buf.recent) == buf.Capacity {
		buf.recent = slices.Delete(buf.recent, 0, 1)
	}
	buf.recent = append(buf.recent, value)

	return nil
}

// Total returns the number of values sent since the last rewind.
func (buf *Buffer) Total() int {
	return buf.total
}

// Recent returns a copy of the kept values, oldest first, or nil when
// none are kept.
func (buf *Buffer) Recent() (values []int32) {
	if len(buf.recent) > 0 {
		values = slices.Clone(buf.recent)
	}
	return
}

// Last returns the most recent value kept.
func (buf *Buffer) Last() (value int32, ok bool) {
	if len(buf.recent) == 0 {
		return
	}
	value = buf.recent[len(buf.recent)-1]
	ok = true
	return
}
