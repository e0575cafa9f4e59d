package io

import (
	"iter"
)

// Rom is a fixed sequence of values, such as the environment inputs of an
// organism. Values are received once each until the Rom is rewound.
type Rom struct {
	Data []int32

	ReadIndex int
}

var _ Channel = (*Rom)(nil)

// Rewind restarts reception from the first value.
func (rc *Rom) Rewind() {
	rc.ReadIndex = 0
}

// Receive returns an iterator over the values not yet received.
func (rc *Rom) Receive() iter.Seq[int32] {
	return func(yield func(value int32) bool) {
		for rc.ReadIndex < len(rc.Data) {
			value := rc.Data[rc.ReadIndex]
			rc.ReadIndex++
			if !yield(value) {
				return
			}
		}
	}
}

// Send always fails.
func (rc *Rom) Send(value int32) error {
	return ErrChannelReadOnly
}
