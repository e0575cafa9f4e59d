// Package io provides the value channels an organism reads its inputs
// from and writes its outputs to. Channels carry 32-bit values: a fixed
// environment (Rom), a record of recent outputs (Buffer), and a text stream of
// decimal values (Tape).
package io

import (
	"iter"
)

// Channel defines the interface for all organism I/O channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields values from the channel.
	Receive() iter.Seq[int32]
	// Send writes a single value to the channel.
	Send(value int32) error
}
