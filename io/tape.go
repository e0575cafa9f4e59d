package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
)

// Tape provides sequential I/O of decimal values. Input values are
// separated by white space; output values are written one per line.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	scanner *bufio.Scanner
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive returns an iterator that yields values from the input stream.
// Reception stops at the end of the stream, or at the first word that is
// not a 32-bit value.
func (tc *Tape) Receive() iter.Seq[int32] {
	return func(yield func(value int32) bool) {
		if tc.Input == nil {
			return
		}

		if tc.scanner == nil {
			tc.scanner = bufio.NewScanner(tc.Input)
			tc.scanner.Split(bufio.ScanWords)
		}

		for tc.scanner.Scan() {
			value, err := strconv.ParseInt(tc.scanner.Text(), 0, 32)
			if err != nil {
				return
			}
			if !yield(int32(value)) {
				return
			}
		}
	}
}

// Send writes a value to the output stream.
func (tc *Tape) Send(value int32) (err error) {
	if tc.Output == nil {
		err = ErrChannelFull
		return
	}

	_, err = fmt.Fprintln(tc.Output, value)
	return
}
