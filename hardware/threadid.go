package hardware

import (
	"math/bits"
)

const (
	MAX_THREAD_CAPACITY = 32 // Size of the thread id set.
)

// threadIDs is the set of thread ids in use.
type threadIDs uint32

// Take allocates the lowest free id.
func (ids *threadIDs) Take() (id int, ok bool) {
	id = bits.TrailingZeros32(^uint32(*ids))
	if id >= MAX_THREAD_CAPACITY {
		return
	}
	*ids |= 1 << id
	ok = true
	return
}

// Free releases an id.
func (ids *threadIDs) Free(id int) {
	*ids &^= 1 << id
}

// Has returns true if the id is in use.
func (ids threadIDs) Has(id int) bool {
	return (ids>>id)&1 != 0
}

// Count returns the number of ids in use.
func (ids threadIDs) Count() int {
	return bits.OnesCount32(uint32(ids))
}
