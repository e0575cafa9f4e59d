package hardware

import (
	"log"

	"github.com/ezrec/quadstack/genome"
)

// Thread is the per-thread execution state. Threads are values; assigning
// a thread copies its heads, stacks and labels.
type Thread struct {
	id        int
	heads     [NUM_HEADS]Head
	stacks    [NUM_LOCAL_STACKS]Stack
	readLabel genome.Label
	nextLabel genome.Label
	advanceIP bool
}

// ID of the thread.
func (th *Thread) ID() int {
	return th.id
}

// Reset the thread to its initial state, with all heads at the start of
// space 0.
func (th *Thread) Reset(spaces *Spaces, id int) {
	*th = Thread{id: id, advanceIP: true}
	for n := range th.heads {
		th.heads[n].spaces = spaces
	}
	th.resetHeads(0)
}

// resetHeads moves every head to the start of space.
func (th *Thread) resetHeads(space int) {
	for n := range th.heads {
		th.heads[n].Set(space, 0)
	}
}

// resetStacks clears the local stacks.
func (th *Thread) resetStacks() {
	for n := range th.stacks {
		th.stacks[n].Reset()
	}
}

// ForkThread clones the current thread. The clone takes the lowest free
// thread id.
func (hw *Hardware) ForkThread() bool {
	if len(hw.threads) >= hw.config.MaxThreads {
		return false
	}

	id, ok := hw.threadIDs.Take()
	if !ok {
		return false
	}

	clone := hw.threads[hw.curThread]
	clone.id = id
	hw.threads = append(hw.threads, clone)

	if hw.Verbose {
		log.Printf("hardware: fork: thread %d from %d", id, hw.threads[hw.curThread].id)
	}

	return true
}

// KillThread removes the current thread. The last remaining thread can
// not be killed.
func (hw *Hardware) KillThread() bool {
	if len(hw.threads) <= 1 {
		return false
	}

	kill := hw.curThread
	hw.ThreadPrev()

	if hw.Verbose {
		log.Printf("hardware: kill: thread %d", hw.threads[kill].id)
	}

	hw.threadIDs.Free(hw.threads[kill].id)

	last := len(hw.threads) - 1
	hw.threads[kill] = hw.threads[last]
	hw.threads = hw.threads[:last]

	if hw.curThread > kill {
		hw.curThread--
	}

	return true
}

// ThreadNext makes the next thread current.
func (hw *Hardware) ThreadNext() {
	hw.curThread = (hw.curThread + 1) % len(hw.threads)
}

// ThreadPrev makes the previous thread current.
func (hw *Hardware) ThreadPrev() {
	hw.curThread = (hw.curThread + len(hw.threads) - 1) % len(hw.threads)
}

// slice returns the number of steps to run this tick. Fractional steps
// accumulate across ticks.
func (hw *Hardware) slice() (steps int) {
	threads := len(hw.threads)
	to_run := 1 + float64(threads-1)*hw.config.ThreadSlicing + hw.sliceRemainder
	steps = int(to_run)
	hw.sliceRemainder = to_run - float64(steps)
	return
}
