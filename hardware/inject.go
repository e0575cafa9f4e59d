package hardware

import (
	"log"

	"github.com/ezrec/quadstack/genome"
)

// InjectParasite sends the positions of the write head's space, up to the
// write head, to the organism for delivery to a neighbour. The space is
// emptied and the current thread restarts in the ip's space.
func (hw *Hardware) InjectParasite(ctx *Context, mult float64) (ok bool) {
	org := ctx.Organism

	write := hw.Head(HEAD_WRITE)
	end_pos := write.Pos()
	space := write.Space()

	if end_pos <= 0 {
		org.Fault(FAULT_LOC_INJECT, FAULT_TYPE_ERROR, f("inject: no code to inject"))
		return false
	}

	if end_pos < hw.config.MinInjectSize {
		hw.resetSpace(space)
		org.Fault(FAULT_LOC_INJECT, FAULT_TYPE_ERROR, f("inject: new size too small"))
		return false
	}

	code := hw.spaces[space].Slice(end_pos)

	hw.Mutate(ctx, &code, mult)

	if len(code) > 0 {
		ok = org.InjectParasite(ctx, code)
	}

	if hw.Verbose {
		log.Printf("hardware: inject: %d instructions from space %d: %v", len(code), space, ok)
	}

	hw.resetSpace(space)

	thread := hw.thread()
	thread.resetHeads(hw.IP().Space())
	thread.resetStacks()
	thread.advanceIP = false

	return
}

// InjectHost receives a parasite into the first empty memory space, and
// starts a new thread executing it. Returns false if no space was empty.
// When no thread can be forked the payload is dropped.
func (hw *Hardware) InjectHost(ctx *Context, code genome.Genome) bool {
	target := -1
	for space := range NUM_MEMORY_SPACES {
		if hw.IsEmpty(space) {
			target = space
			break
		}
	}

	if target < 0 {
		return false
	}

	if !hw.ForkThread() {
		if hw.Verbose {
			log.Printf("hardware: inject: no thread for parasite")
		}
		return true
	}

	hw.spaces[target].Prepend(code, genome.FLAG_INJECTED)
	ctx.Organism.SetModified()

	hw.curThread = len(hw.threads) - 1

	for n := range hw.curThread {
		for m := range hw.threads[n].heads {
			head := &hw.threads[n].heads[m]
			if head.space == target {
				head.Jump(len(code))
			}
		}
	}

	thread := hw.thread()
	thread.resetHeads(target)
	thread.resetStacks()

	if hw.Verbose {
		log.Printf("hardware: inject: %d instructions into space %d", len(code), target)
	}

	return true
}
