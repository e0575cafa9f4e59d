package hardware

import (
	"log"

	"github.com/ezrec/quadstack/genome"
)

// Divide splits off the first positions of space, up to the write head,
// as an offspring. The ip must be in memory space 0. Returns false if
// the offspring was not viable.
func (hw *Hardware) Divide(ctx *Context, space int, mult float64) bool {
	org := ctx.Organism

	if hw.IP().Space() != 0 {
		org.Fault(FAULT_LOC_DIVIDE, FAULT_TYPE_ERROR, f("divide: not executing from memory space 0"))
		return false
	}

	write_pos := hw.Head(HEAD_WRITE).Pos()
	if write_pos < 1 {
		org.Fault(FAULT_LOC_DIVIDE, FAULT_TYPE_ERROR, f("divide: no offspring"))
		return false
	}

	mem := &hw.spaces[space]
	check := DivideCheck{
		ParentSize:   hw.spaces[0].Size(),
		ChildSize:    write_pos,
		ExecutedSize: hw.spaces[0].CountFlag(genome.FLAG_EXECUTED),
	}
	for pos := range write_pos {
		if mem.HasFlag(pos, genome.FLAG_COPIED) {
			check.CopiedSize++
		}
	}

	if !org.DivideViable(ctx, check) {
		return false
	}

	child := mem.Slice(write_pos)

	hw.Mutate(ctx, &child, mult)

	org.TestFitness(ctx, child)

	hw.resetFTCosts()

	if hw.Verbose {
		log.Printf("hardware: divide: %d instructions from space %d", len(child), space)
	}

	parent_alive := org.ActivateDivide(ctx, child)

	hw.resetSpace(space)

	if !parent_alive || hw.config.DivideMethod == DIVIDE_METHOD_OFFSPRING {
		return true
	}

	switch hw.config.DivideMethod {
	case DIVIDE_METHOD_SPLIT:
		hw.Reset()
	case DIVIDE_METHOD_BIRTH:
		threads := len(hw.threads)
		if (!org.IsModified() && threads > 1) || threads > 2 {
			hw.KillThread()
		} else {
			thread := hw.thread()
			thread.resetHeads(0)
			thread.resetStacks()
		}
	}

	hw.thread().advanceIP = false

	return true
}
