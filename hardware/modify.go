package hardware

import (
	"github.com/ezrec/quadstack/genome"
)

// nextModifier consumes the nop following the ip, if any, returning its
// modifier.
func (hw *Hardware) nextModifier() (mod int, ok bool) {
	ip := hw.IP()
	if !hw.lib.IsNop(ip.NextInst()) {
		return
	}

	ip.Advance()
	ip.SetFlag(genome.FLAG_EXECUTED)

	return hw.lib.NopMod(ip.Inst()), true
}

// FindModifiedStack returns the stack named by the nop following the ip,
// or def.
func (hw *Hardware) FindModifiedStack(def int) int {
	if mod, ok := hw.nextModifier(); ok {
		return mod
	}
	return def
}

// FindModifiedHead returns the head named by the nop following the ip,
// or def. Modifiers beyond the head roles select def.
func (hw *Hardware) FindModifiedHead(def HeadRole) HeadRole {
	if mod, ok := hw.nextModifier(); ok && mod < NUM_HEADS {
		return HeadRole(mod)
	}
	return def
}

// FindComplementStack returns the stack paired with stack.
func FindComplementStack(stack int) int {
	return (stack + 2) % NUM_STACKS
}

// ReadLabel reads the nops following the ip into the current thread's
// label, up to max modifiers. The leading MaxLabelExeSize positions of the
// label are flagged executed.
func (hw *Hardware) ReadLabel(max int) {
	ip := hw.IP()
	label := &hw.thread().nextLabel

	label.Clear()
	for count := 0; count < max && hw.lib.IsNop(ip.NextInst()); count++ {
		ip.Advance()
		label.Add(hw.lib.NopMod(ip.Inst()))

		if label.Size() <= hw.config.MaxLabelExeSize {
			ip.SetFlag(genome.FLAG_EXECUTED)
		}
	}
}

// ReadInst accumulates nops read by the current thread. Any other
// instruction clears the accumulated label.
func (hw *Hardware) ReadInst(inst genome.Instruction) {
	label := &hw.thread().readLabel
	if hw.lib.IsNop(inst) {
		label.Add(hw.lib.NopMod(inst))
	} else {
		label.Clear()
	}
}

// FindFirstEmpty returns the first empty memory space after the ip's
// space that no head of any thread refers to, or -1.
func (hw *Hardware) FindFirstEmpty() int {
	current := hw.IP().Space()

	for n := 1; n < NUM_MEMORY_SPACES; n++ {
		space := (current + n) % NUM_MEMORY_SPACES
		if hw.IsEmpty(space) && !hw.isReferenced(space) {
			return space
		}
	}

	return -1
}

// isReferenced returns true if any head of any thread is in space.
func (hw *Hardware) isReferenced(space int) bool {
	for n := range hw.threads {
		for m := range hw.threads[n].heads {
			if hw.threads[n].heads[m].space == space {
				return true
			}
		}
	}
	return false
}
