// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package genome

import (
	"slices"
)

// Flag marks the history of a single memory position.
type Flag uint8

const (
	FLAG_EXECUTED   = Flag(1 << 0) // Position has been executed.
	FLAG_COPIED     = Flag(1 << 1) // Position was written by a copy.
	FLAG_MUTATED    = Flag(1 << 2) // Position was altered by a mutation.
	FLAG_COPY_MUT   = Flag(1 << 3) // Position was altered by a copy error.
	FLAG_INJECTED   = Flag(1 << 4) // Position arrived by parasite injection.
	FLAG_BREAKPOINT = Flag(1 << 5) // Execution stops to notify the organism.
)

// Memory is a mutable instruction buffer with per-position flags.
type Memory struct {
	code  []Instruction
	flags []Flag
}

// NewMemory creates a memory holding a copy of g, with all flags clear.
func NewMemory(g Genome) (mem *Memory) {
	mem = &Memory{}
	mem.Set(g)
	return
}

// Set replaces the contents with a copy of g, clearing all flags.
func (mem *Memory) Set(g Genome) {
	mem.code = slices.Clone(g)
	mem.flags = make([]Flag, len(g))
}

// Size of the memory in instructions.
func (mem *Memory) Size() int {
	return len(mem.code)
}

// Inst returns the instruction at pos.
func (mem *Memory) Inst(pos int) Instruction {
	return mem.code[pos]
}

// SetInst replaces the instruction at pos, leaving its flags alone.
func (mem *Memory) SetInst(pos int, inst Instruction) {
	mem.code[pos] = inst
}

// Flags returns the flag set at pos.
func (mem *Memory) Flags(pos int) Flag {
	return mem.flags[pos]
}

// HasFlag returns true if all of the bits of flag are set at pos.
func (mem *Memory) HasFlag(pos int, flag Flag) bool {
	return (mem.flags[pos] & flag) == flag
}

// SetFlag sets the bits of flag at pos.
func (mem *Memory) SetFlag(pos int, flag Flag) {
	mem.flags[pos] |= flag
}

// ClearFlag clears the bits of flag at pos.
func (mem *Memory) ClearFlag(pos int, flag Flag) {
	mem.flags[pos] &^= flag
}

// CountFlag returns the number of positions with flag set.
func (mem *Memory) CountFlag(flag Flag) (count int) {
	for n := range mem.flags {
		if mem.HasFlag(n, flag) {
			count++
		}
	}
	return
}

// Resize grows or shrinks the memory. New positions hold the default
// instruction with no flags.
func (mem *Memory) Resize(size int) {
	old := len(mem.code)
	if size <= old {
		mem.code = mem.code[:size]
		mem.flags = mem.flags[:size]
		return
	}
	for range size - old {
		mem.code = append(mem.code, INST_DEFAULT)
		mem.flags = append(mem.flags, 0)
	}
}

// Copy duplicates the instruction and flags at from into to.
func (mem *Memory) Copy(to, from int) {
	mem.code[to] = mem.code[from]
	mem.flags[to] = mem.flags[from]
}

// Insert places inst at pos with no flags.
func (mem *Memory) Insert(pos int, inst Instruction) {
	mem.code = slices.Insert(mem.code, pos, inst)
	mem.flags = slices.Insert(mem.flags, pos, 0)
}

// Remove deletes the position pos.
func (mem *Memory) Remove(pos int) {
	mem.code = slices.Delete(mem.code, pos, pos+1)
	mem.flags = slices.Delete(mem.flags, pos, pos+1)
}

// Prepend places a copy of g ahead of the current contents, flagging the
// new positions with flag.
func (mem *Memory) Prepend(g Genome, flag Flag) {
	code := make([]Instruction, 0, len(g)+len(mem.code))
	code = append(code, g...)
	code = append(code, mem.code...)

	flags := make([]Flag, len(g), len(g)+len(mem.flags))
	for n := range flags {
		flags[n] = flag
	}
	flags = append(flags, mem.flags...)

	mem.code = code
	mem.flags = flags
}

// Genome returns a copy of the whole memory.
func (mem *Memory) Genome() Genome {
	return slices.Clone(mem.code)
}

// Slice returns a copy of the first n instructions.
func (mem *Memory) Slice(n int) Genome {
	return slices.Clone(mem.code[:n])
}

// String renders the memory one symbol per instruction.
func (mem *Memory) String() string {
	return Genome(mem.code).String()
}

// OK verifies the memory invariants.
func (mem *Memory) OK() bool {
	return len(mem.code) > 0 && len(mem.code) == len(mem.flags)
}
