// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package genome

import (
	"slices"
	"strings"
)

// Instruction is a single opcode of a genome.
type Instruction uint8

const (
	INST_DEFAULT = Instruction(0)   // Default instruction; fills grown memory.
	INST_ERROR   = Instruction(255) // Out-of-range instruction.
)

// symbols used to render a genome as a compact string.
const symbols = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Op returns the opcode as an index.
func (inst Instruction) Op() int {
	return int(inst)
}

// Symbol returns the single character rendering of the instruction.
func (inst Instruction) Symbol() byte {
	if int(inst) < len(symbols) {
		return symbols[inst]
	}
	return '?'
}

// Genome is an owned sequence of instructions.
type Genome []Instruction

// Clone returns an independent copy of the genome.
func (g Genome) Clone() Genome {
	return slices.Clone(g)
}

// Insert places inst at pos, shifting later instructions right.
// Valid positions are [0, len(g)].
func (g *Genome) Insert(pos int, inst Instruction) {
	*g = slices.Insert(*g, pos, inst)
}

// Remove deletes the instruction at pos.
func (g *Genome) Remove(pos int) {
	*g = slices.Delete(*g, pos, pos+1)
}

// String renders the genome one symbol per instruction.
func (g Genome) String() string {
	var sb strings.Builder
	for _, inst := range g {
		sb.WriteByte(inst.Symbol())
	}
	return sb.String()
}
