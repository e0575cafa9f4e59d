// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package hardware

import (
	"fmt"
	"iter"
	"maps"
	"strings"
	"sync"

	"github.com/ezrec/quadstack/genome"
)

const (
	NUM_NOPS = 6 // Nop-A through Nop-F
)

// Handler executes one instruction, returning false on failure.
type Handler func(hw *Hardware, ctx *Context) bool

// Entry is a single instruction of the library.
type Entry struct {
	Name    string
	Handler Handler
}

// nopEntry describes a nop instruction.
type nopEntry struct {
	Name string
	Mod  int
}

// Library is the immutable instruction table, indexed by opcode.
type Library struct {
	entries []Entry
	nops    []nopEntry
}

var errorEntry = Entry{
	Name:    "(error)",
	Handler: func(hw *Hardware, ctx *Context) bool { return false },
}

// NewLibrary builds the instruction table.
func NewLibrary() (lib *Library) {
	lib = &Library{
		nops: []nopEntry{
			{"Nop-A", STACK_AX},
			{"Nop-B", STACK_BX},
			{"Nop-C", STACK_CX},
			{"Nop-D", STACK_DX},
			{"Nop-E", STACK_EX},
			{"Nop-F", STACK_FX},
		},
	}

	for _, nop := range lib.nops {
		lib.entries = append(lib.entries, Entry{nop.Name, (*Hardware).instNop})
	}

	lib.entries = append(lib.entries, []Entry{
		{"Nop-X", (*Hardware).instNop},
		{"Val-Shift-R", (*Hardware).instShiftR},
		{"Val-Shift-L", (*Hardware).instShiftL},
		{"Val-Nand", (*Hardware).instNand},
		{"Val-Add", (*Hardware).instAdd},
		{"Val-Sub", (*Hardware).instSub},
		{"Val-Mult", (*Hardware).instMult},
		{"Val-Div", (*Hardware).instDiv},
		{"SetMemory", (*Hardware).instSetMemory},
		{"Divide", (*Hardware).instDivide},
		{"Inst-Read", (*Hardware).instRead},
		{"Inst-Write", (*Hardware).instWrite},
		{"If-Equal", (*Hardware).instIfEqual},
		{"If-Not-Equal", (*Hardware).instIfNotEqual},
		{"If-Less", (*Hardware).instIfLess},
		{"If-Greater", (*Hardware).instIfGreater},
		{"Head-Push", (*Hardware).instHeadPush},
		{"Head-Pop", (*Hardware).instHeadPop},
		{"Head-Move", (*Hardware).instHeadMove},
		{"Search", (*Hardware).instSearch},
		{"Push-Next", (*Hardware).instPushNext},
		{"Push-Prev", (*Hardware).instPushPrev},
		{"Push-Comp", (*Hardware).instPushComp},
		{"Val-Delete", (*Hardware).instValDelete},
		{"Val-Copy", (*Hardware).instValCopy},
		{"ThreadFork", (*Hardware).instForkThread},
		{"Val-Inc", (*Hardware).instIncrement},
		{"Val-Dec", (*Hardware).instDecrement},
		{"Val-Mod", (*Hardware).instMod},
		{"ThreadKill", (*Hardware).instKillThread},
		{"IO", (*Hardware).instIO},
		{"Inject", (*Hardware).instInject},
		{"Inst-Copy", (*Hardware).instCopy},
		{"If-Label", (*Hardware).instIfLabel},
	}...)

	return
}

var defaultLibrary = sync.OnceValue(NewLibrary)

// DefaultLibrary returns a shared instance of the instruction table.
func DefaultLibrary() *Library {
	return defaultLibrary()
}

// Size is the number of opcodes.
func (lib *Library) Size() int {
	return len(lib.entries)
}

// NumNops is the number of nop opcodes.
func (lib *Library) NumNops() int {
	return len(lib.nops)
}

// IsNop returns true if the instruction is a label modifier.
func (lib *Library) IsNop(inst genome.Instruction) bool {
	return int(inst) < len(lib.nops)
}

// NopMod returns the modifier of a nop. Non-nops return -1.
func (lib *Library) NopMod(inst genome.Instruction) int {
	if !lib.IsNop(inst) {
		return -1
	}
	return lib.nops[inst].Mod
}

// Lookup returns the library entry for an instruction.
func (lib *Library) Lookup(inst genome.Instruction) Entry {
	if int(inst) >= len(lib.entries) {
		return errorEntry
	}
	return lib.entries[inst]
}

// Name of an instruction.
func (lib *Library) Name(inst genome.Instruction) string {
	return lib.Lookup(inst).Name
}

// Inst finds an instruction by name. Unknown names return
// genome.INST_ERROR.
func (lib *Library) Inst(name string) genome.Instruction {
	for op, entry := range lib.entries {
		if entry.Name == name {
			return genome.Instruction(op)
		}
	}
	return genome.INST_ERROR
}

// Random returns a uniformly drawn instruction.
func (lib *Library) Random(rnd Random) genome.Instruction {
	return genome.Instruction(rnd.Uint(len(lib.entries)))
}

// Defines returns an iterator of the library's equates: one INST_ name per
// opcode, plus the hardware dimensions.
func (lib *Library) Defines() iter.Seq2[string, string] {
	defines := map[string]string{
		"NUM_NOPS":          fmt.Sprintf("%v", NUM_NOPS),
		"NUM_MEMORY_SPACES": fmt.Sprintf("%v", NUM_MEMORY_SPACES),
		"NUM_HEADS":         fmt.Sprintf("%v", NUM_HEADS),
		"NUM_STACKS":        fmt.Sprintf("%v", NUM_STACKS),
		"STACK_SIZE":        fmt.Sprintf("%v", STACK_SIZE),
		"MAX_LABEL_SIZE":    fmt.Sprintf("%v", genome.MAX_LABEL_SIZE),
	}
	for op, entry := range lib.entries {
		name := "INST_" + strings.ToUpper(strings.ReplaceAll(entry.Name, "-", "_"))
		defines[name] = fmt.Sprintf("%v", op)
	}
	return maps.All(defines)
}
