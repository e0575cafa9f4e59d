package hardware

import (
	"fmt"

	"github.com/ezrec/quadstack/genome"
)

//go:generate go tool stringer -linecomment -type=HeadRole

// HeadRole names the heads of a thread.
type HeadRole int

const (
	HEAD_IP    = HeadRole(iota) // ip
	HEAD_READ                   // read
	HEAD_WRITE                  // write
	HEAD_FLOW                   // flow

	NUM_HEADS = 4
)

const (
	NUM_MEMORY_SPACES = 4
)

// Spaces are the memory spaces of a Hardware.
type Spaces [NUM_MEMORY_SPACES]genome.Memory

// Head is a cursor into one of the memory spaces.
type Head struct {
	spaces *Spaces
	space  int
	pos    int
}

// Space returns the memory space index of the head.
func (head *Head) Space() int {
	return head.space
}

// Pos returns the position of the head in its space.
func (head *Head) Pos() int {
	return head.pos
}

// Memory returns the memory the head points into.
func (head *Head) Memory() *genome.Memory {
	return &head.spaces[head.space]
}

// Set moves the head to pos of space, and adjusts it.
func (head *Head) Set(space, pos int) {
	head.space = space
	head.pos = pos
	head.Adjust()
}

// SetPos moves the head within its space, and adjusts it.
func (head *Head) SetPos(pos int) {
	head.pos = pos
	head.Adjust()
}

// Adjust normalizes the head to a valid position.
func (head *Head) Adjust() {
	head.space %= NUM_MEMORY_SPACES
	if head.space < 0 {
		head.space += NUM_MEMORY_SPACES
	}

	size := head.Memory().Size()
	switch {
	case head.pos >= 0 && head.pos < size:
	case head.pos < 0 || size == 0:
		head.pos = 0
	default:
		head.pos %= size
	}
}

func (head *Head) Advance() {
	head.Jump(1)
}

func (head *Head) Retreat() {
	head.Jump(-1)
}

func (head *Head) Jump(n int) {
	head.pos += n
	head.Adjust()
}

// Inst returns the instruction under the head.
func (head *Head) Inst() genome.Instruction {
	return head.Memory().Inst(head.pos)
}

// SetInst writes the instruction under the head.
func (head *Head) SetInst(inst genome.Instruction) {
	head.Memory().SetInst(head.pos, inst)
}

// NextInst returns the instruction after the head. At the last position
// of the space it is the error instruction.
func (head *Head) NextInst() genome.Instruction {
	if head.AtEnd() {
		return genome.INST_ERROR
	}
	return head.Memory().Inst(head.pos + 1)
}

// AtEnd returns true if the head is on the last position of its space.
func (head *Head) AtEnd() bool {
	return head.pos+1 >= head.Memory().Size()
}

func (head *Head) HasFlag(flag genome.Flag) bool {
	return head.Memory().HasFlag(head.pos, flag)
}

func (head *Head) SetFlag(flag genome.Flag) {
	head.Memory().SetFlag(head.pos, flag)
}

func (head *Head) ClearFlag(flag genome.Flag) {
	head.Memory().ClearFlag(head.pos, flag)
}

// Equal returns true if both heads address the same position.
func (head *Head) Equal(other *Head) bool {
	return head.space == other.space && head.pos == other.pos
}

func (head Head) String() string {
	return fmt.Sprintf("%d:%d", head.space, head.pos)
}
