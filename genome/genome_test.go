package genome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Symbol(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(byte('a'), Instruction(0).Symbol())
	assert.Equal(byte('z'), Instruction(25).Symbol())
	assert.Equal(byte('A'), Instruction(26).Symbol())
	assert.Equal(byte('9'), Instruction(61).Symbol())
	assert.Equal(byte('?'), Instruction(62).Symbol())
	assert.Equal(byte('?'), INST_ERROR.Symbol())
	assert.Equal(7, Instruction(7).Op())
}

func TestGenome(t *testing.T) {
	assert := assert.New(t)

	g := Genome{7, 8, 9}
	clone := g.Clone()
	clone[0] = 0
	assert.Equal(Genome{7, 8, 9}, g)

	g.Insert(0, 1)
	g.Insert(4, 2)
	g.Insert(2, 3)
	assert.Equal(Genome{1, 7, 3, 8, 9, 2}, g)

	g.Remove(0)
	g.Remove(4)
	assert.Equal(Genome{7, 3, 8, 9}, g)
	assert.Equal("hdij", g.String())
}

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	code := Genome{7, 8, 9}
	mem := NewMemory(code)
	code[0] = 0

	assert.True(mem.OK())
	assert.Equal(3, mem.Size())
	assert.Equal(Instruction(7), mem.Inst(0))

	mem.SetFlag(1, FLAG_COPIED|FLAG_EXECUTED)
	assert.True(mem.HasFlag(1, FLAG_COPIED))
	assert.True(mem.HasFlag(1, FLAG_COPIED|FLAG_EXECUTED))
	assert.False(mem.HasFlag(1, FLAG_COPIED|FLAG_MUTATED))
	mem.ClearFlag(1, FLAG_EXECUTED)
	assert.Equal(FLAG_COPIED, mem.Flags(1))

	mem.SetInst(1, 10)
	assert.Equal(FLAG_COPIED, mem.Flags(1))

	mem.Resize(5)
	assert.Equal(Genome{7, 10, 9, INST_DEFAULT, INST_DEFAULT}, mem.Genome())
	assert.Equal(Flag(0), mem.Flags(4))

	mem.Copy(4, 1)
	assert.Equal(Instruction(10), mem.Inst(4))
	assert.Equal(2, mem.CountFlag(FLAG_COPIED))

	mem.Insert(0, 11)
	assert.Equal(Genome{11, 7, 10, 9, INST_DEFAULT, 10}, mem.Genome())
	assert.Equal(Flag(0), mem.Flags(0))
	assert.Equal(FLAG_COPIED, mem.Flags(2))

	mem.Remove(2)
	assert.Equal(Genome{11, 7, 9, INST_DEFAULT, 10}, mem.Genome())
	assert.Equal(1, mem.CountFlag(FLAG_COPIED))

	mem.Resize(2)
	assert.Equal(Genome{11, 7}, mem.Slice(2))
	assert.Equal(Genome{11}, mem.Slice(1))
	assert.True(mem.OK())

	mem.Prepend(Genome{1, 2}, FLAG_INJECTED)
	assert.Equal(Genome{1, 2, 11, 7}, mem.Genome())
	assert.Equal(2, mem.CountFlag(FLAG_INJECTED))
	assert.False(mem.HasFlag(2, FLAG_INJECTED))
	assert.Equal("bclh", mem.String())

	mem.Set(Genome{3})
	assert.Equal(0, mem.CountFlag(FLAG_INJECTED))
	assert.True(mem.OK())

	var empty Memory
	assert.False(empty.OK())
}

func TestLabel(t *testing.T) {
	assert := assert.New(t)

	label := MakeLabel(0, 1, 5)
	assert.Equal(3, label.Size())
	assert.Equal(5, label.At(2))
	assert.Equal("ABF", label.String())
	assert.Equal([]int{0, 1, 5}, label.Mods())

	label.Rotate(2, 6)
	assert.Equal("CDB", label.String())
	assert.True(label.Equal(MakeLabel(2, 3, 1)))
	assert.False(label.Equal(MakeLabel(2, 3)))
	assert.False(label.Equal(MakeLabel(2, 3, 2)))

	// Labels are values.
	other := label
	other.Add(4)
	assert.Equal(3, label.Size())
	assert.Equal(4, other.Size())

	label.Clear()
	assert.Equal(0, label.Size())
	assert.Equal("", label.String())
	assert.Nil(label.Mods())
	assert.True(label.Equal(Label{}))

	for n := range MAX_LABEL_SIZE + 2 {
		label.Add(n % 6)
	}
	assert.Equal(MAX_LABEL_SIZE, label.Size())
	assert.Equal(3, label.At(MAX_LABEL_SIZE-1))
	assert.True(label.OK())
}
