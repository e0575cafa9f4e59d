package hardware

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/quadstack/genome"
)

func TestHardware_InjectParasite(t *testing.T) {
	assert := assert.New(t)

	config := DefaultConfig()
	config.MinInjectSize = 3

	lines := append([]string{"Inject"}, slices.Repeat([]string{"Val-Inc"}, 19)...)
	hw, org, ctx := newTestHardware(t, config, lines...)
	hw.Head(HEAD_WRITE).Set(0, 8)
	hw.Stack(STACK_BX).Push(3)

	ticks(hw, ctx, 1)

	expect := append(genome.Genome{op("Inject")}, slices.Repeat(genome.Genome{op("Val-Inc")}, 7)...)
	assert.Equal([]genome.Genome{expect}, org.injected)
	assert.Equal(1, org.instCount[int(op("Inject"))])

	// The source space is emptied, and the thread restarts.
	assert.Equal(genome.Genome{genome.INST_DEFAULT}, hw.Memory(0).Genome())
	assert.Equal(0, hw.IP().Pos())
	assert.Equal(0, hw.Head(HEAD_WRITE).Pos())
	assert.True(hw.Stack(STACK_BX).Empty())
	assert.True(hw.OK())
}

func TestHardware_InjectParasiteFailure(t *testing.T) {
	assert := assert.New(t)

	config := DefaultConfig()
	config.MinInjectSize = 3

	hw, org, ctx := newTestHardware(t, config, "Inject", "Val-Inc")
	hw.Memory(2).Set(genome.Genome{7, 8, 9})

	// Nothing to inject.
	hw.Head(HEAD_WRITE).Set(2, 0)
	ticks(hw, ctx, 1)
	assert.Empty(org.injected)
	if assert.Equal(1, len(org.faults)) {
		assert.Equal(FAULT_LOC_INJECT, org.faults[0].loc)
	}
	assert.Equal(genome.Genome{7, 8, 9}, hw.Memory(2).Genome())
	assert.Equal(0, org.instCount[int(op("Inject"))])

	// Too small, and the space is emptied.
	hw.Head(HEAD_WRITE).Set(2, 2)
	assert.False(hw.InjectParasite(ctx, 1))
	assert.Empty(org.injected)
	assert.Equal(2, len(org.faults))
	assert.True(hw.IsEmpty(2))
	assert.True(hw.OK())

	// Refused by the organism.
	hw.Memory(2).Set(genome.Genome{7, 8, 9, 10})
	hw.Head(HEAD_WRITE).Set(2, 3)
	org.injectFails = true
	assert.False(hw.InjectParasite(ctx, 1))
	assert.Equal([]genome.Genome{{7, 8, 9}}, org.injected)
	assert.Equal(2, len(org.faults))
	assert.True(hw.IsEmpty(2))
}

func TestHardware_InjectHost(t *testing.T) {
	assert := assert.New(t)

	hw, org, ctx := newTestHardware(t, nil, "Val-Inc", "Val-Inc")
	hw.Head(HEAD_WRITE).Set(1, 0)
	hw.Stack(STACK_BX).Push(3)

	assert.True(hw.InjectHost(ctx, genome.Genome{7, 8}))

	mem := hw.Memory(1)
	assert.Equal(genome.Genome{7, 8, 1}, mem.Genome())
	assert.True(mem.HasFlag(0, genome.FLAG_INJECTED))
	assert.True(mem.HasFlag(1, genome.FLAG_INJECTED))
	assert.False(mem.HasFlag(2, genome.FLAG_INJECTED))
	assert.True(org.modified)

	// The parasite runs in a new current thread.
	assert.Equal(2, hw.NumThreads())
	assert.Equal(1, hw.CurThread())
	assert.Equal(1, hw.IP().Space())
	assert.Equal(0, hw.IP().Pos())
	assert.True(hw.Stack(STACK_BX).Empty())

	// Existing heads keep addressing the same instruction.
	host := &hw.threads[0]
	assert.Equal(2, host.heads[HEAD_WRITE].Pos())
	assert.Equal(int32(3), host.stacks[STACK_BX].Top())
	assert.True(hw.OK())

	// Both the host and the parasite execute.
	ticks(hw, ctx, 2)
	assert.Equal(1, org.instCount[int(op("Val-Inc"))])
	assert.Equal(1, org.instCount[int(op("Val-Shift-R"))])
	assert.Equal(1, hw.IP().Pos())
}

func TestHardware_InjectHostFull(t *testing.T) {
	assert := assert.New(t)

	hw, org, ctx := newTestHardware(t, nil, "Val-Inc")
	for space := 1; space < NUM_MEMORY_SPACES; space++ {
		hw.Memory(space).Set(genome.Genome{7})
	}

	assert.False(hw.InjectHost(ctx, genome.Genome{8}))
	assert.False(org.modified)
	assert.Equal(1, hw.NumThreads())

	// Without a free thread the payload is dropped.
	config := DefaultConfig()
	config.MaxThreads = 1
	hw, org, ctx = newTestHardware(t, config, "Val-Inc")

	assert.True(hw.InjectHost(ctx, genome.Genome{8}))
	assert.False(org.modified)
	assert.Equal(genome.Genome{1}, hw.Memory(1).Genome())
}
