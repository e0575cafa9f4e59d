package emulator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/quadstack/genome"
	"github.com/ezrec/quadstack/hardware"
	"github.com/ezrec/quadstack/io"
	"github.com/ezrec/quadstack/random"
)

// ancestor is a minimal self-replicator of 25 instructions.
var ancestor = []string{
	"Search", "Nop-A", "Nop-A",                   // flow: end of genome, BX: genome size
	"Push-Next", "Nop-B",                         // CX: genome size
	"SetMemory",                                  // flow: empty space
	"Head-Move", "Nop-C",                         // write: empty space
	"Search", "Nop-B", "Nop-B", "Nop-D", "Nop-D", // flow: copy loop
	"Inst-Read",
	"Inst-Write",
	"Head-Push", "Nop-B", // BX: read position
	"If-Equal", "Nop-B",  // all copied?
	"Divide",
	"Val-Delete",
	"Head-Move", "Nop-X", // ip: copy loop
	"Nop-C", "Nop-C",
}

// ANCESTOR_TICKS is the time taken by the ancestor to replicate.
const ANCESTOR_TICKS = 154

func newEmulator(t *testing.T, options Options, lines ...string) (emu *Emulator) {
	asm := &hardware.Assembler{}
	code, err := asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatal(err)
	}

	emu, err = NewEmulator(hardware.DefaultLibrary(), hardware.DefaultConfig(), options, code)
	if err != nil {
		t.Fatal(err)
	}

	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	_, err := NewEmulator(hardware.DefaultLibrary(), hardware.DefaultConfig(), DefaultOptions(), genome.Genome{})
	assert.ErrorIs(err, hardware.ErrGenomeEmpty)

	emu := newEmulator(t, DefaultOptions(), ancestor...)
	assert.False(emu.Verbose)
	assert.Equal(25, len(emu.Genome))
	assert.Equal(26, emu.Hardware.Memory(0).Size())
	assert.False(emu.IsDead())
}

func TestEmulator_Replicate(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(t, DefaultOptions(), ancestor...)
	rnd := random.New(1)

	for range 1000 {
		done, err := emu.Tick(rnd)
		assert.NoError(err)
		assert.False(done)
		if len(emu.Offspring) == 2 {
			break
		}
	}

	assert.Equal(2*ANCESTOR_TICKS, emu.TimeUsed())
	assert.Empty(emu.Faults)
	assert.Equal(2, emu.Divides)
	assert.Equal(2*len(emu.Genome), emu.Copies)
	assert.Equal(0, emu.CopyMutations)
	assert.Equal(2, emu.InstCount[int(hardware.DefaultLibrary().Inst("Divide"))])

	for range 2 {
		child, ok := emu.NextOffspring()
		assert.True(ok)
		assert.Equal(emu.Genome, child)
	}
	_, ok := emu.NextOffspring()
	assert.False(ok)

	// The parent is unchanged, and its copy space emptied.
	assert.Equal(append(emu.Genome.Clone(), genome.INST_DEFAULT), emu.Hardware.Memory(0).Genome())
	assert.True(emu.Hardware.IsEmpty(1))
	assert.True(emu.Hardware.OK())
}

func TestEmulator_NotViable(t *testing.T) {
	assert := assert.New(t)

	options := DefaultOptions()
	options.MinExecutedFraction = 0.9
	emu := newEmulator(t, options, ancestor...)
	rnd := random.New(1)

	for range ANCESTOR_TICKS {
		_, err := emu.Tick(rnd)
		assert.NoError(err)
	}

	assert.Empty(emu.Offspring)
	if assert.Equal(1, len(emu.Faults)) {
		assert.Equal(hardware.FAULT_LOC_DIVIDE, emu.Faults[0].Location)
		assert.Equal(hardware.FAULT_TYPE_ERROR, emu.Faults[0].Kind)
	}
	assert.Equal(0, emu.Divides)
}

func TestEmulator_DivideViable(t *testing.T) {
	table := [](struct {
		name   string
		check  hardware.DivideCheck
		viable bool
	}){
		{"ok", hardware.DivideCheck{ParentSize: 26, ChildSize: 25, CopiedSize: 25, ExecutedSize: 18}, true},
		{"too-small", hardware.DivideCheck{ParentSize: 26, ChildSize: 7, CopiedSize: 7, ExecutedSize: 26}, false},
		{"range-low", hardware.DivideCheck{ParentSize: 26, ChildSize: 12, CopiedSize: 12, ExecutedSize: 26}, false},
		{"range-high", hardware.DivideCheck{ParentSize: 26, ChildSize: 51, CopiedSize: 51, ExecutedSize: 26}, false},
		{"range-edge", hardware.DivideCheck{ParentSize: 26, ChildSize: 50, CopiedSize: 25, ExecutedSize: 13}, true},
		{"copied", hardware.DivideCheck{ParentSize: 26, ChildSize: 25, CopiedSize: 12, ExecutedSize: 26}, false},
		{"executed", hardware.DivideCheck{ParentSize: 26, ChildSize: 25, CopiedSize: 25, ExecutedSize: 12}, false},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			emu := newEmulator(t, DefaultOptions(), ancestor...)
			ctx := &hardware.Context{Organism: emu, Random: random.New(1)}

			assert.Equal(entry.viable, emu.DivideViable(ctx, entry.check))
			if entry.viable {
				assert.Empty(emu.Faults)
			} else {
				assert.Equal(1, len(emu.Faults))
			}
		})
	}
}

func TestEmulator_Parasite(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(t, DefaultOptions(), ancestor...)
	host := newEmulator(t, DefaultOptions(), ancestor...)
	ctx := &hardware.Context{Organism: emu, Random: random.New(1)}

	code := genome.Genome{7, 8, 9}
	assert.False(emu.InjectParasite(ctx, code))
	assert.Equal(0, emu.Parasites)

	emu.Neighbor = host
	assert.True(emu.InjectParasite(ctx, code))
	assert.Equal(1, emu.Parasites)

	assert.True(host.IsModified())
	assert.False(emu.IsModified())
	assert.Equal(genome.Genome{7, 8, 9, 1}, host.Hardware.Memory(1).Genome())
	assert.Equal(2, host.Hardware.NumThreads())

	// The host keeps running, now with the parasite thread.
	_, err := host.Tick(random.New(2))
	assert.NoError(err)
	assert.True(host.Hardware.OK())
}

func TestEmulator_IO(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(t, DefaultOptions(), "IO", "IO", "IO", "IO")
	rnd := random.New(1)

	for range 4 {
		_, err := emu.Tick(rnd)
		assert.NoError(err)
	}

	in := DEFAULT_INPUTS
	assert.Equal([]int32{in[0], in[1], in[2], in[0]}, emu.Inputs)

	output := emu.Output.(*io.Buffer)
	assert.Equal([]int32{0, in[0], in[1], 0}, output.Recent())
	assert.Equal(4, output.Total())

	emu.Reset()
	assert.Nil(emu.Inputs)
	assert.Nil(output.Recent())
	assert.Equal(0, output.Total())
	assert.Equal(0, emu.TimeUsed())
}

func TestEmulator_Die(t *testing.T) {
	assert := assert.New(t)

	options := DefaultOptions()
	options.MaxExecuted = 3
	emu := newEmulator(t, options, "Val-Inc")
	rnd := random.New(1)

	for range 2 {
		done, err := emu.Tick(rnd)
		assert.NoError(err)
		assert.False(done)
	}

	done, err := emu.Tick(rnd)
	assert.NoError(err)
	assert.True(done)
	assert.True(emu.IsDead())

	_, err = emu.Tick(rnd)
	assert.ErrorIs(err, ErrNotRunning)

	emu.Reset()
	assert.False(emu.IsDead())

	emu.Kill()
	done, err = emu.Tick(rnd)
	assert.NoError(err)
	assert.True(done)
}

func TestEmulator_Faults(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(t, DefaultOptions(), "Val-Div", "ThreadKill")
	rnd := random.New(1)

	for range 2 {
		_, err := emu.Tick(rnd)
		assert.NoError(err)
	}

	if assert.Equal(2, len(emu.Faults)) {
		assert.Equal(hardware.FAULT_LOC_MATH, emu.Faults[0].Location)
		assert.Equal(hardware.FAULT_LOC_THREAD_KILL, emu.Faults[1].Location)
		assert.True(strings.HasPrefix(emu.Faults[1].String(), "thread-kill: "))
	}
	assert.Equal(0, emu.InstCount[int(hardware.DefaultLibrary().Inst("Val-Div"))])
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for key, value := range Defines() {
		defines[key] = value
	}

	assert.Equal("3", defines["INPUT_SIZE"])
	assert.Equal("256", defines["OUTPUT_CAPACITY"])
}
