// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/quadstack/genome"
	"github.com/ezrec/quadstack/hardware"
	"github.com/ezrec/quadstack/io"
)

const (
	OUTPUT_CAPACITY = 256 // Recent values kept by the default output channel.
)

// DEFAULT_INPUTS are the environment values of the default input channel.
var DEFAULT_INPUTS = []int32{0x0f13149f, 0x3308e53e, 0x556241eb}

var _emulator_defines = map[string]string{
	"OUTPUT_CAPACITY": fmt.Sprintf("%v", OUTPUT_CAPACITY),
	"INPUT_SIZE":      fmt.Sprintf("%v", len(DEFAULT_INPUTS)),
}

// Defines returns an iterator over the emulator's equates.
func Defines() iter.Seq2[string, string] {
	return maps.All(_emulator_defines)
}

// Options are the organism level settings of an emulator.
type Options struct {
	MaxExecuted         int     // Ticks before the organism dies of old age; 0 never.
	ChildSizeRange      float64 // Largest ratio between offspring and genome sizes; 0 disables.
	MinCopiedFraction   float64 // Fraction of the offspring that must have been copied.
	MinExecutedFraction float64 // Fraction of memory space 0 that must have been executed.

	Rates hardware.MutationRates // Mutation rates.
}

// DefaultOptions returns the reference organism options.
func DefaultOptions() Options {
	return Options{
		ChildSizeRange:      2.0,
		MinCopiedFraction:   0.5,
		MinExecutedFraction: 0.5,
	}
}

// Fault is a runtime fault reported by the hardware.
type Fault struct {
	Location hardware.FaultLocation
	Kind     hardware.FaultKind
	Message  string
}

func (fault Fault) String() string {
	return fmt.Sprintf("%v: %v", fault.Location, fault.Message)
}

// Emulator is a single organism: the hardware running its genome plus
// the phenotype bookkeeping the hardware reports to.
type Emulator struct {
	Verbose  bool               // If set, enables verbose logging.
	Hardware *hardware.Hardware // The organism's virtual CPU.
	Options  Options            // Organism settings.

	Neighbor *Emulator  // Receives injected parasites, if set.
	Input    io.Channel // Environment inputs; rewound when exhausted.
	Output   io.Channel // Organism outputs.

	Genome genome.Genome // Genome the organism was born with.

	Faults        []Fault         // Faults reported since the last reset.
	InstCount     []int           // Successful executions, per opcode.
	Copies        int             // Instructions copied.
	CopyMutations int             // Instructions mutated while copying.
	Divides       int             // Viable divides.
	Parasites     int             // Parasites delivered to the neighbor.
	Breakpoints   int             // Breakpoints reached.
	Inputs        []int32         // Values taken from the input channel.
	Offspring     []genome.Genome // Offspring not yet collected.

	running  bool
	modified bool
	dead     bool
	toDie    bool
	timeUsed int
}

var _ hardware.Organism = (*Emulator)(nil)

// NewEmulator creates an organism for a genome.
func NewEmulator(lib *hardware.Library, config *hardware.Config, options Options, code genome.Genome) (emu *Emulator, err error) {
	hw, err := hardware.New(lib, config, code)
	if err != nil {
		return
	}

	emu = &Emulator{
		Hardware:  hw,
		Options:   options,
		Input:     &io.Rom{Data: DEFAULT_INPUTS},
		Output:    &io.Buffer{Capacity: OUTPUT_CAPACITY},
		Genome:    code.Clone(),
		InstCount: make([]int, lib.Size()),
	}

	return
}

// Reset restores the hardware and clears the phenotype.
func (emu *Emulator) Reset() {
	emu.Hardware.Verbose = emu.Verbose
	emu.Hardware.Reset()

	emu.Input.Rewind()
	emu.Output.Rewind()

	clear(emu.InstCount)
	emu.Faults = nil
	emu.Copies = 0
	emu.CopyMutations = 0
	emu.Divides = 0
	emu.Parasites = 0
	emu.Breakpoints = 0
	emu.Inputs = nil
	emu.Offspring = nil

	emu.running = false
	emu.modified = false
	emu.dead = false
	emu.toDie = false
	emu.timeUsed = 0
}

// Tick runs a single time slice of the organism.
func (emu *Emulator) Tick(rnd hardware.Random) (done bool, err error) {
	if emu.dead {
		err = ErrNotRunning
		return
	}

	emu.Hardware.Verbose = emu.Verbose
	emu.Hardware.SingleProcess(&hardware.Context{Organism: emu, Random: rnd})

	done = emu.dead
	return
}

// Kill marks the organism to die at the end of its next time slice.
func (emu *Emulator) Kill() {
	emu.toDie = true
}

// IsDead returns true once the organism has died.
func (emu *Emulator) IsDead() bool {
	return emu.dead
}

// NextOffspring removes the oldest uncollected offspring.
func (emu *Emulator) NextOffspring() (child genome.Genome, ok bool) {
	if len(emu.Offspring) == 0 {
		return
	}

	child, emu.Offspring = emu.Offspring[0], emu.Offspring[1:]
	ok = true
	return
}

// TraceHardware logs the hardware status before every step.
func (emu *Emulator) TraceHardware(hw *hardware.Hardware, bonus bool) {
	if bonus {
		log.Printf("emulator: bonus\n%v", hw)
	} else {
		log.Printf("emulator: tick %d\n%v", emu.timeUsed, hw)
	}
}

func (emu *Emulator) IsRunning() bool         { return emu.running }
func (emu *Emulator) SetRunning(running bool) { emu.running = running }
func (emu *Emulator) IncTimeUsed()            { emu.timeUsed++ }
func (emu *Emulator) TimeUsed() int           { return emu.timeUsed }
func (emu *Emulator) MaxExecuted() int        { return emu.Options.MaxExecuted }
func (emu *Emulator) ToDie() bool             { return emu.toDie }
func (emu *Emulator) IsModified() bool        { return emu.modified }
func (emu *Emulator) SetModified()            { emu.modified = true }
func (emu *Emulator) Breakpoint()             { emu.Breakpoints++ }

func (emu *Emulator) Rates() hardware.MutationRates {
	return emu.Options.Rates
}

// Die ends the organism.
func (emu *Emulator) Die() {
	if emu.Verbose {
		log.Printf("emulator: died after %d ticks", emu.timeUsed)
	}
	emu.dead = true
}

// Fault records a runtime fault.
func (emu *Emulator) Fault(loc hardware.FaultLocation, kind hardware.FaultKind, msg string) {
	fault := Fault{Location: loc, Kind: kind, Message: msg}
	if emu.Verbose {
		log.Printf("emulator: fault: %v", fault)
	}
	emu.Faults = append(emu.Faults, fault)
}

func (emu *Emulator) CountInst(op int, delta int) {
	for len(emu.InstCount) <= op {
		emu.InstCount = append(emu.InstCount, 0)
	}
	emu.InstCount[op] += delta
}

func (emu *Emulator) CountCopy(mutated bool) {
	emu.Copies++
	if mutated {
		emu.CopyMutations++
	}
}
