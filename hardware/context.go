package hardware

import (
	"github.com/ezrec/quadstack/genome"
)

// Random is the source of all randomness used by the hardware.
type Random interface {
	Uint(n int) int                // Uniform integer in [0, n).
	Binomial(n int, p float64) int // Successes in n trials of probability p.
	P(p float64) bool              // True with probability p.
}

// MutationRates are the organism's per-event mutation probabilities.
type MutationRates struct {
	Copy      float64 // Copy error, per copied instruction.
	Exec      float64 // Execution error, per executed instruction.
	Divide    float64 // Single point mutation of an offspring.
	DivideIns float64 // Single insertion into an offspring.
	DivideDel float64 // Single deletion from an offspring.
	Point     float64 // Point mutation, per offspring site.
	Insert    float64 // Insertion, per offspring site.
	Delete    float64 // Deletion, per offspring site.
	Parent    float64 // Point mutation, per parent site, on divide.
}

// DivideCheck describes a prospective offspring for the viability test.
type DivideCheck struct {
	ParentSize   int // Size of the parent's memory space.
	ChildSize    int // Size of the offspring.
	CopiedSize   int // Positions of the parent's space written by copies.
	ExecutedSize int // Positions of the parent's space executed.
}

// Organism is the phenotype hosting a Hardware.
type Organism interface {
	IsRunning() bool
	SetRunning(running bool)
	IncTimeUsed()
	TimeUsed() int
	MaxExecuted() int
	ToDie() bool
	Die()

	// Fault reports a runtime fault. Faults never interrupt execution.
	Fault(loc FaultLocation, kind FaultKind, msg string)
	// Breakpoint is called when the ip reaches a flagged position.
	Breakpoint()

	IsModified() bool
	SetModified()

	// CountInst adjusts the executed count of an opcode by delta.
	CountInst(op int, delta int)
	// CountCopy records a copied instruction, and if it was mutated.
	CountCopy(mutated bool)

	Rates() MutationRates

	DivideViable(ctx *Context, check DivideCheck) bool
	TestFitness(ctx *Context, child genome.Genome)
	// ActivateDivide takes ownership of the offspring.
	ActivateDivide(ctx *Context, child genome.Genome) bool
	// InjectParasite delivers a payload to a neighbour.
	InjectParasite(ctx *Context, code genome.Genome) bool

	NextInput() int32
	DoInput(value int32)
	DoOutput(ctx *Context, value int32)
}

// Context is the per-call execution context. It is never retained.
type Context struct {
	Organism Organism
	Random   Random
}

// Tracer observes each executed step.
type Tracer interface {
	TraceHardware(hw *Hardware, bonus bool)
}
