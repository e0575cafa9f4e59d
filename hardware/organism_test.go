package hardware

import (
	"strings"
	"testing"

	"github.com/ezrec/quadstack/genome"
)

type testFault struct {
	loc  FaultLocation
	kind FaultKind
	msg  string
}

// testOrganism records every call made by the hardware.
type testOrganism struct {
	running     bool
	timeUsed    int
	maxExecuted int
	toDie       bool
	dead        bool
	modified    bool
	breakpoints int

	faults    []testFault
	instCount map[int]int
	copies    int
	copyMuts  int

	rates MutationRates

	notViable   bool
	checks      []DivideCheck
	tested      []genome.Genome
	offspring   []genome.Genome
	parentDies  bool
	injected    []genome.Genome
	injectFails bool

	inputs  []int32
	inputAt int
	outputs []int32
}

var _ Organism = (*testOrganism)(nil)

func newTestOrganism() *testOrganism {
	return &testOrganism{instCount: map[int]int{}}
}

func (org *testOrganism) IsRunning() bool         { return org.running }
func (org *testOrganism) SetRunning(running bool) { org.running = running }
func (org *testOrganism) IncTimeUsed()            { org.timeUsed++ }
func (org *testOrganism) TimeUsed() int           { return org.timeUsed }
func (org *testOrganism) MaxExecuted() int        { return org.maxExecuted }
func (org *testOrganism) ToDie() bool             { return org.toDie }
func (org *testOrganism) Die()                    { org.dead = true }
func (org *testOrganism) Breakpoint()             { org.breakpoints++ }
func (org *testOrganism) IsModified() bool        { return org.modified }
func (org *testOrganism) SetModified()            { org.modified = true }
func (org *testOrganism) Rates() MutationRates    { return org.rates }

func (org *testOrganism) Fault(loc FaultLocation, kind FaultKind, msg string) {
	org.faults = append(org.faults, testFault{loc, kind, msg})
}

func (org *testOrganism) CountInst(op int, delta int) {
	org.instCount[op] += delta
}

func (org *testOrganism) CountCopy(mutated bool) {
	org.copies++
	if mutated {
		org.copyMuts++
	}
}

func (org *testOrganism) DivideViable(ctx *Context, check DivideCheck) bool {
	org.checks = append(org.checks, check)
	return !org.notViable
}

func (org *testOrganism) TestFitness(ctx *Context, child genome.Genome) {
	org.tested = append(org.tested, child)
}

func (org *testOrganism) ActivateDivide(ctx *Context, child genome.Genome) bool {
	org.offspring = append(org.offspring, child)
	return !org.parentDies
}

func (org *testOrganism) InjectParasite(ctx *Context, code genome.Genome) bool {
	org.injected = append(org.injected, code)
	return !org.injectFails
}

func (org *testOrganism) NextInput() (value int32) {
	if len(org.inputs) == 0 {
		return
	}
	value = org.inputs[org.inputAt%len(org.inputs)]
	org.inputAt++
	return
}

func (org *testOrganism) DoInput(value int32) {}

func (org *testOrganism) DoOutput(ctx *Context, value int32) {
	org.outputs = append(org.outputs, value)
}

// scriptedRandom replays queued values. Empty queues yield zero values,
// and probabilities of zero or less never consume a value.
type scriptedRandom struct {
	uints     []int
	binomials []int
	ps        []bool
}

var _ Random = (*scriptedRandom)(nil)

func (rnd *scriptedRandom) Uint(n int) (value int) {
	if len(rnd.uints) == 0 {
		return
	}
	value = rnd.uints[0] % n
	rnd.uints = rnd.uints[1:]
	return
}

func (rnd *scriptedRandom) Binomial(n int, p float64) (value int) {
	if len(rnd.binomials) == 0 {
		return
	}
	value = rnd.binomials[0]
	rnd.binomials = rnd.binomials[1:]
	return
}

func (rnd *scriptedRandom) P(p float64) (value bool) {
	if p <= 0 || len(rnd.ps) == 0 {
		return
	}
	value = rnd.ps[0]
	rnd.ps = rnd.ps[1:]
	return
}

// assemble builds a genome from instruction listing lines.
func assemble(t *testing.T, lines ...string) genome.Genome {
	asm := &Assembler{}
	code, err := asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return code
}

// newTestHardware builds a hardware, organism and context for a listing.
func newTestHardware(t *testing.T, config *Config, lines ...string) (hw *Hardware, org *testOrganism, ctx *Context) {
	if config == nil {
		config = DefaultConfig()
	}

	hw, err := New(DefaultLibrary(), config, assemble(t, lines...))
	if err != nil {
		t.Fatal(err)
	}

	org = newTestOrganism()
	ctx = &Context{Organism: org, Random: &scriptedRandom{}}

	return
}

// op returns the opcode of a named instruction.
func op(name string) genome.Instruction {
	return DefaultLibrary().Inst(name)
}
