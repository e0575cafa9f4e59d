// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package hardware

import (
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/quadstack/genome"
)

// Hardware is the virtual CPU of a single organism.
type Hardware struct {
	Verbose bool   // Set to enable verbose logging.
	Tracer  Tracer // If set, observes every executed step.

	lib    *Library
	config *Config

	spaces  Spaces
	global  [NUM_GLOBAL_STACKS]Stack
	threads []Thread

	curThread      int
	threadIDs      threadIDs
	sliceRemainder float64

	instCost []int // Remaining attempts before the next execution, per opcode.
	ftCost   []int // Remaining first execution attempts, per opcode.
}

// New creates the hardware for a genome. The genome is copied into memory
// space 0, followed by a single default instruction.
func New(lib *Library, config *Config, code genome.Genome) (hw *Hardware, err error) {
	if len(code) == 0 {
		err = ErrGenomeEmpty
		return
	}

	if config.MaxThreads < 1 || config.MaxThreads > MAX_THREAD_CAPACITY {
		err = ErrThreadCapacity
		return
	}

	hw = &Hardware{
		lib:      lib,
		config:   config,
		instCost: make([]int, lib.Size()),
		ftCost:   make([]int, lib.Size()),
	}

	hw.spaces[0].Set(code)
	hw.spaces[0].Resize(len(code) + 1)

	hw.Reset()

	return
}

// Reset restores the initial execution state. Memory space 0 is preserved.
func (hw *Hardware) Reset() {
	if hw.Verbose {
		log.Printf("hardware: reset")
	}

	for n := range hw.global {
		hw.global[n].Reset()
	}

	for space := 1; space < NUM_MEMORY_SPACES; space++ {
		hw.resetSpace(space)
	}

	hw.threadIDs = 0
	id, _ := hw.threadIDs.Take()
	hw.threads = hw.threads[:0]
	hw.threads = append(hw.threads, Thread{})
	hw.threads[0].Reset(&hw.spaces, id)
	hw.curThread = 0
	hw.sliceRemainder = 0

	for op := range hw.instCost {
		cost := hw.config.Cost(op)
		hw.instCost[op] = cost.Cost
		hw.ftCost[op] = cost.FTCost
	}
}

// resetSpace empties a memory space to its sentinel. Heads in the space
// are pulled back inside it.
func (hw *Hardware) resetSpace(space int) {
	hw.spaces[space].Set(genome.Genome{genome.Instruction(space)})

	for n := range hw.threads {
		for m := range hw.threads[n].heads {
			head := &hw.threads[n].heads[m]
			if head.space == space {
				head.Adjust()
			}
		}
	}
}

// resetFTCosts restores the first execution costs.
func (hw *Hardware) resetFTCosts() {
	for op := range hw.ftCost {
		hw.ftCost[op] = hw.config.Cost(op).FTCost
	}
}

// Library returns the instruction library of the hardware.
func (hw *Hardware) Library() *Library {
	return hw.lib
}

// Config returns the configuration of the hardware.
func (hw *Hardware) Config() *Config {
	return hw.config
}

// Memory returns a memory space.
func (hw *Hardware) Memory(space int) *genome.Memory {
	return &hw.spaces[space]
}

// NumThreads returns the number of live threads.
func (hw *Hardware) NumThreads() int {
	return len(hw.threads)
}

// CurThread returns the index of the current thread.
func (hw *Hardware) CurThread() int {
	return hw.curThread
}

// ThreadID returns the id of the current thread.
func (hw *Hardware) ThreadID() int {
	return hw.threads[hw.curThread].id
}

// thread returns the current thread.
func (hw *Hardware) thread() *Thread {
	return &hw.threads[hw.curThread]
}

// Head returns a head of the current thread.
func (hw *Hardware) Head(role HeadRole) *Head {
	return &hw.thread().heads[role]
}

// IP returns the instruction pointer of the current thread.
func (hw *Hardware) IP() *Head {
	return hw.Head(HEAD_IP)
}

// Stack returns a stack visible to the current thread. Stacks below
// NUM_LOCAL_STACKS belong to the thread, the remainder are global.
func (hw *Hardware) Stack(stack int) *Stack {
	if stack < NUM_LOCAL_STACKS {
		return &hw.thread().stacks[stack]
	}
	return &hw.global[stack-NUM_LOCAL_STACKS]
}

// Labels returns the current thread's label last read by ReadLabel, and
// the label accumulated from nops passing through its read head.
func (hw *Hardware) Labels() (next, read genome.Label) {
	thread := hw.thread()
	return thread.nextLabel, thread.readLabel
}

// SingleProcess runs one tick of the organism.
func (hw *Hardware) SingleProcess(ctx *Context) {
	org := ctx.Organism

	org.SetRunning(true)
	org.IncTimeUsed()

	steps := hw.slice()
	for range steps {
		hw.ThreadNext()

		hw.thread().advanceIP = true
		ip := hw.IP()
		ip.Adjust()

		if ip.HasFlag(genome.FLAG_BREAKPOINT) {
			org.Breakpoint()
		}

		if hw.Tracer != nil {
			hw.Tracer.TraceHardware(hw, false)
		}

		inst := ip.Inst()
		if hw.payCosts(ctx, inst) {
			hw.execute(ctx, inst)

			if hw.thread().advanceIP {
				hw.IP().Advance()
			}
		}
	}

	max_executed := org.MaxExecuted()
	if (max_executed > 0 && org.TimeUsed() >= max_executed) || org.ToDie() {
		org.Die()
	}

	org.SetRunning(false)
}

// ProcessBonusInst executes a single instruction outside of the normal
// cycle.
func (hw *Hardware) ProcessBonusInst(ctx *Context, inst genome.Instruction) {
	org := ctx.Organism

	prev_running := org.IsRunning()
	org.SetRunning(true)

	if hw.Tracer != nil {
		hw.Tracer.TraceHardware(hw, true)
	}

	hw.execute(ctx, inst)

	org.SetRunning(prev_running)
}

// payCosts returns true when the instruction may execute this step.
func (hw *Hardware) payCosts(ctx *Context, inst genome.Instruction) bool {
	op := inst.Op()
	if op >= len(hw.instCost) {
		return true
	}

	if hw.ftCost[op] > 0 {
		hw.ftCost[op]--
		return false
	}

	cost := hw.config.Cost(op)
	if cost.Cost > 0 {
		if hw.instCost[op] > 1 {
			hw.instCost[op]--
			return false
		}
		hw.instCost[op] = cost.Cost
	}

	if cost.ProbFail > 0 {
		return !ctx.Random.P(cost.ProbFail)
	}

	return true
}

// execute runs the handler of an instruction at the ip.
func (hw *Hardware) execute(ctx *Context, inst genome.Instruction) (ok bool) {
	org := ctx.Organism

	actual := inst
	if ctx.Random.P(org.Rates().Exec) {
		actual = hw.lib.Random(ctx.Random)
	}

	hw.IP().SetFlag(genome.FLAG_EXECUTED)

	if hw.Verbose {
		log.Printf("hardware: %v %v", hw.IP(), hw.lib.Name(actual))
	}

	org.CountInst(actual.Op(), 1)
	ok = hw.lib.Lookup(actual).Handler(hw, ctx)
	if !ok {
		org.CountInst(actual.Op(), -1)
	}

	return
}

// IsEmpty returns true if a memory space holds only nops.
func (hw *Hardware) IsEmpty(space int) bool {
	mem := &hw.spaces[space]
	for pos := range mem.Size() {
		if !hw.lib.IsNop(mem.Inst(pos)) {
			return false
		}
	}
	return true
}

// OK verifies the hardware invariants.
func (hw *Hardware) OK() bool {
	for n := range hw.spaces {
		if !hw.spaces[n].OK() {
			return false
		}
	}

	for n := range hw.global {
		if !hw.global[n].OK() {
			return false
		}
	}

	if len(hw.threads) < 1 || len(hw.threads) > hw.config.MaxThreads {
		return false
	}

	if hw.curThread < 0 || hw.curThread >= len(hw.threads) {
		return false
	}

	if hw.threadIDs.Count() != len(hw.threads) {
		return false
	}

	for n := range hw.threads {
		th := &hw.threads[n]
		if !hw.threadIDs.Has(th.id) {
			return false
		}
		for m := range th.stacks {
			if !th.stacks[m].OK() {
				return false
			}
		}
		if !th.readLabel.OK() || !th.nextLabel.OK() {
			return false
		}
		for m := range th.heads {
			head := &th.heads[m]
			if head.spaces != &hw.spaces {
				return false
			}
			if head.space < 0 || head.space >= NUM_MEMORY_SPACES {
				return false
			}
			if head.pos < 0 || head.pos >= head.Memory().Size() {
				return false
			}
		}
	}

	return true
}

// String returns a status dump of the current thread.
func (hw *Hardware) String() string {
	var sb strings.Builder

	ip := hw.IP()
	fmt.Fprintf(&sb, "thread %d of %d (id %d)\n", hw.curThread+1, len(hw.threads), hw.ThreadID())
	fmt.Fprintf(&sb, "ip %v: %v\n", ip, hw.lib.Name(ip.Inst()))

	for role := range HeadRole(NUM_HEADS) {
		fmt.Fprintf(&sb, "%-5v %v\n", role, hw.Head(role))
	}

	for stack := range NUM_STACKS {
		fmt.Fprintf(&sb, "%cX", 'A'+stack)
		s := hw.Stack(stack)
		for n := range STACK_SIZE {
			value, _ := s.Peek(n)
			fmt.Fprintf(&sb, " %d", value)
		}
		sb.WriteString("\n")
	}

	thread := hw.thread()
	fmt.Fprintf(&sb, "label %v read %v\n", thread.nextLabel, thread.readLabel)

	for space := range hw.spaces {
		fmt.Fprintf(&sb, "mem %d [%d] %v\n", space, hw.spaces[space].Size(), &hw.spaces[space])
	}

	return sb.String()
}
