// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package hardware

import (
	"math"

	"github.com/ezrec/quadstack/genome"
)

func (hw *Hardware) instNop(ctx *Context) bool {
	return true
}

// unary replaces the top of ?BX? with op(top).
func (hw *Hardware) unary(op func(value int32) int32) bool {
	stack := hw.Stack(hw.FindModifiedStack(STACK_BX))
	stack.Push(op(stack.Pop()))
	return true
}

// binary pushes op(BX, CX) onto ?BX?.
func (hw *Hardware) binary(op func(bx, cx int32) int32) bool {
	stack := hw.FindModifiedStack(STACK_BX)
	bx := hw.Stack(STACK_BX).Top()
	cx := hw.Stack(STACK_CX).Top()
	hw.Stack(stack).Push(op(bx, cx))
	return true
}

func (hw *Hardware) instShiftR(ctx *Context) bool {
	return hw.unary(func(value int32) int32 { return value >> 1 })
}

func (hw *Hardware) instShiftL(ctx *Context) bool {
	return hw.unary(func(value int32) int32 { return value << 1 })
}

func (hw *Hardware) instIncrement(ctx *Context) bool {
	return hw.unary(func(value int32) int32 { return value + 1 })
}

func (hw *Hardware) instDecrement(ctx *Context) bool {
	return hw.unary(func(value int32) int32 { return value - 1 })
}

func (hw *Hardware) instNand(ctx *Context) bool {
	return hw.binary(func(bx, cx int32) int32 { return ^(bx & cx) })
}

func (hw *Hardware) instAdd(ctx *Context) bool {
	return hw.binary(func(bx, cx int32) int32 { return bx + cx })
}

func (hw *Hardware) instSub(ctx *Context) bool {
	return hw.binary(func(bx, cx int32) int32 { return bx - cx })
}

func (hw *Hardware) instMult(ctx *Context) bool {
	return hw.binary(func(bx, cx int32) int32 { return bx * cx })
}

func (hw *Hardware) instDiv(ctx *Context) bool {
	stack := hw.FindModifiedStack(STACK_BX)
	bx := hw.Stack(STACK_BX).Top()
	cx := hw.Stack(STACK_CX).Top()

	switch {
	case cx == 0:
		ctx.Organism.Fault(FAULT_LOC_MATH, FAULT_TYPE_ERROR, f("div: dividing by 0"))
		return false
	case bx == math.MinInt32 && cx == -1:
		ctx.Organism.Fault(FAULT_LOC_MATH, FAULT_TYPE_ERROR, f("div: float exception"))
		return false
	}

	hw.Stack(stack).Push(bx / cx)
	return true
}

func (hw *Hardware) instMod(ctx *Context) bool {
	stack := hw.FindModifiedStack(STACK_BX)
	bx := hw.Stack(STACK_BX).Top()
	cx := hw.Stack(STACK_CX).Top()

	switch cx {
	case 0:
		ctx.Organism.Fault(FAULT_LOC_MATH, FAULT_TYPE_ERROR, f("mod: modding by 0"))
		return false
	case -1:
		hw.Stack(stack).Push(0)
	default:
		hw.Stack(stack).Push(bx % cx)
	}

	return true
}

func (hw *Hardware) instSetMemory(ctx *Context) bool {
	space := hw.FindModifiedStack(-1)
	if space < 0 {
		space = hw.FindFirstEmpty()
		if space < 0 {
			return false
		}
	}

	hw.Head(HEAD_FLOW).Set(space%NUM_MEMORY_SPACES, 0)
	return true
}

func (hw *Hardware) instDivide(ctx *Context) bool {
	return hw.Divide(ctx, hw.Head(HEAD_WRITE).Space(), 1)
}

func (hw *Hardware) instInject(ctx *Context) bool {
	return hw.InjectParasite(ctx, 1)
}

func (hw *Hardware) instRead(ctx *Context) bool {
	head := hw.Head(hw.FindModifiedHead(HEAD_READ))
	head.Adjust()

	inst := head.Inst()
	mutated := ctx.Random.P(ctx.Organism.Rates().Copy)
	if mutated {
		inst = hw.lib.Random(ctx.Random)
	}
	ctx.Organism.CountCopy(mutated)

	hw.Stack(STACK_AX).Push(int32(inst))
	hw.ReadInst(inst)

	head.Advance()
	return true
}

func (hw *Hardware) instWrite(ctx *Context) bool {
	head := hw.Head(hw.FindModifiedHead(HEAD_WRITE))
	mem := head.Memory()

	if head.Pos() >= mem.Size()-1 {
		mem.Resize(mem.Size() + 1)
		mem.Copy(mem.Size()-1, mem.Size()-2)
	}

	head.Adjust()

	value := hw.Stack(STACK_AX).Pop()
	if value < 0 || int(value) >= hw.lib.Size() {
		value = 0
	}

	head.SetInst(genome.Instruction(value))
	head.SetFlag(genome.FLAG_COPIED)

	head.Advance()
	return true
}

func (hw *Hardware) instCopy(ctx *Context) bool {
	read := hw.Head(HEAD_READ)
	write := hw.Head(HEAD_WRITE)

	read.Adjust()
	write.Adjust()

	inst := read.Inst()
	mutated := ctx.Random.P(ctx.Organism.Rates().Copy)
	if mutated {
		inst = hw.lib.Random(ctx.Random)
		write.SetFlag(genome.FLAG_MUTATED | genome.FLAG_COPY_MUT)
	}
	ctx.Organism.CountCopy(mutated)

	hw.ReadInst(inst)

	write.SetInst(inst)
	write.SetFlag(genome.FLAG_COPIED)

	read.Advance()
	write.Advance()
	return true
}

// ifCompare skips the next instruction unless cmp(?AX?, next stack) holds.
func (hw *Hardware) ifCompare(cmp func(a, b int32) bool) bool {
	stack := hw.FindModifiedStack(STACK_AX)
	next := (stack + 1) % NUM_STACKS
	if !cmp(hw.Stack(stack).Top(), hw.Stack(next).Top()) {
		hw.IP().Advance()
	}
	return true
}

func (hw *Hardware) instIfEqual(ctx *Context) bool {
	return hw.ifCompare(func(a, b int32) bool { return a == b })
}

func (hw *Hardware) instIfNotEqual(ctx *Context) bool {
	return hw.ifCompare(func(a, b int32) bool { return a != b })
}

func (hw *Hardware) instIfLess(ctx *Context) bool {
	return hw.ifCompare(func(a, b int32) bool { return a < b })
}

func (hw *Hardware) instIfGreater(ctx *Context) bool {
	return hw.ifCompare(func(a, b int32) bool { return a > b })
}

func (hw *Hardware) instIfLabel(ctx *Context) bool {
	hw.ReadLabel(genome.MAX_LABEL_SIZE)

	thread := hw.thread()
	thread.nextLabel.Rotate(2, NUM_NOPS)
	if !thread.nextLabel.Equal(thread.readLabel) {
		hw.IP().Advance()
	}
	return true
}

func (hw *Hardware) instHeadPush(ctx *Context) bool {
	head := hw.Head(hw.FindModifiedHead(HEAD_IP))
	hw.Stack(STACK_BX).Push(int32(head.Pos()))
	return true
}

func (hw *Hardware) instHeadPop(ctx *Context) bool {
	head := hw.Head(hw.FindModifiedHead(HEAD_IP))
	head.SetPos(int(hw.Stack(STACK_BX).Pop()))
	return true
}

func (hw *Hardware) instHeadMove(ctx *Context) bool {
	role := hw.FindModifiedHead(HEAD_IP)
	flow := hw.Head(HEAD_FLOW)

	if role == HEAD_FLOW {
		flow.Advance()
		return true
	}

	*hw.Head(role) = *flow
	if role == HEAD_IP {
		hw.thread().advanceIP = false
	}
	return true
}

func (hw *Hardware) instSearch(ctx *Context) bool {
	hw.ReadLabel(genome.MAX_LABEL_SIZE)

	label := &hw.thread().nextLabel
	label.Rotate(2, NUM_NOPS)

	found := hw.FindLabel(0)
	ip := hw.IP()

	if found.Pos() == ip.Pos() {
		hw.Head(HEAD_FLOW).Set(ip.Space(), ip.Pos()+1)
		hw.Stack(STACK_BX).Push(0)
		return true
	}

	distance := found.Pos() - ip.Pos() + label.Size() + 1
	hw.Stack(STACK_BX).Push(int32(distance))
	hw.Stack(STACK_AX).Push(int32(label.Size()))
	*hw.Head(HEAD_FLOW) = found
	return true
}

// move pops from stack and pushes onto target.
func (hw *Hardware) move(stack, target int) bool {
	hw.Stack(target).Push(hw.Stack(stack).Pop())
	return true
}

func (hw *Hardware) instPushNext(ctx *Context) bool {
	stack := hw.FindModifiedStack(STACK_AX)
	return hw.move(stack, (stack+1)%NUM_STACKS)
}

func (hw *Hardware) instPushPrev(ctx *Context) bool {
	stack := hw.FindModifiedStack(STACK_BX)
	return hw.move(stack, (stack+NUM_STACKS-1)%NUM_STACKS)
}

func (hw *Hardware) instPushComp(ctx *Context) bool {
	stack := hw.FindModifiedStack(STACK_BX)
	return hw.move(stack, FindComplementStack(stack))
}

func (hw *Hardware) instValDelete(ctx *Context) bool {
	hw.Stack(hw.FindModifiedStack(STACK_BX)).Pop()
	return true
}

func (hw *Hardware) instValCopy(ctx *Context) bool {
	stack := hw.Stack(hw.FindModifiedStack(STACK_BX))
	stack.Push(stack.Top())
	return true
}

func (hw *Hardware) instForkThread(ctx *Context) bool {
	if !hw.ForkThread() {
		ctx.Organism.Fault(FAULT_LOC_THREAD_FORK, FAULT_TYPE_FORK, f("thread fork: at capacity"))
		return false
	}

	hw.IP().Advance()
	return true
}

func (hw *Hardware) instKillThread(ctx *Context) bool {
	if !hw.KillThread() {
		ctx.Organism.Fault(FAULT_LOC_THREAD_KILL, FAULT_TYPE_KILL, f("thread kill: last thread"))
		return false
	}

	hw.thread().advanceIP = false
	return true
}

func (hw *Hardware) instIO(ctx *Context) bool {
	org := ctx.Organism
	stack := hw.Stack(hw.FindModifiedStack(STACK_BX))

	org.DoOutput(ctx, stack.Top())

	value := org.NextInput()
	stack.Push(value)
	org.DoInput(value)

	return true
}
