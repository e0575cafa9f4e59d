package hardware

const (
	STACK_SIZE = 10 // Maximum stack depth

	STACK_AX = 0 // Local stacks
	STACK_BX = 1
	STACK_CX = 2
	STACK_DX = 3
	STACK_EX = 4 // Global stacks
	STACK_FX = 5

	NUM_LOCAL_STACKS  = 4
	NUM_GLOBAL_STACKS = 2
	NUM_STACKS        = NUM_LOCAL_STACKS + NUM_GLOBAL_STACKS
)

// Stack is a bounded LIFO of values. Pushing onto a full stack discards
// the oldest value, and popping an empty stack yields 0.
type Stack struct {
	data  [STACK_SIZE]int32
	top   int // Index of the top value.
	depth int
}

func (s *Stack) Push(value int32) {
	s.top = (s.top + STACK_SIZE - 1) % STACK_SIZE
	s.data[s.top] = value
	if s.depth < STACK_SIZE {
		s.depth++
	}
}

func (s *Stack) Pop() (value int32) {
	if s.Empty() {
		return
	}

	value = s.data[s.top]
	s.data[s.top] = 0
	s.top = (s.top + 1) % STACK_SIZE
	s.depth--
	return
}

// Top returns the top value without removing it.
func (s *Stack) Top() (value int32) {
	value, _ = s.Peek(0)
	return
}

// Peek returns the value n positions below the top.
func (s *Stack) Peek(n int) (value int32, ok bool) {
	if n < 0 || n >= s.depth {
		return
	}

	return s.data[(s.top+n)%STACK_SIZE], true
}

func (s *Stack) Empty() bool {
	return s.depth == 0
}

func (s *Stack) Full() bool {
	return s.depth == STACK_SIZE
}

func (s *Stack) Depth() int {
	return s.depth
}

func (s *Stack) Reset() {
	*s = Stack{}
}

// OK verifies the stack invariants.
func (s *Stack) OK() bool {
	return s.depth >= 0 && s.depth <= STACK_SIZE && s.top >= 0 && s.top < STACK_SIZE
}
