package hardware

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/quadstack/genome"
)

func FuzzSingleProcess(f *testing.F) {
	lib := DefaultLibrary()

	every := make([]byte, lib.Size())
	for n := range every {
		every[n] = byte(n)
	}

	f.Add([]byte{0}, uint8(1), false)
	f.Add(every, uint8(4), false)
	f.Add(every, uint8(2), true)
	f.Add([]byte{
		byte(op("ThreadFork").Op()),
		byte(op("Search").Op()),
		byte(op("Inst-Read").Op()),
		byte(op("Inst-Write").Op()),
		byte(op("Divide").Op()),
		byte(op("Inject").Op()),
	}, uint8(3), true)

	f.Fuzz(func(t *testing.T, data []byte, threads uint8, sliced bool) {
		assert := assert.New(t)

		if len(data) == 0 {
			return
		}

		code := make(genome.Genome, len(data))
		for n, b := range data {
			code[n] = genome.Instruction(int(b) % lib.Size())
		}

		config := DefaultConfig()
		config.MaxThreads = 1 + int(threads)%MAX_THREAD_CAPACITY
		config.MinInjectSize = 1
		if sliced {
			config.ThreadSlicing = 0.5
		}

		hw, err := New(lib, config, code)
		if !assert.NoError(err) {
			return
		}

		org := newTestOrganism()
		org.maxExecuted = 256
		ctx := &Context{Organism: org, Random: &scriptedRandom{}}

		for tick := 0; !org.dead; tick++ {
			hw.SingleProcess(ctx)
			if !assert.True(hw.OK(), fmt.Sprintf("tick %v: %v\n%v", tick, code, hw)) {
				return
			}
			assert.False(org.running)
		}

		assert.Equal(256, org.timeUsed)
		for op, count := range org.instCount {
			assert.GreaterOrEqual(count, 0, lib.Name(genome.Instruction(op)))
		}
	})
}
