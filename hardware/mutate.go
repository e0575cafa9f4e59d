package hardware

import (
	"log"
	"slices"

	"github.com/ezrec/quadstack/genome"
)

// Mutate applies the organism's divide mutations to code, in order:
// whole-copy point, insertion and deletion; then per-site point,
// insertion and deletion; and finally point mutations of the parent's
// memory space 0. Per-site point rates are divided by mult.
func (hw *Hardware) Mutate(ctx *Context, code *genome.Genome, mult float64) {
	rnd := ctx.Random
	rates := ctx.Organism.Rates()

	if rnd.P(rates.Divide) && len(*code) > 0 {
		site := rnd.Uint(len(*code))
		(*code)[site] = hw.lib.Random(rnd)
	}

	if rnd.P(rates.DivideIns) && len(*code) < hw.config.MaxCreatureSize {
		site := rnd.Uint(len(*code) + 1)
		code.Insert(site, hw.lib.Random(rnd))
	}

	if rnd.P(rates.DivideDel) && len(*code) > hw.config.MinCreatureSize {
		site := rnd.Uint(len(*code))
		code.Remove(site)
	}

	if rates.Point > 0 {
		count := rnd.Binomial(len(*code), rates.Point/mult)
		for range count {
			site := rnd.Uint(len(*code))
			(*code)[site] = hw.lib.Random(rnd)
		}
	}

	if rates.Insert > 0 {
		count := rnd.Binomial(len(*code), rates.Insert)
		count = min(count, hw.config.MaxCreatureSize-len(*code))
		if count > 0 {
			sites := make([]int, count)
			for n := range sites {
				sites[n] = rnd.Uint(len(*code) + 1)
			}
			slices.Sort(sites)
			for _, site := range slices.Backward(sites) {
				code.Insert(site, hw.lib.Random(rnd))
			}
		}
	}

	if rates.Delete > 0 {
		count := rnd.Binomial(len(*code), rates.Delete)
		count = min(count, len(*code)-hw.config.MinCreatureSize)
		for range count {
			site := rnd.Uint(len(*code))
			code.Remove(site)
		}
	}

	if rates.Parent > 0 {
		mem := &hw.spaces[0]
		for pos := range mem.Size() {
			if rnd.P(rates.Parent) {
				mem.SetInst(pos, hw.lib.Random(rnd))
				mem.SetFlag(pos, genome.FLAG_MUTATED)
			}
		}
	}

	if hw.Verbose {
		log.Printf("hardware: mutate: %v", *code)
	}
}
