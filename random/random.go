// Package random provides the reproducible random source of the hardware.
package random

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ezrec/quadstack/hardware"
)

const (
	PCG_STREAM = 0x9e3779b97f4a7c15 // Second PCG seed word, fixed for all sources.
)

// Random is a seeded random source. Two sources with the same seed
// produce the same sequence of values.
type Random struct {
	src   *rand.PCG
	rands *rand.Rand
}

var _ hardware.Random = (*Random)(nil)

// New returns a random source for seed.
func New(seed int64) (rnd *Random) {
	src := rand.NewPCG(uint64(seed), PCG_STREAM)
	rnd = &Random{
		src:   src,
		rands: rand.New(src),
	}
	return
}

// Uint returns a value in [0, n). Non-positive n yields 0.
func (rnd *Random) Uint(n int) int {
	if n <= 0 {
		return 0
	}
	return rnd.rands.IntN(n)
}

// P returns true with probability p. Probabilities at or below zero never
// draw from the source.
func (rnd *Random) P(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return rnd.rands.Float64() < p
}

// Binomial returns the number of successes in n trials of probability p.
// Degenerate trials never draw from the source.
func (rnd *Random) Binomial(n int, p float64) int {
	switch {
	case n <= 0 || p <= 0:
		return 0
	case p >= 1:
		return n
	}

	dist := distuv.Binomial{N: float64(n), P: p, Src: rnd.src}
	return int(math.Round(dist.Rand()))
}

// Seed restarts the sequence from seed.
func (rnd *Random) Seed(seed int64) {
	rnd.src.Seed(uint64(seed), PCG_STREAM)
}
