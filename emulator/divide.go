package emulator

import (
	"log"

	"github.com/ezrec/quadstack/genome"
	"github.com/ezrec/quadstack/hardware"
)

// viable reports a divide fault when ok is false.
func (emu *Emulator) viable(ok bool, format string, args ...any) bool {
	if !ok {
		emu.Fault(hardware.FAULT_LOC_DIVIDE, hardware.FAULT_TYPE_ERROR, f(format, args...))
	}
	return ok
}

// DivideViable applies the offspring size, copy and execution rules.
func (emu *Emulator) DivideViable(ctx *hardware.Context, check hardware.DivideCheck) bool {
	config := emu.Hardware.Config()
	options := &emu.Options

	child_size := check.ChildSize
	if !emu.viable(child_size >= config.MinCreatureSize && child_size <= config.MaxCreatureSize,
		"divide: offspring size %d out of range", child_size) {
		return false
	}

	if options.ChildSizeRange > 0 {
		genome_size := float64(len(emu.Genome))
		min_size := genome_size / options.ChildSizeRange
		max_size := genome_size * options.ChildSizeRange
		if !emu.viable(float64(child_size) >= min_size && float64(child_size) <= max_size,
			"divide: offspring size %d too far from %d", child_size, len(emu.Genome)) {
			return false
		}
	}

	if !emu.viable(float64(check.CopiedSize) >= float64(child_size)*options.MinCopiedFraction,
		"divide: too few copied instructions (%d of %d)", check.CopiedSize, child_size) {
		return false
	}

	if !emu.viable(float64(check.ExecutedSize) >= float64(check.ParentSize)*options.MinExecutedFraction,
		"divide: too few executed instructions (%d of %d)", check.ExecutedSize, check.ParentSize) {
		return false
	}

	return true
}

// TestFitness counts the viable divide.
func (emu *Emulator) TestFitness(ctx *hardware.Context, child genome.Genome) {
	emu.Divides++
}

// ActivateDivide queues the offspring. The parent always survives.
func (emu *Emulator) ActivateDivide(ctx *hardware.Context, child genome.Genome) bool {
	if emu.Verbose {
		log.Printf("emulator: offspring %v", child)
	}
	emu.Offspring = append(emu.Offspring, child)
	return true
}

// InjectParasite delivers code to the neighbor, if there is one.
func (emu *Emulator) InjectParasite(ctx *hardware.Context, code genome.Genome) (ok bool) {
	host := emu.Neighbor
	if host == nil {
		return
	}

	ok = host.Hardware.InjectHost(&hardware.Context{Organism: host, Random: ctx.Random}, code)
	if ok {
		emu.Parasites++
	}

	if emu.Verbose {
		log.Printf("emulator: parasite %v: %v", code, ok)
	}

	return
}
