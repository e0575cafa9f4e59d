// Package config loads the TOML configuration of a quadstack run.
//
// A configuration file has three tables and a list of instruction costs:
//
//	[hardware]
//	max_threads = 4
//	divide_method = "split"
//
//	[mutation]
//	copy = 0.0075
//
//	[organism]
//	child_size_range = 2.0
//
//	[[instruction]]
//	name = "Divide"
//	cost = 2
//
// Missing keys keep their default values.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/quadstack/emulator"
	"github.com/ezrec/quadstack/genome"
	"github.com/ezrec/quadstack/hardware"
	"github.com/ezrec/quadstack/translate"
)

var f = translate.From

var (
	ErrKeyUnknown         = errors.New(f("configuration key unknown"))
	ErrInstructionUnknown = errors.New(f("configuration instruction unknown"))
)

// Hardware is the [hardware] table.
type Hardware struct {
	MaxThreads      int                   `toml:"max_threads"`
	ThreadSlicing   float64               `toml:"thread_slicing"`
	DivideMethod    hardware.DivideMethod `toml:"divide_method"`
	MinCreatureSize int                   `toml:"min_creature_size"`
	MaxCreatureSize int                   `toml:"max_creature_size"`
	MaxLabelExeSize int                   `toml:"max_label_exe_size"`
	MinInjectSize   int                   `toml:"min_inject_size"`
}

// Mutation is the [mutation] table of per-event probabilities.
type Mutation struct {
	Copy      float64 `toml:"copy"`
	Exec      float64 `toml:"exec"`
	Divide    float64 `toml:"divide"`
	DivideIns float64 `toml:"divide_ins"`
	DivideDel float64 `toml:"divide_del"`
	Point     float64 `toml:"point"`
	Insert    float64 `toml:"insert"`
	Delete    float64 `toml:"delete"`
	Parent    float64 `toml:"parent"`
}

// Organism is the [organism] table.
type Organism struct {
	MaxExecuted         int     `toml:"max_executed"`
	ChildSizeRange      float64 `toml:"child_size_range"`
	MinCopiedFraction   float64 `toml:"min_copied_fraction"`
	MinExecutedFraction float64 `toml:"min_executed_fraction"`
}

// Instruction is one [[instruction]] cost entry.
type Instruction struct {
	Name     string  `toml:"name"`
	Cost     int     `toml:"cost"`
	FTCost   int     `toml:"ft_cost"`
	ProbFail float64 `toml:"prob_fail"`
}

// Config is a complete configuration file.
type Config struct {
	Hardware    Hardware      `toml:"hardware"`
	Mutation    Mutation      `toml:"mutation"`
	Organism    Organism      `toml:"organism"`
	Instruction []Instruction `toml:"instruction"`
}

// Default returns the reference configuration.
func Default() (cfg *Config) {
	hw := hardware.DefaultConfig()
	options := emulator.DefaultOptions()

	cfg = &Config{
		Hardware: Hardware{
			MaxThreads:      hw.MaxThreads,
			ThreadSlicing:   hw.ThreadSlicing,
			DivideMethod:    hw.DivideMethod,
			MinCreatureSize: hw.MinCreatureSize,
			MaxCreatureSize: hw.MaxCreatureSize,
			MaxLabelExeSize: hw.MaxLabelExeSize,
			MinInjectSize:   hw.MinInjectSize,
		},
		Organism: Organism{
			MaxExecuted:         options.MaxExecuted,
			ChildSizeRange:      options.ChildSizeRange,
			MinCopiedFraction:   options.MinCopiedFraction,
			MinExecutedFraction: options.MinExecutedFraction,
		},
	}

	return
}

// Load reads a configuration file.
func Load(path string) (cfg *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	cfg, err = Parse(string(data))
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		cfg = nil
		return
	}

	return
}

// Parse decodes configuration text over the defaults. Keys that do not
// belong to the configuration are errors.
func Parse(text string) (cfg *Config, err error) {
	cfg = Default()

	md, err := toml.Decode(text, cfg)
	if err != nil {
		return
	}

	var errs []error
	for _, key := range md.Undecoded() {
		errs = append(errs, fmt.Errorf("%w: %v", ErrKeyUnknown, key))
	}
	err = errors.Join(errs...)

	return
}

// HardwareConfig returns the hardware configuration, with instruction
// costs resolved against lib.
func (cfg *Config) HardwareConfig(lib *hardware.Library) (config *hardware.Config, err error) {
	section := &cfg.Hardware

	config = &hardware.Config{
		MaxThreads:      section.MaxThreads,
		ThreadSlicing:   section.ThreadSlicing,
		DivideMethod:    section.DivideMethod,
		MinCreatureSize: section.MinCreatureSize,
		MaxCreatureSize: section.MaxCreatureSize,
		MaxLabelExeSize: section.MaxLabelExeSize,
		MinInjectSize:   section.MinInjectSize,
	}

	for _, inst := range cfg.Instruction {
		op := lib.Inst(inst.Name)
		if op == genome.INST_ERROR {
			err = fmt.Errorf("%w: '%v'", ErrInstructionUnknown, inst.Name)
			config = nil
			return
		}
		config.SetCost(op.Op(), hardware.InstCost{
			Cost:     inst.Cost,
			FTCost:   inst.FTCost,
			ProbFail: inst.ProbFail,
		})
	}

	return
}

// Rates returns the mutation rates.
func (cfg *Config) Rates() hardware.MutationRates {
	m := &cfg.Mutation
	return hardware.MutationRates{
		Copy:      m.Copy,
		Exec:      m.Exec,
		Divide:    m.Divide,
		DivideIns: m.DivideIns,
		DivideDel: m.DivideDel,
		Point:     m.Point,
		Insert:    m.Insert,
		Delete:    m.Delete,
		Parent:    m.Parent,
	}
}

// Options returns the emulator options.
func (cfg *Config) Options() emulator.Options {
	return emulator.Options{
		MaxExecuted:         cfg.Organism.MaxExecuted,
		ChildSizeRange:      cfg.Organism.ChildSizeRange,
		MinCopiedFraction:   cfg.Organism.MinCopiedFraction,
		MinExecutedFraction: cfg.Organism.MinExecutedFraction,
		Rates:               cfg.Rates(),
	}
}
