// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/quadstack/config"
	"github.com/ezrec/quadstack/emulator"
	"github.com/ezrec/quadstack/hardware"
	"github.com/ezrec/quadstack/io"
	"github.com/ezrec/quadstack/random"
	"github.com/ezrec/quadstack/translate"
)

func main() {
	var configFile string
	var genomeFile string
	var ticks int
	var seed int64
	var input string
	var output string
	var values string
	var verbose bool
	var trace bool
	var language string

	flag.StringVar(&configFile, "c", "", ".toml configuration file to use")
	flag.StringVar(&genomeFile, "g", "-", "Genome listing to assemble")
	flag.IntVar(&ticks, "n", 10000, "Maximum number of ticks to run")
	flag.Int64Var(&seed, "s", 1, "Random seed")
	flag.StringVar(&input, "i", "", "Tape input, in place of the default environment inputs")
	flag.StringVar(&output, "o", "-", "Offspring listing output")
	flag.StringVar(&values, "x", "", "Tape output of organism IO values")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&trace, "t", false, "Trace every executed step")
	flag.StringVar(&language, "l", "", "Message language, in place of the host locale")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(language) != 0 {
		translate.SetLanguage(language)
	}

	cfg := config.Default()
	if len(configFile) != 0 {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	lib := hardware.DefaultLibrary()
	hwConfig, err := cfg.HardwareConfig(lib)
	if err != nil {
		log.Fatalf("%v: %v", configFile, err)
	}

	asm := &hardware.Assembler{Library: lib, Verbose: verbose}
	for equ, value := range emulator.Defines() {
		asm.Predefine(equ, value)
	}

	inf := os.Stdin
	if genomeFile != "-" {
		inf, err = os.Open(genomeFile)
		if err != nil {
			log.Fatalf("%v: %v", genomeFile, err)
		}
		defer inf.Close()
	}

	code, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", genomeFile, err)
	}

	emu, err := emulator.NewEmulator(lib, hwConfig, cfg.Options(), code)
	if err != nil {
		log.Fatalf("%v: %v", genomeFile, err)
	}
	emu.Verbose = verbose
	if trace {
		emu.Hardware.Tracer = emu
	}

	if len(input) != 0 {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Input = &io.Tape{Input: inf}
	}

	if len(values) != 0 {
		ouf, err := os.Create(values)
		if err != nil {
			log.Fatalf("%v: %v", values, err)
		}
		defer ouf.Close()
		emu.Output = &io.Tape{Output: ouf}
	}

	ouf := os.Stdout
	if output != "-" {
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
	}

	rnd := random.New(seed)

	emu.Reset()

	var births int
	for tick := 0; tick < ticks; tick++ {
		done, err := emu.Tick(rnd)
		if err != nil {
			log.Fatal(err)
		}

		for child, ok := emu.NextOffspring(); ok; child, ok = emu.NextOffspring() {
			births++
			fmt.Fprintf(ouf, "; offspring %v, tick %v, size %v\n", births, tick+1, len(child))
			err = asm.Disassemble(ouf, child)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
		}

		if done {
			log.Printf("%v: died at tick %v", genomeFile, tick+1)
			break
		}
	}

	for _, fault := range emu.Faults {
		log.Printf("%v: %v", genomeFile, fault)
	}

	if verbose {
		log.Printf("%v: %v offspring, %v copies, %v copy mutations, %v parasites",
			genomeFile, births, emu.Copies, emu.CopyMutations, emu.Parasites)
	}
}
