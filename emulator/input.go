package emulator

import (
	"log"

	"github.com/ezrec/quadstack/hardware"
)

// NextInput takes the next value from the input channel, rewinding it
// when exhausted. An empty channel yields 0.
func (emu *Emulator) NextInput() (value int32) {
	for range 2 {
		for value = range emu.Input.Receive() {
			return
		}
		emu.Input.Rewind()
	}
	return
}

// DoInput records an input value taken by the organism.
func (emu *Emulator) DoInput(value int32) {
	emu.Inputs = append(emu.Inputs, value)
}

// DoOutput sends an output value of the organism.
func (emu *Emulator) DoOutput(ctx *hardware.Context, value int32) {
	err := emu.Output.Send(value)
	if err != nil && emu.Verbose {
		log.Printf("emulator: output %d: %v", value, err)
	}
}
