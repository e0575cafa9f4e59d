// Package hardware implements the four stack virtual CPU that executes the
// genome of a digital organism.
//
// The hardware owns four memory spaces, a pool of cooperative threads each
// holding four heads (ip, read, write, flow) and four local stacks, and two
// stacks shared by every thread. Instructions address their operands with
// the nop instruction that follows them, and locate code by searching for
// the complement of a nop label.
//
// Reproduction (Divide) and parasitism (Inject) copy code out of a memory
// space, pass it through the mutation engine, and hand it to the organism
// that owns the hardware.
//
// The assembler reads and writes genomes as text, one instruction name per
// line, supporting equates, macros, repeats and compile-time expression
// evaluation.
package hardware
