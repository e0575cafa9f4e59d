// Package genome holds the passive data of a digital organism: the
// instruction word, plain genomes handed between organisms by value,
// flagged memory buffers executed by the hardware, and the code labels
// built from runs of nop instructions.
package genome
