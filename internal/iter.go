// Package internal holds helpers shared by the quadstack packages.
package internal

import (
	"iter"
)

// Merge collects key/value sequences into a single map. Keys from later
// sequences replace those of earlier ones.
func Merge[K comparable, V any](seqs ...iter.Seq2[K, V]) (merged map[K]V) {
	merged = make(map[K]V)
	for _, seq := range seqs {
		for key, value := range seq {
			merged[key] = value
		}
	}
	return
}
