// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package genome

import (
	"strings"
)

const (
	MAX_LABEL_SIZE = 10 // Maximum number of modifiers held by a label.
)

// Label is a sequence of nop modifiers used as a search template.
// Labels are values; copying a label copies its contents.
type Label struct {
	nop  [MAX_LABEL_SIZE]int8
	size int
}

// MakeLabel builds a label from modifiers. Modifiers past
// MAX_LABEL_SIZE are dropped.
func MakeLabel(mods ...int) (label Label) {
	for _, mod := range mods {
		label.Add(mod)
	}
	return
}

// Clear empties the label.
func (label *Label) Clear() {
	label.size = 0
}

// Add appends a modifier. A full label ignores the modifier.
func (label *Label) Add(mod int) {
	if label.size < MAX_LABEL_SIZE {
		label.nop[label.size] = int8(mod)
		label.size++
	}
}

// Size returns the number of modifiers.
func (label *Label) Size() int {
	return label.size
}

// At returns the n'th modifier.
func (label *Label) At(n int) int {
	return int(label.nop[n])
}

// Rotate adds rot to every modifier, modulo base.
func (label *Label) Rotate(rot, base int) {
	for n := range label.size {
		label.nop[n] = int8((int(label.nop[n]) + rot) % base)
	}
}

// Equal compares two labels modifier by modifier.
func (label Label) Equal(other Label) bool {
	if label.size != other.size {
		return false
	}
	for n := range label.size {
		if label.nop[n] != other.nop[n] {
			return false
		}
	}
	return true
}

// Mods returns the modifiers as a slice.
func (label Label) Mods() (mods []int) {
	for n := range label.size {
		mods = append(mods, int(label.nop[n]))
	}
	return
}

// String renders the label with one letter per modifier.
func (label Label) String() string {
	var sb strings.Builder
	for n := range label.size {
		sb.WriteByte('A' + byte(label.nop[n]))
	}
	return sb.String()
}

// OK verifies the label invariants.
func (label *Label) OK() bool {
	if label.size < 0 || label.size > MAX_LABEL_SIZE {
		return false
	}
	for n := range label.size {
		if label.nop[n] < 0 {
			return false
		}
	}
	return true
}
