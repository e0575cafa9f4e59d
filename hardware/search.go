package hardware

import (
	"github.com/ezrec/quadstack/genome"
)

// matchAt returns true if the label matches the nops at pos of mem.
func (lib *Library) matchAt(label genome.Label, mem *genome.Memory, pos int) bool {
	if pos < 0 || pos+label.Size() > mem.Size() {
		return false
	}
	for n := range label.Size() {
		inst := mem.Inst(pos + n)
		if !lib.IsNop(inst) || lib.NopMod(inst) != label.At(n) {
			return false
		}
	}
	return true
}

// matchRun returns the first offset in [start, end) of mem where label
// matches, or -1.
func (lib *Library) matchRun(label genome.Label, mem *genome.Memory, start, end int) int {
	for offset := start; offset+label.Size() <= end; offset++ {
		if lib.matchAt(label, mem, offset) {
			return offset
		}
	}
	return -1
}

// SearchForward finds label in mem after the label at pos. The label may
// be found inside a longer run of nops. Returns the position after the
// match, or -1.
func (lib *Library) SearchForward(label genome.Label, mem *genome.Memory, pos int) int {
	size := label.Size()
	if size == 0 {
		return -1
	}

	search_start := pos
	pos += size

	for pos < mem.Size() {
		if lib.IsNop(mem.Inst(pos)) {
			start := pos
			end := pos + 1
			for start > search_start && lib.IsNop(mem.Inst(start-1)) {
				start--
			}
			for end < mem.Size() && lib.IsNop(mem.Inst(end)) {
				end++
			}

			if offset := lib.matchRun(label, mem, start, end); offset >= 0 {
				return offset + size
			}

			pos = end
		}

		pos += size
	}

	return -1
}

// SearchBackward finds label in mem before pos, scanning from pos less
// the label size. Returns the position after the nop run containing the
// match, or -1.
func (lib *Library) SearchBackward(label genome.Label, mem *genome.Memory, pos int) int {
	size := label.Size()
	if size == 0 {
		return -1
	}

	search_start := min(pos, mem.Size())
	pos -= size

	for pos >= 0 {
		if pos < search_start && lib.IsNop(mem.Inst(pos)) {
			start := pos
			end := pos + 1
			for start > 0 && lib.IsNop(mem.Inst(start-1)) {
				start--
			}
			for end < search_start && lib.IsNop(mem.Inst(end)) {
				end++
			}

			if lib.matchRun(label, mem, start, end) >= 0 {
				return end
			}

			pos = start - 1
		}

		pos -= size
	}

	return -1
}

// SearchFull finds a run of nops in mem that is exactly label. Returns
// the position after the run, or -1.
func (lib *Library) SearchFull(label genome.Label, mem *genome.Memory) int {
	size := label.Size()
	if size == 0 {
		return -1
	}

	for pos := 0; pos < mem.Size(); {
		if !lib.IsNop(mem.Inst(pos)) {
			pos++
			continue
		}

		end := pos + 1
		for end < mem.Size() && lib.IsNop(mem.Inst(end)) {
			end++
		}

		if end-pos == size && lib.matchAt(label, mem, pos) {
			return end
		}

		pos = end
	}

	return -1
}

// SearchAnywhere scans mem one position at a time for label, from the
// start when direction is positive or zero, or from the end when
// negative. Returns the position after the match, or -1.
func (lib *Library) SearchAnywhere(label genome.Label, mem *genome.Memory, direction int) int {
	size := label.Size()
	if size == 0 {
		return -1
	}

	step, pos := 1, 0
	if direction < 0 {
		step, pos = -1, mem.Size()-size
	}

	for ; pos >= 0 && pos+size <= mem.Size(); pos += step {
		if lib.matchAt(label, mem, pos) {
			return pos + size
		}
	}

	return -1
}

// FindLabel searches the ip's memory space for the current thread's
// label. Negative direction searches backward from the label's length
// before the ip, positive
// forward from the ip, and zero forward from the start of the space.
// The returned head is on the last position of the match, or at the ip
// when the label is empty or not found.
func (hw *Hardware) FindLabel(direction int) (head Head) {
	ip := hw.IP()
	head = *ip

	label := hw.thread().nextLabel
	if label.Size() == 0 {
		return
	}

	mem := ip.Memory()

	var found int
	switch {
	case direction < 0:
		found = hw.lib.SearchBackward(label, mem, ip.Pos()-label.Size())
	case direction > 0:
		found = hw.lib.SearchForward(label, mem, ip.Pos())
	default:
		found = hw.lib.SearchForward(label, mem, 0)
	}

	if found > 0 {
		head.Set(ip.Space(), found-1)
	}

	return
}

// FindFullLabel searches the ip's memory space for a run of nops exactly
// matching label. The returned head is on the last position of the run.
func (hw *Hardware) FindFullLabel(label genome.Label) (head Head, ok bool) {
	ip := hw.IP()
	head = *ip

	found := hw.lib.SearchFull(label, ip.Memory())
	if found > 0 {
		head.Set(ip.Space(), found-1)
		ok = true
	}

	return
}
