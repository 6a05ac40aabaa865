package buffer

// Shift describes how line-indexed positions must move after a
// structural buffer mutation. The buffer emits exactly one Shift per
// successful mutation, after the change version has been bumped, so a
// listener observing the shift always sees the post-change buffer.
type Shift struct {
	// AtLine is the first affected line, 1-based.
	AtLine int

	// AtCol is the byte column where the change started on AtLine.
	// Zero for whole-line splices.
	AtCol int

	// LineDelta is the net change in line count: lines inserted minus
	// lines removed at AtLine.
	LineDelta int

	// ByteDelta is the net change in byte length of the affected
	// region, including line terminators.
	ByteDelta int

	// Tick is the buffer's change version after the mutation.
	Tick uint64
}

// ShiftListener receives shift notifications from a buffer. Marks,
// jump lists, change lists and cursors all apply the same shift law
// independently; the buffer does not know which collaborators exist.
type ShiftListener interface {
	Adjust(s Shift)
}

// ShiftFunc adapts a plain function to the ShiftListener interface.
type ShiftFunc func(s Shift)

// Adjust calls f(s).
func (f ShiftFunc) Adjust(s Shift) { f(s) }

// ShiftLine applies the shift law to a single 1-based line number:
// lines before AtLine are untouched, lines inside a deleted span snap
// to its first line, and every other line at or below AtLine moves by
// LineDelta. The result is floored at line 1. Entries are never
// dropped by a shift, only by explicit deletion.
func ShiftLine(line, atLine, lineDelta int) int {
	if line < atLine {
		return line
	}
	if lineDelta < 0 && line < atLine-lineDelta {
		// Line was inside the deleted span.
		line = atLine
	} else {
		line += lineDelta
	}
	if line < 1 {
		line = 1
	}
	return line
}
