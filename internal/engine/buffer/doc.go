// Package buffer provides the line-oriented text buffer at the core of
// the editor engine. A buffer owns an ordered sequence of lines, its
// modification flags, its load state, and a monotonically increasing
// change version.
//
// The buffer package provides:
//
//   - The ">= 1 line" invariant: a loaded buffer never has zero lines;
//     deleting everything leaves a single empty line
//   - Index-normalized range reads and writes: negative indices are
//     relative to one past the last line (-1 = end, -2 = last line),
//     with a strict mode that errors on out-of-bounds and a lenient
//     mode that clamps
//   - Byte-granular text replacement that can split and join lines
//   - Modifiable/read-only/listed flags, buffer types and hidden
//     policies, and the Loaded/Unloaded/Wiped lifecycle
//   - Shift events: one notification per structural mutation, carrying
//     the line and byte deltas that marks, jump lists and cursors need
//     to stay valid without re-scanning
//
// Basic usage:
//
//	buf := buffer.NewFromLines([]string{"alpha", "beta"})
//
//	// Replace the whole buffer
//	buf.SetLines(0, -1, false, []string{"one", "two", "three"})
//
//	// Read the last line using a negative index
//	last, _ := buf.GetLines(-2, -1, false)
//
//	// Keep a mark table in sync
//	buf.OnShift(marks)
//
// Mutation, change-version increment and shift notification happen as
// one logical step: no caller observes an intermediate state. The
// buffer has no internal knowledge of its listeners; any number of
// collaborators apply the same shift law independently.
//
// Thread safety: all methods are safe for concurrent use, but the
// editing model assumes a single logical actor drives mutation; the
// surrounding editor serializes input.
package buffer
