// Package tracking implements the line-indexed side tables that follow
// a buffer through its edits: named marks, the jump list, and the
// change list.
//
// All three consume the buffer's shift notifications and apply the
// same adjustment law: positions before the change are untouched,
// positions inside a deleted span snap to its first line, and
// positions after the change move by the line delta. Entries are never
// dropped by an edit, only by explicit deletion.
//
// Marks split into three groups. Lowercase marks are buffer-local and
// user-settable, held in a per-buffer MarkSet. Uppercase and numbered
// marks cross files and live in a shared GlobalMarks table. The
// punctuation marks ('<, '>, '[, '], '., '") are maintained by the
// editor through the dedicated setters and rejected by Set.
//
// Wiring a buffer:
//
//	marks := tracking.NewMarkSet()
//	changes := tracking.NewChangeList()
//	jumps := tracking.NewJumpList()
//
//	buf.OnShift(marks)
//	buf.OnShift(changes)
//	buf.OnShift(jumps.Listener(buf.Handle()))
//
// The jump list spans buffers, so it adjusts through a per-buffer
// Listener rather than implementing the listener interface itself.
package tracking
