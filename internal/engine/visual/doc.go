// Package visual derives regions and edits from visual-mode
// selections: inclusive character spans, whole-line spans, and
// blockwise rectangles over virtual columns.
//
// A Selection is a pair of cursor positions, anchor and active end,
// plus a shape. Normalization orders the ends; blockwise selections
// resolve both ends to virtual columns so the rectangle follows the
// screen layout even through tabs and wide characters.
//
// Block operations must tolerate ragged line lengths. The rules differ
// per operation:
//
//   - Delete and yank skip lines that end before the block's left edge
//   - Insert skips lines shorter than the insert column
//   - Append pads short lines with spaces up to the append column
//
// A block insert whose text contains a newline applies to the anchor
// line only, never replicated across the block's rows.
//
// The package computes edits as data (LineEdit values) and applies
// them bottom-up, so callers can inspect, transform, or record the
// edits before committing them to the buffer.
package visual
