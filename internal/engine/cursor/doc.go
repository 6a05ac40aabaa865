// Package cursor implements Vim-style cursor positioning over a
// buffer: 1-based lines, 0-based byte columns, mode-dependent
// placement rules, and the remembered column for vertical movement.
//
// The cursor package provides:
//
//   - Position clamping that varies by context: normal-like modes keep
//     the cursor on the last character, insert-like modes allow one
//     past it, and virtualedit allows placement beyond the text via a
//     virtual column offset
//   - Curswant, the wanted column that vertical motions return to,
//     with an end-of-line sentinel set by the $ motion
//   - Virtual column math built on grapheme cluster widths, so tabs,
//     wide characters and combining sequences all resolve to the
//     screen cells they actually occupy
//   - Repositioning after edits, both through the byte-level
//     AdjustForChange contract and as a buffer shift listener
//
// Basic usage:
//
//	cur := cursor.New(buf, cursor.WithTabWidth(4))
//	cur.SetPosition(cursor.NewPosition(3, 0))
//	cur.MoveToEOL()
//
//	// Keep the cursor valid across buffer edits
//	buf.OnShift(cur)
//
// Validation is idempotent: clamping an already-valid position leaves
// it unchanged, so CheckCursor may be called at any point.
package cursor
