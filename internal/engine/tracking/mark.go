package tracking

import (
	"errors"
	"fmt"

	"github.com/dshills/vigor/internal/engine/buffer"
	"github.com/dshills/vigor/internal/engine/cursor"
)

// ErrInvalidMark is returned for characters that do not name a mark.
var ErrInvalidMark = errors.New("invalid mark")

// ErrMarkReadOnly is returned when setting a mark the editor maintains
// automatically.
var ErrMarkReadOnly = errors.New("mark is read-only")

// Mark names a saved position. Lowercase letters are buffer-local,
// uppercase letters and digits are global, and the punctuation marks
// are maintained automatically by the editor.
type Mark rune

// Special marks.
const (
	// MarkLastJump is ' (also reachable as `), the position before the
	// last jump.
	MarkLastJump Mark = '\''
	// MarkLastInsert is ^, where insert mode was last left.
	MarkLastInsert Mark = '^'
	// MarkLastChange is ., the position of the last change.
	MarkLastChange Mark = '.'
	// MarkVisualStart is <, the start of the last visual selection.
	MarkVisualStart Mark = '<'
	// MarkVisualEnd is >, the end of the last visual selection.
	MarkVisualEnd Mark = '>'
	// MarkChangeStart is [, the start of the last change or yank.
	MarkChangeStart Mark = '['
	// MarkChangeEnd is ], the end of the last change or yank.
	MarkChangeEnd Mark = ']'
	// MarkLastExit is ", the cursor position when the buffer was last
	// exited.
	MarkLastExit Mark = '"'
)

// ParseMark validates a mark character. The backtick aliases to '.
func ParseMark(c rune) (Mark, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return Mark(c), nil
	case c >= 'A' && c <= 'Z':
		return Mark(c), nil
	case c >= '0' && c <= '9':
		return Mark(c), nil
	case c == '`':
		return MarkLastJump, nil
	}
	switch Mark(c) {
	case MarkLastJump, MarkLastInsert, MarkLastChange,
		MarkVisualStart, MarkVisualEnd,
		MarkChangeStart, MarkChangeEnd, MarkLastExit:
		return Mark(c), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMark, c)
}

// IsLocal reports whether the mark is buffer-local (a-z).
func (m Mark) IsLocal() bool {
	return m >= 'a' && m <= 'z'
}

// IsGlobal reports whether the mark crosses files (A-Z and 0-9).
func (m Mark) IsGlobal() bool {
	return (m >= 'A' && m <= 'Z') || m.IsNumbered()
}

// IsNumbered reports whether the mark is one of the 0-9 history marks.
func (m Mark) IsNumbered() bool {
	return m >= '0' && m <= '9'
}

// IsReadOnly reports whether the editor maintains the mark
// automatically.
func (m Mark) IsReadOnly() bool {
	switch m {
	case MarkLastChange, MarkVisualStart, MarkVisualEnd,
		MarkChangeStart, MarkChangeEnd, MarkLastExit:
		return true
	}
	return false
}

// Rune returns the mark character, inverting ParseMark.
func (m Mark) Rune() rune {
	return rune(m)
}

// String returns the mark character.
func (m Mark) String() string {
	return string(rune(m))
}

// adjustPosition applies a buffer shift to one recorded position:
// lines follow the shift law, and a same-line edit at or before the
// column moves the column by the byte delta.
func adjustPosition(pos cursor.Position, s buffer.Shift) cursor.Position {
	if s.LineDelta != 0 {
		pos.Line = buffer.ShiftLine(pos.Line, s.AtLine, s.LineDelta)
	} else if pos.Line == s.AtLine && pos.Col >= s.AtCol {
		col := pos.Col + s.ByteDelta
		if col < s.AtCol {
			col = s.AtCol
		}
		pos.Col = col
	}
	return pos
}

// Value is the position a mark stores, with enough identity to follow
// the mark across buffers and files.
type Value struct {
	// Buffer is the buffer number, 0 when only the file is known.
	Buffer buffer.Handle

	// BufferID is the buffer's stable identity, empty when only the
	// file is known.
	BufferID string

	// Position is the saved cursor position.
	Position cursor.Position

	// File is the file path for marks that outlive their buffer.
	File string
}
