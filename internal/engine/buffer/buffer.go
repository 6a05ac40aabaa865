package buffer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Buffer owns an ordered sequence of text lines for one editable unit.
// Lines never contain line terminators; an empty buffer is represented
// as a single empty line, so a loaded buffer always has at least one
// line. All methods are thread-safe, though the editor drives all
// mutation from a single logical actor.
type Buffer struct {
	mu     sync.RWMutex
	handle Handle
	id     string
	name   string
	lines  []string

	state      LoadState
	modified   bool
	modifiable bool
	readonly   bool
	listed     bool
	buftype    Type
	bufhidden  Hidden

	tick      uint64
	listeners []ShiftListener
}

// New creates a new empty buffer containing a single empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		id:         uuid.New().String(),
		lines:      []string{""},
		state:      Loaded,
		modifiable: true,
		listed:     true,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewFromLines creates a buffer with the given initial lines.
// The initial content does not mark the buffer modified.
func NewFromLines(lines []string, opts ...Option) *Buffer {
	b := New(opts...)
	lines = splitLines(lines)
	if len(lines) == 0 {
		lines = []string{""}
	}
	b.lines = append([]string(nil), lines...)
	return b
}

// NewFromString creates a buffer by splitting s on line terminators.
func NewFromString(s string, opts ...Option) *Buffer {
	return NewFromLines(strings.Split(s, "\n"), opts...)
}

// Identity

// Handle returns the buffer's number as assigned by the manager.
func (b *Buffer) Handle() Handle {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.handle
}

// ID returns the buffer's unique identity string. Unlike the numeric
// handle, the ID is never shared with another buffer, so side tables
// can detect stale references after a wipe.
func (b *Buffer) ID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.id
}

// Name returns the buffer name (file path or display name).
func (b *Buffer) Name() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.name
}

// SetName sets the buffer name.
func (b *Buffer) SetName(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == Wiped {
		return ErrBufferWiped
	}
	b.name = name
	return nil
}

// IsValid reports whether the buffer is still usable (not wiped).
func (b *Buffer) IsValid() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state != Wiped
}

// Read Operations

// LineCount returns the number of lines. It returns 0 only when the
// buffer is not loaded; a loaded buffer always has at least one line.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.state != Loaded {
		return 0
	}
	return len(b.lines)
}

// GetLines returns the lines in [start, end). Negative indices resolve
// relative to one past the last line (-1 = one past the end, -2 = the
// last line). With strict indexing a resolved index outside
// [0, LineCount] fails with ErrIndexOutOfBounds; otherwise indices are
// clamped. A resolved start >= end yields an empty slice. Buffers that
// are not loaded return an empty slice for any input, without error.
func (b *Buffer) GetLines(start, end int, strict bool) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.state != Loaded {
		return nil, nil
	}

	rs, re, err := resolveRange(start, end, len(b.lines), strict)
	if err != nil {
		return nil, err
	}
	if rs >= re {
		return nil, nil
	}

	out := make([]string, re-rs)
	copy(out, b.lines[rs:re])
	return out, nil
}

// GetLine returns a single line, or an empty string if the index is
// out of range.
func (b *Buffer) GetLine(line int) (string, error) {
	lines, err := b.GetLines(line, line+1, false)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", nil
	}
	return lines[0], nil
}

// Text returns the full buffer content joined with newlines.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.state != Loaded {
		return ""
	}
	return strings.Join(b.lines, "\n")
}

// Write Operations

// SetLines replaces the lines in [start, end) with replacement.
// Indices resolve exactly as in GetLines. Replacement lines with
// embedded terminators are split into additional lines. If the splice
// would leave the buffer empty, a single empty line is forced. Every
// successful call bumps the change version and sets the modified flag,
// even a splice of identical content, and emits one Shift anchored at
// the resolved start (1-based) with delta len(replacement)-(end-start).
func (b *Buffer) SetLines(start, end int, strict bool, replacement []string) error {
	b.mu.Lock()

	if b.state == Wiped {
		b.mu.Unlock()
		return ErrBufferWiped
	}
	if !b.modifiable {
		b.mu.Unlock()
		return ErrNotModifiable
	}
	if b.state == Unloaded {
		// Mutating an unloaded buffer reloads it as empty.
		b.lines = []string{""}
		b.state = Loaded
	}

	rs, re, err := resolveRange(start, end, len(b.lines), strict)
	if err != nil {
		b.mu.Unlock()
		return err
	}
	if rs > re {
		b.mu.Unlock()
		return fmt.Errorf("%w: start %d after end %d", ErrInvalidRange, rs, re)
	}

	replacement = splitLines(replacement)

	removedBytes := lineBytes(b.lines[rs:re])
	addedBytes := lineBytes(replacement)

	spliced := make([]string, 0, len(b.lines)-(re-rs)+len(replacement))
	spliced = append(spliced, b.lines[:rs]...)
	spliced = append(spliced, replacement...)
	spliced = append(spliced, b.lines[re:]...)
	if len(spliced) == 0 {
		spliced = []string{""}
	}
	b.lines = spliced

	shift := Shift{
		AtLine:    rs + 1,
		LineDelta: len(replacement) - (re - rs),
		ByteDelta: addedBytes - removedBytes,
	}
	listeners := b.commit(&shift)
	b.mu.Unlock()

	notify(listeners, shift)
	return nil
}

// SetText replaces the byte range (startRow, startCol)..(endRow,
// endCol) with replacement, joining the start line's prefix and the
// end line's suffix onto the replacement's first and last pieces.
// Rows outside the buffer fail with ErrIndexOutOfBounds; columns
// beyond a line's length are clamped to it.
func (b *Buffer) SetText(startRow, startCol, endRow, endCol int, replacement []string) error {
	b.mu.Lock()

	if b.state == Wiped {
		b.mu.Unlock()
		return ErrBufferWiped
	}
	if !b.modifiable {
		b.mu.Unlock()
		return ErrNotModifiable
	}
	if b.state == Unloaded {
		b.lines = []string{""}
		b.state = Loaded
	}

	lineCount := len(b.lines)
	startRow = resolveIndex(startRow, lineCount-1)
	endRow = resolveIndex(endRow, lineCount-1)
	if startRow < 0 || startRow >= lineCount || endRow < 0 || endRow >= lineCount {
		b.mu.Unlock()
		return ErrIndexOutOfBounds
	}
	if startRow > endRow {
		b.mu.Unlock()
		return fmt.Errorf("%w: start row %d after end row %d", ErrInvalidRange, startRow, endRow)
	}

	startLine := b.lines[startRow]
	endLine := b.lines[endRow]
	startCol = clampCol(startCol, len(startLine))
	endCol = clampCol(endCol, len(endLine))
	if startRow == endRow && startCol > endCol {
		b.mu.Unlock()
		return fmt.Errorf("%w: start col %d after end col %d", ErrInvalidRange, startCol, endCol)
	}

	prefix := startLine[:startCol]
	suffix := endLine[endCol:]

	replacement = splitLines(replacement)
	var newLines []string
	switch len(replacement) {
	case 0:
		newLines = []string{prefix + suffix}
	case 1:
		newLines = []string{prefix + replacement[0] + suffix}
	default:
		newLines = make([]string, 0, len(replacement))
		newLines = append(newLines, prefix+replacement[0])
		newLines = append(newLines, replacement[1:len(replacement)-1]...)
		newLines = append(newLines, replacement[len(replacement)-1]+suffix)
	}

	removedBytes := lineBytes(b.lines[startRow : endRow+1])
	addedBytes := lineBytes(newLines)

	spliced := make([]string, 0, lineCount-(endRow+1-startRow)+len(newLines))
	spliced = append(spliced, b.lines[:startRow]...)
	spliced = append(spliced, newLines...)
	spliced = append(spliced, b.lines[endRow+1:]...)
	if len(spliced) == 0 {
		spliced = []string{""}
	}
	b.lines = spliced

	shift := Shift{
		AtLine:    startRow + 1,
		AtCol:     startCol,
		LineDelta: len(newLines) - (endRow + 1 - startRow),
		ByteDelta: addedBytes - removedBytes,
	}
	listeners := b.commit(&shift)
	b.mu.Unlock()

	notify(listeners, shift)
	return nil
}

// Append inserts lines after the given line; line 0 inserts before the
// first line.
func (b *Buffer) Append(line int, lines []string) error {
	return b.SetLines(line, line, false, lines)
}

// commit records a successful structural change: bump the change
// version, set modified, and stamp the shift. Must hold the write
// lock. Returns the listeners to notify after unlocking.
func (b *Buffer) commit(shift *Shift) []ShiftListener {
	b.tick++
	b.modified = true
	shift.Tick = b.tick

	listeners := make([]ShiftListener, len(b.listeners))
	copy(listeners, b.listeners)
	return listeners
}

func notify(listeners []ShiftListener, s Shift) {
	for _, l := range listeners {
		l.Adjust(s)
	}
}

// OnShift registers a listener for structural-change notifications.
// Listeners are invoked in registration order, once per mutation.
func (b *Buffer) OnShift(l ShiftListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, l)
}

// Buffer State

// ChangedTick returns the change version, incremented on every
// successful mutation. Collaborators use it to detect staleness.
func (b *Buffer) ChangedTick() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tick
}

// IsModified reports whether the buffer has unsaved changes.
func (b *Buffer) IsModified() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.modified
}

// SetModified sets or clears the modified flag.
func (b *Buffer) SetModified(modified bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.modified = modified
}

// IsModifiable reports whether mutations are allowed.
func (b *Buffer) IsModifiable() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.modifiable
}

// SetModifiable sets the modifiable flag. The flag setters themselves
// are never gated on the flag.
func (b *Buffer) SetModifiable(modifiable bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.modifiable = modifiable
}

// IsReadOnly reports the 'readonly' flag.
func (b *Buffer) IsReadOnly() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.readonly
}

// SetReadOnly sets the 'readonly' flag.
func (b *Buffer) SetReadOnly(readonly bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.readonly = readonly
}

// IsListed reports whether the buffer appears in the buffer list.
func (b *Buffer) IsListed() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.listed
}

// SetListed sets the listedness flag.
func (b *Buffer) SetListed(listed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listed = listed
}

// Type returns the buffer type ('buftype').
func (b *Buffer) Type() Type {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.buftype
}

// SetType sets the buffer type.
func (b *Buffer) SetType(t Type) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buftype = t
}

// HiddenPolicy returns the 'bufhidden' behavior.
func (b *Buffer) HiddenPolicy() Hidden {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.bufhidden
}

// SetHiddenPolicy sets the 'bufhidden' behavior.
func (b *Buffer) SetHiddenPolicy(h Hidden) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bufhidden = h
}

// LoadState returns the buffer's load state.
func (b *Buffer) LoadState() LoadState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// Lifecycle

// Unload releases the buffer's content. The buffer stays valid: reads
// return empty results and a later mutation reloads it as empty.
// Unloading an already-unloaded buffer is a no-op, never an error.
func (b *Buffer) Unload() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != Loaded {
		return
	}
	b.lines = nil
	b.state = Unloaded
	b.modified = false
}

// Wipe removes the buffer entirely. A wiped buffer is invalid: any
// further structural operation fails with ErrBufferWiped. Without
// force, wiping a modified buffer fails with ErrBufferModified.
func (b *Buffer) Wipe(force bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == Wiped {
		return nil
	}
	if b.modified && !force {
		return ErrBufferModified
	}
	b.lines = nil
	b.state = Wiped
	b.modified = false
	b.listed = false
	return nil
}

// Delete unlists and unloads the buffer without wiping it. Without
// force, deleting a modified buffer fails with ErrBufferModified.
func (b *Buffer) Delete(force bool) error {
	b.mu.Lock()
	if b.state == Wiped {
		b.mu.Unlock()
		return ErrBufferWiped
	}
	if b.modified && !force {
		b.mu.Unlock()
		return ErrBufferModified
	}
	b.listed = false
	b.mu.Unlock()

	b.Unload()
	return nil
}

// Info returns a snapshot of the buffer's state.
func (b *Buffer) Info() Info {
	b.mu.RLock()
	defer b.mu.RUnlock()

	lineCount := 0
	if b.state == Loaded {
		lineCount = len(b.lines)
	}

	return Info{
		Handle:      b.handle,
		ID:          b.id,
		Name:        b.name,
		LineCount:   lineCount,
		Modified:    b.modified,
		Modifiable:  b.modifiable,
		ReadOnly:    b.readonly,
		Type:        b.buftype,
		Hidden:      b.bufhidden,
		LoadState:   b.state,
		Listed:      b.listed,
		ChangedTick: b.tick,
	}
}

// Helpers

// lineBytes returns the byte length of lines including one terminator
// per line.
func lineBytes(lines []string) int {
	n := 0
	for _, l := range lines {
		n += len(l) + 1
	}
	return n
}

func clampCol(col, lineLen int) int {
	if col < 0 {
		return 0
	}
	if col > lineLen {
		return lineLen
	}
	return col
}
