package tracking

import (
	"sort"
	"sync"

	"github.com/dshills/vigor/internal/engine/buffer"
	"github.com/dshills/vigor/internal/engine/cursor"
)

// MarkSet holds the marks of a single buffer. Register it as a shift
// listener on its buffer so marks follow edits.
type MarkSet struct {
	mu    sync.RWMutex
	marks map[Mark]Value
}

// NewMarkSet creates an empty mark set.
func NewMarkSet() *MarkSet {
	return &MarkSet{marks: make(map[Mark]Value)}
}

// Get returns the value of a mark.
func (s *MarkSet) Get(mark Mark) (Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.marks[mark]
	return v, ok
}

// Set stores a user-settable mark. Marks the editor maintains
// automatically are rejected with ErrMarkReadOnly.
func (s *MarkSet) Set(mark Mark, value Value) error {
	if mark.IsReadOnly() {
		return ErrMarkReadOnly
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks[mark] = value
	return nil
}

// Delete removes a mark. Removing an unset mark is a no-op.
func (s *MarkSet) Delete(mark Mark) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.marks, mark)
}

// List returns the set marks sorted by mark character.
func (s *MarkSet) List() []Mark {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Mark, 0, len(s.marks))
	for m := range s.marks {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SetVisualMarks records the < and > marks after leaving visual mode.
func (s *MarkSet) SetVisualMarks(start, end cursor.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks[MarkVisualStart] = Value{Position: start}
	s.marks[MarkVisualEnd] = Value{Position: end}
}

// SetChangeMarks records the [ and ] marks around a change or yank,
// and the . mark at its start.
func (s *MarkSet) SetChangeMarks(start, end cursor.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks[MarkChangeStart] = Value{Position: start}
	s.marks[MarkChangeEnd] = Value{Position: end}
	s.marks[MarkLastChange] = Value{Position: start}
}

// SetLastInsert records the ^ mark where insert mode was left.
func (s *MarkSet) SetLastInsert(pos cursor.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks[MarkLastInsert] = Value{Position: pos}
}

// SetLastJump records the ' mark before a jump.
func (s *MarkSet) SetLastJump(pos cursor.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks[MarkLastJump] = Value{Position: pos}
}

// SetLastExit records the " mark when the buffer is left.
func (s *MarkSet) SetLastExit(pos cursor.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks[MarkLastExit] = Value{Position: pos}
}

// Adjust implements buffer.ShiftListener. Mark lines follow the shift
// law; a same-line edit at or before a mark's column moves the column
// by the byte delta. Marks are never dropped by a shift.
func (s *MarkSet) Adjust(shift buffer.Shift) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for m, v := range s.marks {
		s.marks[m] = adjustValue(v, shift)
	}
}

func adjustValue(v Value, s buffer.Shift) Value {
	v.Position = adjustPosition(v.Position, s)
	return v
}

// GlobalMarks holds the file-crossing marks (A-Z and 0-9) shared by
// all buffers.
type GlobalMarks struct {
	mu    sync.RWMutex
	marks map[Mark]Value
}

// NewGlobalMarks creates an empty global mark table.
func NewGlobalMarks() *GlobalMarks {
	return &GlobalMarks{marks: make(map[Mark]Value)}
}

// Get returns the value of a global mark.
func (g *GlobalMarks) Get(mark Mark) (Value, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.marks[mark]
	return v, ok
}

// Set stores a global mark. Local marks are rejected with
// ErrInvalidMark.
func (g *GlobalMarks) Set(mark Mark, value Value) error {
	if !mark.IsGlobal() {
		return ErrInvalidMark
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.marks[mark] = value
	return nil
}

// Delete removes a global mark.
func (g *GlobalMarks) Delete(mark Mark) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.marks, mark)
}

// List returns the set marks sorted by mark character.
func (g *GlobalMarks) List() []Mark {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Mark, 0, len(g.marks))
	for m := range g.marks {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Listener returns a shift listener that adjusts the global marks
// pointing into the given buffer.
func (g *GlobalMarks) Listener(h buffer.Handle) buffer.ShiftListener {
	return buffer.ShiftFunc(func(s buffer.Shift) {
		g.mu.Lock()
		defer g.mu.Unlock()
		for m, v := range g.marks {
			if v.Buffer != h {
				continue
			}
			g.marks[m] = adjustValue(v, s)
		}
	})
}
