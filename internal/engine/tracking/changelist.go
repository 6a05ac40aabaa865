package tracking

import (
	"sync"

	"github.com/dshills/vigor/internal/engine/buffer"
	"github.com/dshills/vigor/internal/engine/cursor"
)

// ChangeList records the positions of changes within one buffer,
// navigated with g; and g, in normal mode. Register it as a shift
// listener on its buffer so recorded positions follow edits.
type ChangeList struct {
	mu      sync.Mutex
	entries []cursor.Position
	index   int
	max     int
}

// NewChangeList creates an empty change list.
func NewChangeList() *ChangeList {
	return &ChangeList{max: DefaultListSize}
}

// Len returns the number of entries.
func (l *ChangeList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Get returns the entry at an index.
func (l *ChangeList) Get(i int) (cursor.Position, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.entries) {
		return cursor.Position{}, false
	}
	return l.entries[i], true
}

// Push records a change position. A change on the same line as the
// newest entry replaces it rather than growing the list. Pushing
// rewinds navigation to the newest end and evicts the oldest entry
// past capacity.
func (l *ChangeList) Push(pos cursor.Position) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n := len(l.entries); n > 0 && l.entries[n-1].Line == pos.Line {
		l.entries[n-1] = pos
	} else {
		l.entries = append(l.entries, pos)
		if len(l.entries) > l.max {
			l.entries = l.entries[len(l.entries)-l.max:]
		}
	}
	l.index = len(l.entries)
}

// GoOlder moves to an older change, as g; does. Returns false when
// there is no older entry.
func (l *ChangeList) GoOlder() (cursor.Position, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.index == 0 {
		return cursor.Position{}, false
	}
	l.index--
	return l.entries[l.index], true
}

// GoNewer moves to a newer change, as g, does. Returns false at the
// newest entry.
func (l *ChangeList) GoNewer() (cursor.Position, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.index >= len(l.entries)-1 {
		return cursor.Position{}, false
	}
	l.index++
	return l.entries[l.index], true
}

// Clear removes all entries.
func (l *ChangeList) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	l.index = 0
}

// Adjust implements buffer.ShiftListener.
func (l *ChangeList) Adjust(s buffer.Shift) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, pos := range l.entries {
		l.entries[i] = adjustPosition(pos, s)
	}
}
