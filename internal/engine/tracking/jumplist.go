package tracking

import (
	"sync"

	"github.com/dshills/vigor/internal/engine/buffer"
	"github.com/dshills/vigor/internal/engine/cursor"
)

// DefaultListSize is the entry capacity of the jump and change lists.
const DefaultListSize = 100

// JumpEntry is one location jumped from.
type JumpEntry struct {
	// Buffer is the buffer number the jump left.
	Buffer buffer.Handle

	// Position is where the cursor was before the jump.
	Position cursor.Position

	// File is the buffer's file path, if any.
	File string
}

// JumpList records locations jumped from, navigated with CTRL-O and
// CTRL-I. The index marks the current spot: len(entries) when at the
// newest end, smaller after going back.
type JumpList struct {
	mu      sync.Mutex
	entries []JumpEntry
	index   int
	max     int
}

// NewJumpList creates an empty jump list.
func NewJumpList() *JumpList {
	return &JumpList{max: DefaultListSize}
}

// Len returns the number of entries.
func (l *JumpList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Index returns the current position within the list.
func (l *JumpList) Index() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index
}

// Get returns the entry at an index.
func (l *JumpList) Get(i int) (JumpEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.entries) {
		return JumpEntry{}, false
	}
	return l.entries[i], true
}

// Push records the position being jumped from. An older entry for the
// same buffer and line is removed first, so the list never holds two
// entries for one line. Pushing rewinds navigation to the newest end
// and evicts the oldest entry past capacity.
func (l *JumpList) Push(e JumpEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.entries[:0]
	for _, old := range l.entries {
		if old.Buffer == e.Buffer && old.Position.Line == e.Position.Line {
			continue
		}
		kept = append(kept, old)
	}
	l.entries = append(kept, e)
	if len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}
	l.index = len(l.entries)
}

// GoOlder moves one entry back, as CTRL-O does. Returns false at the
// oldest entry.
func (l *JumpList) GoOlder() (JumpEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.index == 0 {
		return JumpEntry{}, false
	}
	l.index--
	return l.entries[l.index], true
}

// GoNewer moves one entry forward, as CTRL-I does. Returns false at
// the newest end.
func (l *JumpList) GoNewer() (JumpEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.index >= len(l.entries)-1 {
		return JumpEntry{}, false
	}
	l.index++
	return l.entries[l.index], true
}

// Clear removes all entries.
func (l *JumpList) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	l.index = 0
}

// Listener returns a shift listener that adjusts entries pointing into
// the given buffer.
func (l *JumpList) Listener(h buffer.Handle) buffer.ShiftListener {
	return buffer.ShiftFunc(func(s buffer.Shift) {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, e := range l.entries {
			if e.Buffer != h {
				continue
			}
			e.Position = adjustPosition(e.Position, s)
			l.entries[i] = e
		}
	})
}
