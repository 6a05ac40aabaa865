package bufmgr

import (
	"errors"
	"sync"

	"github.com/dshills/vigor/internal/engine/buffer"
)

// ErrBufferNotFound is returned for handles that are stale, wiped, or
// never existed.
var ErrBufferNotFound = errors.New("buffer not found")

// DeleteMode selects how much of a buffer :bdelete-style commands
// remove.
type DeleteMode int

const (
	// DeleteUnlist removes the buffer from the buffer list but keeps
	// its content loaded.
	DeleteUnlist DeleteMode = iota
	// DeleteUnload additionally releases the content.
	DeleteUnload
	// DeleteWipe destroys the buffer entirely; its handle becomes
	// invalid.
	DeleteWipe
)

// Manager owns the open buffers, assigns their numbers, and tracks
// which one is current. Handle numbers are never reused within a
// session; a wiped buffer's number stays dead.
type Manager struct {
	mu      sync.RWMutex
	buffers map[buffer.Handle]*buffer.Buffer
	order   []buffer.Handle
	current buffer.Handle
	next    buffer.Handle
}

// NewManager creates a manager holding a single empty buffer, which
// becomes current.
func NewManager() *Manager {
	m := &Manager{
		buffers: make(map[buffer.Handle]*buffer.Buffer),
		next:    1,
	}
	b := m.createLocked()
	m.current = b.Handle()
	return m
}

// Create adds a new empty listed buffer and returns it. The new buffer
// does not become current.
func (m *Manager) Create(opts ...buffer.Option) *buffer.Buffer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createLocked(opts...)
}

// CreateNamed adds a new buffer with the given name. If a live buffer
// already has that name, it is returned instead of creating another.
func (m *Manager) CreateNamed(name string, opts ...buffer.Option) *buffer.Buffer {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, h := range m.order {
		if b := m.buffers[h]; b != nil && b.IsValid() && b.Name() == name {
			return b
		}
	}
	opts = append(opts, buffer.WithName(name))
	return m.createLocked(opts...)
}

func (m *Manager) createLocked(opts ...buffer.Option) *buffer.Buffer {
	h := m.next
	m.next++
	opts = append([]buffer.Option{buffer.WithHandle(h)}, opts...)
	b := buffer.New(opts...)
	m.buffers[h] = b
	m.order = append(m.order, h)
	return b
}

// Get resolves a handle to a live buffer. Handle 0 means the current
// buffer. Wiped and unknown handles yield ErrBufferNotFound.
func (m *Manager) Get(h buffer.Handle) (*buffer.Buffer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.getLocked(h)
}

func (m *Manager) getLocked(h buffer.Handle) (*buffer.Buffer, error) {
	if h == buffer.Current {
		h = m.current
	}
	b, ok := m.buffers[h]
	if !ok || !b.IsValid() {
		return nil, ErrBufferNotFound
	}
	return b, nil
}

// GetByName returns the live buffer with the given name.
func (m *Manager) GetByName(name string) (*buffer.Buffer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, h := range m.order {
		if b := m.buffers[h]; b != nil && b.IsValid() && b.Name() == name {
			return b, nil
		}
	}
	return nil, ErrBufferNotFound
}

// Current returns the current buffer.
func (m *Manager) Current() *buffer.Buffer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, err := m.getLocked(m.current)
	if err != nil {
		return nil
	}
	return b
}

// SetCurrent switches the current buffer.
func (m *Manager) SetCurrent(h buffer.Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, err := m.getLocked(h)
	if err != nil {
		return err
	}
	m.current = b.Handle()
	return nil
}

// List returns all live buffers in creation order.
func (m *Manager) List() []*buffer.Buffer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*buffer.Buffer, 0, len(m.order))
	for _, h := range m.order {
		if b := m.buffers[h]; b != nil && b.IsValid() {
			out = append(out, b)
		}
	}
	return out
}

// ListListed returns the live buffers that appear in the buffer list.
func (m *Manager) ListListed() []*buffer.Buffer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*buffer.Buffer
	for _, h := range m.order {
		if b := m.buffers[h]; b != nil && b.IsValid() && b.IsListed() {
			out = append(out, b)
		}
	}
	return out
}

// Delete removes a buffer to the chosen degree. Without force, a
// modified buffer refuses to be wiped. When the current buffer is
// deleted, another listed buffer becomes current; if none remains, a
// fresh empty buffer is created, so there is always a current buffer.
func (m *Manager) Delete(h buffer.Handle, mode DeleteMode, force bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, err := m.getLocked(h)
	if err != nil {
		return err
	}
	h = b.Handle()

	switch mode {
	case DeleteWipe:
		if err := b.Wipe(force); err != nil {
			return err
		}
	case DeleteUnload:
		if err := b.Delete(force); err != nil {
			return err
		}
	default:
		b.SetListed(false)
	}

	if m.current == h {
		m.retargetCurrentLocked(h)
	}
	return nil
}

// retargetCurrentLocked picks a new current buffer after h was
// deleted: the next listed live buffer in order, or a fresh one.
func (m *Manager) retargetCurrentLocked(deleted buffer.Handle) {
	for _, h := range m.order {
		if h == deleted {
			continue
		}
		if b := m.buffers[h]; b != nil && b.IsValid() && b.IsListed() {
			m.current = h
			return
		}
	}
	m.current = m.createLocked().Handle()
}
