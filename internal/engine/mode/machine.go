package mode

import (
	"sync"

	"github.com/dshills/vigor/internal/engine/cursor"
)

// ctrlOState tracks the transient one-shot normal mode entered with
// CTRL-O.
type ctrlOState int

const (
	ctrlONone ctrlOState = iota
	ctrlOFromInsert
	ctrlOFromVisual
)

// ChangeCallback is called after a successful mode transition.
type ChangeCallback func(from, to Mode)

// Machine holds the editor's mode state: the current mode, the pending
// operator, the transient CTRL-O sub-state, the blocking flag, and the
// accumulated count prefix. All transitions are validated; a rejected
// transition leaves the machine untouched.
type Machine struct {
	mu sync.RWMutex

	// mode is the current editor mode.
	mode Mode

	// pendingOp is the operator awaiting its motion, 0 when none.
	pendingOp rune

	// blocking is true while the machine awaits a completing
	// keystroke, such as the motion after an operator.
	blocking bool

	// count is the accumulated repeat count, 0 when none.
	count int

	// ctrlO records the mode to return to after a one-shot normal
	// command.
	ctrlO ctrlOState

	// callbacks are notified on mode changes.
	callbacks []ChangeCallback
}

// NewMachine creates a machine in normal mode.
func NewMachine() *Machine {
	return &Machine{mode: Normal()}
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

// Blocking reports whether the machine is waiting for a completing
// keystroke.
func (m *Machine) Blocking() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.blocking
}

// SetBlocking sets the blocking flag directly, with no transition
// check.
func (m *Machine) SetBlocking(blocking bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blocking = blocking
}

// Count returns the accumulated count prefix, 0 when none.
func (m *Machine) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.count
}

// SetCount sets the count prefix directly, with no transition check.
// The operator-pending protocol uses this to accumulate digits while
// blocked.
func (m *Machine) SetCount(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count = count
}

// PendingOperator returns the operator awaiting a motion, 0 when none.
func (m *Machine) PendingOperator() rune {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pendingOp
}

// CanTransition reports whether a transition to the target mode would
// be accepted.
func (m *Machine) CanTransition(to Mode) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return to.kind != KindOperatorPending && Allowed(m.mode, to)
}

// Transition changes the current mode. Operator-pending cannot be
// entered this way; use EnterOperatorPending, which records the
// operator. On failure the machine is unchanged and the caller should
// not consume the triggering keystroke.
func (m *Machine) Transition(to Mode) error {
	m.mu.Lock()

	if to.kind == KindOperatorPending {
		err := &TransitionError{From: m.mode, To: to, Reason: "pending operator required"}
		m.mu.Unlock()
		return err
	}
	if !Allowed(m.mode, to) {
		err := &TransitionError{From: m.mode, To: to, Reason: "not reachable"}
		m.mu.Unlock()
		return err
	}

	from := m.mode
	m.applyLocked(to)
	callbacks := m.copyCallbacksLocked()
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb(from, to)
	}
	return nil
}

// EnterOperatorPending transitions to operator-pending mode, recording
// the triggering operator and setting the blocking flag. Legal only
// from normal and visual modes.
func (m *Machine) EnterOperatorPending(op rune) error {
	m.mu.Lock()

	to := OperatorPending()
	if !Allowed(m.mode, to) {
		err := &TransitionError{From: m.mode, To: to, Reason: "operators apply from normal or visual mode"}
		m.mu.Unlock()
		return err
	}

	from := m.mode
	m.mode = to
	m.pendingOp = op
	m.blocking = true
	callbacks := m.copyCallbacksLocked()
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb(from, to)
	}
	return nil
}

// ExitOperatorPending returns to normal mode after the motion has been
// received, clearing the pending operator and the blocking flag.
func (m *Machine) ExitOperatorPending() error {
	m.mu.Lock()

	if m.mode.kind != KindOperatorPending {
		err := &TransitionError{From: m.mode, To: Normal(), Reason: "no operator pending"}
		m.mu.Unlock()
		return err
	}

	from := m.mode
	to := Normal()
	m.applyLocked(to)
	callbacks := m.copyCallbacksLocked()
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb(from, to)
	}
	return nil
}

// Escape returns to normal mode from anywhere, clearing the pending
// operator, the blocking flag, the CTRL-O sub-state, and the count.
func (m *Machine) Escape() {
	m.mu.Lock()

	from := m.mode
	to := Normal()
	m.applyLocked(to)
	m.count = 0
	callbacks := m.copyCallbacksLocked()
	m.mu.Unlock()

	if from != to {
		for _, cb := range callbacks {
			cb(from, to)
		}
	}
}

// EnterCtrlO activates the one-shot normal sub-state. Legal only from
// insert mode and the visual and select modes; the major mode is kept
// so a single normal command can run before returning to it.
func (m *Machine) EnterCtrlO() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ctrlO != ctrlONone {
		return &TransitionError{From: m.mode, To: m.mode, Reason: "already in one-shot normal"}
	}
	switch {
	case m.mode.kind == KindInsert:
		m.ctrlO = ctrlOFromInsert
	case m.mode.IsVisual():
		m.ctrlO = ctrlOFromVisual
	default:
		return &TransitionError{From: m.mode, To: m.mode, Reason: "one-shot normal requires insert or visual mode"}
	}
	return nil
}

// ExitCtrlO deactivates the one-shot normal sub-state.
func (m *Machine) ExitCtrlO() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ctrlO == ctrlONone {
		return &TransitionError{From: m.mode, To: m.mode, Reason: "no one-shot normal active"}
	}
	m.ctrlO = ctrlONone
	return nil
}

// InCtrlO reports whether the one-shot normal sub-state is active.
func (m *Machine) InCtrlO() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ctrlO != ctrlONone
}

// EffectiveCode returns the mode code including the CTRL-O sub-state:
// "niI" for one-shot normal from insert, "vs" from visual, otherwise
// the plain mode code.
func (m *Machine) EffectiveCode() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	switch m.ctrlO {
	case ctrlOFromInsert:
		return "niI"
	case ctrlOFromVisual:
		return "vs"
	default:
		return m.mode.Code()
	}
}

// CursorContext derives the cursor placement rules for the current
// mode and the given settings.
func (m *Machine) CursorContext(ve cursor.VirtualEdit, selectionOld bool) cursor.Context {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cursor.Context{
		AllowPastEOL:    m.mode.AllowsCursorPastEOL(),
		VirtualEdit:     ve,
		VisualSelection: m.mode.IsVisual() && !selectionOld,
	}
}

// OnChange registers a callback for mode changes. Returns a function
// to unregister it.
func (m *Machine) OnChange(callback ChangeCallback) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}

// applyLocked installs the new mode and clears state that does not
// survive a transition. Must hold the write lock.
func (m *Machine) applyLocked(to Mode) {
	m.pendingOp = 0
	m.blocking = false
	m.ctrlO = ctrlONone
	m.mode = to
}

// copyCallbacksLocked snapshots the non-nil callbacks for invocation
// outside the lock. Must hold the lock.
func (m *Machine) copyCallbacksLocked() []ChangeCallback {
	callbacks := make([]ChangeCallback, 0, len(m.callbacks))
	for _, cb := range m.callbacks {
		if cb != nil {
			callbacks = append(callbacks, cb)
		}
	}
	return callbacks
}
