package mode

import (
	"errors"
	"testing"

	"github.com/dshills/vigor/internal/engine/cursor"
)

func TestMachineStartsNormal(t *testing.T) {
	m := NewMachine()

	if m.Mode() != Normal() {
		t.Errorf("expected normal mode, got %s", m.Mode().UIName())
	}
	if m.Blocking() {
		t.Error("new machine should not be blocking")
	}
}

func TestTransitionToInsertAndBack(t *testing.T) {
	m := NewMachine()

	if err := m.Transition(Insert()); err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if m.Mode() != Insert() {
		t.Errorf("expected insert, got %s", m.Mode().UIName())
	}

	if err := m.Transition(Normal()); err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if m.Mode() != Normal() {
		t.Errorf("expected normal, got %s", m.Mode().UIName())
	}
}

func TestInvalidTransitionLeavesStateUntouched(t *testing.T) {
	m := NewMachine()
	if err := m.Transition(Insert()); err != nil {
		t.Fatalf("Transition failed: %v", err)
	}

	err := m.Transition(Visual(VisualChar))
	if err == nil {
		t.Fatal("expected error for insert -> visual")
	}

	var terr *TransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TransitionError, got %T", err)
	}
	if terr.From != Insert() || terr.To != Visual(VisualChar) {
		t.Errorf("error carries wrong endpoints: %+v", terr)
	}
	if m.Mode() != Insert() {
		t.Errorf("failed transition mutated state to %s", m.Mode().UIName())
	}
}

func TestDirectOperatorPendingRejected(t *testing.T) {
	m := NewMachine()

	if err := m.Transition(OperatorPending()); err == nil {
		t.Fatal("expected direct transition to operator-pending to fail")
	}
	if m.CanTransition(OperatorPending()) {
		t.Error("CanTransition must not report operator-pending reachable directly")
	}
}

func TestOperatorPendingProtocol(t *testing.T) {
	m := NewMachine()

	if err := m.EnterOperatorPending('d'); err != nil {
		t.Fatalf("EnterOperatorPending failed: %v", err)
	}
	if m.Mode() != OperatorPending() {
		t.Errorf("expected operator-pending, got %s", m.Mode().UIName())
	}
	if !m.Blocking() {
		t.Error("operator-pending should be blocking")
	}
	if m.PendingOperator() != 'd' {
		t.Errorf("expected pending operator d, got %q", m.PendingOperator())
	}

	if err := m.ExitOperatorPending(); err != nil {
		t.Fatalf("ExitOperatorPending failed: %v", err)
	}
	if m.Mode() != Normal() {
		t.Errorf("expected normal, got %s", m.Mode().UIName())
	}
	if m.Blocking() {
		t.Error("blocking should clear on exit")
	}
	if m.PendingOperator() != 0 {
		t.Errorf("pending operator should clear, got %q", m.PendingOperator())
	}
}

func TestOperatorPendingFromVisual(t *testing.T) {
	m := NewMachine()
	if err := m.Transition(Visual(VisualChar)); err != nil {
		t.Fatalf("Transition failed: %v", err)
	}

	if err := m.EnterOperatorPending('y'); err != nil {
		t.Fatalf("EnterOperatorPending from visual failed: %v", err)
	}
}

func TestOperatorPendingFromInsertRejected(t *testing.T) {
	m := NewMachine()
	if err := m.Transition(Insert()); err != nil {
		t.Fatalf("Transition failed: %v", err)
	}

	if err := m.EnterOperatorPending('d'); err == nil {
		t.Fatal("expected operator entry from insert to fail")
	}
	if m.Mode() != Insert() {
		t.Errorf("failed entry mutated state to %s", m.Mode().UIName())
	}
}

func TestExitOperatorPendingOutsideIt(t *testing.T) {
	m := NewMachine()
	if err := m.ExitOperatorPending(); err == nil {
		t.Fatal("expected error when no operator is pending")
	}
}

func TestEscapeClearsEverything(t *testing.T) {
	m := NewMachine()
	if err := m.EnterOperatorPending('c'); err != nil {
		t.Fatalf("EnterOperatorPending failed: %v", err)
	}
	m.SetCount(12)

	m.Escape()

	if m.Mode() != Normal() {
		t.Errorf("expected normal, got %s", m.Mode().UIName())
	}
	if m.Blocking() || m.PendingOperator() != 0 || m.Count() != 0 {
		t.Errorf("escape left residual state: blocking=%v op=%q count=%d",
			m.Blocking(), m.PendingOperator(), m.Count())
	}
}

func TestCountAccumulation(t *testing.T) {
	m := NewMachine()
	if err := m.EnterOperatorPending('d'); err != nil {
		t.Fatalf("EnterOperatorPending failed: %v", err)
	}

	// "d12" accumulating while blocked.
	m.SetCount(1)
	m.SetCount(12)
	if m.Count() != 12 {
		t.Errorf("expected count 12, got %d", m.Count())
	}
	if m.Mode() != OperatorPending() {
		t.Error("setting the count must not change mode")
	}
}

func TestCtrlOFromInsert(t *testing.T) {
	m := NewMachine()
	if err := m.Transition(Insert()); err != nil {
		t.Fatalf("Transition failed: %v", err)
	}

	if err := m.EnterCtrlO(); err != nil {
		t.Fatalf("EnterCtrlO failed: %v", err)
	}
	if !m.InCtrlO() {
		t.Error("one-shot normal should be active")
	}
	if m.Mode() != Insert() {
		t.Error("one-shot normal must not leave insert mode")
	}
	if got := m.EffectiveCode(); got != "niI" {
		t.Errorf("expected effective code niI, got %q", got)
	}

	if err := m.ExitCtrlO(); err != nil {
		t.Fatalf("ExitCtrlO failed: %v", err)
	}
	if got := m.EffectiveCode(); got != "i" {
		t.Errorf("expected effective code i, got %q", got)
	}
}

func TestCtrlOFromVisual(t *testing.T) {
	m := NewMachine()
	if err := m.Transition(Visual(VisualChar)); err != nil {
		t.Fatalf("Transition failed: %v", err)
	}

	if err := m.EnterCtrlO(); err != nil {
		t.Fatalf("EnterCtrlO failed: %v", err)
	}
	if got := m.EffectiveCode(); got != "vs" {
		t.Errorf("expected effective code vs, got %q", got)
	}
}

func TestCtrlOFromNormalRejected(t *testing.T) {
	m := NewMachine()
	if err := m.EnterCtrlO(); err == nil {
		t.Fatal("expected CtrlO from normal to fail")
	}
	if err := m.ExitCtrlO(); err == nil {
		t.Fatal("expected ExitCtrlO with no sub-state to fail")
	}
}

func TestEscapeClearsCtrlO(t *testing.T) {
	m := NewMachine()
	if err := m.Transition(Insert()); err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if err := m.EnterCtrlO(); err != nil {
		t.Fatalf("EnterCtrlO failed: %v", err)
	}

	m.Escape()
	if m.InCtrlO() {
		t.Error("escape should clear the one-shot normal sub-state")
	}
}

func TestOnChangeCallbacks(t *testing.T) {
	m := NewMachine()

	var changes []string
	unregister := m.OnChange(func(from, to Mode) {
		changes = append(changes, from.Code()+">"+to.Code())
	})

	if err := m.Transition(Insert()); err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	m.Escape()

	if len(changes) != 2 || changes[0] != "n>i" || changes[1] != "i>n" {
		t.Errorf("unexpected change log: %v", changes)
	}

	// Escape in normal mode is a no-op and must not notify.
	m.Escape()
	if len(changes) != 2 {
		t.Errorf("no-op escape notified: %v", changes)
	}

	unregister()
	if err := m.Transition(Insert()); err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if len(changes) != 2 {
		t.Error("unregistered callback was invoked")
	}
}

func TestCursorContextDerivation(t *testing.T) {
	m := NewMachine()

	ctx := m.CursorContext(cursor.VirtualEditNone, false)
	if ctx.AllowPastEOL || ctx.VisualSelection {
		t.Errorf("normal mode context wrong: %+v", ctx)
	}

	if err := m.Transition(Insert()); err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	ctx = m.CursorContext(cursor.VirtualEditNone, false)
	if !ctx.AllowPastEOL {
		t.Error("insert mode should allow the cursor past EOL")
	}

	m.Escape()
	if err := m.Transition(Visual(VisualChar)); err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	ctx = m.CursorContext(cursor.VirtualEditNone, false)
	if !ctx.VisualSelection {
		t.Error("visual mode with selection not old should set VisualSelection")
	}
	ctx = m.CursorContext(cursor.VirtualEditNone, true)
	if ctx.VisualSelection {
		t.Error("selection old should clear VisualSelection")
	}
}
