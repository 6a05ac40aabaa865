package mode

import "fmt"

// TransitionError reports a rejected mode change. The machine's state
// is unchanged when one is returned.
type TransitionError struct {
	From   Mode
	To     Mode
	Reason string
}

// Error implements the error interface.
func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s: %s", e.From.UIName(), e.To.UIName(), e.Reason)
}

// Allowed reports whether a direct transition between the two modes is
// legal. The rules mirror how the modes are actually reached: escape
// returns from anywhere, operators apply from normal or visual, visual
// variants switch freely among themselves, and terminal toggles
// between its two sub-modes.
func Allowed(from, to Mode) bool {
	if from == to {
		return true
	}

	switch from.kind {
	case KindNormal:
		switch to.kind {
		case KindInsert, KindReplace, KindVisual, KindSelect,
			KindCommandLine, KindOperatorPending:
			return true
		case KindTerminal:
			return to.terminal == TerminalNormal
		}
	case KindInsert:
		return to.kind == KindNormal || to.kind == KindReplace
	case KindReplace:
		return to.kind == KindNormal || to.kind == KindInsert
	case KindVisual:
		switch to.kind {
		case KindNormal, KindVisual, KindSelect, KindOperatorPending, KindInsert:
			return true
		}
	case KindSelect:
		switch to.kind {
		case KindNormal, KindVisual, KindSelect, KindInsert:
			return true
		}
	case KindCommandLine:
		return to.kind == KindNormal || to.kind == KindCommandLine
	case KindOperatorPending:
		return to.kind == KindNormal || to.kind == KindVisual
	case KindTerminal:
		if to.kind == KindTerminal {
			return true
		}
		return from.terminal == TerminalNormal && to.kind == KindNormal
	}
	return false
}
