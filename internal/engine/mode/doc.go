// Package mode implements the editor's modal state machine: normal,
// insert, replace, the visual and select variants, operator-pending,
// command-line, and terminal modes, together with the transient CTRL-O
// one-shot normal sub-state.
//
// A Mode is a small comparable value combining the major mode with its
// sub-mode (visual shape, command-line kind, terminal kind). The
// Machine validates every transition against a fixed legality
// relation; rejected transitions return a *TransitionError and leave
// all state untouched, so the caller can decline to consume the
// triggering keystroke.
//
// Operator-pending mode is entered only through EnterOperatorPending,
// which records the operator character and raises the blocking flag.
// Escape returns to normal mode from any state and clears the pending
// operator, the blocking flag, the CTRL-O sub-state, and the count
// prefix.
//
// Basic usage:
//
//	machine := mode.NewMachine()
//	machine.Transition(mode.Insert())
//	machine.Escape()
//	machine.EnterOperatorPending('d')
//
// Mode codes match Vim's mode() builtin: "n", "i", "R", "v", "V",
// CTRL-V, "no", and so on, with "niI" and "vs" reported while CTRL-O
// is active.
package mode
