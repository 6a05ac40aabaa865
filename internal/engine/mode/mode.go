package mode

// Kind identifies the major editor mode.
type Kind int

const (
	// KindNormal is the default command mode.
	KindNormal Kind = iota
	// KindInsert inserts text before the cursor.
	KindInsert
	// KindReplace overwrites text under the cursor.
	KindReplace
	// KindVisual selects text for an operator.
	KindVisual
	// KindSelect is visual mode where typing replaces the selection.
	KindSelect
	// KindOperatorPending awaits the motion that completes an operator.
	KindOperatorPending
	// KindCommandLine edits an ex command, search pattern, or filter.
	KindCommandLine
	// KindTerminal hosts an embedded terminal.
	KindTerminal
)

// VisualKind is the shape of a visual or select region.
type VisualKind int

const (
	// VisualChar selects an inclusive character span.
	VisualChar VisualKind = iota
	// VisualLine selects whole lines.
	VisualLine
	// VisualBlock selects a rectangle of virtual columns.
	VisualBlock
)

// CmdlineKind is the command-line sub-mode.
type CmdlineKind int

const (
	// CmdlineNormal navigates the command line without inserting.
	CmdlineNormal CmdlineKind = iota
	// CmdlineInsert is the usual typing state.
	CmdlineInsert
	// CmdlineReplace overwrites command-line text.
	CmdlineReplace
)

// TerminalKind is the terminal sub-mode.
type TerminalKind int

const (
	// TerminalInsert forwards keys to the terminal job.
	TerminalInsert TerminalKind = iota
	// TerminalNormal navigates the terminal buffer like normal mode.
	TerminalNormal
)

// Mode is one editor mode together with its sub-mode. It is a
// comparable value: two Modes are the same state exactly when their
// fields are equal. Sub-mode fields are meaningful only for the kinds
// that carry them and are zero otherwise.
type Mode struct {
	kind     Kind
	visual   VisualKind
	cmdline  CmdlineKind
	terminal TerminalKind
}

// Normal returns normal mode, the initial state.
func Normal() Mode { return Mode{kind: KindNormal} }

// Insert returns insert mode.
func Insert() Mode { return Mode{kind: KindInsert} }

// Replace returns replace mode.
func Replace() Mode { return Mode{kind: KindReplace} }

// Visual returns visual mode with the given region shape.
func Visual(k VisualKind) Mode { return Mode{kind: KindVisual, visual: k} }

// Select returns select mode with the given region shape.
func Select(k VisualKind) Mode { return Mode{kind: KindSelect, visual: k} }

// OperatorPending returns operator-pending mode.
func OperatorPending() Mode { return Mode{kind: KindOperatorPending} }

// CommandLine returns command-line mode with the given sub-mode.
func CommandLine(k CmdlineKind) Mode { return Mode{kind: KindCommandLine, cmdline: k} }

// Terminal returns terminal mode with the given sub-mode.
func Terminal(k TerminalKind) Mode { return Mode{kind: KindTerminal, terminal: k} }

// Kind returns the major mode.
func (m Mode) Kind() Kind { return m.kind }

// VisualKind returns the region shape for visual and select modes.
func (m Mode) VisualKind() VisualKind { return m.visual }

// CmdlineKind returns the command-line sub-mode.
func (m Mode) CmdlineKind() CmdlineKind { return m.cmdline }

// TerminalKind returns the terminal sub-mode.
func (m Mode) TerminalKind() TerminalKind { return m.terminal }

// Code returns the short mode code as reported by mode() in Vim:
// "n", "i", "R", "v", "V", CTRL-V, "s", "S", CTRL-S, "c", "no", "t",
// "nt".
func (m Mode) Code() string {
	switch m.kind {
	case KindInsert:
		return "i"
	case KindReplace:
		return "R"
	case KindVisual:
		switch m.visual {
		case VisualLine:
			return "V"
		case VisualBlock:
			return "\x16"
		default:
			return "v"
		}
	case KindSelect:
		switch m.visual {
		case VisualLine:
			return "S"
		case VisualBlock:
			return "\x13"
		default:
			return "s"
		}
	case KindOperatorPending:
		return "no"
	case KindCommandLine:
		return "c"
	case KindTerminal:
		if m.terminal == TerminalNormal {
			return "nt"
		}
		return "t"
	default:
		return "n"
	}
}

// DisplayName returns the status-line indicator, empty for modes that
// show none.
func (m Mode) DisplayName() string {
	switch m.kind {
	case KindInsert:
		return "-- INSERT --"
	case KindReplace:
		return "-- REPLACE --"
	case KindVisual:
		switch m.visual {
		case VisualLine:
			return "-- VISUAL LINE --"
		case VisualBlock:
			return "-- VISUAL BLOCK --"
		default:
			return "-- VISUAL --"
		}
	case KindSelect:
		switch m.visual {
		case VisualLine:
			return "-- SELECT LINE --"
		case VisualBlock:
			return "-- SELECT BLOCK --"
		default:
			return "-- SELECT --"
		}
	case KindTerminal:
		if m.terminal == TerminalInsert {
			return "-- TERMINAL --"
		}
		return ""
	default:
		return ""
	}
}

// UIName returns the mode name used for cursor styling.
func (m Mode) UIName() string {
	switch m.kind {
	case KindInsert:
		return "insert"
	case KindReplace:
		return "replace"
	case KindVisual:
		return "visual"
	case KindSelect:
		return "visual_select"
	case KindOperatorPending:
		return "operator"
	case KindCommandLine:
		switch m.cmdline {
		case CmdlineInsert:
			return "cmdline_insert"
		case CmdlineReplace:
			return "cmdline_replace"
		default:
			return "cmdline_normal"
		}
	case KindTerminal:
		return "terminal"
	default:
		return "normal"
	}
}

// IsVisual reports whether m is a visual or select mode.
func (m Mode) IsVisual() bool {
	return m.kind == KindVisual || m.kind == KindSelect
}

// AllowsInsertion reports whether typed text is inserted in this mode.
func (m Mode) AllowsInsertion() bool {
	return m.kind == KindInsert || m.kind == KindReplace ||
		(m.kind == KindTerminal && m.terminal == TerminalInsert)
}

// AllowsCursorPastEOL reports whether the cursor may rest one past the
// last character of the line.
func (m Mode) AllowsCursorPastEOL() bool {
	return m.kind == KindInsert || m.kind == KindReplace
}

// String returns the UI mode name.
func (m Mode) String() string {
	return m.UIName()
}
