package buffer

import "strings"

// Handle identifies a buffer (the buffer number in the editor UI).
// Handles are allocated by the buffer manager and never reused.
type Handle int

// Current is the special handle meaning "the current buffer".
// It is resolved by the buffer manager, never stored on a Buffer.
const Current Handle = 0

// LoadState describes whether a buffer's content is in memory.
type LoadState uint8

const (
	// Loaded means content is in memory and readable.
	Loaded LoadState = iota
	// Unloaded means the buffer exists but its content has been
	// released. Reads return empty results without error.
	Unloaded
	// Wiped means the buffer has been completely removed and is no
	// longer valid.
	Wiped
)

// String returns the load state name.
func (s LoadState) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Unloaded:
		return "unloaded"
	case Wiped:
		return "wiped"
	default:
		return "unknown"
	}
}

// Type is the buffer type, as set by the 'buftype' option.
type Type uint8

const (
	// TypeNormal is a regular buffer backed by a file.
	TypeNormal Type = iota
	// TypeNofile is a buffer without a file, abandoned when hidden.
	TypeNofile
	// TypeScratch is a throwaway buffer (nofile and never modified).
	TypeScratch
	// TypeQuickfix backs the quickfix window.
	TypeQuickfix
	// TypeHelp backs a help window.
	TypeHelp
	// TypeTerminal backs a terminal emulator window.
	TypeTerminal
	// TypePrompt backs a command-line window.
	TypePrompt
	// TypePopup backs a popup window.
	TypePopup
	// TypeAcwrite triggers autocommands on write.
	TypeAcwrite
)

// String returns the 'buftype' option value for this type.
func (t Type) String() string {
	switch t {
	case TypeNormal:
		return ""
	case TypeNofile:
		return "nofile"
	case TypeScratch:
		return "scratch"
	case TypeQuickfix:
		return "quickfix"
	case TypeHelp:
		return "help"
	case TypeTerminal:
		return "terminal"
	case TypePrompt:
		return "prompt"
	case TypePopup:
		return "popup"
	case TypeAcwrite:
		return "acwrite"
	default:
		return ""
	}
}

// Hidden describes what happens when a buffer becomes hidden,
// as set by the 'bufhidden' option.
type Hidden uint8

const (
	// HiddenUseGlobal defers to the global 'hidden' setting.
	HiddenUseGlobal Hidden = iota
	// HiddenHide keeps the buffer loaded but hidden.
	HiddenHide
	// HiddenUnload unloads the buffer when hidden.
	HiddenUnload
	// HiddenDelete deletes the buffer when hidden.
	HiddenDelete
	// HiddenWipe wipes the buffer when hidden.
	HiddenWipe
)

// String returns the 'bufhidden' option value.
func (h Hidden) String() string {
	switch h {
	case HiddenUseGlobal:
		return ""
	case HiddenHide:
		return "hide"
	case HiddenUnload:
		return "unload"
	case HiddenDelete:
		return "delete"
	case HiddenWipe:
		return "wipe"
	default:
		return ""
	}
}

// Info is a point-in-time snapshot of a buffer's state.
type Info struct {
	Handle    Handle
	ID        string
	Name      string
	LineCount int
	Modified  bool
	Modifiable bool
	ReadOnly  bool
	Type      Type
	Hidden    Hidden
	LoadState LoadState
	Listed    bool
	ChangedTick uint64
}

// splitLines normalizes replacement lines: embedded line terminators
// split a line into several. CRLF and lone CR are treated as LF.
func splitLines(lines []string) []string {
	needSplit := false
	for _, l := range lines {
		if strings.ContainsAny(l, "\r\n") {
			needSplit = true
			break
		}
	}
	if !needSplit {
		return lines
	}

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.ReplaceAll(l, "\r\n", "\n")
		l = strings.ReplaceAll(l, "\r", "\n")
		out = append(out, strings.Split(l, "\n")...)
	}
	return out
}
