package cursor

// Line and column limits. MaxCol doubles as the "end of line" sentinel
// stored in the wanted column after a $ motion.
const (
	MinLine = 1
	MaxLine = 0x7fffffff
	MinCol  = 0
	MaxCol  = 0x7fffffff
)

// Position is a cursor position in a buffer.
//
//   - Line is 1-based
//   - Col is a 0-based byte offset into the line
//   - ColAdd is the extra virtual-column offset used when virtualedit
//     places the cursor where no character exists
type Position struct {
	Line   int
	Col    int
	ColAdd int
}

// Origin is line 1, column 0.
var Origin = Position{Line: 1, Col: 0}

// NewPosition creates a position with no virtual offset.
func NewPosition(line, col int) Position {
	return Position{Line: line, Col: col}
}

// Before reports whether p comes before other in buffer order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

// Want is the desired column for vertical movement. Horizontal motions
// update it; vertical motions preserve it and try to return to it.
type Want struct {
	col int
	eol bool
}

// WantColumn remembers a specific column.
func WantColumn(col int) Want {
	return Want{col: col}
}

// WantEOL remembers "end of line", set by the $ motion. Vertical
// movement then lands on the end of every line regardless of length.
func WantEOL() Want {
	return Want{eol: true}
}

// Value returns the wanted column, MaxCol for end of line.
func (w Want) Value() int {
	if w.eol {
		return MaxCol
	}
	return w.col
}

// IsEOL reports whether the want tracks end of line.
func (w Want) IsEOL() bool {
	return w.eol
}

// VirtualEdit controls where the cursor may be placed beyond actual
// text, mirroring the 'virtualedit' option.
type VirtualEdit int

const (
	// VirtualEditNone disables virtual positioning.
	VirtualEditNone VirtualEdit = iota
	// VirtualEditBlock allows virtual positioning in blockwise visual mode.
	VirtualEditBlock
	// VirtualEditInsert allows virtual positioning in insert mode.
	VirtualEditInsert
	// VirtualEditOneMore allows the cursor one cell past end of line.
	VirtualEditOneMore
	// VirtualEditAll allows the cursor anywhere.
	VirtualEditAll
)

// AllowsPastEOL reports whether the setting lets the cursor sit just
// past the last character.
func (v VirtualEdit) AllowsPastEOL() bool {
	return v == VirtualEditOneMore || v == VirtualEditAll
}

// AllowsAnywhere reports whether the setting lets the cursor occupy
// arbitrary virtual columns.
func (v VirtualEdit) AllowsAnywhere() bool {
	return v == VirtualEditAll
}

// String returns the 'virtualedit' option value.
func (v VirtualEdit) String() string {
	switch v {
	case VirtualEditBlock:
		return "block"
	case VirtualEditInsert:
		return "insert"
	case VirtualEditOneMore:
		return "onemore"
	case VirtualEditAll:
		return "all"
	default:
		return ""
	}
}

// Context carries the mode-dependent rules that govern where the
// cursor may rest. The mode machine derives one of these; the cursor
// only consumes it.
type Context struct {
	// AllowPastEOL is true in insert-like modes, where the cursor may
	// sit one past the last character for appending.
	AllowPastEOL bool

	// VirtualEdit is the active 'virtualedit' setting.
	VirtualEdit VirtualEdit

	// VisualSelection is true in visual mode when 'selection' is not
	// "old", which also permits the cursor one past end of line.
	VisualSelection bool
}

// pastEOL reports whether the context permits col == len(line).
func (c Context) pastEOL() bool {
	return c.AllowPastEOL || c.VirtualEdit.AllowsPastEOL() || c.VisualSelection
}
