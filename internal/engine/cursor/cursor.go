package cursor

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/vigor/internal/engine/buffer"
)

// Cursor tracks a position within a buffer, the remembered column for
// vertical movement, and the context rules that constrain placement.
//
// A Cursor is not safe for concurrent use; the surrounding editor
// serializes input. Register it as a shift listener on its buffer to
// keep it valid across edits made by other collaborators.
type Cursor struct {
	buf      *buffer.Buffer
	pos      Position
	want     Want
	ctx      Context
	tabWidth int
}

// Option is a functional option for configuring a Cursor.
type Option func(*Cursor)

// WithTabWidth sets the tab stop width used for virtual column math.
func WithTabWidth(width int) Option {
	return func(c *Cursor) {
		if width > 0 {
			c.tabWidth = width
		}
	}
}

// WithContext sets the initial placement context.
func WithContext(ctx Context) Option {
	return func(c *Cursor) {
		c.ctx = ctx
	}
}

// New creates a cursor at the origin of the given buffer.
func New(buf *buffer.Buffer, opts ...Option) *Cursor {
	c := &Cursor{
		buf:      buf,
		pos:      Origin,
		tabWidth: 8,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Position returns the current position.
func (c *Cursor) Position() Position {
	return c.pos
}

// Line returns the 1-based line number.
func (c *Cursor) Line() int {
	return c.pos.Line
}

// Col returns the 0-based byte column.
func (c *Cursor) Col() int {
	return c.pos.Col
}

// ColAdd returns the virtual column addition.
func (c *Cursor) ColAdd() int {
	return c.pos.ColAdd
}

// Curswant returns the remembered column for vertical movement.
func (c *Cursor) Curswant() Want {
	return c.want
}

// SetCurswant sets the remembered column.
func (c *Cursor) SetCurswant(want Want) {
	c.want = want
}

// UpdateCurswant remembers the current column. Horizontal motions call
// this after moving.
func (c *Cursor) UpdateCurswant() {
	c.want = WantColumn(c.pos.Col)
}

// SetCurswantEOL remembers end of line, as the $ motion does.
func (c *Cursor) SetCurswantEOL() {
	c.want = WantEOL()
}

// Context returns the active placement context.
func (c *Cursor) Context() Context {
	return c.ctx
}

// SetContext changes the placement context and revalidates the
// position under the new rules. Leaving insert mode this way pulls a
// cursor resting past end of line back onto the last character.
func (c *Cursor) SetContext(ctx Context) {
	c.ctx = ctx
	c.CheckCursor()
}

// SetPosition moves the cursor, clamping to what the context allows.
// Setting a position never fails; out-of-range targets are pulled to
// the nearest legal cell.
func (c *Cursor) SetPosition(pos Position) {
	c.pos = c.clamp(pos)
}

// SetLine moves to the given line, preserving the column when the new
// line is long enough.
func (c *Cursor) SetLine(line int) {
	c.SetPosition(Position{Line: line, Col: c.pos.Col, ColAdd: c.pos.ColAdd})
}

// SetCol moves to the given column on the current line.
func (c *Cursor) SetCol(col int) {
	c.SetPosition(Position{Line: c.pos.Line, Col: col})
}

// CheckCursor clamps the position to the current buffer content.
// Called after any change that can invalidate the cursor; applying it
// twice is the same as applying it once.
func (c *Cursor) CheckCursor() {
	c.pos = c.clamp(c.pos)
}

// CheckCursorLnum clamps only the line number.
func (c *Cursor) CheckCursorLnum() {
	maxLine := c.maxLine()
	if c.pos.Line < MinLine {
		c.pos.Line = MinLine
	}
	if c.pos.Line > maxLine {
		c.pos.Line = maxLine
	}
}

// CheckCursorCol clamps only the column against the current line.
func (c *Cursor) CheckCursorCol() {
	p := c.clamp(c.pos)
	c.pos.Col = p.Col
	c.pos.ColAdd = p.ColAdd
}

// Save returns the current position for later restoration.
func (c *Cursor) Save() Position {
	return c.pos
}

// Restore moves back to a previously saved position, clamping it to
// the current buffer content.
func (c *Cursor) Restore(pos Position) {
	c.SetPosition(pos)
}

// MoveToBOL moves to column 0.
func (c *Cursor) MoveToBOL() {
	c.SetCol(0)
	c.UpdateCurswant()
}

// MoveToFirstNonBlank moves to the first non-whitespace character on
// the current line, or column 0 if the line is blank.
func (c *Cursor) MoveToFirstNonBlank() {
	line := c.currentLine()
	col := 0
	for i, r := range line {
		if !unicode.IsSpace(r) {
			col = i
			break
		}
	}
	c.SetCol(col)
	c.UpdateCurswant()
}

// MoveToEOL moves to the end of the current line: the last character
// in normal-like modes, one past it when the context allows. The
// wanted column becomes end of line so vertical movement sticks to
// line ends.
func (c *Cursor) MoveToEOL() {
	lineLen := len(c.currentLine())
	col := lineLen
	if !c.ctx.pastEOL() && lineLen > 0 {
		col = lineLen - 1
	}
	c.SetCol(col)
	c.SetCurswantEOL()
}

// AdjustForChange repositions the cursor after bytes were deleted and
// added at a point on a single line. Changes on other lines, or
// entirely after the cursor, leave it untouched. A cursor inside the
// deleted span moves to the end of the inserted text; a cursor after
// the span shifts by the net byte delta.
func (c *Cursor) AdjustForChange(changeLine, changeCol, deleted, added int) {
	if changeLine != c.pos.Line || changeCol > c.pos.Col {
		c.CheckCursor()
		return
	}
	if c.pos.Col < changeCol+deleted {
		c.pos.Col = changeCol + added
	} else {
		c.pos.Col += added - deleted
	}
	c.CheckCursor()
}

// Adjust implements buffer.ShiftListener. Line numbers follow the
// shift law; a same-line byte edit at or before the cursor column
// moves the column by the byte delta.
func (c *Cursor) Adjust(s buffer.Shift) {
	if s.LineDelta != 0 {
		c.pos.Line = buffer.ShiftLine(c.pos.Line, s.AtLine, s.LineDelta)
	} else if c.pos.Line == s.AtLine && c.pos.Col >= s.AtCol {
		col := c.pos.Col + s.ByteDelta
		if col < s.AtCol {
			col = s.AtCol
		}
		c.pos.Col = col
	}
	c.CheckCursor()
}

// Virtcol returns the 0-based virtual (display) column of the cursor,
// including any virtualedit offset.
func (c *Cursor) Virtcol() int {
	return Virtcol(c.currentLine(), c.pos.Col, c.tabWidth) + c.pos.ColAdd
}

// VirtcolAt returns the virtual column of an arbitrary position.
func (c *Cursor) VirtcolAt(pos Position) int {
	line, _ := c.buf.GetLine(pos.Line - 1)
	return Virtcol(line, pos.Col, c.tabWidth) + pos.ColAdd
}

// VirtcolToCol converts a virtual column on the given line back to a
// byte column.
func (c *Cursor) VirtcolToCol(lineNr, vcol int) int {
	line, _ := c.buf.GetLine(lineNr - 1)
	return VirtcolToCol(line, vcol, c.tabWidth)
}

// TabWidth returns the tab stop width used for virtual column math.
func (c *Cursor) TabWidth() int {
	return c.tabWidth
}

// clamp applies the placement rules: line into [1, lineCount], column
// onto a character boundary within what the context allows, virtual
// offset only when virtualedit permits arbitrary placement.
func (c *Cursor) clamp(pos Position) Position {
	maxLine := c.maxLine()
	if pos.Line < MinLine {
		pos.Line = MinLine
	}
	if pos.Line > maxLine {
		pos.Line = maxLine
	}

	line, _ := c.buf.GetLine(pos.Line - 1)
	maxCol := len(line)
	if !c.ctx.pastEOL() && maxCol > 0 {
		maxCol--
	}
	if pos.Col < MinCol {
		pos.Col = MinCol
	}
	if pos.Col > maxCol {
		pos.Col = maxCol
	}
	pos.Col = snapToCharStart(line, pos.Col)

	if !c.ctx.VirtualEdit.AllowsAnywhere() {
		pos.ColAdd = 0
	}
	return pos
}

func (c *Cursor) maxLine() int {
	count := c.buf.LineCount()
	if count < 1 {
		count = 1
	}
	return count
}

func (c *Cursor) currentLine() string {
	line, _ := c.buf.GetLine(c.pos.Line - 1)
	return line
}

// snapToCharStart moves col back to the start of the character it
// lands in. The cursor never rests in the middle of a multibyte
// sequence.
func snapToCharStart(line string, col int) int {
	for col > 0 && col < len(line) && !utf8.RuneStart(line[col]) {
		col--
	}
	return col
}
