package visual

import (
	"strings"

	"github.com/dshills/vigor/internal/engine/buffer"
	"github.com/dshills/vigor/internal/engine/cursor"
)

// LineEdit is one byte-granular replacement on a single line, derived
// from a block operation. StartCol and EndCol delimit the replaced
// span as [StartCol, EndCol); Text is the replacement, which may hold
// several lines for a multi-line block insert.
type LineEdit struct {
	Line     int
	StartCol int
	EndCol   int
	Text     []string
}

// DeleteEdits derives the per-line edits that remove a block. Lines
// ending before the block's left edge contribute nothing.
func DeleteEdits(buf *buffer.Buffer, block Block, tabWidth int) []LineEdit {
	var edits []LineEdit
	for ln := block.StartLine; ln <= block.EndLine; ln++ {
		line, _ := buf.GetLine(ln - 1)
		sc, ec, ok := byteSpan(line, block.StartVcol, block.EndVcol, tabWidth)
		if !ok {
			continue
		}
		edits = append(edits, LineEdit{Line: ln, StartCol: sc, EndCol: ec})
	}
	return edits
}

// InsertEdits derives the edits for a block insert at the left edge of
// the block (the I command). Text containing a newline applies to the
// anchor line only, so a multi-line insert does not multiply across
// every row of the block. Lines ending before the insert column are
// skipped.
func InsertEdits(buf *buffer.Buffer, block Block, text string, tabWidth int) []LineEdit {
	if parts := splitInsert(text); len(parts) > 1 {
		line, _ := buf.GetLine(block.StartLine - 1)
		col := vcolAfter(line, block.StartVcol, tabWidth)
		return []LineEdit{{Line: block.StartLine, StartCol: col, EndCol: col, Text: parts}}
	}

	var edits []LineEdit
	for ln := block.StartLine; ln <= block.EndLine; ln++ {
		line, _ := buf.GetLine(ln - 1)
		if cursor.DisplayWidth(line, tabWidth) < block.StartVcol {
			continue
		}
		col := vcolAfter(line, block.StartVcol, tabWidth)
		edits = append(edits, LineEdit{Line: ln, StartCol: col, EndCol: col, Text: []string{text}})
	}
	return edits
}

// AppendEdits derives the edits for a block append just past the right
// edge of the block (the A command). Lines shorter than the append
// column are padded with spaces up to it before the text. Multi-line
// text applies to the anchor line only, with no padding consideration
// beyond that line.
func AppendEdits(buf *buffer.Buffer, block Block, text string, tabWidth int) []LineEdit {
	appendVcol := block.EndVcol + 1

	if parts := splitInsert(text); len(parts) > 1 {
		line, _ := buf.GetLine(block.StartLine - 1)
		col, pad := appendPoint(line, appendVcol, tabWidth)
		parts[0] = pad + parts[0]
		return []LineEdit{{Line: block.StartLine, StartCol: col, EndCol: col, Text: parts}}
	}

	var edits []LineEdit
	for ln := block.StartLine; ln <= block.EndLine; ln++ {
		line, _ := buf.GetLine(ln - 1)
		col, pad := appendPoint(line, appendVcol, tabWidth)
		edits = append(edits, LineEdit{
			Line:     ln,
			StartCol: col,
			EndCol:   col,
			Text:     []string{pad + text},
		})
	}
	return edits
}

// Apply commits a set of line edits to the buffer, last line first so
// earlier byte offsets stay valid while later lines change.
func Apply(buf *buffer.Buffer, edits []LineEdit) error {
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		text := e.Text
		if text == nil {
			text = []string{""}
		}
		if err := buf.SetText(e.Line-1, e.StartCol, e.Line-1, e.EndCol, text); err != nil {
			return err
		}
	}
	return nil
}

// appendPoint returns the byte column for appending at vcol on line,
// plus the space padding needed when the line is shorter.
func appendPoint(line string, vcol, tabWidth int) (col int, pad string) {
	width := cursor.DisplayWidth(line, tabWidth)
	if width < vcol {
		return len(line), strings.Repeat(" ", vcol-width)
	}
	return vcolAfter(line, vcol, tabWidth), ""
}

// splitInsert splits inserted text on newlines.
func splitInsert(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
