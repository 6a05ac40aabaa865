package visual

import (
	"unicode/utf8"

	"github.com/dshills/vigor/internal/engine/buffer"
	"github.com/dshills/vigor/internal/engine/cursor"
	"github.com/dshills/vigor/internal/engine/mode"
)

// Selection is a visual region between an anchor and the active cursor
// position. The anchor stays put while the cursor extends the region;
// either end may come first in buffer order.
type Selection struct {
	// Anchor is where the selection started.
	Anchor cursor.Position

	// Active is the moving end, the cursor.
	Active cursor.Position

	// Kind is the region shape.
	Kind mode.VisualKind
}

// New starts a selection of the given shape at a single position.
func New(pos cursor.Position, kind mode.VisualKind) Selection {
	return Selection{Anchor: pos, Active: pos, Kind: kind}
}

// Extend returns the selection with the active end moved.
func (s Selection) Extend(pos cursor.Position) Selection {
	s.Active = pos
	return s
}

// WithKind returns the selection reshaped, as the v/V/CTRL-V toggles
// do.
func (s Selection) WithKind(kind mode.VisualKind) Selection {
	s.Kind = kind
	return s
}

// SwapEnds exchanges anchor and active end, as the o command does.
func (s Selection) SwapEnds() Selection {
	s.Anchor, s.Active = s.Active, s.Anchor
	return s
}

// Normalized returns the two ends in buffer order.
func (s Selection) Normalized() (start, end cursor.Position) {
	if s.Active.Before(s.Anchor) {
		return s.Active, s.Anchor
	}
	return s.Anchor, s.Active
}

// LineRange returns the inclusive 1-based line span.
func (s Selection) LineRange() (first, last int) {
	start, end := s.Normalized()
	return start.Line, end.Line
}

// IsMultiline reports whether the selection spans more than one line.
func (s Selection) IsMultiline() bool {
	return s.Anchor.Line != s.Active.Line
}

// AsLinewise returns the selection widened to whole lines.
func (s Selection) AsLinewise() Selection {
	return Selection{
		Anchor: cursor.NewPosition(s.Anchor.Line, 0),
		Active: cursor.NewPosition(s.Active.Line, 0),
		Kind:   mode.VisualLine,
	}
}

// Contains reports whether a position lies inside the selection.
// Block containment is over virtual columns, so it follows the
// rectangle on screen rather than byte offsets.
func (s Selection) Contains(buf *buffer.Buffer, tabWidth int, pos cursor.Position) bool {
	start, end := s.Normalized()
	switch s.Kind {
	case mode.VisualLine:
		return pos.Line >= start.Line && pos.Line <= end.Line
	case mode.VisualBlock:
		block := s.Block(buf, tabWidth)
		line, _ := buf.GetLine(pos.Line - 1)
		vcol := cursor.Virtcol(line, pos.Col, tabWidth) + pos.ColAdd
		return block.ContainsCell(pos.Line, vcol)
	default:
		if pos.Line < start.Line || pos.Line > end.Line {
			return false
		}
		if pos.Line == start.Line && pos.Col < start.Col {
			return false
		}
		if pos.Line == end.Line && pos.Col > end.Col {
			return false
		}
		return true
	}
}

// Text returns the selected content, one element per line. Character
// selections are inclusive of the character under the active end;
// line selections return whole lines; block selections return the
// rectangle clipped to each line's actual length.
func (s Selection) Text(buf *buffer.Buffer, tabWidth int) []string {
	start, end := s.Normalized()

	switch s.Kind {
	case mode.VisualLine:
		lines, _ := buf.GetLines(start.Line-1, end.Line, false)
		return lines

	case mode.VisualBlock:
		block := s.Block(buf, tabWidth)
		out := make([]string, 0, block.Height())
		for ln := block.StartLine; ln <= block.EndLine; ln++ {
			line, _ := buf.GetLine(ln - 1)
			sc, ec, ok := byteSpan(line, block.StartVcol, block.EndVcol, tabWidth)
			if !ok {
				out = append(out, "")
				continue
			}
			out = append(out, line[sc:ec])
		}
		return out

	default:
		if start.Line == end.Line {
			line, _ := buf.GetLine(start.Line - 1)
			return []string{sliceInclusive(line, start.Col, end.Col)}
		}
		out := make([]string, 0, end.Line-start.Line+1)
		first, _ := buf.GetLine(start.Line - 1)
		if start.Col <= len(first) {
			out = append(out, first[start.Col:])
		} else {
			out = append(out, "")
		}
		for ln := start.Line + 1; ln < end.Line; ln++ {
			line, _ := buf.GetLine(ln - 1)
			out = append(out, line)
		}
		last, _ := buf.GetLine(end.Line - 1)
		out = append(out, sliceInclusive(last, 0, end.Col))
		return out
	}
}

// Block derives the virtual-column rectangle for a blockwise
// selection.
func (s Selection) Block(buf *buffer.Buffer, tabWidth int) Block {
	aLine, _ := buf.GetLine(s.Anchor.Line - 1)
	bLine, _ := buf.GetLine(s.Active.Line - 1)
	v1 := cursor.Virtcol(aLine, s.Anchor.Col, tabWidth) + s.Anchor.ColAdd
	v2 := cursor.Virtcol(bLine, s.Active.Col, tabWidth) + s.Active.ColAdd

	block := Block{
		StartLine: s.Anchor.Line,
		EndLine:   s.Active.Line,
		StartVcol: v1,
		EndVcol:   v2,
	}
	if block.EndLine < block.StartLine {
		block.StartLine, block.EndLine = block.EndLine, block.StartLine
	}
	if block.EndVcol < block.StartVcol {
		block.StartVcol, block.EndVcol = block.EndVcol, block.StartVcol
	}
	return block
}

// sliceInclusive returns line[startCol..endCol] including the whole
// character starting at endCol.
func sliceInclusive(line string, startCol, endCol int) string {
	if startCol > len(line) {
		return ""
	}
	if endCol >= len(line) {
		return line[startCol:]
	}
	_, size := utf8.DecodeRuneInString(line[endCol:])
	stop := endCol + size
	if stop > len(line) {
		stop = len(line)
	}
	if startCol > stop {
		return ""
	}
	return line[startCol:stop]
}
