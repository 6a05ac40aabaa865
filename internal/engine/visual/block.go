package visual

import (
	"github.com/rivo/uniseg"
)

// Block is a normalized blockwise rectangle: an inclusive 1-based line
// span crossed with an inclusive virtual-column span.
type Block struct {
	StartLine int
	EndLine   int
	StartVcol int
	EndVcol   int
}

// Height returns the number of lines in the block.
func (b Block) Height() int {
	return b.EndLine - b.StartLine + 1
}

// Width returns the number of cells spanned by the block.
func (b Block) Width() int {
	if b.EndVcol >= b.StartVcol {
		return b.EndVcol - b.StartVcol + 1
	}
	return b.StartVcol - b.EndVcol + 1
}

// ContainsCell reports whether a (line, virtual column) cell lies in
// the rectangle.
func (b Block) ContainsCell(line, vcol int) bool {
	return line >= b.StartLine && line <= b.EndLine &&
		vcol >= b.StartVcol && vcol <= b.EndVcol
}

// byteSpan maps the inclusive virtual-column span [startVcol, endVcol]
// onto a [startCol, endCol) byte range in line. A character partially
// covered by the span is included whole. Returns ok=false when the
// line ends before startVcol and so contributes nothing.
func byteSpan(line string, startVcol, endVcol, tabWidth int) (startCol, endCol int, ok bool) {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	vcol := 0
	offset := 0
	startCol = -1
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		w := gWidth(g, vcol, tabWidth)
		next := vcol + w
		// The character occupies cells [vcol, next).
		if next > startVcol && startCol < 0 {
			startCol = offset
		}
		if vcol > endVcol {
			return startCol, offset, startCol >= 0
		}
		vcol = next
		offset += len(g.Str())
	}
	if startCol < 0 {
		return 0, 0, false
	}
	return startCol, len(line), true
}

// vcolAfter returns the byte offset of the first character whose
// starting cell is at or past vcol, or the line length if none is.
func vcolAfter(line string, vcol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	cur := 0
	offset := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		if cur >= vcol {
			return offset
		}
		cur += gWidth(g, cur, tabWidth)
		offset += len(g.Str())
	}
	return len(line)
}

func gWidth(g *uniseg.Graphemes, vcol, tabWidth int) int {
	if g.Str() == "\t" {
		return tabWidth - vcol%tabWidth
	}
	w := g.Width()
	if w < 1 {
		w = 1
	}
	return w
}
