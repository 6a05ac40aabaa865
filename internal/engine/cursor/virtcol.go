package cursor

import "github.com/rivo/uniseg"

// Virtcol returns the 0-based virtual column of the byte offset col in
// line. Tabs expand to the next multiple of tabWidth; other characters
// contribute their grapheme cluster display width, so wide CJK
// characters count two cells and combining sequences count one.
func Virtcol(line string, col int, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	vcol := 0
	offset := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		if offset >= col {
			break
		}
		vcol += cellWidth(g, vcol, tabWidth)
		offset += len(g.Str())
	}
	return vcol
}

// VirtcolToCol converts a virtual column back to the byte offset of
// the character occupying that cell. A virtual column past the end of
// the line maps to the line length.
func VirtcolToCol(line string, vcol int, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	cur := 0
	offset := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		w := cellWidth(g, cur, tabWidth)
		if vcol < cur+w {
			return offset
		}
		cur += w
		offset += len(g.Str())
	}
	return len(line)
}

// DisplayWidth returns the total display width of a line.
func DisplayWidth(line string, tabWidth int) int {
	return Virtcol(line, len(line), tabWidth)
}

func cellWidth(g *uniseg.Graphemes, vcol, tabWidth int) int {
	if g.Str() == "\t" {
		return tabWidth - vcol%tabWidth
	}
	w := g.Width()
	if w < 1 {
		w = 1
	}
	return w
}
