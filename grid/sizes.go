package grid

import (
	"fmt"
	"strings"
)

// GridSizes holds the total extents of the rectangles forming a grid. Each
// width is the full horizontal extent of a column in characters, including
// the column's share of the left and right borders; each height is the full
// vertical extent of a row in lines, including the top and bottom borders.
// The usable interior of a column or row is therefore its extent minus 2.
//
// Every element must be at least 2. Adjacent rectangles share one border
// unit, so a grid with widths [3, 4, 2] renders 3+4+2-2 = 7 characters per
// line.
type GridSizes struct {
	Widths  []int
	Heights []int
}

// Lines renders the border skeleton of the grid: the top border, a band of
// blank interior lines per row, a separator between consecutive rows, and
// the bottom border. Cell content is not part of the skeleton.
//
// Lines panics if Widths or Heights is empty or contains an element below 2.
func (g GridSizes) Lines() []string {
	g.check()

	lines := []string{g.horizontalEdge(thickBorder.topLeft, thickBorder.topJoin, thickBorder.topRight)}

	separator := g.horizontalEdge(thickBorder.leftJoin, thickBorder.cross, thickBorder.rightJoin)
	blank := g.blankLine()

	for i, height := range g.Heights {
		for j := 0; j < height-2; j++ {
			lines = append(lines, blank)
		}
		if i != len(g.Heights)-1 {
			lines = append(lines, separator)
		}
	}

	lines = append(lines, g.horizontalEdge(thickBorder.bottomLeft, thickBorder.bottomJoin, thickBorder.bottomRight))

	return lines
}

func (g GridSizes) check() {
	if len(g.Widths) == 0 || len(g.Heights) == 0 {
		panic("grid: GridSizes needs at least one column and one row")
	}
	for _, w := range g.Widths {
		if w < 2 {
			panic(fmt.Sprintf("grid: column width %d is below the minimum of 2", w))
		}
	}
	for _, h := range g.Heights {
		if h < 2 {
			panic(fmt.Sprintf("grid: row height %d is below the minimum of 2", h))
		}
	}
}

// horizontalEdge builds the top border, bottom border, or a row separator,
// depending on the glyphs passed in.
func (g GridSizes) horizontalEdge(left, join, right rune) string {
	var b strings.Builder

	b.WriteRune(left)
	for i, width := range g.Widths {
		if i > 0 {
			b.WriteRune(join)
		}
		for j := 0; j < width-2; j++ {
			b.WriteRune(thickBorder.horizontal)
		}
	}
	b.WriteRune(right)

	return b.String()
}

func (g GridSizes) blankLine() string {
	var b strings.Builder

	b.WriteRune(thickBorder.vertical)
	for _, width := range g.Widths {
		b.WriteString(strings.Repeat(" ", width-2))
		b.WriteRune(thickBorder.vertical)
	}

	return b.String()
}
