// Package grid renders rectangular tables of text into lines forming a
// box-drawing grid. Column widths and row heights are inferred from the
// content: each column is as wide as its widest cell, each row as tall as
// its tallest cell. Cells may contain newlines (including the joined lines
// of a previously rendered grid, which composes recursively) and multi-byte
// characters; widths are counted in Unicode scalar values, not bytes.
//
// The engine has no ANSI awareness. Text wrapped in escape sequences is
// measured like any other text, so styling must be applied to rendered
// lines, not to cell content, unless the caller accounts for the extra
// width.
package grid

import (
	"fmt"
	"strings"

	"github.com/codalotl/gridfmt/internal/q/uni"
)

// Render turns rows into printable grid lines. Every row must have the same
// number of cells (and at least one); ragged input is an error. An empty
// table renders as the minimal empty box.
//
// Render is a pure function: it never retains or mutates its input, and
// rendering the same table twice is byte-identical.
func Render(rows [][]string) ([]string, error) {
	if len(rows) == 0 {
		return render(nil, 0), nil
	}

	arity := len(rows[0])
	if arity == 0 {
		return nil, fmt.Errorf("grid: rows must have at least one cell")
	}
	for i, row := range rows {
		if len(row) != arity {
			return nil, fmt.Errorf("grid: row %d has %d cells, want %d", i, len(row), arity)
		}
	}

	return render(rows, arity), nil
}

// render assumes rows is rectangular with the given arity. Adapters call it
// directly: their tables are rectangular by construction.
func render(rows [][]string, arity int) []string {
	if len(rows) == 0 {
		return []string{"┏┓", "┗┛"}
	}

	sizes := GridSizes{
		Widths:  columnWidths(rows, arity),
		Heights: rowHeights(rows),
	}

	lines := sizes.Lines()

	for y, row := range rows {
		for x, cell := range row {
			insertCell(lines, sizes, cell, x, y)
		}
	}

	return lines
}

// cellWidth is the widest line of s, in runes.
func cellWidth(s string) int {
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		if w := uni.Runes(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// cellHeight is the number of lines in s. An empty cell still occupies one.
func cellHeight(s string) int {
	return strings.Count(s, "\n") + 1
}

func columnWidths(rows [][]string, arity int) []int {
	widths := make([]int, arity)
	for x := 0; x < arity; x++ {
		maxWidth := 0
		for _, row := range rows {
			if w := cellWidth(row[x]) + 2; w > maxWidth {
				maxWidth = w
			}
		}
		widths[x] = maxWidth
	}
	return widths
}

func rowHeights(rows [][]string) []int {
	heights := make([]int, len(rows))
	for y, row := range rows {
		maxHeight := 0
		for _, cell := range row {
			if h := cellHeight(cell) + 2; h > maxHeight {
				maxHeight = h
			}
		}
		heights[y] = maxHeight
	}
	return heights
}

// insertCell overwrites the skeleton interior of cell (x, y) with text,
// line by line. Each line of text overwrites exactly its own rune width;
// the rest of the cell keeps the skeleton's space padding.
func insertCell(lines []string, sizes GridSizes, text string, x, y int) {
	lineStart := interiorOffset(sizes.Heights, y)
	colStart := interiorOffset(sizes.Widths, x)

	for i, cellLine := range strings.Split(text, "\n") {
		target := lines[lineStart+i]

		// Earlier cells on this line may have inserted multi-byte characters,
		// so the rune offsets must be remapped to byte offsets per line, on
		// the line's current content, just before mutating it.
		start := byteOffset(target, colStart)
		end := byteOffset(target, colStart+uni.Runes(cellLine))

		lines[lineStart+i] = target[:start] + cellLine + target[end:]
	}
}

// interiorOffset returns the line or character index at which cell k's
// interior begins: 1 to skip the top/left border, plus size-1 per earlier
// extent (adjacent rectangles share one border unit).
func interiorOffset(sizes []int, k int) int {
	offset := 1
	for i, size := range sizes {
		if i == k {
			return offset
		}
		offset += size - 1
	}
	panic(fmt.Sprintf("grid: coordinate %d is outside the computed grid", k))
}

// byteOffset maps a rune index within line to a byte index. The index must
// fall on an existing rune: skeleton lines always end with a border glyph
// after the interior, so an index at or past the end of the line means the
// insertion arithmetic is broken. Fail loudly rather than silently
// truncating output.
func byteOffset(line string, runeIdx int) int {
	n := 0
	for i := range line {
		if n == runeIdx {
			return i
		}
		n++
	}
	panic(fmt.Sprintf("grid: rune index %d is outside a line of %d runes", runeIdx, n))
}
