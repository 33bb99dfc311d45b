package uni

import (
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Runes returns the number of Unicode scalar values in str. This is the
// measure used by the grid layout engine: a cell's column budget is counted
// in codepoints, never bytes.
func Runes(str string) int {
	return utf8.RuneCountInString(str)
}

// TextWidth returns the width of str in terminal cells for monospace fonts.
// East Asian wide characters count as 2 cells. Unlike Runes, this is a
// display measure and must not feed the layout engine.
func TextWidth(str string) int {
	return condition().StringWidth(str)
}

// RuneWidth returns the terminal-cell width of r.
func RuneWidth(r rune) int {
	return condition().RuneWidth(r)
}

// Iterator iterates over grapheme clusters of a string.
type Iterator struct {
	iter graphemes.Iterator[string]
}

// NewGraphemeIterator returns a grapheme-cluster iterator over str.
func NewGraphemeIterator(str string) *Iterator {
	return &Iterator{iter: graphemes.FromString(str)}
}

func (iter *Iterator) Next() bool {
	return iter.iter.Next()
}

func (iter *Iterator) Value() string {
	return iter.iter.Value()
}

// Start returns the byte position of the current cluster in the original string.
func (iter *Iterator) Start() int {
	return iter.iter.Start()
}

// End returns the byte position after the current cluster. Allows slicing the
// original string as [Start(), End()).
func (iter *Iterator) End() int {
	return iter.iter.End()
}

// TextWidth returns the terminal-cell width of the current cluster.
func (iter *Iterator) TextWidth() int {
	return condition().StringWidth(iter.iter.Value())
}

func condition() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return cond
}
