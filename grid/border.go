package grid

type border struct {
	horizontal rune
	vertical   rune

	topLeft     rune
	topRight    rune
	bottomLeft  rune
	bottomRight rune

	topJoin    rune // joins the top border to a column boundary
	bottomJoin rune // joins the bottom border to a column boundary
	leftJoin   rune // joins the left border to a row separator
	rightJoin  rune // joins the right border to a row separator
	cross      rune // interior crossing of a row separator and column boundary
}

var thickBorder = border{
	horizontal:  '━',
	vertical:    '┃',
	topLeft:     '┏',
	topRight:    '┓',
	bottomLeft:  '┗',
	bottomRight: '┛',
	topJoin:     '┳',
	bottomJoin:  '┻',
	leftJoin:    '┣',
	rightJoin:   '┫',
	cross:       '╋',
}
