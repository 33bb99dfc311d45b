package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDefaultStyle(t *testing.T) {
	assert.Equal(t, "hello!", Style{}.Format("hello!"))
}

func TestFormatForegroundColor(t *testing.T) {
	result := Style{}.WithForeground(Red).Format("hello!")
	assert.Equal(t, "\x1b[31mhello!\x1b[0m", result)
}

func TestFormatMultipleAttributes(t *testing.T) {
	result := Style{}.
		WithForeground(Blue).
		WithBold(true).
		WithStrikethrough(true).
		WithBlink(BlinkSlow).
		Format("hello!")
	assert.Equal(t, "\x1b[1;9;5;34mhello!\x1b[0m", result)
}

func TestFormatLastWriteWins(t *testing.T) {
	result := Style{}.
		WithForeground(Blue).
		WithBold(false).
		WithBold(true).
		WithItalic(true).
		WithStrikethrough(true).
		WithItalic(false).
		WithBlink(BlinkSlow).
		Format("hello!")
	assert.Equal(t, "\x1b[1;9;5;34mhello!\x1b[0m", result)
}

func TestFormatBackgroundColor(t *testing.T) {
	result := Style{}.WithBackground(Gray).Format("x")
	assert.Equal(t, "\x1b[100mx\x1b[0m", result)

	result = Style{}.WithForeground(Green).WithBackground(Black).Format("x")
	assert.Equal(t, "\x1b[32;40mx\x1b[0m", result)
}

func TestFormatAllAttributes(t *testing.T) {
	result := Style{}.
		WithBold(true).
		WithFaint(true).
		WithItalic(true).
		WithUnderline(true).
		WithStrikethrough(true).
		WithBlink(BlinkFast).
		WithForeground(BrightWhite).
		WithBackground(Blue).
		Format("x")
	assert.Equal(t, "\x1b[1;2;3;4;9;6;97;44mx\x1b[0m", result)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("")
	require.NoError(t, err)
	assert.Equal(t, ColorNone, c)

	c, err = ParseColor("red")
	require.NoError(t, err)
	assert.Equal(t, Red, c)

	c, err = ParseColor("Bright-Blue")
	require.NoError(t, err)
	assert.Equal(t, BrightBlue, c)

	_, err = ParseColor("mauve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mauve")
}

func TestVisibleWidthPlain(t *testing.T) {
	assert.Equal(t, 0, VisibleWidth(""))
	assert.Equal(t, 11, VisibleWidth("hello world"))
	assert.Equal(t, 4, VisibleWidth("世界"))
}

func TestVisibleWidthSGR(t *testing.T) {
	styled := Style{}.WithForeground(Red).WithBold(true).Format("hi")
	assert.Equal(t, 2, VisibleWidth(styled))
}

func TestVisibleWidthOSC(t *testing.T) {
	hyperlink := "\x1b]8;;https://example.com\x07link\x1b]8;;\x07"
	assert.Equal(t, 4, VisibleWidth(hyperlink))

	hyperlink = "\x1b]8;;https://example.com\x1b\\label\x1b]8;;\x1b\\"
	assert.Equal(t, 5, VisibleWidth(hyperlink))
}

func TestVisibleWidthBareEscape(t *testing.T) {
	assert.Equal(t, 2, VisibleWidth("ok\x1bc"))
}
