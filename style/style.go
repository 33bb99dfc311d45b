// Package style wraps strings in ANSI SGR (Select Graphic Rendition) escape
// sequences: bold, faint, italics, underline, strikethrough, blink, and the
// 16 basic foreground/background colors.
//
// Styling is layout-oblivious and must be applied before (or after) text is
// handed to the grid engine; see package grid for the measurement caveats.
package style

import (
	"strconv"
	"strings"
)

// Reset is the SGR sequence that clears all attributes.
const Reset = "\x1b[0m"

// Color is one of the 16 basic SGR colors, holding its foreground code.
// The zero value leaves the color unset.
type Color int

const (
	ColorNone Color = 0

	Black   Color = 30
	Red     Color = 31
	Green   Color = 32
	Yellow  Color = 33
	Blue    Color = 34
	Magenta Color = 35
	Cyan    Color = 36
	White   Color = 37

	Gray          Color = 90
	BrightRed     Color = 91
	BrightGreen   Color = 92
	BrightYellow  Color = 93
	BrightBlue    Color = 94
	BrightMagenta Color = 95
	BrightCyan    Color = 96
	BrightWhite   Color = 97
)

// Blink is an SGR blink speed.
type Blink int

const (
	BlinkNone Blink = iota
	BlinkSlow
	BlinkFast // not widely supported by terminals
)

// Style describes SGR text attributes. The zero value styles nothing:
// Format returns its input unchanged. Attributes are set with the With
// methods, which return a modified copy; the last write per attribute wins,
// independent of call order across attributes.
type Style struct {
	bold          bool
	faint         bool
	italic        bool
	underline     bool
	strikethrough bool

	blink      Blink
	foreground Color
	background Color
}

func (s Style) WithBold(on bool) Style {
	s.bold = on
	return s
}

func (s Style) WithFaint(on bool) Style {
	s.faint = on
	return s
}

func (s Style) WithItalic(on bool) Style {
	s.italic = on
	return s
}

func (s Style) WithUnderline(on bool) Style {
	s.underline = on
	return s
}

func (s Style) WithStrikethrough(on bool) Style {
	s.strikethrough = on
	return s
}

func (s Style) WithBlink(speed Blink) Style {
	s.blink = speed
	return s
}

func (s Style) WithForeground(c Color) Style {
	s.foreground = c
	return s
}

func (s Style) WithBackground(c Color) Style {
	s.background = c
	return s
}

// Format wraps str in the escape prefix for s and a trailing Reset. The
// codes are emitted in a fixed order: bold, faint, italic, underline,
// strikethrough, blink, foreground, background. A zero Style returns str
// unchanged, with no escape sequences at all.
func (s Style) Format(str string) string {
	if s == (Style{}) {
		return str
	}

	codes := make([]string, 0, 8)

	if s.bold {
		codes = append(codes, "1")
	}
	if s.faint {
		codes = append(codes, "2")
	}
	if s.italic {
		codes = append(codes, "3")
	}
	if s.underline {
		codes = append(codes, "4")
	}
	if s.strikethrough {
		codes = append(codes, "9")
	}

	switch s.blink {
	case BlinkSlow:
		codes = append(codes, "5")
	case BlinkFast:
		codes = append(codes, "6")
	}

	if s.foreground != ColorNone {
		codes = append(codes, strconv.Itoa(int(s.foreground)))
	}
	if s.background != ColorNone {
		// Background codes are the foreground codes shifted by 10.
		codes = append(codes, strconv.Itoa(int(s.background)+10))
	}

	return "\x1b[" + strings.Join(codes, ";") + "m" + str + Reset
}

var colorNames = map[string]Color{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"gray":           Gray,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
}

// ParseColor resolves a color name like "red" or "bright-blue". An empty
// name is ColorNone.
func ParseColor(name string) (Color, error) {
	if name == "" {
		return ColorNone, nil
	}
	c, ok := colorNames[strings.ToLower(name)]
	if !ok {
		return ColorNone, &UnknownColorError{Name: name}
	}
	return c, nil
}

// UnknownColorError is returned by ParseColor for unrecognized color names.
type UnknownColorError struct {
	Name string
}

func (e *UnknownColorError) Error() string {
	return "style: unknown color: " + e.Name
}
