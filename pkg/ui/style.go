// Package ui contains types for how text is displayed on the terminal.
package ui

import (
	"strconv"
	"strings"
)

// Color represents a terminal color.
type Color interface {
	fgSGR() string
}

type ansiColor uint8

func (c ansiColor) fgSGR() string { return strconv.Itoa(30 + int(c)) }

// The eight basic ANSI colors.
var (
	Black   Color = ansiColor(0)
	Red     Color = ansiColor(1)
	Green   Color = ansiColor(2)
	Yellow  Color = ansiColor(3)
	Blue    Color = ansiColor(4)
	Magenta Color = ansiColor(5)
	Cyan    Color = ansiColor(6)
	White   Color = ansiColor(7)
)

// Style specifies how text shall be displayed. The zero value uses the
// terminal's default rendition.
type Style struct {
	Foreground Color
	Bold       bool
}

// SGR returns the SGR sequence for the style, without the CSI prefix and the
// final "m". It returns an empty string for the zero Style.
func (s Style) SGR() string {
	var sgr []string
	if s.Bold {
		sgr = append(sgr, "1")
	}
	if s.Foreground != nil {
		sgr = append(sgr, s.Foreground.fgSGR())
	}
	return strings.Join(sgr, ";")
}
