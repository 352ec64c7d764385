// Package ui holds the terminal colours and tables shared by the fusion
// commands
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the lighter palette for dark terminal backgrounds. It is
// set from display.dark_theme once the config is loaded.
var DarkTheme bool

type palette struct {
	light pterm.Color
	dark  pterm.Color
}

var (
	green     = palette{light: pterm.FgGreen, dark: pterm.FgLightGreen}
	magenta   = palette{light: pterm.FgMagenta, dark: pterm.FgLightMagenta}
	blue      = palette{light: pterm.FgBlue, dark: pterm.FgLightBlue}
	red       = palette{light: pterm.FgRed, dark: pterm.FgLightRed}
	highlight = palette{light: pterm.FgBlack, dark: pterm.FgLightWhite}
)

func (p palette) paint(a any) string {
	if DarkTheme {
		return p.dark.Sprint(a)
	}

	return p.light.Sprint(a)
}

// Green marks positive values such as totals and a "Yes" recommendation.
func Green(a any) string {
	return green.paint(a)
}

func Magenta(a any) string {
	return magenta.paint(a)
}

// Blue is used for section headings.
func Blue(a any) string {
	return blue.paint(a)
}

func Red(a any) string {
	return red.paint(a)
}

// Highlight renders field labels.
func Highlight(a any) string {
	return highlight.paint(a)
}
