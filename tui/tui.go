// Package tui holds terminal setup shared by gridnav's interactive commands.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI prepares the terminal environment for the grid.
//
// CLICOLOR_FORCE=1 or COLORTERM=truecolor force a true-color profile so the
// focus marker stays visible when output is captured (tests, CI, recordings).
// NO_COLOR forces plain ASCII. Otherwise lipgloss keeps its detected profile.
func InitializeTUI() {
	lipgloss.SetColorProfile(ColorProfile())
}

// ColorProfile returns the profile InitializeTUI applies.
func ColorProfile() termenv.Profile {
	switch {
	case os.Getenv("NO_COLOR") != "":
		return termenv.Ascii
	case os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor":
		return termenv.TrueColor
	default:
		return lipgloss.ColorProfile()
	}
}
