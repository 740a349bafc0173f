package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// fallbackWidth is used when stdout is not a terminal.
const fallbackWidth = 80

// terminalWidth returns the width of the terminal on stdout.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// autoPerRow returns how many cells of cellWidth fit in width.
func autoPerRow(width, cellWidth int) int {
	return max(1, (width-2)/(cellWidth+1))
}
