// Package common provides shared utilities for the UI.
package common

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Center places s horizontally in the middle of width columns.
// A zero width (no WindowSizeMsg yet) returns s unchanged.
func Center(width int, s string) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// Plural formats a count with a noun, adding "s" when n != 1.
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
