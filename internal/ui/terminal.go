// Package ui provides terminal styling and report rendering for the eab CLI.
package ui

import (
	"os"

	"github.com/spf13/cast"
	"golang.org/x/term"
)

// defaultWidth is used when stdout has no size and COLUMNS is unset.
const defaultWidth = 80

// IsTerminal reports whether stdout is a TTY.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ShouldUseColor follows NO_COLOR, CLICOLOR=0 and CLICOLOR_FORCE, in that
// order of precedence, and otherwise colours only a TTY.
func ShouldUseColor() bool {
	if on, set := colorFromEnv(); set {
		return on
	}
	return IsTerminal()
}

// colorFromEnv returns the colour setting forced by the environment, if any.
func colorFromEnv() (on, set bool) {
	switch {
	case os.Getenv("NO_COLOR") != "":
		return false, true
	case os.Getenv("CLICOLOR") == "0":
		return false, true
	case os.Getenv("CLICOLOR_FORCE") != "":
		return true, true
	}
	return false, false
}

// ShouldUseEmoji is false when EAB_NO_EMOJI is set or stdout is not a TTY,
// so piped output stays plain ASCII.
func ShouldUseEmoji() bool {
	return os.Getenv("EAB_NO_EMOJI") == "" && IsTerminal()
}

// GetWidth returns the stdout terminal width. Off a terminal it falls back to
// a positive COLUMNS value, then to 80 columns.
func GetWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return widthFromEnv()
}

func widthFromEnv() int {
	if w, err := cast.ToIntE(os.Getenv("COLUMNS")); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}
