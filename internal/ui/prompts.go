package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm writes question to out and reads a yes/no answer from in. When
// interactive is false it returns defaultYes without reading. Empty,
// unreadable or unrecognised answers also yield defaultYes.
func Confirm(in io.Reader, out io.Writer, question string, defaultYes, interactive bool) bool {
	prompt := fmt.Sprintf("%s [y/N] ", question)
	if defaultYes {
		prompt = fmt.Sprintf("%s [Y/n] ", question)
	}

	if !interactive {
		fmt.Fprintf(out, "%s(non-interactive, defaulting to %t)\n", prompt, defaultYes)
		return defaultYes
	}

	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintf(out, "(no answer, defaulting to %t)\n", defaultYes)
		return defaultYes
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return defaultYes
	}
}
