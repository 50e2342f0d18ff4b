package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how a view is rendered.
type OutputMode int

const (
	// OutputModePlain is unstyled tab-aligned text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is a one-shot Lip Gloss table.
	OutputModeStyled
	// OutputModeInteractive is the Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the richest mode the terminal supports.
// plain and noColor force plain text; forceColor allows styled output
// when stdout is not a terminal.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(os.Getenv, IsTTY(), forceColor, noColor, plain)
}

func detectOutputMode(getenv func(string) string, tty, forceColor, noColor, plain bool) OutputMode {
	if plain || noColor || getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if !tty {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}
	if getenv("CI") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the stdout width, or defaultWidth when unknown.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
