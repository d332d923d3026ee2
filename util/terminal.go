package util

import (
	"golang.org/x/term"
)

// Terminal abstracts the terminal queries needed for help layout so they
// can be mocked in tests.
type Terminal interface {
	IsTerminal(fd int) bool
	Size(fd int) (width, height int, err error)
}

type systemTerminal struct{}

func (systemTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (systemTerminal) Size(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// DefaultTerminal queries the real terminal via golang.org/x/term.
var DefaultTerminal Terminal = systemTerminal{}

// TerminalWidth reports the column count of fd when it is attached to a
// terminal. ok is false for pipes, regular files and failed queries.
func TerminalWidth(fd int, t Terminal) (width int, ok bool) {
	if !t.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := t.Size(fd)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}
