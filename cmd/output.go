package cmd

import (
	"io"
	"os"

	"github.com/inovacc/gradients/internal/cli"
	"github.com/inovacc/gradients/internal/model"
	"golang.org/x/term"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// swatchFor renders the color preview for g when w is a terminal.
func swatchFor(w io.Writer, g model.Gradient) string {
	if !isTerminal(w) {
		return ""
	}

	return cli.Swatch(g.Colors, 3) + " "
}
