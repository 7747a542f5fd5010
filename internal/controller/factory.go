package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewUI selects the UI implementation for the command's output.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the writer is attached to a terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
