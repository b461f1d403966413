package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI picks the renderer for the docfold commands. Terminals get the
// styled TUI with its pager; redirected output gets plain tablewriter text
// so build summaries stay greppable in CI logs.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a character device.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
