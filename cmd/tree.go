package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/docfold/internal/domain"
	m "github.com/mouse-blink/docfold/internal/model"
)

// treeCmd represents the tree command.
var treeCmd = newTreeCmd()

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Display a previously written documentation tree",
		Long:  "Display a documentation tree written by docfold --output. The format follows the file extension.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Tree(domain.TreeArgs{Input: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
