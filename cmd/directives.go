package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/docfold/internal/domain"
)

// directivesCmd represents the directives command.
var directivesCmd = newDirectivesCmd()

func newDirectivesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directives [paths...]",
		Short: "List the doc directives found in package comments",
		Long:  "List every @doc- directive found in package comments, in source order, without building the tree.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Directives(cmd.Context(), domain.DirectivesArgs{LoadArgs: loadArgs(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(directivesCmd)
}
