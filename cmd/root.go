package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/gridnav/cli"
)

// NewRootCmd assembles the gridnav command tree.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand(
		"gridnav",
		"Lay out records as a grid and navigate it with the arrow keys",
	)

	root.AddCommand(NewRunCmd())
	root.AddCommand(NewLayoutCmd())
	root.AddCommand(NewMoveCmd())
	root.AddCommand(NewSchemaCmd())
	root.AddCommand(NewConfigCmd())
	root.AddCommand(cli.NewVersionCommand("gridnav"))

	cli.ApplyStyledHelpRecursive(root)
	return root
}
