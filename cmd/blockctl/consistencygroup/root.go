package consistencygroup

import (
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "consistency-group",
		Aliases: []string{"cg"},
		Short:   "Manage consistency groups of volumes.",
	}
	cmd.AddCommand(
		NewCreateCommand(),
		NewDeleteCommand(),
		NewListCommand(),
		NewShowCommand(),
	)
	return cmd
}
