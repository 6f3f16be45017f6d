package context

import (
	"fmt"

	"github.com/psviderski/blockctl/internal/cli"
	"github.com/spf13/cobra"
)

type removeOptions struct {
	yes bool
}

func NewRemoveCommand() *cobra.Command {
	opts := removeOptions{}
	cmd := &cobra.Command{
		Use:     "rm CONTEXT",
		Aliases: []string{"remove"},
		Short:   "Remove a context from the config.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uncli := cmd.Context().Value("cli").(*cli.CLI)
			name := args[0]

			if !opts.yes && cli.IsStdinTerminal() {
				confirmed, err := cli.Confirm(fmt.Sprintf("Remove context '%s'?", name))
				if err != nil {
					return fmt.Errorf("confirm removal: %w", err)
				}
				if !confirmed {
					return nil
				}
			}

			if err := uncli.RemoveContext(name); err != nil {
				return fmt.Errorf("remove context '%s': %w", name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Context '%s' removed.\n", name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false,
		"Do not prompt for confirmation before removing the context.")
	return cmd
}
