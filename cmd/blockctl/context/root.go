package context

import (
	"github.com/psviderski/blockctl/internal/cli"
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "context",
		Aliases: []string{"ctx"},
		Short:   "Switch between block storage service contexts. Contains subcommands to manage contexts.",
		RunE: func(cmd *cobra.Command, args []string) error {
			uncli := cmd.Context().Value("cli").(*cli.CLI)
			return selectContext(cmd, uncli)
		},
	}

	cmd.AddCommand(
		NewAddCommand(),
		NewListCommand(),
		NewRemoveCommand(),
		NewUseCommand(),
	)

	return cmd
}
