package consistencygroup

import (
	"context"
	"fmt"

	"github.com/psviderski/blockctl/internal/cli"
	"github.com/psviderski/blockctl/internal/cli/output"
	"github.com/psviderski/blockctl/pkg/api"
	"github.com/psviderski/blockctl/pkg/client"
	"github.com/spf13/cobra"
)

type showOptions struct {
	format string
}

func NewShowCommand() *cobra.Command {
	opts := showOptions{}

	cmd := &cobra.Command{
		Use:     "show GROUP",
		Aliases: []string{"inspect"},
		Short:   "Display the details of a consistency group by name or ID.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uncli := cmd.Context().Value("cli").(*cli.CLI)
			if err := output.ValidateFormat(opts.format); err != nil {
				return err
			}

			c, err := uncli.ConnectVolumeService()
			if err != nil {
				return err
			}
			defer c.Close()

			columns, values, err := show(cmd.Context(), c, args[0])
			if err != nil {
				return err
			}
			return output.PrintProperties(cmd.OutOrStdout(), columns, values, opts.format)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", output.FormatTable,
		fmt.Sprintf("Output format %v.", output.Formats))

	return cmd
}

func show(ctx context.Context, c api.ConsistencyGroupClient, token string) ([]string, []any, error) {
	group, err := client.ConsistencyGroupFinder(c).Resolve(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	columns, values := group.Properties()
	return columns, values, nil
}
