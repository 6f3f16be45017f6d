package consistencygroup

import (
	"context"
	"fmt"
	"iter"

	"github.com/psviderski/blockctl/internal/cli"
	"github.com/psviderski/blockctl/internal/cli/output"
	"github.com/psviderski/blockctl/pkg/api"
	"github.com/spf13/cobra"
)

var (
	listColumns     = []string{"ID", "Status", "Name"}
	listLongColumns = []string{"ID", "Status", "Availability Zone", "Name", "Description", "Volume Types"}
)

type listOptions struct {
	allProjects bool
	long        bool
	columns     []string
	format      string
}

func NewListCommand() *cobra.Command {
	opts := listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List consistency groups.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uncli := cmd.Context().Value("cli").(*cli.CLI)
			if err := output.ValidateFormat(opts.format); err != nil {
				return err
			}
			opts.columns = cli.ExpandCommaSeparatedValues(opts.columns)

			c, err := uncli.ConnectVolumeService()
			if err != nil {
				return err
			}
			defer c.Close()

			columns, rows, err := list(cmd.Context(), c, opts)
			if err != nil {
				return err
			}
			columns, rows, err = output.SelectColumns(columns, rows, opts.columns)
			if err != nil {
				return err
			}
			return output.PrintRows(cmd.OutOrStdout(), columns, rows, opts.format)
		},
	}

	cmd.Flags().BoolVar(&opts.allProjects, "all-projects", false,
		"Include consistency groups of all projects (admin only).")
	cmd.Flags().BoolVar(&opts.long, "long", false,
		"List additional fields in output.")
	cmd.Flags().StringArrayVarP(&opts.columns, "column", "c", nil,
		"Columns to display. Can be specified multiple times or as a comma-separated list.")
	cmd.Flags().StringVarP(&opts.format, "format", "f", output.FormatTable,
		fmt.Sprintf("Output format %v.", output.Formats))

	return cmd
}

// list returns the column headers and a sequence of rows with the consistency groups as returned by the service.
func list(ctx context.Context, c api.ConsistencyGroupClient, opts listOptions) ([]string, iter.Seq[[]any], error) {
	groups, err := c.ListConsistencyGroups(ctx, api.ConsistencyGroupListOptions{
		Detailed:   true,
		AllTenants: opts.allProjects,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("list consistency groups: %w", err)
	}

	columns := listColumns
	if opts.long {
		columns = listLongColumns
	}
	formatters := map[string]output.Formatter{
		"Volume Types": output.FormatList,
	}

	rows := func(yield func([]any) bool) {
		for _, g := range groups {
			if !yield(output.ItemProperties(g.AllAttributes(), columns, formatters)) {
				return
			}
		}
	}
	return columns, rows, nil
}
