package context

import (
	"fmt"
	"maps"
	"slices"

	"github.com/psviderski/blockctl/internal/cli"
	"github.com/psviderski/blockctl/internal/cli/config"
	"github.com/psviderski/blockctl/internal/cli/output"
	"github.com/spf13/cobra"
)

type listOptions struct {
	format string
}

func NewListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List available contexts.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uncli := cmd.Context().Value("cli").(*cli.CLI)
			if err := output.ValidateFormat(opts.format); err != nil {
				return err
			}

			items := contextItems(uncli.Config)
			if len(items) == 0 && opts.format == output.FormatTable {
				fmt.Fprintln(cmd.OutOrStdout(), "No contexts found")
				return nil
			}
			return output.Print(cmd.OutOrStdout(), items, contextColumns, opts.format)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", output.FormatTable,
		fmt.Sprintf("Output format %v.", output.Formats))
	return cmd
}

type contextItem struct {
	Name       string `json:"name" yaml:"name"`
	Current    bool   `json:"current" yaml:"current"`
	Endpoint   string `json:"endpoint" yaml:"endpoint"`
	APIVersion string `json:"api_version,omitempty" yaml:"api_version,omitempty"`
}

var contextColumns = []output.Column[contextItem]{
	{Header: "NAME", Field: "Name"},
	{
		Header: "CURRENT",
		Accessor: func(item contextItem) string {
			if item.Current {
				return "✓"
			}
			return ""
		},
	},
	{Header: "ENDPOINT", Field: "Endpoint"},
	{Header: "API VERSION", Field: "APIVersion"},
}

// contextItems returns the configured contexts sorted by name.
func contextItems(cfg *config.Config) []contextItem {
	items := []contextItem{}
	for _, name := range slices.Sorted(maps.Keys(cfg.Contexts)) {
		ctx := cfg.Contexts[name]
		items = append(items, contextItem{
			Name:       name,
			Current:    name == cfg.CurrentContext,
			Endpoint:   ctx.Endpoint,
			APIVersion: ctx.APIVersion,
		})
	}
	return items
}
