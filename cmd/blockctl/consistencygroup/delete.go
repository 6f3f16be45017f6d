package consistencygroup

import (
	"context"
	"log/slog"

	"github.com/psviderski/blockctl/internal/cli"
	"github.com/psviderski/blockctl/pkg/api"
	"github.com/psviderski/blockctl/pkg/client"
	"github.com/spf13/cobra"
)

type deleteOptions struct {
	force bool
}

func NewDeleteCommand() *cobra.Command {
	opts := deleteOptions{}

	cmd := &cobra.Command{
		Use:     "delete GROUP [GROUP...]",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete one or more consistency groups by name or ID.",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uncli := cmd.Context().Value("cli").(*cli.CLI)

			c, err := uncli.ConnectVolumeService()
			if err != nil {
				return err
			}
			defer c.Close()

			return deleteGroups(cmd.Context(), c, args, opts.force)
		},
	}

	cmd.Flags().BoolVar(&opts.force, "force", false,
		"Allow deleting a consistency group that contains volumes. The volumes are deleted too.")

	return cmd
}

// deleteGroups deletes the groups one by one in the given order. A failure to resolve or delete a group is logged
// and doesn't stop deleting the remaining groups.
func deleteGroups(ctx context.Context, c api.ConsistencyGroupClient, tokens []string, force bool) error {
	finder := client.ConsistencyGroupFinder(c)

	var failed int
	for _, token := range tokens {
		err := func() error {
			group, err := finder.Resolve(ctx, token)
			if err != nil {
				return err
			}
			return c.DeleteConsistencyGroup(ctx, group.ID, force)
		}()
		if err != nil {
			failed++
			slog.Error("Failed to delete consistency group.", "group", token, "err", err)
			continue
		}
		slog.Debug("Consistency group deletion requested.", "group", token, "force", force)
	}

	if failed > 0 {
		return &api.BatchError{
			Action: "delete",
			Kind:   "consistency groups",
			Failed: failed,
			Total:  len(tokens),
		}
	}
	return nil
}
