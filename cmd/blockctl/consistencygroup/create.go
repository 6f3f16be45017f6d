package consistencygroup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/psviderski/blockctl/internal/cli"
	"github.com/psviderski/blockctl/internal/cli/output"
	"github.com/psviderski/blockctl/pkg/api"
	"github.com/psviderski/blockctl/pkg/client"
	"github.com/spf13/cobra"
)

type createOptions struct {
	volumeType       string
	sourceGroup      string
	description      string
	availabilityZone string
	format           string
}

// createSource is what a new consistency group is created from: either fromVolumeType or fromSourceGroup.
type createSource interface {
	isCreateSource()
}

type fromVolumeType struct {
	// volumeType is the name or ID of the volume type.
	volumeType string
}

type fromSourceGroup struct {
	// group is the name or ID of the existing consistency group.
	group string
}

func (fromVolumeType) isCreateSource()  {}
func (fromSourceGroup) isCreateSource() {}

// source returns the create source selected with the flags. The flags are mutually exclusive and one of them
// is required which is enforced by the command flag groups.
func (o createOptions) source() createSource {
	if o.sourceGroup != "" {
		return fromSourceGroup{group: o.sourceGroup}
	}
	return fromVolumeType{volumeType: o.volumeType}
}

func NewCreateCommand() *cobra.Command {
	opts := createOptions{}

	cmd := &cobra.Command{
		Use:   "create [NAME]",
		Short: "Create a new consistency group for a volume type or from an existing consistency group.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uncli := cmd.Context().Value("cli").(*cli.CLI)
			if err := output.ValidateFormat(opts.format); err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			}

			c, err := uncli.ConnectVolumeService()
			if err != nil {
				return err
			}
			defer c.Close()

			columns, values, err := create(cmd.Context(), c, name, opts)
			if err != nil {
				return err
			}
			return output.PrintProperties(cmd.OutOrStdout(), columns, values, opts.format)
		},
	}

	cmd.Flags().StringVar(&opts.volumeType, "volume-type", "",
		"Name or ID of the volume type to create the consistency group for.")
	cmd.Flags().StringVar(&opts.sourceGroup, "consistency-group-source", "",
		"Name or ID of an existing consistency group to create the new one from.")
	cmd.Flags().StringVar(&opts.description, "description", "",
		"Description of the consistency group.")
	cmd.Flags().StringVar(&opts.availabilityZone, "availability-zone", "",
		"Availability zone for the consistency group. Not supported when creating from a source group.")
	cmd.Flags().StringVarP(&opts.format, "format", "f", output.FormatTable,
		fmt.Sprintf("Output format %v.", output.Formats))
	cmd.MarkFlagsMutuallyExclusive("volume-type", "consistency-group-source")
	cmd.MarkFlagsOneRequired("volume-type", "consistency-group-source")

	return cmd
}

// create creates a consistency group and returns its sorted attribute names and values.
func create(ctx context.Context, c api.Client, name string, opts createOptions) ([]string, []any, error) {
	var (
		group api.ConsistencyGroup
		err   error
	)

	switch src := opts.source().(type) {
	case fromVolumeType:
		volumeType, rErr := client.VolumeTypeFinder(c).Resolve(ctx, src.volumeType)
		if rErr != nil {
			return nil, nil, rErr
		}
		group, err = c.CreateConsistencyGroup(ctx, api.ConsistencyGroupCreateRequest{
			VolumeTypeID:     volumeType.ID,
			Name:             name,
			Description:      opts.description,
			AvailabilityZone: opts.availabilityZone,
		})
	case fromSourceGroup:
		if opts.availabilityZone != "" {
			slog.Warn("'--availability-zone' option will not work if creating consistency group from source")
		}
		source, rErr := client.ConsistencyGroupFinder(c).Resolve(ctx, src.group)
		if rErr != nil {
			return nil, nil, rErr
		}
		// Creating from a consistency group snapshot is not supported.
		group, err = c.CreateConsistencyGroupFromSource(ctx, api.ConsistencyGroupFromSourceRequest{
			SnapshotID:    nil,
			SourceGroupID: source.ID,
			Name:          name,
			Description:   opts.description,
		})
	}
	if err != nil {
		return nil, nil, fmt.Errorf("create consistency group: %w", err)
	}

	columns, values := group.Properties()
	return columns, values, nil
}
