package main

import (
	"fmt"

	"github.com/psviderski/blockctl/internal/version"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the client version.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Client: %s\n", versionOrUnknown(version.String()))
			return nil
		},
	}
	return cmd
}

// versionOrUnknown returns "(unknown)" if the version is empty, e.g. when built without ldflags,
// otherwise returns the version as-is.
func versionOrUnknown(v string) string {
	if v == "" {
		return "(unknown)"
	}
	return v
}
