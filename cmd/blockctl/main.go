package main

import (
	"context"
	"fmt"
	"os"

	"github.com/psviderski/blockctl/cmd/blockctl/consistencygroup"
	ctxcmd "github.com/psviderski/blockctl/cmd/blockctl/context"
	"github.com/psviderski/blockctl/internal/cli"
	"github.com/psviderski/blockctl/internal/cli/config"
	"github.com/psviderski/blockctl/internal/fs"
	"github.com/psviderski/blockctl/internal/log"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	configPath  string
	contextName string
	endpoint    string
	token       string
	apiVersion  string
	debug       bool
}

var globalEnvFlags = cli.EnvFlags{
	"config":                "BLOCKCTL_CONFIG",
	"context":               "BLOCKCTL_CONTEXT",
	"endpoint":              "BLOCKCTL_ENDPOINT",
	"token":                 "OS_AUTH_TOKEN",
	"os-volume-api-version": "OS_VOLUME_API_VERSION",
}

func main() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	opts := globalOptions{}
	cmd := &cobra.Command{
		Use:           "blockctl",
		Short:         "A CLI tool for managing block storage resources such as consistency groups.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.BindEnvToFlags(cmd, globalEnvFlags); err != nil {
				return err
			}

			log.Init(opts.debug || log.DebugFromEnv())

			overrides := config.Connection{
				Endpoint:   opts.endpoint,
				Token:      opts.token,
				APIVersion: opts.apiVersion,
			}
			uncli, err := cli.New(fs.ExpandHomeDir(opts.configPath), opts.contextName, overrides)
			if err != nil {
				return fmt.Errorf("initialise CLI: %w", err)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), "cli", uncli))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "~/.config/blockctl/config.yaml",
		"Path to the configuration file. [$BLOCKCTL_CONFIG]")
	_ = cmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	cmd.PersistentFlags().StringVar(&opts.contextName, "context", "",
		"Name of the context to use instead of the current one. [$BLOCKCTL_CONTEXT]")
	cmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "",
		"Volume service endpoint overriding the one from the context. [$BLOCKCTL_ENDPOINT]")
	cmd.PersistentFlags().StringVar(&opts.token, "token", "",
		"Auth token overriding the one from the context. [$OS_AUTH_TOKEN]")
	cmd.PersistentFlags().StringVar(&opts.apiVersion, "os-volume-api-version", "",
		"Volume API microversion overriding the one from the context, e.g. 3.10. [$OS_VOLUME_API_VERSION]")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false,
		"Enable debug logging. [$DEBUG]")

	cmd.AddCommand(
		consistencygroup.NewRootCommand(),
		ctxcmd.NewRootCommand(),
		NewVersionCommand(),
	)
	return cmd
}
