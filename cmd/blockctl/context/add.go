package context

import (
	"fmt"
	"time"

	"github.com/psviderski/blockctl/internal/cli"
	"github.com/psviderski/blockctl/internal/cli/config"
	"github.com/spf13/cobra"
)

type addOptions struct {
	endpoint   string
	token      string
	apiVersion string
	caFile     string
	certFile   string
	keyFile    string
	insecure   bool
	timeout    time.Duration
	noPrompt   bool
}

func NewAddCommand() *cobra.Command {
	opts := addOptions{}
	cmd := &cobra.Command{
		Use:   "add CONTEXT",
		Short: "Add a new context or replace an existing one.",
		Long: "Add a new context or replace an existing one. The first added context becomes the current one.\n" +
			"The auth token is prompted for if it's not provided with --service-token and stdin is a terminal.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uncli := cmd.Context().Value("cli").(*cli.CLI)

			if opts.token == "" && !opts.noPrompt && cli.IsStdinTerminal() {
				token, err := cli.ReadToken()
				if err != nil {
					return err
				}
				opts.token = token
			}

			return add(cmd, uncli, args[0], opts)
		},
	}

	// The global --endpoint and --token flags are not used here as they override the context settings.
	cmd.Flags().StringVar(&opts.endpoint, "service-endpoint", "",
		"Base URL of the volume service including the API version and project ID, "+
			"e.g. https://volume.example.com:8776/v3/<project-id>.")
	cmd.Flags().StringVar(&opts.token, "service-token", "",
		"Auth token to send in the X-Auth-Token header.")
	cmd.Flags().StringVar(&opts.apiVersion, "api-version", "",
		"Volume API microversion to request, e.g. 3.10.")
	cmd.Flags().StringVar(&opts.caFile, "ca-file", "",
		"Path to a CA certificate bundle to verify the service certificate.")
	cmd.Flags().StringVar(&opts.certFile, "cert-file", "",
		"Path to a client certificate for mutual TLS.")
	cmd.Flags().StringVar(&opts.keyFile, "key-file", "",
		"Path to the client certificate key for mutual TLS.")
	cmd.Flags().BoolVar(&opts.insecure, "insecure", false,
		"Skip verification of the service certificate.")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0,
		"Maximum time a request to the service may take, including retries (default 1m).")
	cmd.Flags().BoolVar(&opts.noPrompt, "no-prompt", false,
		"Do not prompt for the auth token.")
	_ = cmd.MarkFlagRequired("service-endpoint")
	cmd.MarkFlagsRequiredTogether("cert-file", "key-file")

	return cmd
}

func add(cmd *cobra.Command, uncli *cli.CLI, name string, opts addOptions) error {
	ctx := &config.Context{
		Name: name,
		Connection: config.Connection{
			Endpoint:   opts.endpoint,
			Token:      opts.token,
			APIVersion: opts.apiVersion,
			CAFile:     opts.caFile,
			CertFile:   opts.certFile,
			KeyFile:    opts.keyFile,
			Insecure:   opts.insecure,
			Timeout:    opts.timeout,
		},
	}
	if err := uncli.AddContext(ctx); err != nil {
		return fmt.Errorf("add context '%s': %w", name, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Context '%s' saved to %s.\n", name, uncli.Config.Path())
	if uncli.Config.CurrentContext == name {
		fmt.Fprintf(cmd.OutOrStdout(), "Current context is now '%s'.\n", name)
	}
	return nil
}
