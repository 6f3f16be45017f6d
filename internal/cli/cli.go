package cli

import (
	"fmt"

	"github.com/psviderski/blockctl/internal/cli/config"
	"github.com/psviderski/blockctl/pkg/client"
)

type CLI struct {
	Config *config.Config
	// contextName is the context selected with the --context flag. The current context is used if empty.
	contextName string
	// overrides are the connection settings from the global flags and environment applied on top of the context.
	overrides config.Connection
}

// New creates a new CLI instance with the given config path and optional context and connection overrides.
func New(configPath, contextName string, overrides config.Connection) (*CLI, error) {
	cfg, err := config.NewFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return &CLI{
		Config:      cfg,
		contextName: contextName,
		overrides:   overrides,
	}, nil
}

// Connection returns the effective connection settings: the selected context with the overrides applied.
// A context is not required if the endpoint is overridden and no context is explicitly selected.
func (cli *CLI) Connection() (config.Connection, error) {
	var conn config.Connection
	ctx, err := cli.Config.Context(cli.contextName)
	switch {
	case err == nil:
		conn = ctx.Connection
	case cli.contextName == "" && cli.overrides.Endpoint != "":
		// The connection is fully defined by the overrides.
	default:
		return conn, fmt.Errorf("%w: add a context with 'blockctl context add' "+
			"or set the service endpoint with --endpoint", err)
	}

	conn = conn.Merge(cli.overrides)
	if err = conn.Validate(); err != nil {
		return conn, fmt.Errorf("invalid connection to '%s': %w", conn, err)
	}
	return conn, nil
}

// ConnectVolumeService creates a client for the block storage service using the effective connection settings.
func (cli *CLI) ConnectVolumeService() (*client.Client, error) {
	conn, err := cli.Connection()
	if err != nil {
		return nil, err
	}

	c, err := client.New(client.Config{
		Endpoint:   conn.Endpoint,
		Token:      conn.Token,
		APIVersion: conn.APIVersion,
		TLS: client.TLSOptions{
			CAFile:   conn.CAFile,
			CertFile: conn.CertFile,
			KeyFile:  conn.KeyFile,
			Insecure: conn.Insecure,
		},
		Timeout: conn.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to volume service '%s': %w", conn, err)
	}
	return c, nil
}

func (cli *CLI) SetCurrentContext(name string) error {
	if _, ok := cli.Config.Contexts[name]; !ok {
		return fmt.Errorf("context '%s': %w", name, config.ErrContextNotFound)
	}
	cli.Config.CurrentContext = name
	if err := cli.Config.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// AddContext adds or replaces a context and saves the config.
func (cli *CLI) AddContext(ctx *config.Context) error {
	if err := cli.Config.SetContext(ctx); err != nil {
		return err
	}
	if err := cli.Config.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// RemoveContext removes a context and saves the config.
func (cli *CLI) RemoveContext(name string) error {
	if err := cli.Config.RemoveContext(name); err != nil {
		return err
	}
	if err := cli.Config.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}
