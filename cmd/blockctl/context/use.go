package context

import (
	"fmt"
	"maps"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/psviderski/blockctl/internal/cli"
	"github.com/psviderski/blockctl/internal/cli/config"
	"github.com/spf13/cobra"
)

func NewUseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use [CONTEXT]",
		Short: "Switch to a different context.",
		Long: "Switch to a different context. Without a context name, the available contexts are offered " +
			"for selection when running in a terminal.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uncli := cmd.Context().Value("cli").(*cli.CLI)
			if len(args) == 1 {
				return useContext(cmd, uncli, args[0])
			}
			return selectContext(cmd, uncli)
		},
	}

	return cmd
}

func useContext(cmd *cobra.Command, uncli *cli.CLI, name string) error {
	if err := uncli.SetCurrentContext(name); err != nil {
		return fmt.Errorf("switch to context '%s': %w", name, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Current context is now '%s'.\n", name)
	return nil
}

// selectContext prompts for one of the configured contexts and makes it the current one.
func selectContext(cmd *cobra.Command, uncli *cli.CLI) error {
	if len(uncli.Config.Contexts) == 0 {
		return fmt.Errorf("no contexts found in config (%s), add one with 'blockctl context add'",
			uncli.Config.Path())
	}
	if !cli.IsStdinTerminal() {
		return fmt.Errorf("context name is required when not running in a terminal")
	}

	var selected string
	field := huh.NewSelect[string]().
		Title("Select a context").
		Options(contextOptions(uncli.Config)...).
		Value(&selected)
	if err := huh.NewForm(huh.NewGroup(field)).Run(); err != nil {
		return fmt.Errorf("select context: %w", err)
	}

	return useContext(cmd, uncli, selected)
}

// contextOptions lists the contexts sorted by name with their endpoints. The current context is preselected.
func contextOptions(cfg *config.Config) []huh.Option[string] {
	names := slices.Sorted(maps.Keys(cfg.Contexts))
	options := make([]huh.Option[string], 0, len(names))
	for _, name := range names {
		key := fmt.Sprintf("%s (%s)", name, cfg.Contexts[name].Endpoint)
		if name == cfg.CurrentContext {
			key += " *"
		}
		options = append(options, huh.NewOption(key, name).Selected(name == cfg.CurrentContext))
	}
	return options
}
