package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// ExpandCommaSeparatedValues splits comma-separated values into individual trimmed elements dropping empty ones.
func ExpandCommaSeparatedValues(values []string) []string {
	var expanded []string
	for _, value := range values {
		for v := range strings.SplitSeq(value, ",") {
			if v = strings.TrimSpace(v); v != "" {
				expanded = append(expanded, v)
			}
		}
	}
	return expanded
}

// EnvFlags maps flag names to the environment variables that provide their values.
type EnvFlags map[string]string

// BindEnvToFlags assigns the values of environment variables to the command flags that have not been set
// on the command line. Flags the command doesn't have are skipped.
func BindEnvToFlags(cmd *cobra.Command, bindings EnvFlags) error {
	for flagName, envVar := range bindings {
		value, ok := os.LookupEnv(envVar)
		if !ok || value == "" || cmd.Flags().Changed(flagName) || cmd.Flags().Lookup(flagName) == nil {
			continue
		}
		if err := cmd.Flags().Set(flagName, value); err != nil {
			return fmt.Errorf("invalid value of environment variable %s for flag '--%s': %w", envVar, flagName, err)
		}
	}
	return nil
}
