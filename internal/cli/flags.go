// Package cli provides flag binding and validation for the narrato-guide CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/narrato-guide/internal/config"
)

// BindFlags registers all CLI flags on the given cobra command.
// The flags directly modify fields in the provided config pointer.
// Call ValidateFlags after parsing to check flag combinations.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	// Probe settings.
	flags.IntVar(&cfg.ProbeTimeout, "timeout", 5, "Seconds before a tool probe is killed")

	// Output behavior.
	flags.BoolVar(&cfg.Strict, "strict", false, "Exit nonzero when prerequisites are missing")
	flags.BoolVar(&cfg.CheckOnly, "check-only", false, "Run only the prerequisite check, skip the documentation")
	flags.BoolVar(&cfg.JSONOutput, "json", false, "Print the readiness report as JSON")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Show debug output, including probe commands")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")

	// Config file.
	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")
}

// ValidateFlags checks for invalid flag values after parsing.
// Must be called after cmd.Execute() or cmd.ParseFlags().
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cfg.ProbeTimeout <= 0 {
		return fmt.Errorf("--timeout must be positive, got: %d", cfg.ProbeTimeout)
	}

	// --config must exist if provided.
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	return nil
}

// BuildCLIOverrides creates a map of CLI flag overrides from the config.
// Uses cmd.Flags().Changed() to only include flags explicitly set by the
// user, ensuring config file values are not accidentally overridden by
// default values.
func BuildCLIOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	if cmd.Flags().Changed("timeout") {
		overrides["PROBE_TIMEOUT"] = fmt.Sprintf("%d", cfg.ProbeTimeout)
	}

	boolFlags := map[string]struct {
		key string
		val bool
	}{
		"strict":     {"STRICT", cfg.Strict},
		"check-only": {"CHECK_ONLY", cfg.CheckOnly},
		"json":       {"JSON_OUTPUT", cfg.JSONOutput},
		"verbose":    {"VERBOSE", cfg.Verbose},
		"no-color":   {"NO_COLOR", cfg.NoColor},
	}
	for flag, mapping := range boolFlags {
		if cmd.Flags().Changed(flag) {
			if mapping.val {
				overrides[mapping.key] = "true"
			} else {
				overrides[mapping.key] = "false"
			}
		}
	}

	return overrides
}
