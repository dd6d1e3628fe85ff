package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/narrato-guide/internal/cli"
	"github.com/CodexForgeBR/narrato-guide/internal/config"
	"github.com/CodexForgeBR/narrato-guide/internal/exitcode"
	"github.com/CodexForgeBR/narrato-guide/internal/logging"
	sighandler "github.com/CodexForgeBR/narrato-guide/internal/signal"
	"github.com/CodexForgeBR/narrato-guide/internal/walkthrough"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cfg := config.NewDefaultConfig()

	rootCmd := &cobra.Command{
		Use:     "narrato-guide",
		Short:   "Guided walkthrough for the NarratoAI video-processing system",
		Long:    "narrato-guide verifies host prerequisites (Docker, FFmpeg) and walks through deploying and using NarratoAI.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate flags after parsing
			if err := cli.ValidateFlags(cmd, cfg); err != nil {
				return err
			}
			return runGuide(cmd, cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Bind all CLI flags to the config
	cli.BindFlags(rootCmd, cfg)

	// Set custom help template
	cli.SetCustomHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Error)
	}
}

// runGuide loads the final configuration, wires signal handling, and runs
// the walkthrough pipeline. The walkthrough's exit code becomes the process
// exit status.
func runGuide(cmd *cobra.Command, cfg *config.Config) error {
	// Build CLI overrides map using Changed() for accurate detection, then
	// load config with the full precedence chain.
	cliOverrides := cli.BuildCLIOverrides(cmd, cfg)

	finalCfg, err := config.LoadWithPrecedence(globalConfigPath(), projectConfigPath(), cfg.ConfigFile, cliOverrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.SetVerbose(finalCfg.Verbose)
	if finalCfg.NoColor {
		color.NoColor = true
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sighandler.SetupSignalHandler(ctx, cancel, func() {
		logging.Warn("interrupted, stopping walkthrough")
	})

	os.Exit(walkthrough.Run(ctx, finalCfg))
	return nil // unreachable
}

// globalConfigPath is the per-user config file location.
func globalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".narrato-guide", "config")
}

// projectConfigPath is the config file looked up in the working directory.
func projectConfigPath() string {
	return ".narrato-guide.conf"
}
