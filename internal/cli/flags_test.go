package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/narrato-guide/internal/cli"
	"github.com/CodexForgeBR/narrato-guide/internal/config"
)

// newCommand builds a cobra command with flags bound, parses args, and
// returns the command plus the config the flags wrote into.
func newCommand(t *testing.T, args ...string) (*cobra.Command, *config.Config) {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cmd := &cobra.Command{Use: "narrato-guide"}
	cli.BindFlags(cmd, cfg)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, cfg
}

func TestBindFlagsDefaults(t *testing.T) {
	_, cfg := newCommand(t)

	assert.Equal(t, 5, cfg.ProbeTimeout)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.CheckOnly)
	assert.False(t, cfg.JSONOutput)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)
}

func TestBindFlagsParsesValues(t *testing.T) {
	_, cfg := newCommand(t, "--timeout", "10", "--strict", "--check-only", "--json", "-v", "--no-color")

	assert.Equal(t, 10, cfg.ProbeTimeout)
	assert.True(t, cfg.Strict)
	assert.True(t, cfg.CheckOnly)
	assert.True(t, cfg.JSONOutput)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.NoColor)
}

func TestValidateFlagsRejectsNonPositiveTimeout(t *testing.T) {
	tests := []struct {
		name    string
		timeout string
	}{
		{"zero", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, cfg := newCommand(t, "--timeout", tt.timeout)
			err := cli.ValidateFlags(cmd, cfg)
			assert.ErrorContains(t, err, "--timeout must be positive")
		})
	}
}

func TestValidateFlagsRejectsMissingConfigFile(t *testing.T) {
	cmd, cfg := newCommand(t, "--config", "/nonexistent/config/file")
	err := cli.ValidateFlags(cmd, cfg)
	assert.ErrorContains(t, err, "--config")
}

func TestValidateFlagsAcceptsExistingConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(path, []byte("STRICT=true\n"), 0644))

	cmd, cfg := newCommand(t, "--config", path)
	assert.NoError(t, cli.ValidateFlags(cmd, cfg))
}

func TestBuildCLIOverridesOnlyIncludesChangedFlags(t *testing.T) {
	cmd, cfg := newCommand(t, "--timeout", "9", "--strict")

	overrides := cli.BuildCLIOverrides(cmd, cfg)

	assert.Equal(t, map[string]string{
		"PROBE_TIMEOUT": "9",
		"STRICT":        "true",
	}, overrides)
}

func TestBuildCLIOverridesEmptyWhenNothingChanged(t *testing.T) {
	cmd, cfg := newCommand(t)

	overrides := cli.BuildCLIOverrides(cmd, cfg)

	assert.Empty(t, overrides)
}

func TestBuildCLIOverridesExplicitFalse(t *testing.T) {
	cmd, cfg := newCommand(t, "--strict=false")

	overrides := cli.BuildCLIOverrides(cmd, cfg)

	assert.Equal(t, "false", overrides["STRICT"], "explicitly set false must override config files")
}
