package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/narrato-guide/internal/config"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := config.NewDefaultConfig()

	assert.Equal(t, 5, cfg.ProbeTimeout)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.CheckOnly)
	assert.False(t, cfg.JSONOutput)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)
	assert.Empty(t, cfg.ConfigFile)
}

func TestWhitelistHasNoDuplicates(t *testing.T) {
	seen := make(map[string]bool)
	for _, v := range config.WhitelistedVars {
		assert.False(t, seen[v], "duplicate whitelist entry: %s", v)
		seen[v] = true
	}
}
