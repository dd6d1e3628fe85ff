// Package config defines the narrato-guide configuration model and default
// values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < global config file < project config file <
// explicit config file < CLI flag overrides. The prerequisite check itself
// needs no configuration; these settings only tune presentation and the
// probe timeout.
package config

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during
// loading.
var WhitelistedVars = [6]string{
	"PROBE_TIMEOUT",
	"STRICT",
	"CHECK_ONLY",
	"JSON_OUTPUT",
	"VERBOSE",
	"NO_COLOR",
}

// Config holds every configuration field for the narrato-guide CLI.
type Config struct {
	// Probe settings.
	ProbeTimeout int // seconds per tool probe

	// Output behavior.
	Strict     bool // exit nonzero when prerequisites are missing
	CheckOnly  bool // stop after the prerequisite check
	JSONOutput bool // print the readiness report as JSON
	Verbose    bool
	NoColor    bool

	// CLI-only flags (not loaded from config files).
	ConfigFile string
}

// NewDefaultConfig returns a Config populated with all built-in default
// values.
func NewDefaultConfig() *Config {
	return &Config{
		ProbeTimeout: 5,
	}
}
