// Package cli provides help text and usage formatting for the narrato-guide CLI.
package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `narrato-guide - Guided walkthrough for the NarratoAI video-processing system

USAGE
  narrato-guide [flags]

narrato-guide verifies that the external tools NarratoAI depends on (Docker,
FFmpeg) are installed and working, then prints the tutorial: workflow,
deployment commands, configuration, API usage, features, storage layout,
and a quick-start guide. Missing prerequisites produce a warning at the end
of the run.

FLAGS
  Probing:
    --timeout <seconds>    Seconds before a tool probe is killed (default: 5)

  Output:
    --strict               Exit 2 when prerequisites are missing (default: exit 0, warn only)
    --check-only           Run only the prerequisite check, skip the documentation
    --json                 Print the readiness report as JSON (implies --check-only)
    -v, --verbose          Show debug output, including probe commands
    --no-color             Disable colored output

  Configuration:
    --config <path>        Path to additional config file

  Help & Version:
    -h, --help             Show this help text
    --version              Show version, commit, build date

EXIT CODES
  0   Success              Walkthrough completed (prerequisites may still be missing)
  1   Error                Invalid arguments or misconfiguration
  2   PrereqMissing        Prerequisites missing and --strict was set
  130 Interrupted          SIGINT or SIGTERM received

EXAMPLES
  # Print the full walkthrough
  narrato-guide

  # Only verify Docker and FFmpeg, fail the shell pipeline if either is missing
  narrato-guide --check-only --strict

  # Machine-readable readiness report
  narrato-guide --json

For more information, see: https://github.com/linyqh/NarratoAI
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
