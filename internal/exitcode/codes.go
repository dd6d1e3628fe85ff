// Package exitcode defines named exit codes for the narrato-guide CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and CI pipelines.
package exitcode

// Exit code constants for the narrato-guide CLI.
//
// The walkthrough exits 0 even when prerequisites are missing, matching the
// tutorial's reference behavior; PrereqMissing is returned only when the
// user opts into --strict.
const (
	Success       = 0   // Walkthrough completed
	Error         = 1   // Invalid args or misconfiguration
	PrereqMissing = 2   // Prerequisites missing and --strict was set
	Interrupted   = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case PrereqMissing:
		return "PrereqMissing"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}
