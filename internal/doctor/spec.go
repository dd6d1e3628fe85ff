// Package doctor verifies that the external tools NarratoAI depends on are
// present and working on the host.
//
// Each tool is described by a ToolSpec whose command prints version info and
// exits zero when the tool is healthy. Probe runs one spec under a timeout
// and classifies the outcome; CheckAll probes the full set in order and
// reduces the results to an overall readiness report.
package doctor

// ToolSpec describes one external tool to probe: a display name plus the
// command line that reports its version.
type ToolSpec struct {
	Name    string
	Command []string
}

// RequiredTools returns the fixed set of tools NarratoAI needs on the host,
// in display order.
func RequiredTools() []ToolSpec {
	return []ToolSpec{
		{Name: "Docker", Command: []string{"docker", "--version"}},
		{Name: "FFmpeg", Command: []string{"ffmpeg", "-version"}},
	}
}
