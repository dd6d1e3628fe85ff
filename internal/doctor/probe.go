package doctor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single version probe. Version queries are quick;
// anything slower than this is treated as a hung tool.
const DefaultTimeout = 5 * time.Second

// Status classifies the outcome of a single probe.
type Status string

const (
	StatusOK           Status = "ok"            // exited zero within the timeout
	StatusNotInstalled Status = "not_installed" // executable not found on PATH
	StatusTimedOut     Status = "timed_out"     // killed after exceeding the timeout
	StatusNotWorking   Status = "not_working"   // ran but exited nonzero
	StatusSkipped      Status = "skipped"       // check cut short by caller cancellation
)

// Result is the outcome of probing one tool. Detail carries the first line
// of the tool's version output and is set only on success.
type Result struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Available reports whether the probed tool is present and working.
func (r Result) Available() bool {
	return r.Status == StatusOK
}

// Probe runs spec's version command under the given timeout and classifies
// the outcome. Every failure mode is folded into the returned Result: Probe
// never returns an error, so one broken tool cannot abort the remaining
// checks. The spawned process is killed when the timeout expires.
func Probe(ctx context.Context, spec ToolSpec, timeout time.Duration) Result {
	res := Result{Name: spec.Name}
	if len(spec.Command) == 0 {
		res.Status = StatusNotInstalled
		return res
	}

	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(probeCtx, spec.Command[0], spec.Command[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	switch {
	case err == nil:
		res.Status = StatusOK
		res.Detail = firstLine(stdout.String())
	case errors.Is(probeCtx.Err(), context.DeadlineExceeded):
		res.Status = StatusTimedOut
	case ctx.Err() != nil:
		// The caller was interrupted; the tool itself was never diagnosed.
		res.Status = StatusSkipped
	case errors.Is(err, exec.ErrNotFound):
		res.Status = StatusNotInstalled
	default:
		res.Status = StatusNotWorking
	}
	return res
}

// firstLine extracts the first line of version output for display.
func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimRight(s, "\r")
}
