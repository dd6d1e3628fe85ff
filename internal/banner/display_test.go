package banner

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Disable color output in tests so assertions match plain text.
	color.NoColor = true
}

// captureStdout captures stdout output during function execution
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	defer func() { os.Stdout = old }()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	w.Close()
	os.Stdout = old
	return <-outC
}

func TestPrintTitle(t *testing.T) {
	out := captureStdout(t, PrintTitle)

	assert.Contains(t, out, "NarratoAI Guided Walkthrough")
	assert.Contains(t, out, "Automated Video Subtitle & Narration Tool")
	assert.Contains(t, out, strings.Repeat("=", 70))
}

func TestPrintSection(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"prerequisites header", "Checking Prerequisites"},
		{"workflow header", "Complete Video Processing Workflow"},
		{"summary header", "Quick Start Summary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(t, func() {
				PrintSection(tt.title)
			})

			assert.Contains(t, out, tt.title)
			assert.Contains(t, out, strings.Repeat("=", 70))
		})
	}
}

func TestPrintWarning(t *testing.T) {
	t.Run("lists missing tools", func(t *testing.T) {
		out := captureStdout(t, func() {
			PrintWarning([]string{"Docker", "FFmpeg"})
		})

		assert.Contains(t, out, "WARNING: Some prerequisites are missing")
		assert.Contains(t, out, "Missing: Docker, FFmpeg")
		assert.Contains(t, out, strings.Repeat("!", 70))
	})

	t.Run("omits missing line for empty list", func(t *testing.T) {
		out := captureStdout(t, func() {
			PrintWarning(nil)
		})

		assert.Contains(t, out, "WARNING: Some prerequisites are missing")
		assert.NotContains(t, out, "Missing:")
	})
}

func TestCenterPadding(t *testing.T) {
	centered := center("abc")
	assert.True(t, strings.HasPrefix(centered, " "))
	assert.Equal(t, "abc", strings.TrimSpace(centered))

	long := strings.Repeat("x", 80)
	assert.Equal(t, long, center(long))
}
