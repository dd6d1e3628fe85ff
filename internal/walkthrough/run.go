// Package walkthrough runs the narrato-guide program: a prerequisite check
// followed by a fixed, ordered pipeline of documentation sections, with a
// closing warning when the host is not ready for NarratoAI.
package walkthrough

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/narrato-guide/internal/banner"
	"github.com/CodexForgeBR/narrato-guide/internal/config"
	"github.com/CodexForgeBR/narrato-guide/internal/docs"
	"github.com/CodexForgeBR/narrato-guide/internal/doctor"
	"github.com/CodexForgeBR/narrato-guide/internal/exitcode"
	"github.com/CodexForgeBR/narrato-guide/internal/logging"
)

// requiredTools is a seam so tests can substitute fast, hermetic specs for
// the real Docker and FFmpeg probes.
var requiredTools = doctor.RequiredTools

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	badMark  = color.New(color.FgRed).SprintFunc()
	skipMark = color.New(color.FgYellow).SprintFunc()
)

// Run executes the walkthrough and returns the process exit code.
//
// The pipeline is fixed: title banner, prerequisite check, documentation
// sections, quick start summary, and a trailing warning block when any
// prerequisite is missing. Missing prerequisites only warn; the exit code
// stays 0 unless cfg.Strict is set.
func Run(ctx context.Context, cfg *config.Config) int {
	// JSON output is machine-readable and only covers the prerequisite
	// report, so it implies check-only mode. Enforced here so it holds no
	// matter which layer (flag or config file) enabled JSON output.
	if cfg.JSONOutput {
		cfg.CheckOnly = true
	}

	banner.PrintTitle()

	report := checkPrerequisites(ctx, cfg)

	if ctx.Err() != nil {
		return exitcode.Interrupted
	}

	if !cfg.CheckOnly {
		for _, sec := range docs.Sections() {
			banner.PrintSection(sec.Title)
			fmt.Println(sec.Body)
		}

		banner.PrintSection("Quick Start Summary")
		fmt.Print(docs.Summary + "\n")
	}

	if !report.Ready() {
		banner.PrintWarning(report.Missing())
		if cfg.Strict {
			return exitcode.PrereqMissing
		}
	}

	return exitcode.Success
}

// checkPrerequisites probes the required tools, printing one line per tool
// as each result lands (or the whole report as JSON in JSON mode).
func checkPrerequisites(ctx context.Context, cfg *config.Config) *doctor.Report {
	banner.PrintSection("Checking Prerequisites")

	specs := requiredTools()
	timeout := time.Duration(cfg.ProbeTimeout) * time.Second

	if cfg.Verbose {
		for _, spec := range specs {
			logging.Debug("probe command: " + strings.Join(spec.Command, " "))
		}
	}

	if cfg.JSONOutput {
		report := doctor.CheckAll(ctx, specs, timeout, nil)
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			logging.Error(fmt.Sprintf("encode readiness report: %v", err))
			return report
		}
		fmt.Println(string(data))
		return report
	}

	return doctor.CheckAll(ctx, specs, timeout, printResult)
}

// printResult renders one probe outcome. Failure lines name the reason so
// the user knows whether to install the tool or investigate it.
func printResult(res doctor.Result) {
	switch res.Status {
	case doctor.StatusOK:
		fmt.Printf("%s %s is installed\n", okMark("✓"), res.Name)
		if res.Detail != "" {
			fmt.Printf("  %s\n", res.Detail)
		}
	case doctor.StatusNotInstalled:
		fmt.Printf("%s %s not installed\n", badMark("✗"), res.Name)
	case doctor.StatusTimedOut:
		fmt.Printf("%s %s version check timed out\n", badMark("✗"), res.Name)
	case doctor.StatusSkipped:
		fmt.Printf("%s %s check skipped (interrupted)\n", skipMark("-"), res.Name)
	default:
		fmt.Printf("%s %s not found or not working\n", badMark("✗"), res.Name)
	}
}
