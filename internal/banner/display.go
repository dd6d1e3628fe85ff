// Package banner provides colored banner display functions for the
// narrato-guide CLI.
//
// All banner functions write formatted output to stdout with color-coded
// headers and separators. The 70-column ruled layout matches the NarratoAI
// tutorial this guide walks through.
package banner

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const ruleWidth = 70

var (
	headerColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	titleColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	warnColor   = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// PrintTitle displays the walkthrough title banner.
//
// Example output:
//
//	======================================================================
//	                    NarratoAI Guided Walkthrough
//	              Automated Video Subtitle & Narration Tool
//	======================================================================
func PrintTitle() {
	sep := titleColor(strings.Repeat("=", ruleWidth))
	fmt.Println()
	fmt.Println(sep)
	fmt.Println(titleColor(center("NarratoAI Guided Walkthrough")))
	fmt.Println(center("Automated Video Subtitle & Narration Tool"))
	fmt.Println(sep)
}

// PrintSection displays a ruled section header.
//
// Example output:
//
//	======================================================================
//	  Checking Prerequisites
//	======================================================================
func PrintSection(title string) {
	sep := headerColor(strings.Repeat("=", ruleWidth))
	fmt.Println()
	fmt.Println(sep)
	fmt.Printf("  %s\n", headerColor(title))
	fmt.Println(sep)
	fmt.Println()
}

// PrintWarning displays the trailing warning block shown when prerequisites
// are missing.
//
// Example output:
//
//	!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!
//	  WARNING: Some prerequisites are missing. Please install them first.
//	  Missing: FFmpeg
//	!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!
func PrintWarning(missing []string) {
	sep := warnColor(strings.Repeat("!", ruleWidth))
	fmt.Println()
	fmt.Println(sep)
	fmt.Println(warnColor("  WARNING: Some prerequisites are missing. Please install them first."))
	if len(missing) > 0 {
		fmt.Printf("  Missing: %s\n", strings.Join(missing, ", "))
	}
	fmt.Println(sep)
	fmt.Println()
}

// center pads s with spaces so it sits in the middle of the ruled width.
func center(s string) string {
	if len(s) >= ruleWidth {
		return s
	}
	pad := (ruleWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
