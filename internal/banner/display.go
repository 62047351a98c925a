// Package banner provides colored banner display functions for the
// deepwalker CLI.
//
// All banner functions write formatted output to stdout with color-coded
// headers and separators.
package banner

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/hibernatus-hacker/deepwalker/internal/analyzer"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	titleColor   = color.New(color.FgRed, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
	warnColor    = color.New(color.FgYellow, color.Bold).SprintFunc()
	summaryColor = color.New(color.FgYellow).SprintFunc()
)

const asciiArt = `     _                                _ _
  __| | ___  ___ _ ____      ____ _| | | _____ _ __
 / _` + "`" + ` |/ _ \/ _ \ '_ \ \ /\ / / _` + "`" + ` | | |/ / _ \ '__|
| (_| |  __/  __/ |_) \ V  V / (_| | |   <  __/ |
 \__,_|\___|\___| .__/ \_/\_/ \__,_|_|_|\_\___|_|
                |_|`

// PrintStartupBanner displays the ASCII art banner with run info.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  <ascii art>
//	  AI-assisted JavaScript security analysis
//	═══════════════════════════════════════════════════
//	  Run:        3f1c9a2e-...
//	  Model:      anthropic/claude-3.5-sonnet
//	  Provider:   replicate
//	  Directory:  ./src
//	═══════════════════════════════════════════════════
func PrintStartupBanner(runID, model, provider, directory string) {
	sep := headerColor("═══════════════════════════════════════════════════")
	fmt.Println(sep)
	fmt.Println(titleColor(asciiArt))
	fmt.Println("  AI-assisted JavaScript security analysis")
	fmt.Println(sep)
	fmt.Printf("  Run:        %s\n", runID)
	fmt.Printf("  Model:      %s\n", model)
	fmt.Printf("  Provider:   %s\n", provider)
	fmt.Printf("  Directory:  %s\n", directory)
	fmt.Println(sep)
}

// PrintSummaryBox displays the end-of-run summary with status counts.
// The failed count is shown in red when non-zero, green otherwise.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	                 ANALYSIS SUMMARY
//	═══════════════════════════════════════════════════
//	  Total files processed:    5
//	  Successfully analyzed:    3
//	  Failed analyses:          1
//	  Skipped files:            1
//	═══════════════════════════════════════════════════
func PrintSummaryBox(counts analyzer.Counts) {
	failedColor := successColor
	if counts.Failed > 0 {
		failedColor = errorColor
	}

	sep := headerColor("═══════════════════════════════════════════════════")
	fmt.Println(sep)
	fmt.Println(summaryColor("                 ANALYSIS SUMMARY"))
	fmt.Println(sep)
	fmt.Printf("  Total files processed:    %s\n", successColor(fmt.Sprintf("%d", counts.Total)))
	fmt.Printf("  Successfully analyzed:    %s\n", successColor(fmt.Sprintf("%d", counts.Completed)))
	fmt.Printf("  Failed analyses:          %s\n", failedColor(fmt.Sprintf("%d", counts.Failed)))
	fmt.Printf("  Skipped files:            %s\n", summaryColor(fmt.Sprintf("%d", counts.Skipped)))
	fmt.Println(sep)
}

// PrintInterruptedBanner displays the notice shown when the user interrupts
// a run. The results collected so far are still written to the report.
func PrintInterruptedBanner() {
	sep := warnColor("═══════════════════════════════════════════════════")
	fmt.Println(sep)
	fmt.Println(warnColor("  ⚠ Analysis interrupted by user"))
	fmt.Println("  Results collected so far are written to the report")
	fmt.Println(sep)
}
