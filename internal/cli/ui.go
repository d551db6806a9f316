package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/licensegraph/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Run Summary
// =============================================================================

// count formats n with thousands separators.
func count(n int) string {
	return humanize.Comma(int64(n))
}

// summaryRows returns one table row per stage that ran:
// stage, rows read, rows written, rows skipped, duration.
func summaryRows(r *pipeline.Result) [][]string {
	durations := make(map[string]time.Duration, len(r.Stages))
	for _, s := range r.Stages {
		durations[s.Stage] = s.Duration
	}

	var rows [][]string
	add := func(stage string, read, written, skipped int) {
		d, ok := durations[stage]
		if !ok {
			return
		}
		rows = append(rows, []string{stage, count(read), count(written), count(skipped), d.Round(time.Millisecond).String()})
	}

	add(pipeline.StageFilter, r.Filter.Projects, r.Filter.Projects, 0)
	add(pipeline.StageProjects, r.Projects.Rows, r.Projects.Written, r.Projects.Skipped())
	add(pipeline.StageLicenses, r.Licenses.Licenses, r.Licenses.Written, 0)
	add(pipeline.StageDependencies, r.Dependencies.Rows, r.Dependencies.Written, r.Dependencies.Skipped())
	add(pipeline.StageVersions, r.Versions.Rows, r.Versions.Written, r.Versions.Filtered)
	return rows
}

// printSummary prints the per-stage table and the notable counters of a run.
func printSummary(r *pipeline.Result) {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	numberStyle := cellStyle.Foreground(colorWhite).Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Stage", "Read", "Written", "Skipped", "Time").
		Rows(summaryRows(r)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		})

	fmt.Println()
	fmt.Println(StyleTitle.Render("Summary"))
	fmt.Println(t.String())

	printKeyValue("Run", r.RunID)
	if r.Filter.Platform != "" {
		cached := "fresh"
		if r.Filter.CacheHit {
			cached = "cached"
		}
		printKeyValue("Platform", fmt.Sprintf("%s (%s projects, %s)", r.Filter.Platform, count(r.Filter.Projects), cached))
	}
	printKeyValue("Licenses", fmt.Sprintf("%s unique, %s dual-licensed projects",
		count(r.Projects.UniqueLicenses), count(r.Projects.DualLicensed)))
	printKeyValue("Project deps", fmt.Sprintf("%s edges, %s duplicate pairs",
		count(r.Dependencies.ProjectEdges), count(r.Dependencies.DuplicatePairs)))
	printKeyValue("Skipped deps", fmt.Sprintf("%s cyclic, %s optional, %s filtered, %s kind, %s incomplete",
		count(r.Dependencies.Cyclic), count(r.Dependencies.Optional), count(r.Dependencies.Filtered),
		count(r.Dependencies.RejectedKind), count(r.Dependencies.Incomplete)))
	printKeyValue("Total time", r.Duration.Round(time.Millisecond).String())

	if r.Licenses.MissingMPL {
		printWarning("MPL license not in the dump; MPL/LGPL incompatibilities were skipped")
	}
	if r.Filter.Platform != "" && r.Filter.Projects == 0 {
		printWarning("No projects on platform %s; output is unfiltered", r.Filter.Platform)
	}
	fmt.Println()
}
