package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/licensegraph/pkg/analyze"
	"github.com/matzehuels/licensegraph/pkg/errors"
)

type analyzeFlags struct {
	maxDepth int
	limit    int
	csv      string
}

// analyzeCommand creates the analyze command, which finds license
// conflicts along the dependency graph of a finished run.
func (c *CLI) analyzeCommand() *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze <output-dir>",
		Short: "Find projects that depend on incompatibly licensed projects",
		Long: `Find projects that depend on incompatibly licensed projects.

Reads the tables of a finished run from output-dir. A project is
incompatible when a dependency one or two levels down carries a license
its own license is incompatible with. Projects depending on incompatible
projects are reported as transitive findings, searched upward until no
new project is found or --max-depth is reached.

Version requirements are not checked, so findings are an upper bound.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.maxDepth < 0 || flags.limit < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--max-depth and --limit cannot be negative")
			}
			return c.runAnalyze(cmd.Context(), args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", 0, "stop the transitive search at this depth (0 = no limit)")
	cmd.Flags().IntVar(&flags.limit, "limit", 20, "findings shown per list (0 = all)")
	cmd.Flags().StringVar(&flags.csv, "csv", "", "write every finding to this CSV file")

	return cmd
}

func (c *CLI) runAnalyze(ctx context.Context, dir string, flags analyzeFlags) error {
	opts := analyze.Options{MaxDepth: flags.maxDepth, Logger: c.Logger}

	prog := newProgress(c.Logger)
	g, err := analyze.Load(ctx, dir, opts)
	if err != nil {
		return err
	}
	result, err := analyze.Run(ctx, g, opts)
	if err != nil {
		return err
	}
	prog.done("Analyzed run")

	printAnalysis(result, flags.limit)

	if flags.csv != "" {
		f, err := os.Create(flags.csv)
		if err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "create %s", flags.csv)
		}
		if err := analyze.WriteFindings(f, result.Findings(result.All())); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "close %s", flags.csv)
		}
		printSuccess("Wrote findings")
		printFile(flags.csv)
	}
	return nil
}

// findingRows returns up to limit rows of project, license, dependents,
// depth, dependency and dependency license. Zero means no limit.
func findingRows(findings []analyze.Finding, limit int) [][]string {
	if limit > 0 && len(findings) > limit {
		findings = findings[:limit]
	}
	rows := make([][]string, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, []string{
			f.Project, orNone(f.ProjectLicense), count(f.Dependents),
			strconv.Itoa(f.Depth), f.Dependency, f.DependencyLicense,
		})
	}
	return rows
}

// countRows returns up to limit rows of name, count and share of total.
func countRows(counts []analyze.Count, total, limit int) [][]string {
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Name, count(c.Count), percent(c.Count, total)})
	}
	return rows
}

func percent(n, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", float64(n)/float64(total)*100)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func distributionText(d analyze.Distribution) string {
	if d.N == 0 {
		return "-"
	}
	return fmt.Sprintf("avg %.2f, min %d, max %d, median %.1f, std %.2f", d.Avg, d.Min, d.Max, d.Median, d.Std)
}

func renderTable(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

// printAnalysis prints the aggregate report and the largest findings.
func printAnalysis(r *analyze.Result, limit int) {
	rep := r.Report()

	fmt.Println()
	fmt.Println(StyleTitle.Render("Analysis"))
	printKeyValue("Projects", count(rep.Projects))
	printKeyValue("Candidates", count(rep.Candidates))
	printKeyValue("Incompatible", fmt.Sprintf("%s direct, %s transitive (%.2f%%)",
		count(rep.Direct), count(rep.Transitive), rep.Ratio()))
	if rep.MaxDepth > 0 {
		printKeyValue("Deepest", strconv.Itoa(rep.MaxDepth))
	}
	printKeyValue("Versions", distributionText(rep.Versions))
	printKeyValue("Dependencies", distributionText(rep.Dependencies))
	printKeyValue("Inc. versions", distributionText(rep.IncompatibleVersions))
	printKeyValue("Inc. deps", distributionText(rep.IncompatibleDependencies))
	printKeyValue("Depth", distributionText(rep.Depth))

	if rep.Total() == 0 {
		fmt.Println()
		printSuccess("No incompatible projects")
		return
	}

	fmt.Println()
	fmt.Println(StyleTitle.Render("Licenses"))
	fmt.Println(renderTable([]string{"License", "Projects", "Share"}, countRows(rep.Licenses, rep.Projects, limit)))
	fmt.Println(StyleTitle.Render("Licenses of conflicting dependencies"))
	fmt.Println(renderTable([]string{"License", "Projects", "Share"}, countRows(rep.CauseLicenses, len(rep.Causes), limit)))
	fmt.Println(StyleTitle.Render("Licenses of incompatible projects"))
	fmt.Println(renderTable([]string{"License", "Projects", "Share"}, countRows(rep.IncompatibleLicenses, rep.Total(), limit)))
	fmt.Println(StyleTitle.Render("Conflicting dependencies"))
	fmt.Println(renderTable([]string{"Project", "Causes", "Share"}, countRows(rep.Causes, rep.Total(), limit)))

	findingHeaders := []string{"Project", "License", "Dependents", "Depth", "Conflicts with", "License"}
	fmt.Println(StyleTitle.Render("Incompatible projects"))
	fmt.Println(renderTable(findingHeaders, findingRows(r.Findings(r.Direct), limit)))
	if len(r.Transitive) > 0 {
		fmt.Println(StyleTitle.Render("Transitive incompatible projects"))
		fmt.Println(renderTable(findingHeaders, findingRows(r.Findings(r.Transitive), limit)))
	}
	fmt.Println()
}
