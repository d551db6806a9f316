package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/licensegraph/pkg/errors"
	"github.com/matzehuels/licensegraph/pkg/graphcsv"
	"github.com/matzehuels/licensegraph/pkg/licenses"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// licensesCommand creates the licenses command, which renders the
// incompatibility graph written by a previous run.
func (c *CLI) licensesCommand() *cobra.Command {
	var (
		format string
		output string
		rules  string
	)

	cmd := &cobra.Command{
		Use:   "licenses <output-dir>",
		Short: "Render the license incompatibility graph of a finished run",
		Long: `Render the license incompatibility graph of a finished run.

Reads licenses.csv and license-incompatibilities.csv from output-dir and
draws every license that takes part in an incompatibility, colored by
category. Use --format dot to get the Graphviz source instead of SVG.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatDOT && format != formatSVG {
				return fmt.Errorf("invalid format: %q (must be one of: svg, dot)", format)
			}
			return c.runLicenses(cmd.Context(), cmd.OutOrStdout(), args[0], format, output, rules)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: svg or dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default: <output-dir>/license-incompatibilities.<format>)")
	cmd.Flags().StringVar(&rules, "rules", "", "TOML rules file used to color categories")

	return cmd
}

func (c *CLI) runLicenses(ctx context.Context, stdout io.Writer, dir, format, output, rulesPath string) error {
	logger := loggerFromContext(ctx)

	rules := licenses.DefaultRules()
	if rulesPath != "" {
		var err error
		if rules, err = licenses.LoadRules(rulesPath); err != nil {
			return err
		}
	}

	reg, err := licenses.ReadRegistry(filepath.Join(dir, graphcsv.Licenses.DataFile()))
	if err != nil {
		return err
	}
	edges, err := licenses.ReadEdges(filepath.Join(dir, graphcsv.LicenseIncompatibilities.DataFile()))
	if err != nil {
		return err
	}
	logger.Debug("loaded license graph", "licenses", reg.Len(), "edges", len(edges))

	data := []byte(licenses.ToDOT(reg, edges, rules))
	if format == formatSVG {
		if data, err = licenses.RenderSVG(ctx, string(data)); err != nil {
			return err
		}
	}

	if output == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if output == "" {
		output = filepath.Join(dir, graphcsv.LicenseIncompatibilities.Name+"."+format)
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", output)
	}

	printSuccess("Rendered %d incompatibilities", len(edges))
	printFile(output)
	return nil
}
