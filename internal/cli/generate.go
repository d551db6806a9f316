package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/licensegraph/pkg/dedup"
	"github.com/matzehuels/licensegraph/pkg/licenses"
	"github.com/matzehuels/licensegraph/pkg/pipeline"
)

// generateFlags holds the root command's flags.
type generateFlags struct {
	cutoff         int
	rules          string
	dedup          string
	redisAddr      string
	database       string
	noCache        bool
	refresh        bool
	noImportScript bool
}

// generateCommand creates the root command, which runs a conversion.
func (c *CLI) generateCommand() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "licensegraph <source-dir> <output-dir> [platform]",
		Short: "Convert a Libraries.io dump into neo4j import tables",
		Long: `Convert a Libraries.io open data dump into CSV tables for neo4j-admin import.

source-dir must hold the projects, versions and dependencies tables of the
dump. Tables for Project, Version and License nodes and their relationships
are written to output-dir, together with an import.sh that loads them.

Pass a platform (for example NPM or Pypi, matched exactly) to keep only
projects of that package manager and the rows that refer to them.

Examples:
  licensegraph ./libraries-1.6.0-2020-01-12 ./import
  licensegraph ./libraries-1.6.0-2020-01-12 ./import-npm NPM
  licensegraph --cutoff 100000 ./dump ./sample Pypi`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return cmd.Usage()
			}
			return c.runGenerate(cmd.Context(), args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.cutoff, "cutoff", 0, "read at most N rows from each table (0 reads all)")
	cmd.Flags().StringVar(&flags.rules, "rules", "", "TOML file overriding the license category rules")
	cmd.Flags().StringVar(&flags.dedup, "dedup", dedup.BackendMemory, "dependency pair set: memory or redis")
	cmd.Flags().StringVar(&flags.redisAddr, "redis-addr", os.Getenv(redisAddrEnv), "redis address for --dedup=redis (env "+redisAddrEnv+")")
	cmd.Flags().StringVar(&flags.database, "database", pipeline.DefaultDatabase, "neo4j database name used in import.sh")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the platform filter cache")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "rebuild the platform filter even if cached")
	cmd.Flags().BoolVar(&flags.noImportScript, "no-import-script", false, "do not write import.sh")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, args []string, flags generateFlags) error {
	opts := pipeline.Options{
		SourceDir:        args[0],
		OutputDir:        args[1],
		Cutoff:           flags.cutoff,
		Dedup:            flags.dedup,
		RedisAddr:        flags.redisAddr,
		Database:         flags.database,
		Refresh:          flags.refresh,
		SkipImportScript: flags.noImportScript,
		Logger:           c.Logger,
	}
	if len(args) > 2 {
		opts.Platform = args[2]
	}
	if flags.rules != "" {
		rules, err := licenses.LoadRules(flags.rules)
		if err != nil {
			return err
		}
		opts.Rules = &rules
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("Converted dump")

	printSummary(result)
	printSuccess("Wrote import tables to %s", opts.OutputDir)
	if result.ImportScript != "" {
		printFile(result.ImportScript)
		printNextStep("Load into neo4j", "sh "+result.ImportScript)
	}
	printNextStep("Find incompatible projects", appName+" analyze "+opts.OutputDir)
	return nil
}
