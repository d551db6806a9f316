// Package pipeline runs the complete Libraries.io to graph-import
// conversion.
//
// This package wires the stages from [generate] into one run that the
// CLI (and anything else embedding the converter) can call. It owns the
// per-run state the stages share: the platform filter, the license
// registry and the dependency pair set.
//
// # Stages
//
// A run executes, in order:
//
//  1. Filter: collect the project ids of one platform (only when a
//     platform is given)
//  2. Projects: Project and License nodes, Project→License edges
//  3. License incompatibilities: License→License edges
//  4. Dependencies: Version→Project and Project→Project edges
//  5. Versions: Version nodes and Project→Version edges
//
// Stages run one after another on the calling goroutine. The first error
// stops the run; tables written by earlier stages are left in place.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    SourceDir: "/data/libraries-1.6.0-2020-01-12",
//	    OutputDir: "/data/import",
//	    Platform:  "NPM",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Dependencies.ProjectEdges)
//
// [generate]: github.com/matzehuels/licensegraph/pkg/generate
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/licensegraph/pkg/dedup"
	"github.com/matzehuels/licensegraph/pkg/dump"
	"github.com/matzehuels/licensegraph/pkg/errors"
	"github.com/matzehuels/licensegraph/pkg/generate"
	"github.com/matzehuels/licensegraph/pkg/licenses"
)

// Stage names, as passed to observability hooks and stored in
// [StageTiming].
const (
	StageFilter       = "filter"
	StageProjects     = "projects"
	StageLicenses     = "license-incompatibilities"
	StageDependencies = "dependencies"
	StageVersions     = "versions"
)

// DefaultDatabase is the neo4j database name written into import.sh.
const DefaultDatabase = "neo4j"

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options configures one conversion run.
type Options struct {
	// SourceDir holds the Libraries.io tables named by Files.
	SourceDir string

	// OutputDir receives the import tables. It is created if missing.
	OutputDir string

	// Platform restricts the output to projects of one package manager.
	// Empty converts every platform.
	Platform string

	// Cutoff limits how many rows each generator reads. Zero reads all.
	Cutoff int

	// Files names the source tables. Empty names use the 1.6.0 release.
	Files dump.Files

	// Rules drives the license incompatibility stage. Nil uses
	// licenses.DefaultRules.
	Rules *licenses.Rules

	// Dedup selects the pair set backend: "memory" (default) or "redis".
	Dedup string

	// RedisAddr is the Redis server for the redis backend, as host:port
	// or a redis:// URL.
	RedisAddr string

	// Database is the neo4j database import.sh loads into.
	Database string

	// SkipImportScript disables writing import.sh.
	SkipImportScript bool

	// Refresh ignores a cached platform filter and rebuilds it.
	Refresh bool

	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateSourceDir(o.SourceDir); err != nil {
		return err
	}
	if err := errors.ValidateOutputDir(o.OutputDir); err != nil {
		return err
	}
	if o.Platform != "" {
		if err := errors.ValidatePlatformName(o.Platform); err != nil {
			return err
		}
	}
	if o.Cutoff < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cutoff cannot be negative: %d", o.Cutoff)
	}

	backend, err := dedup.Parse(o.Dedup)
	if err != nil {
		return err
	}
	o.Dedup = backend
	if o.Dedup == dedup.BackendRedis && o.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "redis dedup backend needs a redis address")
	}

	if o.Rules == nil {
		rules := licenses.DefaultRules()
		o.Rules = &rules
	} else if err := o.Rules.Validate(); err != nil {
		return err
	}

	o.Files = o.Files.WithDefaults()
	if o.Database == "" {
		o.Database = DefaultDatabase
	}
	if err := errors.ValidateDatabaseName(o.Database); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// generateOptions returns the options shared by every generator.
func (o *Options) generateOptions() generate.Options {
	return generate.Options{Cutoff: o.Cutoff, Logger: o.Logger}
}

// =============================================================================
// Result
// =============================================================================

// FilterStats describes the platform filter of a run.
type FilterStats struct {
	Platform string // empty when no filter was applied
	Projects int    // ids in the filter
	CacheHit bool   // whether the ids came from the cache
}

// StageTiming records how long one stage took.
type StageTiming struct {
	Stage    string
	Duration time.Duration
}

// Result contains the outcome of a run.
type Result struct {
	// RunID identifies the run in logs, hooks and the Redis key space.
	RunID string

	Filter       FilterStats
	Projects     generate.ProjectStats
	Licenses     generate.IncompatibilityStats
	Dependencies generate.DependencyStats
	Versions     generate.VersionStats

	// ImportScript is the path of the written import.sh, if any.
	ImportScript string

	// Stages lists the stages that ran, in order.
	Stages []StageTiming

	// Duration is the wall time of the whole run.
	Duration time.Duration
}
