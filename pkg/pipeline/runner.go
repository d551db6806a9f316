package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/licensegraph/pkg/cache"
	"github.com/matzehuels/licensegraph/pkg/dedup"
	"github.com/matzehuels/licensegraph/pkg/dump"
	"github.com/matzehuels/licensegraph/pkg/errors"
	"github.com/matzehuels/licensegraph/pkg/filter"
	"github.com/matzehuels/licensegraph/pkg/generate"
	"github.com/matzehuels/licensegraph/pkg/graphcsv"
	"github.com/matzehuels/licensegraph/pkg/licenses"
	"github.com/matzehuels/licensegraph/pkg/observability"
)

// Runner executes conversion runs with a shared filter cache.
//
// The Runner keeps no state between runs except the cache and logger.
// Everything a run accumulates (license ids, seen dependency pairs) is
// created by Execute and dropped when it returns.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs every stage against opts.SourceDir and writes the import
// tables to opts.OutputDir.
func (r *Runner) Execute(ctx context.Context, opts Options) (result *Result, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result = &Result{RunID: uuid.NewString()}
	hooks := observability.Pipeline()
	hooks.OnRunStart(ctx, result.RunID, opts.SourceDir, opts.OutputDir)
	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
		hooks.OnRunComplete(ctx, result.RunID, result.Duration, err)
	}()

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return result, errors.Wrap(errors.ErrCodeIO, err, "create output directory %s", opts.OutputDir)
	}
	opts.Logger.Debug("starting run", "run", result.RunID, "source", opts.SourceDir, "output", opts.OutputDir)

	gen := opts.generateOptions()

	if opts.Platform != "" {
		err := r.stage(ctx, result, StageFilter, func() (int, int, error) {
			ids, hit, err := r.Filter(ctx, opts)
			result.Filter = FilterStats{Platform: opts.Platform, Projects: ids.Len(), CacheHit: hit}
			gen.Filter = ids
			return ids.Len(), ids.Len(), err
		})
		if err != nil {
			return result, err
		}
		if gen.Filter.Len() == 0 {
			opts.Logger.Warn("no projects on platform, output is unfiltered", "platform", opts.Platform)
		}
	}

	reg := licenses.NewRegistry()
	err = r.stage(ctx, result, StageProjects, func() (int, int, error) {
		s, err := generate.Projects(ctx, opts.Files.ProjectsPath(opts.SourceDir), opts.OutputDir, reg, gen)
		result.Projects = s
		return s.Rows, s.Written, err
	})
	if err != nil {
		return result, err
	}

	err = r.stage(ctx, result, StageLicenses, func() (int, int, error) {
		s, err := generate.LicenseIncompatibilities(ctx, opts.OutputDir, *opts.Rules, gen)
		result.Licenses = s
		return s.Licenses, s.Written, err
	})
	if err != nil {
		return result, err
	}

	pairs, err := r.openPairSet(ctx, opts, result.RunID)
	if err != nil {
		return result, err
	}
	defer func() {
		if cerr := pairs.Close(); cerr != nil {
			opts.Logger.Warn("close pair set", "error", cerr)
		}
	}()

	err = r.stage(ctx, result, StageDependencies, func() (int, int, error) {
		s, err := generate.Dependencies(ctx, opts.Files.DependenciesPath(opts.SourceDir), opts.OutputDir, pairs, gen)
		result.Dependencies = s
		return s.Rows, s.Written, err
	})
	if err != nil {
		return result, err
	}

	err = r.stage(ctx, result, StageVersions, func() (int, int, error) {
		s, err := generate.Versions(ctx, opts.Files.VersionsPath(opts.SourceDir), opts.OutputDir, gen)
		result.Versions = s
		return s.Rows, s.Written, err
	})
	if err != nil {
		return result, err
	}

	if !opts.SkipImportScript {
		path, err := graphcsv.WriteImportScript(opts.OutputDir, opts.Database, graphcsv.All)
		if err != nil {
			return result, err
		}
		result.ImportScript = path
	}

	return result, nil
}

// Filter builds the platform filter for opts, reading and filling the
// runner's cache unless opts.Refresh is set.
func (r *Runner) Filter(ctx context.Context, opts Options) (filter.IDSet, bool, error) {
	r.applyLogger(&opts)
	path := opts.Files.WithDefaults().ProjectsPath(opts.SourceDir)
	scan := dump.Options{Logger: opts.Logger}

	if opts.Refresh {
		ids, err := filter.ByPlatform(ctx, path, opts.Platform, scan)
		return ids, false, err
	}
	return filter.Cached(ctx, r.Cache, path, opts.Platform, scan)
}

// stage runs fn as the named stage, timing it and reporting it to the
// pipeline hooks. fn returns the rows it read and wrote.
func (r *Runner) stage(ctx context.Context, result *Result, name string, fn func() (int, int, error)) error {
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, result.RunID, name)

	start := time.Now()
	rows, written, err := fn()
	elapsed := time.Since(start)

	hooks.OnStageComplete(ctx, result.RunID, name, rows, written, elapsed, err)
	result.Stages = append(result.Stages, StageTiming{Stage: name, Duration: elapsed})
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (r *Runner) openPairSet(ctx context.Context, opts Options, runID string) (dedup.PairSet, error) {
	if opts.Dedup != dedup.BackendRedis {
		return dedup.NewMemorySet(), nil
	}
	set, err := dedup.OpenRedisSet(ctx, opts.RedisAddr, runID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open redis pair set")
	}
	opts.Logger.Debug("using redis pair set", "key", set.Key())
	return set, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
