package generate

import (
	"context"

	"github.com/matzehuels/licensegraph/pkg/dedup"
	"github.com/matzehuels/licensegraph/pkg/dump"
	"github.com/matzehuels/licensegraph/pkg/graphcsv"
)

// AcceptedKinds lists the dependency kinds that count as real
// dependencies. Matching is case-sensitive; development, test and
// optional-feature kinds are deliberately absent.
var AcceptedKinds = map[string]bool{
	"runtime":   true,
	"RUNTIME":   true,
	"compile":   true,
	"COMPILE":   true,
	"provided":  true,
	"normal":    true,
	"build":     true,
	"imports":   true,
	"import":    true,
	"configure": true,
	"depends":   true,
	"system":    true,
}

// DependencyStats counts what the dependency stage did.
type DependencyStats struct {
	Rows              int // source rows read
	Written           int // accepted rows (one Version→Project edge each)
	Cyclic            int // rows depending on their own project
	Optional          int // rows flagged optional
	Filtered          int // rows with neither endpoint in the platform filter
	RejectedKind      int // rows whose kind is not accepted
	Incomplete        int // rows missing a required field
	ProjectEdges      int // distinct Project→Project edges written
	DuplicatePairs    int // accepted rows whose project pair was already written
	NonNumericTargets int // accepted rows whose target id is not all digits
}

// Skipped returns the rows that produced no edge.
func (s DependencyStats) Skipped() int { return s.Rows - s.Written }

// Dependencies writes Version→Project and Project→Project dependency
// edges from the dependencies table at source into outDir.
//
// Rows are rejected, in this order, when they point at their own
// project, are optional, have no endpoint in the filter, have a kind
// outside AcceptedKinds, or lack a project id, target id, version number
// or kind. Every accepted row yields a Version→Project edge. It also
// yields a Project→Project edge when the target id is numeric and pairs
// has not seen the (project, target) pair before.
func Dependencies(ctx context.Context, source, outDir string, pairs dedup.PairSet, opts Options) (stats DependencyStats, err error) {
	out, err := graphcsv.CreateSet(outDir, graphcsv.ProjectDependencies, graphcsv.VersionDependencies)
	if err != nil {
		return stats, err
	}
	defer closeInto(&err, out)
	projectDeps, versionDeps := out[0], out[1]

	stats.Rows, err = dump.Scan(ctx, source, dump.DependencyColumns, opts.scan(), func(rec []string) error {
		d := dump.ParseDependency(rec)

		switch {
		case d.ProjectID == d.DependencyProjectID:
			stats.Cyclic++
			return nil
		case d.Optional == "true":
			stats.Optional++
			return nil
		case !opts.Filter.AllowsAny(d.ProjectID, d.DependencyProjectID):
			stats.Filtered++
			return nil
		case !AcceptedKinds[d.Kind]:
			stats.RejectedKind++
			return nil
		case d.ProjectID == "" || d.DependencyProjectID == "" || d.VersionNumber == "" || d.Kind == "":
			stats.Incomplete++
			return nil
		}

		stats.Written++
		if err := versionDeps.WriteLine(d.VersionID, graphcsv.Quote(d.Requirement), d.DependencyProjectID); err != nil {
			return err
		}

		if !isNumeric(d.DependencyProjectID) {
			stats.NonNumericTargets++
			return nil
		}
		added, err := pairs.Add(ctx, d.ProjectID, d.DependencyProjectID)
		if err != nil {
			return err
		}
		if !added {
			stats.DuplicatePairs++
			return nil
		}
		stats.ProjectEdges++
		return projectDeps.WriteLine(d.ProjectID, d.DependencyProjectID)
	})
	if err != nil {
		return stats, err
	}

	opts.logger().Info("generated dependencies",
		"written", stats.Written,
		"skipped", stats.Skipped(),
		"project_edges", stats.ProjectEdges,
		"cyclic", stats.Cyclic,
		"optional", stats.Optional)
	return stats, nil
}

// isNumeric reports whether s is a non-empty run of ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
