package analyze

import (
	"cmp"
	"encoding/csv"
	"io"
	"slices"
	"strconv"

	"github.com/matzehuels/licensegraph/pkg/errors"
)

// Finding is one incompatible project paired with one conflicting
// dependency.
type Finding struct {
	Project           string
	ProjectLicense    string
	Dependents        int
	Depth             int
	Dependency        string
	DependencyLicense string
	Through           string // first inherited-from project, empty for direct findings
	Transitive        bool
}

// Findings flattens incs into one row per conflicting dependency, sorted
// by dependents, largest first.
func (r *Result) Findings(incs []*Incompatible) []Finding {
	g := r.Graph
	var out []Finding
	for _, inc := range incs {
		p := inc.Project
		var through string
		if len(inc.Through) > 0 {
			through = inc.Through[0].Name
		}
		for _, w := range inc.With {
			out = append(out, Finding{
				Project:           p.Name,
				ProjectLicense:    g.LicenseName(p.License),
				Dependents:        p.Dependents,
				Depth:             inc.Depth,
				Dependency:        w.Name,
				DependencyLicense: g.LicenseName(w.License),
				Through:           through,
				Transitive:        inc.Transitive(),
			})
		}
	}
	slices.SortStableFunc(out, func(a, b Finding) int {
		if c := cmp.Compare(b.Dependents, a.Dependents); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Project, b.Project); c != 0 {
			return c
		}
		return cmp.Compare(a.Dependency, b.Dependency)
	})
	return out
}

// findingsHeader is the header row WriteFindings writes.
var findingsHeader = []string{
	"project", "projectLicense", "dependentRepositoriesCount", "depth",
	"incompatibleDependency", "dependencyLicense", "through", "transitive",
}

// WriteFindings writes findings to w as RFC 4180 CSV with a header row.
func WriteFindings(w io.Writer, findings []Finding) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(findingsHeader); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write findings")
	}
	for _, f := range findings {
		rec := []string{
			f.Project, f.ProjectLicense, strconv.Itoa(f.Dependents), strconv.Itoa(f.Depth),
			f.Dependency, f.DependencyLicense, f.Through, strconv.FormatBool(f.Transitive),
		}
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write findings")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write findings")
	}
	return nil
}
