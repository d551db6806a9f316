package generate

import (
	"context"
	"strconv"
	"strings"

	"github.com/matzehuels/licensegraph/pkg/dump"
	"github.com/matzehuels/licensegraph/pkg/graphcsv"
	"github.com/matzehuels/licensegraph/pkg/licenses"
)

// ProjectStats counts what the project stage did.
type ProjectStats struct {
	Rows           int // source rows read
	Written        int // Project nodes written
	Filtered       int // rows rejected by the platform filter
	DualLicensed   int // projects with more than one license (no license edge)
	LicenseEdges   int // Project→License edges written
	UniqueLicenses int // License nodes in the registry after the stage
}

// Skipped returns the rows that produced no Project node.
func (s ProjectStats) Skipped() int { return s.Rows - s.Written }

// Projects writes Project nodes, License nodes and Project→License edges
// from the projects table at source into outDir.
//
// License ids come from reg, which may already hold names; only names
// new to reg produce License nodes. A project whose license column lists
// several comma-separated names is dual-licensed: it keeps its node but
// gets no license edge, since the dump does not say which parts carry
// which license.
func Projects(ctx context.Context, source, outDir string, reg *licenses.Registry, opts Options) (stats ProjectStats, err error) {
	out, err := graphcsv.CreateSet(outDir, graphcsv.Projects, graphcsv.Licenses, graphcsv.ProjectLicenses)
	if err != nil {
		return stats, err
	}
	defer closeInto(&err, out)
	projects, licenseNodes, projectLicenses := out[0], out[1], out[2]

	stats.Rows, err = dump.Scan(ctx, source, dump.ProjectColumns, opts.scan(), func(rec []string) error {
		p := dump.ParseProject(rec)
		if !opts.Filter.Allows(p.ID) {
			stats.Filtered++
			return nil
		}

		if p.Licenses != "" {
			if names := strings.Split(p.Licenses, ","); len(names) == 1 {
				id, added := reg.Assign(names[0])
				licenseID := strconv.Itoa(id)
				if added {
					if err := licenseNodes.WriteLine(licenseID, names[0]); err != nil {
						return err
					}
				}
				if err := projectLicenses.WriteLine(p.ID, licenseID); err != nil {
					return err
				}
				stats.LicenseEdges++
			} else {
				stats.DualLicensed++
			}
		}

		stats.Written++
		return projects.WriteLine(p.ID, p.Platform, graphcsv.Quote(p.Name), p.DependentRepositoriesCount)
	})
	stats.UniqueLicenses = reg.Len()
	if err != nil {
		return stats, err
	}

	opts.logger().Info("generated projects",
		"written", stats.Written,
		"skipped", stats.Skipped(),
		"dual_licensed", stats.DualLicensed,
		"licenses", stats.UniqueLicenses)
	return stats, nil
}
