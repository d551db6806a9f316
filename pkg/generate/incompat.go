package generate

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/matzehuels/licensegraph/pkg/graphcsv"
	"github.com/matzehuels/licensegraph/pkg/licenses"
)

// IncompatibilityStats counts what the license incompatibility stage did.
type IncompatibilityStats struct {
	Licenses        int  // License nodes read back
	Written         int  // edges written
	PermissiveEdges int  // permissive → copyleft edges
	MPLEdges        int  // MPL → LGPL edges
	MissingMPL      bool // the MPL license never appeared
}

// LicenseIncompatibilities reads the licenses table the project stage
// wrote to outDir and writes License→License incompatibility edges
// derived from rules.
func LicenseIncompatibilities(ctx context.Context, outDir string, rules licenses.Rules, opts Options) (stats IncompatibilityStats, err error) {
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	logger := opts.logger()

	reg, err := licenses.ReadRegistry(filepath.Join(outDir, graphcsv.Licenses.DataFile()))
	if err != nil {
		return stats, err
	}
	stats.Licenses = reg.Len()
	logger.Debug("mapped licenses", "count", reg.Len())

	edges, rep := licenses.Incompatibilities(reg, rules)
	stats.PermissiveEdges = rep.PermissiveEdges
	stats.MPLEdges = rep.MPLEdges
	stats.MissingMPL = rep.MissingMPL
	if rep.MissingMPL && rules.MPL != "" {
		logger.Warn("license not found, skipping its LGPL incompatibilities", "license", rules.MPL)
	}

	w, err := graphcsv.Create(outDir, graphcsv.LicenseIncompatibilities)
	if err != nil {
		return stats, err
	}
	defer closeInto(&err, w)

	for _, e := range edges {
		if err := w.WriteLine(strconv.Itoa(e.From), strconv.Itoa(e.To)); err != nil {
			return stats, err
		}
		stats.Written++
	}

	logger.Info("generated license incompatibilities", "written", stats.Written)
	return stats, nil
}
