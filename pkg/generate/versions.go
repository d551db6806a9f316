package generate

import (
	"context"

	"github.com/matzehuels/licensegraph/pkg/dump"
	"github.com/matzehuels/licensegraph/pkg/graphcsv"
)

// VersionStats counts what the version stage did.
type VersionStats struct {
	Rows     int // source rows read
	Written  int // Version nodes (and Project→Version edges) written
	Filtered int // rows whose project is not in the platform filter
}

// Versions writes Version nodes and Project→Version edges from the
// versions table at source into outDir.
func Versions(ctx context.Context, source, outDir string, opts Options) (stats VersionStats, err error) {
	out, err := graphcsv.CreateSet(outDir, graphcsv.Versions, graphcsv.ProjectVersions)
	if err != nil {
		return stats, err
	}
	defer closeInto(&err, out)
	versions, projectVersions := out[0], out[1]

	stats.Rows, err = dump.Scan(ctx, source, dump.VersionColumns, opts.scan(), func(rec []string) error {
		v := dump.ParseVersion(rec)
		if !opts.Filter.Allows(v.ProjectID) {
			stats.Filtered++
			return nil
		}
		if err := versions.WriteLine(v.ID, graphcsv.Quote(v.Number)); err != nil {
			return err
		}
		stats.Written++
		return projectVersions.WriteLine(v.ProjectID, v.ID)
	})
	if err != nil {
		return stats, err
	}

	opts.logger().Info("generated versions", "written", stats.Written, "filtered", stats.Filtered)
	return stats, nil
}
