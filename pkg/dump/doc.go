// Package dump streams the tables of a Libraries.io open-data release.
//
// A release is a directory of large CSV files, one per entity. Only three
// are read here: projects, versions and dependencies. Each file starts
// with a header row, which is skipped. Column positions are fixed per
// table; see [ProjectRow], [VersionRow] and [DependencyRow] for the
// columns that are extracted.
//
// # Reading
//
// [Scan] walks a table row by row and hands each parsed record to a
// callback:
//
//	rows, err := dump.Scan(ctx, path, dump.ProjectColumns, opts, func(rec []string) error {
//	    p := dump.ParseProject(rec)
//	    // ...
//	    return nil
//	})
//
// The record slice is reused between calls; copy anything that must
// outlive the callback.
//
// # Failure
//
// There is no per-row error isolation. A row with fewer columns than the
// table needs aborts the scan with an [errors.ErrCodeMalformedRow] error
// naming the file and record number. A missing file yields
// [errors.ErrCodeFileNotFound].
//
// [errors.ErrCodeMalformedRow]: github.com/matzehuels/licensegraph/pkg/errors.ErrCodeMalformedRow
// [errors.ErrCodeFileNotFound]: github.com/matzehuels/licensegraph/pkg/errors.ErrCodeFileNotFound
package dump
