// Package generate holds the conversion stages that turn Libraries.io
// tables into graph import tables.
//
// Each stage reads one source table (or, for license incompatibilities,
// a table written by an earlier stage), writes one or more tables from
// [graphcsv], and returns counters describing what it kept and skipped.
// Stages do not share state with each other except through arguments:
// the platform [filter.IDSet] in [Options], the [licenses.Registry] the
// project stage fills, and the [dedup.PairSet] the dependency stage
// checks. The caller owns all three.
//
// Stages are single-pass and abort on the first malformed row or write
// error. Output written before the failure is left in place.
//
// [filter.IDSet]: github.com/matzehuels/licensegraph/pkg/filter.IDSet
// [licenses.Registry]: github.com/matzehuels/licensegraph/pkg/licenses.Registry
// [dedup.PairSet]: github.com/matzehuels/licensegraph/pkg/dedup.PairSet
// [graphcsv]: github.com/matzehuels/licensegraph/pkg/graphcsv
package generate
