// Package graphcsv writes node and relationship tables in the layout
// expected by neo4j-admin bulk import.
//
// Every table is a pair of files in the output directory: a one-line
// header file (<name>_header.csv) and a data file (<name>.csv). Header
// fields use the import tool's typed-id convention:
//
//	projectId:ID(Project),platform,name,dependentRepositoriesCount
//	projectId:START_ID(Project),licenseId:END_ID(License)
//
// Data lines are written verbatim. String fields that may contain commas
// are wrapped with [Quote], which swaps double quotes for single quotes
// instead of escaping them. Downstream imports depend on that exact rule,
// so it is not RFC 4180 escaping.
package graphcsv
