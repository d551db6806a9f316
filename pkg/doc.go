// Package pkg provides the libraries behind licensegraph, a converter
// from Libraries.io open data dumps to neo4j bulk-import tables.
//
// # Overview
//
// The pkg directory is organized by concern:
//
//  1. [dump] - Reading the Libraries.io source tables
//  2. [graphcsv] - Writing neo4j import tables and import.sh
//  3. [filter], [licenses], [dedup] - Per-run state: platform filter,
//     license registry and rules, dependency pair sets
//  4. [generate] - The conversion stages
//  5. [pipeline] - Orchestration of a full run
//  6. [cache], [errors], [observability], [buildinfo] - Infrastructure
//
// # Data Flow
//
//	projects.csv ──► [filter] ──► platform id set
//	      │                            │
//	      ▼                            ▼
//	[generate] Projects ──► projects, licenses, project-licenses
//	      │
//	      ▼
//	[generate] LicenseIncompatibilities ──► license-incompatibilities
//
//	dependencies.csv ──► [generate] Dependencies ──► project-dependencies,
//	                                                 version-dependencies
//	versions.csv ──► [generate] Versions ──► versions, project-versions
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    SourceDir: "/data/libraries-1.6.0-2020-01-12",
//	    OutputDir: "/data/import",
//	})
//
// [dump]: github.com/matzehuels/licensegraph/pkg/dump
// [graphcsv]: github.com/matzehuels/licensegraph/pkg/graphcsv
// [filter]: github.com/matzehuels/licensegraph/pkg/filter
// [licenses]: github.com/matzehuels/licensegraph/pkg/licenses
// [dedup]: github.com/matzehuels/licensegraph/pkg/dedup
// [generate]: github.com/matzehuels/licensegraph/pkg/generate
// [pipeline]: github.com/matzehuels/licensegraph/pkg/pipeline
// [cache]: github.com/matzehuels/licensegraph/pkg/cache
// [errors]: github.com/matzehuels/licensegraph/pkg/errors
// [observability]: github.com/matzehuels/licensegraph/pkg/observability
// [buildinfo]: github.com/matzehuels/licensegraph/pkg/buildinfo
package pkg
