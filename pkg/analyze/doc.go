// Package analyze finds projects whose license conflicts with the license
// of a project they depend on, using the tables a finished run wrote.
//
// # Overview
//
// The analysis works on the project level graph: Project nodes, their
// single license (HAS_LICENSE), deduplicated PROJECT_DEPENDS_ON edges and
// the License→License IS_INCOMPATIBLE_WITH table. It runs in two phases.
//
// Direct incompatibilities: a project is incompatible when a dependency
// reached through one or two PROJECT_DEPENDS_ON hops carries a license its
// own license is incompatible with. The project's depth is the shortest
// such path. Every project on a matching path counts as a candidate.
//
// Transitive incompatibilities: a project that depends on an incompatible
// project, and is not incompatible itself, inherits that project's
// conflicts. The search repeats upward, one dependency level per round,
// until a round finds nothing new. Depths continue from 3.
//
// # Usage
//
//	g, err := analyze.Load(ctx, outputDir, analyze.Options{Logger: logger})
//	if err != nil {
//	    return err
//	}
//	result, err := analyze.Run(ctx, g, analyze.Options{Logger: logger})
//	if err != nil {
//	    return err
//	}
//	report := result.Report()
//
// Version requirements are not evaluated. A dependency counts when any
// version of the project depends on it, so the result is an upper bound
// on what a requirement-aware check would report.
package analyze
