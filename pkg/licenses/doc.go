// Package licenses assigns ids to license names and derives license
// incompatibility edges from a hand-maintained category table.
//
// # Registry
//
// [Registry] hands out dense integer ids, starting at 0, in the order
// names are first seen. The project stage owns one registry per run and
// writes it out as licenses.csv; [ReadRegistry] loads that file back for
// the incompatibility stage.
//
// # Rules
//
// [DefaultRules] groups SPDX names into permissive, weak-copyleft,
// strong-copyleft and LGPL lists. [Incompatibilities] joins them against
// a registry:
//
//   - every permissive license is incompatible with every strong-copyleft
//     license (optionally also with every weak-copyleft license)
//   - MPL-1.1 is incompatible with every LGPL variant
//
// Only names present in the registry produce edges. The table is not an
// authoritative compatibility matrix; it covers the common cases seen in
// package registries. [LoadRules] reads a TOML file that overrides any
// part of it.
package licenses
