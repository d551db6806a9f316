package analyze

import (
	"context"
	"slices"
)

// directDepth is the longest dependency path checked for direct
// incompatibilities.
const directDepth = 2

// Incompatible is a project found to conflict with one or more of its
// dependencies.
type Incompatible struct {
	Project *Project
	Depth   int

	// With lists the projects whose license conflicts, ordered by id.
	With []*Project

	// Through lists the incompatible dependencies a transitive finding
	// inherits from. It is empty for direct findings.
	Through []*Project
}

// Transitive reports whether the conflict was inherited.
func (i *Incompatible) Transitive() bool { return len(i.Through) > 0 }

// Result is the outcome of Run.
type Result struct {
	Graph *Graph

	// Candidates counts projects on a dependency path of length one or
	// two between incompatible licenses, endpoints included.
	Candidates int

	// Direct and Transitive are in project file order.
	Direct     []*Incompatible
	Transitive []*Incompatible

	// MaxDepth is the deepest transitive round that found a project.
	MaxDepth int
}

// Run analyzes g. It fails only when ctx is done.
func Run(ctx context.Context, g *Graph, opts Options) (*Result, error) {
	logger := opts.logger()
	r := &Result{Graph: g}

	found, err := r.findDirect(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("found direct incompatibilities", "projects", len(r.Direct), "candidates", r.Candidates)

	if err := r.findTransitive(ctx, found, opts.MaxDepth); err != nil {
		return nil, err
	}
	logger.Info("found transitive incompatibilities", "projects", len(r.Transitive), "depth", r.MaxDepth)
	return r, nil
}

func (r *Result) findDirect(ctx context.Context) (map[string]*Incompatible, error) {
	g := r.Graph
	found := make(map[string]*Incompatible)
	candidates := make(map[string]bool)

	for i, id := range g.order {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		p := g.projects[id]
		if len(g.incompatible[p.License]) == 0 {
			continue
		}

		depth := make(map[string]int) // conflicting dependency → shortest path
		var walk func(from string, path []string)
		walk = func(from string, path []string) {
			for _, next := range g.deps[from] {
				hop := append(slices.Clip(path), next)
				if q := g.projects[next]; q != nil && g.Incompatible(p.License, q.License) {
					if d, ok := depth[next]; !ok || len(hop) < d {
						depth[next] = len(hop)
					}
					candidates[id] = true
					for _, c := range hop {
						candidates[c] = true
					}
				}
				if len(hop) < directDepth {
					walk(next, hop)
				}
			}
		}
		walk(id, nil)
		if len(depth) == 0 {
			continue
		}

		inc := &Incompatible{Project: p, Depth: directDepth}
		for dep, d := range depth {
			inc.With = append(inc.With, g.projects[dep])
			inc.Depth = min(inc.Depth, d)
		}
		sortByID(inc.With)
		found[id] = inc
		r.Direct = append(r.Direct, inc)
	}

	r.Candidates = len(candidates)
	return found, nil
}

// findTransitive walks up from the direct findings. Each round collects
// the unexplored dependents of the previous round's projects.
func (r *Result) findTransitive(ctx context.Context, direct map[string]*Incompatible, maxDepth int) error {
	g := r.Graph
	explored := make(map[string]bool)
	frontier := direct

	for depth := directDepth + 1; len(frontier) > 0; depth++ {
		if maxDepth > 0 && depth > maxDepth {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		next := make(map[string]*Incompatible)
		for _, id := range sortedKeys(frontier) {
			for _, parent := range g.dependents[id] {
				p := g.projects[parent]
				if p == nil || direct[parent] != nil || explored[parent] {
					continue
				}
				inc := next[parent]
				if inc == nil {
					inc = &Incompatible{Project: p, Depth: depth}
					next[parent] = inc
				}
				inc.Through = append(inc.Through, frontier[id].Project)
				inc.With = append(inc.With, frontier[id].With...)
			}
		}

		for _, id := range sortedKeys(next) {
			inc := next[id]
			explored[id] = true
			sortByID(inc.Through)
			inc.Through = slices.Compact(inc.Through)
			sortByID(inc.With)
			inc.With = slices.Compact(inc.With)
		}
		if len(next) > 0 {
			r.MaxDepth = depth
		}
		frontier = next
		r.Transitive = append(r.Transitive, r.inOrder(next)...)
	}
	return nil
}

// All returns direct findings followed by transitive ones.
func (r *Result) All() []*Incompatible {
	return append(slices.Clone(r.Direct), r.Transitive...)
}

func (r *Result) inOrder(m map[string]*Incompatible) []*Incompatible {
	out := make([]*Incompatible, 0, len(m))
	for _, id := range r.Graph.order {
		if inc := m[id]; inc != nil {
			out = append(out, inc)
		}
	}
	return out
}

func sortedKeys(m map[string]*Incompatible) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareIDs)
	return keys
}

func sortByID(ps []*Project) {
	slices.SortFunc(ps, func(a, b *Project) int { return compareIDs(a.ID, b.ID) })
}

// compareIDs orders numeric ids numerically and falls back to string
// order.
func compareIDs(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
