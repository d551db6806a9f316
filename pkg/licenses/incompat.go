package licenses

// Edge is a directed incompatibility between two license ids.
type Edge struct {
	From int
	To   int
}

// Report summarizes an Incompatibilities call.
type Report struct {
	PermissiveEdges int  // permissive → copyleft edges
	MPLEdges        int  // MPL → LGPL edges
	MissingMPL      bool // the MPL license is not in the registry
}

// Incompatibilities joins rules against reg. Edges are returned grouped
// by permissive license in rule order, followed by the MPL edges.
func Incompatibilities(reg *Registry, rules Rules) ([]Edge, Report) {
	var (
		edges []Edge
		rep   Report
	)

	for _, p := range rules.Permissive {
		from, ok := reg.ID(p)
		if !ok {
			continue
		}
		if rules.PermissiveVsWeakCopyleft {
			for _, w := range rules.WeakCopyleft {
				if to, ok := reg.ID(w); ok {
					edges = append(edges, Edge{from, to})
					rep.PermissiveEdges++
				}
			}
		}
		for _, s := range rules.StrongCopyleft {
			if to, ok := reg.ID(s); ok {
				edges = append(edges, Edge{from, to})
				rep.PermissiveEdges++
			}
		}
	}

	if rules.MPL == "" {
		return edges, rep
	}
	mpl, ok := reg.ID(rules.MPL)
	if !ok {
		rep.MissingMPL = true
		return edges, rep
	}
	for _, l := range rules.LGPL {
		if to, ok := reg.ID(l); ok {
			edges = append(edges, Edge{mpl, to})
			rep.MPLEdges++
		}
	}
	return edges, rep
}
