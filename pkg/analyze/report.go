package analyze

import (
	"cmp"
	"math"
	"slices"
)

// Distribution summarizes a set of counts.
type Distribution struct {
	N      int
	Min    int
	Max    int
	Avg    float64
	Median float64
	Std    float64 // sample standard deviation
}

func distribution(values []int) Distribution {
	d := Distribution{N: len(values)}
	if d.N == 0 {
		return d
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	d.Min, d.Max = sorted[0], sorted[d.N-1]

	sum := 0
	for _, v := range sorted {
		sum += v
	}
	d.Avg = float64(sum) / float64(d.N)

	if d.N%2 == 1 {
		d.Median = float64(sorted[d.N/2])
	} else {
		d.Median = float64(sorted[d.N/2-1]+sorted[d.N/2]) / 2
	}

	if d.N > 1 {
		var sq float64
		for _, v := range sorted {
			sq += (float64(v) - d.Avg) * (float64(v) - d.Avg)
		}
		d.Std = math.Sqrt(sq / float64(d.N-1))
	}
	return d
}

// Count is a name with a number of projects.
type Count struct {
	Name  string
	Count int
}

// sortCounts orders by count, largest first, then by name.
func sortCounts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for name, n := range m {
		out = append(out, Count{name, n})
	}
	slices.SortFunc(out, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// Report holds the aggregate numbers of a Result.
type Report struct {
	Projects   int
	Candidates int
	Direct     int
	Transitive int
	MaxDepth   int

	Versions                 Distribution // per project with versions
	Dependencies             Distribution // per project with dependencies
	IncompatibleVersions     Distribution
	IncompatibleDependencies Distribution
	Depth                    Distribution // of incompatible projects

	// Causes counts, per conflicting dependency, the incompatible
	// projects it causes.
	Causes []Count

	Licenses             []Count // projects per license
	CauseLicenses        []Count // conflicting dependencies per license
	IncompatibleLicenses []Count // incompatible projects per license
}

// Total returns the number of direct and transitive findings.
func (r Report) Total() int { return r.Direct + r.Transitive }

// Ratio returns the share of incompatible projects in percent.
func (r Report) Ratio() float64 {
	if r.Projects == 0 {
		return 0
	}
	return float64(r.Total()) / float64(r.Projects) * 100
}

// Report aggregates r.
func (r *Result) Report() Report {
	g := r.Graph
	rep := Report{
		Projects:   g.Len(),
		Candidates: r.Candidates,
		Direct:     len(r.Direct),
		Transitive: len(r.Transitive),
		MaxDepth:   r.MaxDepth,
	}

	var versions, deps []int
	usage := make(map[string]int)
	for _, id := range g.order {
		p := g.projects[id]
		if p.Versions > 0 {
			versions = append(versions, p.Versions)
		}
		if n := len(g.deps[id]); n > 0 {
			deps = append(deps, n)
		}
		if p.License != NoLicense {
			usage[g.LicenseName(p.License)]++
		}
	}
	rep.Versions = distribution(versions)
	rep.Dependencies = distribution(deps)
	rep.Licenses = sortCounts(usage)

	var incVersions, incDeps, depths []int
	causes := make(map[string]int)
	causing := make(map[string]int) // license → distinct conflicting dependencies
	seenCause := make(map[string]bool)
	incLicenses := make(map[string]int)
	for _, inc := range r.All() {
		p := inc.Project
		if p.Versions > 0 {
			incVersions = append(incVersions, p.Versions)
		}
		if n := len(g.deps[p.ID]); n > 0 {
			incDeps = append(incDeps, n)
		}
		depths = append(depths, inc.Depth)
		if p.License != NoLicense {
			incLicenses[g.LicenseName(p.License)]++
		}

		for _, w := range inc.With {
			causes[w.Name]++
			if !seenCause[w.ID] {
				seenCause[w.ID] = true
				causing[g.LicenseName(w.License)]++
			}
		}
	}
	rep.IncompatibleVersions = distribution(incVersions)
	rep.IncompatibleDependencies = distribution(incDeps)
	rep.Depth = distribution(depths)
	rep.Causes = sortCounts(causes)
	rep.CauseLicenses = sortCounts(causing)
	rep.IncompatibleLicenses = sortCounts(incLicenses)
	return rep
}
