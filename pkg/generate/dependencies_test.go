package generate

import (
	"context"
	"testing"

	"github.com/matzehuels/licensegraph/pkg/dedup"
)

func runDependencies(t *testing.T, opts Options, rows ...depRow) (DependencyStats, string) {
	t.Helper()
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.String()
	}
	src := writeSource(t, "dependencies.csv", lines...)
	out := t.TempDir()

	stats, err := Dependencies(context.Background(), src, out, dedup.NewMemorySet(), opts)
	if err != nil {
		t.Fatalf("Dependencies() error: %v", err)
	}
	return stats, out
}

func TestDependenciesSkipReasons(t *testing.T) {
	selfLoop := validDep("5", "100", "5")
	optional := validDep("5", "101", "6")
	optional.optional = "true"
	devKind := validDep("5", "102", "6")
	devKind.kind = "development"
	lowerKind := validDep("5", "103", "6")
	lowerKind.kind = "Runtime"
	noVersion := validDep("5", "104", "6")
	noVersion.versionNumber = ""
	noTarget := validDep("5", "105", "")
	noProject := validDep("", "106", "6")

	tests := []struct {
		name string
		row  depRow
		want DependencyStats
	}{
		{"self loop", selfLoop, DependencyStats{Rows: 1, Cyclic: 1}},
		{"optional", optional, DependencyStats{Rows: 1, Optional: 1}},
		{"development kind", devKind, DependencyStats{Rows: 1, RejectedKind: 1}},
		{"kind is case sensitive", lowerKind, DependencyStats{Rows: 1, RejectedKind: 1}},
		{"missing version number", noVersion, DependencyStats{Rows: 1, Incomplete: 1}},
		{"missing target", noTarget, DependencyStats{Rows: 1, Incomplete: 1}},
		{"missing project", noProject, DependencyStats{Rows: 1, Incomplete: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, out := runDependencies(t, quietOpts(), tt.row)
			if stats != tt.want {
				t.Errorf("stats = %+v, want %+v", stats, tt.want)
			}
			assertLines(t, out, "version-dependencies.csv")
			assertLines(t, out, "project-dependencies.csv")
		})
	}
}

func TestDependenciesCheckOrder(t *testing.T) {
	// A self loop that is also optional counts as cyclic only.
	row := validDep("9", "1", "9")
	row.optional = "true"
	row.kind = "test"

	stats, _ := runDependencies(t, quietOpts(), row)
	if stats.Cyclic != 1 || stats.Optional != 0 || stats.RejectedKind != 0 {
		t.Errorf("stats = %+v, want only Cyclic", stats)
	}

	// Optional wins over a filter rejection.
	row = validDep("1", "2", "3")
	row.optional = "true"
	stats, _ = runDependencies(t, quietOpts("42"), row)
	if stats.Optional != 1 || stats.Filtered != 0 {
		t.Errorf("stats = %+v, want only Optional", stats)
	}
}

func TestDependenciesThreeRowFixture(t *testing.T) {
	selfLoop := validDep("3", "30", "3")
	optional := validDep("3", "31", "8")
	optional.optional = "true"
	valid := depRow{"3", "2.1.0", "32", "runtime", "false", `>= 1.0 "beta"`, "7"}

	stats, out := runDependencies(t, quietOpts(), selfLoop, optional, valid)

	assertLines(t, out, "project-dependencies.csv", "3,7")
	assertLines(t, out, "version-dependencies.csv", `32,">= 1.0 'beta'",7`)

	if stats.Cyclic != 1 || stats.Optional != 1 {
		t.Errorf("Cyclic = %d, Optional = %d, want 1 and 1", stats.Cyclic, stats.Optional)
	}
	if stats.Written != 1 || stats.ProjectEdges != 1 || stats.Skipped() != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestDependenciesDedupPairs(t *testing.T) {
	stats, out := runDependencies(t, quietOpts(),
		validDep("1", "10", "2"),
		validDep("1", "11", "2"),
		validDep("1", "12", "3"),
		validDep("2", "20", "1"),
		validDep("1", "13", "2"),
	)

	assertLines(t, out, "project-dependencies.csv", "1,2", "1,3", "2,1")
	if got := len(readLines(t, out, "version-dependencies.csv")); got != 5 {
		t.Errorf("version edges = %d, want 5", got)
	}
	if stats.ProjectEdges != 3 || stats.DuplicatePairs != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestDependenciesNonNumericTarget(t *testing.T) {
	stats, out := runDependencies(t, quietOpts(), validDep("1", "10", "abc"))

	assertLines(t, out, "version-dependencies.csv", `10,"^1.0",abc`)
	assertLines(t, out, "project-dependencies.csv")
	if stats.NonNumericTargets != 1 || stats.ProjectEdges != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestDependenciesFilter(t *testing.T) {
	stats, out := runDependencies(t, quietOpts("42"),
		validDep("1", "10", "2"),  // neither endpoint in the filter
		validDep("42", "11", "2"), // source matches
		validDep("1", "12", "42"), // target matches
	)

	assertLines(t, out, "project-dependencies.csv", "42,2", "1,42")
	if stats.Filtered != 1 || stats.Written != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestDependenciesSharedPairSet(t *testing.T) {
	pairs := dedup.NewMemorySet()
	if _, err := pairs.Add(context.Background(), "1", "2"); err != nil {
		t.Fatal(err)
	}
	src := writeSource(t, "dependencies.csv", validDep("1", "10", "2").String())
	out := t.TempDir()

	stats, err := Dependencies(context.Background(), src, out, pairs, quietOpts())
	if err != nil {
		t.Fatal(err)
	}
	if stats.ProjectEdges != 0 || stats.DuplicatePairs != 1 {
		t.Errorf("stats = %+v, want the pre-seeded pair to be a duplicate", stats)
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"1234567890", true},
		{"", false},
		{"-1", false},
		{"1.5", false},
		{"12a", false},
		{"١٢", false},
		{" 1", false},
	}
	for _, tt := range tests {
		if got := isNumeric(tt.in); got != tt.want {
			t.Errorf("isNumeric(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
