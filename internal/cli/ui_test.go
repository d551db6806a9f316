package cli

import (
	"testing"
	"time"

	"github.com/matzehuels/licensegraph/pkg/analyze"
	"github.com/matzehuels/licensegraph/pkg/generate"
	"github.com/matzehuels/licensegraph/pkg/pipeline"
)

func TestCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := count(tt.n); got != tt.want {
			t.Errorf("count(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestSummaryRows(t *testing.T) {
	r := &pipeline.Result{
		Projects:     generate.ProjectStats{Rows: 1500, Written: 1200, Filtered: 300},
		Dependencies: generate.DependencyStats{Rows: 10, Written: 4},
		Stages: []pipeline.StageTiming{
			{Stage: pipeline.StageProjects, Duration: 1500 * time.Millisecond},
			{Stage: pipeline.StageDependencies, Duration: time.Second},
		},
	}

	rows := summaryRows(r)
	if len(rows) != 2 {
		t.Fatalf("rows = %v, want only stages that ran", rows)
	}
	want := []string{"projects", "1,500", "1,200", "300", "1.5s"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != pipeline.StageDependencies || rows[1][3] != "6" {
		t.Errorf("rows[1] = %v", rows[1])
	}
}

func TestFindingRows(t *testing.T) {
	findings := []analyze.Finding{
		{Project: "app", ProjectLicense: "MIT", Dependents: 1200, Depth: 1, Dependency: "gpl", DependencyLicense: "GPL-3.0"},
		{Project: "top", Dependents: 3, Depth: 3, Dependency: "gpl", DependencyLicense: "GPL-3.0"},
	}

	rows := findingRows(findings, 0)
	if len(rows) != 2 {
		t.Fatalf("rows = %v, want 2", rows)
	}
	want := []string{"app", "MIT", "1,200", "1", "gpl", "GPL-3.0"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[1][1] != "none" {
		t.Errorf("unlicensed project shown as %q, want none", rows[1][1])
	}
	if got := findingRows(findings, 1); len(got) != 1 {
		t.Errorf("limit 1 gave %d rows", len(got))
	}
}

func TestCountRows(t *testing.T) {
	counts := []analyze.Count{{Name: "MIT", Count: 3}, {Name: "ISC", Count: 1}}

	rows := countRows(counts, 4, 0)
	if len(rows) != 2 || rows[0][2] != "75.00%" || rows[1][2] != "25.00%" {
		t.Errorf("rows = %v", rows)
	}
	if rows := countRows(counts, 0, 1); len(rows) != 1 || rows[0][2] != "-" {
		t.Errorf("rows with zero total = %v", rows)
	}
}
