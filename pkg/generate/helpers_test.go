package generate

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/licensegraph/pkg/dump"
	"github.com/matzehuels/licensegraph/pkg/filter"
)

func quietOpts(ids ...string) Options {
	return Options{
		Logger: log.New(io.Discard),
		Filter: filter.NewIDSet(ids...),
	}
}

// row builds a CSV line with n columns, setting the given positions.
// Fields holding a comma or quote are quoted the way the dump quotes them.
func row(n int, cols map[int]string) string {
	fields := make([]string, n)
	for i, v := range cols {
		fields[i] = csvField(v)
	}
	return strings.Join(fields, ",")
}

func csvField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func projectRow(id, platform, name, licenses, dependents string) string {
	return row(dump.ProjectColumns, map[int]string{
		0: id, 1: platform, 2: name, 8: licenses, 19: dependents,
	})
}

func versionRow(id, projectID, number string) string {
	return row(dump.VersionColumns, map[int]string{0: id, 3: projectID, 4: number})
}

type depRow struct {
	project, versionNumber, versionID, kind, optional, requirement, target string
}

func (d depRow) String() string {
	return row(dump.DependencyColumns, map[int]string{
		3: d.project, 4: d.versionNumber, 5: d.versionID, 8: d.kind,
		9: d.optional, 10: d.requirement, 11: d.target,
	})
}

func validDep(project, versionID, target string) depRow {
	return depRow{project, "1.0.0", versionID, "runtime", "false", "^1.0", target}
}

func writeSource(t *testing.T, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	content := "header\n" + strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readLines(t *testing.T, dir, file string) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		t.Fatalf("read %s: %v", file, err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func assertLines(t *testing.T, dir, file string, want ...string) {
	t.Helper()
	got := readLines(t, dir, file)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("%s =\n%s\nwant\n%s", file, strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}
