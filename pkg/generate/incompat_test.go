package generate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/licensegraph/pkg/errors"
	"github.com/matzehuels/licensegraph/pkg/licenses"
)

func writeLicenses(t *testing.T, dir string, lines string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "licenses.csv"), []byte(lines), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLicenseIncompatibilities(t *testing.T) {
	out := t.TempDir()
	writeLicenses(t, out, "0,MIT\n1,GPL-3.0\n2,Apache-2.0\n3,MPL-1.1\n4,LGPL-2.1\n5,AGPL-3.0\n")

	stats, err := LicenseIncompatibilities(context.Background(), out, licenses.DefaultRules(), quietOpts())
	if err != nil {
		t.Fatalf("LicenseIncompatibilities() error: %v", err)
	}

	// Permissive-major order, then MPL against each LGPL variant.
	assertLines(t, out, "license-incompatibilities.csv",
		"0,1", "0,5", "2,1", "2,5", "3,4")
	want := IncompatibilityStats{Licenses: 6, Written: 5, PermissiveEdges: 4, MPLEdges: 1}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestLicenseIncompatibilitiesMissingMPL(t *testing.T) {
	out := t.TempDir()
	writeLicenses(t, out, "0,MIT\n1,LGPL-3.0\n")

	stats, err := LicenseIncompatibilities(context.Background(), out, licenses.DefaultRules(), quietOpts())
	if err != nil {
		t.Fatal(err)
	}
	if !stats.MissingMPL || stats.Written != 0 {
		t.Errorf("stats = %+v, want MissingMPL and no edges", stats)
	}
	assertLines(t, out, "license-incompatibilities.csv")
}

func TestLicenseIncompatibilitiesAfterProjects(t *testing.T) {
	src := writeSource(t, "projects.csv",
		projectRow("1", "NPM", "a", "MIT", "0"),
		projectRow("2", "NPM", "b", "GPL-2.0", "0"),
	)
	out := t.TempDir()
	if _, err := Projects(context.Background(), src, out, licenses.NewRegistry(), quietOpts()); err != nil {
		t.Fatal(err)
	}
	if _, err := LicenseIncompatibilities(context.Background(), out, licenses.DefaultRules(), quietOpts()); err != nil {
		t.Fatal(err)
	}
	assertLines(t, out, "license-incompatibilities.csv", "0,1")
}

func TestLicenseIncompatibilitiesNoLicensesFile(t *testing.T) {
	_, err := LicenseIncompatibilities(context.Background(), t.TempDir(), licenses.DefaultRules(), quietOpts())
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}
