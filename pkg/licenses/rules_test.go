package licenses

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/licensegraph/pkg/errors"
)

func TestDefaultRules(t *testing.T) {
	r := DefaultRules()
	if len(r.Permissive) != 21 || len(r.WeakCopyleft) != 14 || len(r.StrongCopyleft) != 20 || len(r.LGPL) != 12 {
		t.Errorf("category sizes = %d/%d/%d/%d", len(r.Permissive), len(r.WeakCopyleft), len(r.StrongCopyleft), len(r.LGPL))
	}
	if r.MPL != "MPL-1.1" {
		t.Errorf("MPL = %q", r.MPL)
	}
	if r.PermissiveVsWeakCopyleft {
		t.Error("permissive vs weak copyleft should be off by default")
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestCategory(t *testing.T) {
	r := DefaultRules()
	tests := map[string]string{
		"MIT":        "permissive",
		"LGPL-2.1":   "weak-copyleft",
		"MPL-2.0":    "weak-copyleft",
		"AGPL-3.0":   "strong-copyleft",
		"WTFPL":      "",
		"Apache-2.0": "permissive",
	}
	for name, want := range tests {
		if got := r.Category(name); got != want {
			t.Errorf("Category(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	content := `
permissive_vs_weak_copyleft = true
strong_copyleft = ["GPL-3.0"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() error: %v", err)
	}
	if !r.PermissiveVsWeakCopyleft {
		t.Error("override not applied")
	}
	if len(r.StrongCopyleft) != 1 || r.StrongCopyleft[0] != "GPL-3.0" {
		t.Errorf("StrongCopyleft = %v", r.StrongCopyleft)
	}
	if len(r.Permissive) != len(DefaultRules().Permissive) {
		t.Error("keys absent from the file should keep defaults")
	}
}

func TestLoadRulesErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "permissive = ["},
		{"unknown key", "mpl_id = 70\n"},
		{"overlap", "permissive = [\"MIT\"]\nstrong_copyleft = [\"MIT\"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".toml")
			os.WriteFile(path, []byte(tt.content), 0644)
			if _, err := LoadRules(path); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("LoadRules() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestLoadRulesExampleFile(t *testing.T) {
	r, err := LoadRules(filepath.Join("..", "..", "examples", "rules.toml"))
	if err != nil {
		t.Fatalf("LoadRules() error: %v", err)
	}
	if !r.PermissiveVsWeakCopyleft {
		t.Error("example enables permissive_vs_weak_copyleft")
	}
	if r.Category("AGPL-3.0-only") != "strong-copyleft" {
		t.Errorf("Category(AGPL-3.0-only) = %q", r.Category("AGPL-3.0-only"))
	}
	if r.Category("MIT") != "permissive" {
		t.Error("permissive list should keep its default")
	}
}
