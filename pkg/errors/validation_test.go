package errors

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidatePlatformName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"npm", "NPM", false},
		{"pypi", "Pypi", false},
		{"mixed case kept", "Packagist", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 100)), true},
		{"space", "Go Modules", true},
		{"comma", "NPM,Pypi", true},
		{"quote", `NPM"`, true},
		{"control char", "NPM\x01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlatformName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePlatformName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidatePlatformName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateSourceDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "projects.csv")
	if err := os.WriteFile(file, []byte("ID\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{"existing dir", dir, ""},
		{"empty", "", ErrCodeInvalidInput},
		{"missing", filepath.Join(dir, "nope"), ErrCodeFileNotFound},
		{"file", file, ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSourceDir(tt.input)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateSourceDir(%q) code = %q, want %q (err=%v)", tt.input, got, tt.wantCode, err)
			}
		})
	}
}

func TestValidateOutputDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "out.csv")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if err := ValidateOutputDir(dir); err != nil {
		t.Errorf("existing dir: %v", err)
	}
	if err := ValidateOutputDir(filepath.Join(dir, "new")); err != nil {
		t.Errorf("missing dir should be accepted: %v", err)
	}
	if err := ValidateOutputDir(file); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("file as output dir: got %v, want INVALID_INPUT", err)
	}
	if err := ValidateOutputDir(""); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("empty output dir: got %v, want INVALID_INPUT", err)
	}
}

func TestValidateDatabaseName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default", "neo4j", false},
		{"dots and dashes", "libraries.io-2020", false},

		{"too short", "db", true},
		{"too long", "a" + string(make([]byte, 63)), true},
		{"leading digit", "1neo4j", true},
		{"space", "neo 4j", true},
		{"shell", "neo4j; rm -rf /", true},
		{"substitution", "$(id)", true},
		{"quote", `neo4j"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDatabaseName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateDatabaseName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}
