package errors

import (
	"os"
	"strings"
	"unicode"
)

// ValidatePlatformName checks a platform filter value such as "NPM" or
// "Pypi". Matching against the dump is exact and case-sensitive, so the
// name is not normalized here.
func ValidatePlatformName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "platform name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "platform name too long (max 64 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "platform name contains invalid characters: %q", name)
		}
	}
	if strings.ContainsAny(name, `,"`) {
		return New(ErrCodeInvalidInput, "platform name cannot contain commas or quotes: %q", name)
	}
	return nil
}

// ValidateSourceDir checks that dir exists and is a directory.
func ValidateSourceDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidInput, "source directory cannot be empty")
	}
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return Wrap(ErrCodeFileNotFound, err, "source directory %s", dir)
	}
	if err != nil {
		return Wrap(ErrCodeIO, err, "stat %s", dir)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidInput, "source path %s is not a directory", dir)
	}
	return nil
}

// ValidateOutputDir checks that dir is usable as an output directory.
// A missing directory is fine; it is created when the run starts.
func ValidateOutputDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidInput, "output directory cannot be empty")
	}
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return Wrap(ErrCodeIO, err, "stat %s", dir)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidInput, "output path %s is not a directory", dir)
	}
	return nil
}

// ValidateDatabaseName checks a neo4j database name. neo4j allows 3 to 63
// ASCII letters, digits, dots and dashes, starting with a letter. The name
// is written unquoted into import.sh, so nothing else is accepted.
func ValidateDatabaseName(name string) error {
	if len(name) < 3 || len(name) > 63 {
		return New(ErrCodeInvalidInput, "database name must be 3 to 63 characters: %q", name)
	}
	for i, r := range name {
		letter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		switch {
		case letter:
		case i == 0:
			return New(ErrCodeInvalidInput, "database name must start with a letter: %q", name)
		case (r >= '0' && r <= '9') || r == '.' || r == '-':
		default:
			return New(ErrCodeInvalidInput, "database name contains invalid characters: %q", name)
		}
	}
	return nil
}
