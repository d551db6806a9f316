package dump

import "path/filepath"

// Release is the Libraries.io dump version the default file names refer to.
const Release = "1.6.0-2020-01-12"

// Files names the source tables inside a dump directory.
type Files struct {
	Projects     string
	Versions     string
	Dependencies string
}

// DefaultFiles returns the file names used by the 1.6.0 release.
func DefaultFiles() Files {
	return Files{
		Projects:     "projects-" + Release + ".csv",
		Versions:     "versions-" + Release + ".csv",
		Dependencies: "dependencies-" + Release + ".csv",
	}
}

// WithDefaults fills empty names from [DefaultFiles].
func (f Files) WithDefaults() Files {
	d := DefaultFiles()
	if f.Projects == "" {
		f.Projects = d.Projects
	}
	if f.Versions == "" {
		f.Versions = d.Versions
	}
	if f.Dependencies == "" {
		f.Dependencies = d.Dependencies
	}
	return f
}

// ProjectsPath returns the projects table path inside dir.
func (f Files) ProjectsPath(dir string) string { return filepath.Join(dir, f.Projects) }

// VersionsPath returns the versions table path inside dir.
func (f Files) VersionsPath(dir string) string { return filepath.Join(dir, f.Versions) }

// DependenciesPath returns the dependencies table path inside dir.
func (f Files) DependenciesPath(dir string) string { return filepath.Join(dir, f.Dependencies) }
