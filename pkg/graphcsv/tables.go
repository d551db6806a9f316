package graphcsv

import "strings"

// Table is one node or relationship file pair.
type Table struct {
	// Name is the file stem, e.g. "projects" for projects.csv.
	Name string

	// Header is the comma-separated header line, without a newline.
	Header string

	// Nodes is the label for node tables; empty for relationships.
	Nodes string

	// Relationship is the relationship type for edge tables.
	Relationship string
}

// DataFile returns the data file name.
func (t Table) DataFile() string { return t.Name + ".csv" }

// HeaderFile returns the header file name.
func (t Table) HeaderFile() string { return t.Name + "_header.csv" }

// The eight tables produced by a full run.
var (
	Projects = Table{
		Name:   "projects",
		Header: "projectId:ID(Project),platform,name,dependentRepositoriesCount",
		Nodes:  "Project",
	}
	Licenses = Table{
		Name:   "licenses",
		Header: "licenseId:ID(License),name",
		Nodes:  "License",
	}
	ProjectLicenses = Table{
		Name:         "project-licenses",
		Header:       "projectId:START_ID(Project),licenseId:END_ID(License)",
		Relationship: "HAS_LICENSE",
	}
	LicenseIncompatibilities = Table{
		Name:         "license-incompatibilities",
		Header:       "licenseId:START_ID(License),isIncompatibleWithLicenseId:END_ID(License)",
		Relationship: "IS_INCOMPATIBLE_WITH",
	}
	ProjectDependencies = Table{
		Name:         "project-dependencies",
		Header:       "projectId:START_ID(Project),dependencyProjectId:END_ID(Project)",
		Relationship: "PROJECT_DEPENDS_ON",
	}
	VersionDependencies = Table{
		Name:         "version-dependencies",
		Header:       "versionId:START_ID(Version),dependencyRequirement,dependencyProjectId:END_ID(Project)",
		Relationship: "VERSION_DEPENDS_ON",
	}
	Versions = Table{
		Name:   "versions",
		Header: "versionId:ID(Version),number",
		Nodes:  "Version",
	}
	ProjectVersions = Table{
		Name:         "project-versions",
		Header:       "projectId:START_ID(Project),versionId:END_ID(Version)",
		Relationship: "HAS_VERSION",
	}
)

// All lists every table in the order a run produces them.
var All = []Table{
	Projects, Licenses, ProjectLicenses, LicenseIncompatibilities,
	ProjectDependencies, VersionDependencies, Versions, ProjectVersions,
}

// Sanitize replaces every double quote in s with a single quote.
func Sanitize(s string) string {
	return strings.ReplaceAll(s, `"`, `'`)
}

// Quote sanitizes s and wraps it in double quotes.
func Quote(s string) string {
	return `"` + Sanitize(s) + `"`
}
