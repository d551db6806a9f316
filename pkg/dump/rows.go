package dump

// Minimum column counts per table, one past the highest index read.
const (
	ProjectColumns    = 20
	VersionColumns    = 5
	DependencyColumns = 12
)

// ProjectRow holds the project columns the converter uses.
type ProjectRow struct {
	ID                         string // [0]
	Platform                   string // [1]
	Name                       string // [2]
	Licenses                   string // [8], comma-separated SPDX names
	DependentRepositoriesCount string // [19]
}

// ParseProject extracts a ProjectRow. rec must have at least ProjectColumns fields.
func ParseProject(rec []string) ProjectRow {
	return ProjectRow{
		ID:                         rec[0],
		Platform:                   rec[1],
		Name:                       rec[2],
		Licenses:                   rec[8],
		DependentRepositoriesCount: rec[19],
	}
}

// VersionRow holds the version columns the converter uses.
type VersionRow struct {
	ID        string // [0]
	ProjectID string // [3]
	Number    string // [4]
}

// ParseVersion extracts a VersionRow. rec must have at least VersionColumns fields.
func ParseVersion(rec []string) VersionRow {
	return VersionRow{
		ID:        rec[0],
		ProjectID: rec[3],
		Number:    rec[4],
	}
}

// DependencyRow holds the dependency columns the converter uses.
type DependencyRow struct {
	ProjectID           string // [3] project owning the depending version
	VersionNumber       string // [4] number of the depending version
	VersionID           string // [5] id of the depending version
	Kind                string // [8] e.g. "runtime", "Development"
	Optional            string // [9] "true" or "false"
	Requirement         string // [10] version constraint, e.g. "^1.2.0"
	DependencyProjectID string // [11] required project, may be empty
}

// ParseDependency extracts a DependencyRow. rec must have at least DependencyColumns fields.
func ParseDependency(rec []string) DependencyRow {
	return DependencyRow{
		ProjectID:           rec[3],
		VersionNumber:       rec[4],
		VersionID:           rec[5],
		Kind:                rec[8],
		Optional:            rec[9],
		Requirement:         rec[10],
		DependencyProjectID: rec[11],
	}
}
