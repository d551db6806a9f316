package graphcsv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/licensegraph/pkg/errors"
)

// ImportScript is the file name [WriteImportScript] writes.
const ImportScript = "import.sh"

// ImportArgs returns the neo4j-admin arguments that load tables from dir
// into database. Header and data files are passed as a pair per table.
func ImportArgs(dir, database string, tables []Table) []string {
	args := []string{"database", "import", "full"}
	for _, t := range tables {
		files := filepath.Join(dir, t.HeaderFile()) + "," + filepath.Join(dir, t.DataFile())
		if t.Nodes != "" {
			args = append(args, fmt.Sprintf("--nodes=%s=%s", t.Nodes, files))
		} else {
			args = append(args, fmt.Sprintf("--relationships=%s=%s", t.Relationship, files))
		}
	}
	return append(args, "--overwrite-destination", database)
}

// WriteImportScript writes a shell script to dir that runs neo4j-admin
// over the given tables. Paths are relative to the script's directory.
// database must pass [errors.ValidateDatabaseName].
func WriteImportScript(dir, database string, tables []Table) (string, error) {
	if err := errors.ValidateDatabaseName(database); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString("set -e\n")
	b.WriteString("cd \"$(dirname \"$0\")\"\n")
	b.WriteString("exec neo4j-admin")
	for _, arg := range ImportArgs(".", database, tables) {
		b.WriteString(" \\\n  ")
		b.WriteString(arg)
	}
	b.WriteString("\n")

	path := filepath.Join(dir, ImportScript)
	if err := os.WriteFile(path, []byte(b.String()), 0755); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return path, nil
}
