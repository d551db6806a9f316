package analyze

import (
	"context"
	"io"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/licensegraph/pkg/dump"
	"github.com/matzehuels/licensegraph/pkg/errors"
	"github.com/matzehuels/licensegraph/pkg/graphcsv"
	"github.com/matzehuels/licensegraph/pkg/licenses"
)

// NoLicense marks a project without a HAS_LICENSE edge.
const NoLicense = -1

// Options controls loading and analysis.
type Options struct {
	// MaxDepth stops the transitive search after this depth. Zero means
	// the search runs until no new project is found.
	MaxDepth int

	// Logger receives progress output. Nil discards it.
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// Project is a Project node with its license resolved.
type Project struct {
	ID         string
	Platform   string
	Name       string
	Dependents int // dependentRepositoriesCount
	License    int // license id, or NoLicense
	Versions   int // HAS_VERSION edges
}

// Graph is the project level view of a finished run.
type Graph struct {
	projects map[string]*Project
	order    []string // project ids in file order

	deps       map[string][]string // project → dependencies
	dependents map[string][]string // project → projects depending on it

	incompatible map[int]map[int]bool
	licenses     *licenses.Registry
}

// Project returns the project with id, or nil.
func (g *Graph) Project(id string) *Project { return g.projects[id] }

// Len returns the number of projects.
func (g *Graph) Len() int { return len(g.order) }

// LicenseName returns the name of license id, or "" for NoLicense.
func (g *Graph) LicenseName(id int) string {
	name, _ := g.licenses.Name(id)
	return name
}

// Incompatible reports whether license from is incompatible with to.
func (g *Graph) Incompatible(from, to int) bool {
	return g.incompatible[from][to]
}

// Load reads the projects, licenses, project-licenses,
// license-incompatibilities, project-dependencies and project-versions
// tables from dir.
func Load(ctx context.Context, dir string, opts Options) (*Graph, error) {
	logger := opts.logger()
	scan := dump.Options{Logger: logger, NoHeader: true}
	path := func(t graphcsv.Table) string { return filepath.Join(dir, t.DataFile()) }

	reg, err := licenses.ReadRegistry(path(graphcsv.Licenses))
	if err != nil {
		return nil, err
	}
	edges, err := licenses.ReadEdges(path(graphcsv.LicenseIncompatibilities))
	if err != nil {
		return nil, err
	}

	g := &Graph{
		projects:     make(map[string]*Project),
		deps:         make(map[string][]string),
		dependents:   make(map[string][]string),
		incompatible: make(map[int]map[int]bool),
		licenses:     reg,
	}
	for _, e := range edges {
		if g.incompatible[e.From] == nil {
			g.incompatible[e.From] = make(map[int]bool)
		}
		g.incompatible[e.From][e.To] = true
	}

	file := path(graphcsv.Projects)
	_, err = dump.Scan(ctx, file, 4, scan, func(rec []string) error {
		n, err := strconv.Atoi(rec[3])
		if err != nil {
			return errors.Wrap(errors.ErrCodeMalformedRow, err, "%s: project %s dependents count", file, rec[0])
		}
		if _, ok := g.projects[rec[0]]; !ok {
			g.order = append(g.order, rec[0])
		}
		g.projects[rec[0]] = &Project{ID: rec[0], Platform: rec[1], Name: rec[2], Dependents: n, License: NoLicense}
		return nil
	})
	if err != nil {
		return nil, err
	}

	file = path(graphcsv.ProjectLicenses)
	_, err = dump.Scan(ctx, file, 2, scan, func(rec []string) error {
		id, err := strconv.Atoi(rec[1])
		if err != nil {
			return errors.Wrap(errors.ErrCodeMalformedRow, err, "%s: license id of project %s", file, rec[0])
		}
		if p := g.projects[rec[0]]; p != nil {
			p.License = id
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_, err = dump.Scan(ctx, path(graphcsv.ProjectDependencies), 2, scan, func(rec []string) error {
		from, to := rec[0], rec[1]
		g.deps[from] = append(g.deps[from], to)
		g.dependents[to] = append(g.dependents[to], from)
		return nil
	})
	if err != nil {
		return nil, err
	}

	_, err = dump.Scan(ctx, path(graphcsv.ProjectVersions), 2, scan, func(rec []string) error {
		if p := g.projects[rec[0]]; p != nil {
			p.Versions++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded project graph", "projects", len(g.order), "licenses", reg.Len(), "incompatibilities", len(edges))
	return g, nil
}
