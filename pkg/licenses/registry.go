package licenses

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/licensegraph/pkg/errors"
)

// Registry maps license names to ids.
// It is not safe for concurrent use.
type Registry struct {
	ids   map[string]int
	names map[int]string
	next  int
}

// NewRegistry returns an empty registry whose first id is 0.
func NewRegistry() *Registry {
	return &Registry{
		ids:   make(map[string]int),
		names: make(map[int]string),
	}
}

// Assign returns the id for name, allocating the next id if name is new.
// added reports whether an id was allocated.
func (r *Registry) Assign(name string) (id int, added bool) {
	if id, ok := r.ids[name]; ok {
		return id, false
	}
	id = r.next
	r.put(strings.Clone(name), id)
	return id, true
}

func (r *Registry) put(name string, id int) {
	r.ids[name] = id
	r.names[id] = name
	if id >= r.next {
		r.next = id + 1
	}
}

// ID returns the id assigned to name.
func (r *Registry) ID(name string) (int, bool) {
	id, ok := r.ids[name]
	return id, ok
}

// Name returns the name assigned to id.
func (r *Registry) Name(id int) (string, bool) {
	name, ok := r.names[id]
	return name, ok
}

// Len returns the number of distinct names.
func (r *Registry) Len() int { return len(r.ids) }

// ReadRegistry loads a licenses.csv data file (id,name per line, no
// header). When a name repeats, the last id wins.
func ReadRegistry(path string) (*Registry, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	reg := NewRegistry()
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < 2 {
			return nil, errors.New(errors.ErrCodeMalformedRow, "%s line %d: got %d columns, need 2", path, line, len(rec))
		}
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeMalformedRow, err, "%s line %d: license id", path, line)
		}
		if old, ok := reg.ids[rec[1]]; ok {
			delete(reg.names, old)
		}
		reg.put(rec[1], id)
	}
	return reg, nil
}
