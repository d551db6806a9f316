package graphcsv

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/licensegraph/pkg/errors"
)

const bufferSize = 1 << 20

// Writer appends lines to a table's data file.
// It is not safe for concurrent use.
type Writer struct {
	table Table
	path  string
	f     *os.File
	w     *bufio.Writer
	lines int
}

// Create writes the header file for t in dir and opens the data file
// for writing, truncating any previous contents.
func Create(dir string, t Table) (*Writer, error) {
	headerPath := filepath.Join(dir, t.HeaderFile())
	if err := os.WriteFile(headerPath, []byte(t.Header), 0644); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "write %s", headerPath)
	}

	path := filepath.Join(dir, t.DataFile())
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	return &Writer{
		table: t,
		path:  path,
		f:     f,
		w:     bufio.NewWriterSize(f, bufferSize),
	}, nil
}

// Table returns the table this writer belongs to.
func (w *Writer) Table() Table { return w.table }

// Lines returns the number of data lines written so far.
func (w *Writer) Lines() int { return w.lines }

// WriteLine joins fields with commas and writes them as one line.
// Fields are written as given; quote string fields with [Quote] first.
func (w *Writer) WriteLine(fields ...string) error {
	if _, err := w.w.WriteString(strings.Join(fields, ",")); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", w.path)
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", w.path)
	}
	w.lines++
	return nil
}

// Close flushes buffered lines and closes the data file.
func (w *Writer) Close() error {
	if err := w.w.Flush(); err != nil {
		w.f.Close()
		return errors.Wrap(errors.ErrCodeIO, err, "flush %s", w.path)
	}
	if err := w.f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", w.path)
	}
	return nil
}

// Set holds the writers one stage owns so they can be closed together.
type Set []*Writer

// CreateSet opens writers for every table in ts. On failure the writers
// opened so far are closed.
func CreateSet(dir string, ts ...Table) (Set, error) {
	set := make(Set, 0, len(ts))
	for _, t := range ts {
		w, err := Create(dir, t)
		if err != nil {
			set.Close()
			return nil, err
		}
		set = append(set, w)
	}
	return set, nil
}

// Close closes every writer and returns the first error.
func (s Set) Close() error {
	var first error
	for _, w := range s {
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
