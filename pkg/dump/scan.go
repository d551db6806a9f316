package dump

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/licensegraph/pkg/errors"
)

const (
	// DefaultProgressEvery is how many rows pass between progress log lines.
	DefaultProgressEvery = 500000

	// cancelCheckEvery is how many rows pass between context checks.
	cancelCheckEvery = 1024
)

// Options controls a table scan.
type Options struct {
	// Cutoff stops the scan after this many data rows. Zero or negative
	// means the whole table is read.
	Cutoff int

	// ProgressEvery logs a debug line every N rows. Zero uses
	// DefaultProgressEvery.
	ProgressEvery int

	// Logger receives progress output. Nil uses log.Default().
	Logger *log.Logger

	// NoHeader treats the first line as data. Tables written by this
	// tool keep their header in a separate file.
	NoHeader bool
}

func (o Options) withDefaults() Options {
	if o.ProgressEvery <= 0 {
		o.ProgressEvery = DefaultProgressEvery
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Scan reads the table at path, skips its header unless opts.NoHeader is
// set, and calls fn for every data row with at least minColumns fields.
// It returns the number of data rows handed to fn.
//
// Scanning stops at the first error from the file, the CSV decoder, a
// short row, fn or ctx.
func Scan(ctx context.Context, path string, minColumns int, opts Options, fn func(rec []string) error) (int, error) {
	opts = opts.withDefaults()

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return 0, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	return scanReader(ctx, f, filepath.Base(path), minColumns, opts, fn)
}

func scanReader(ctx context.Context, r io.Reader, name string, minColumns int, opts Options, fn func(rec []string) error) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	if !opts.NoHeader {
		if _, err := cr.Read(); err != nil {
			if err == io.EOF {
				return 0, nil
			}
			return 0, errors.Wrap(errors.ErrCodeIO, err, "read %s header", name)
		}
	}

	rows := 0
	for {
		if opts.Cutoff > 0 && rows >= opts.Cutoff {
			break
		}
		if rows%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return rows, err
			}
		}

		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, errors.Wrap(errors.ErrCodeIO, err, "read %s", name)
		}
		if len(rec) < minColumns {
			line, _ := cr.FieldPos(0)
			return rows, errors.New(errors.ErrCodeMalformedRow,
				"%s line %d: got %d columns, need at least %d", name, line, len(rec), minColumns)
		}

		rows++
		if rows%opts.ProgressEvery == 0 {
			opts.Logger.Debug("scanning", "file", name, "rows", rows)
		}

		if err := fn(rec); err != nil {
			return rows, err
		}
	}
	return rows, nil
}
