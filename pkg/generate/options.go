package generate

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/licensegraph/pkg/dump"
	"github.com/matzehuels/licensegraph/pkg/filter"
)

// Options are shared by every stage.
type Options struct {
	// Cutoff limits how many source rows a stage reads. Zero reads all.
	Cutoff int

	// Filter restricts output to these project ids. Empty means no
	// filtering.
	Filter filter.IDSet

	// Logger receives stage summaries and progress. Nil uses log.Default().
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

func (o Options) scan() dump.Options {
	return dump.Options{Cutoff: o.Cutoff, Logger: o.logger()}
}

// closeInto closes c and stores its error in *err unless *err is set.
func closeInto(err *error, c interface{ Close() error }) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
