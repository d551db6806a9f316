// Package filter builds the project-id allow-list for a single platform.
package filter

import (
	"bufio"
	"bytes"
	"context"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/licensegraph/pkg/cache"
	"github.com/matzehuels/licensegraph/pkg/dump"
	"github.com/matzehuels/licensegraph/pkg/observability"
)

// cacheKeyType labels filter entries in cache hooks.
const cacheKeyType = "filter"

// cacheTTL bounds how long a cached filter is trusted even if the
// projects table looks unchanged.
const cacheTTL = 7 * 24 * time.Hour

// IDSet is a set of project ids. The zero value is an empty set, and an
// empty set allows every id.
type IDSet map[string]struct{}

// NewIDSet returns a set holding ids.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Len returns the number of ids in the set.
func (s IDSet) Len() int { return len(s) }

// Contains reports whether id is in the set.
func (s IDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Allows reports whether rows keyed by id pass the filter: always when
// the set is empty, otherwise only for members.
func (s IDSet) Allows(id string) bool {
	return len(s) == 0 || s.Contains(id)
}

// AllowsAny reports whether at least one of ids passes the filter.
func (s IDSet) AllowsAny(ids ...string) bool {
	if len(s) == 0 {
		return true
	}
	for _, id := range ids {
		if s.Contains(id) {
			return true
		}
	}
	return false
}

// ByPlatform scans the projects table at path and returns the ids of all
// projects whose platform column equals platform exactly.
func ByPlatform(ctx context.Context, path, platform string, opts dump.Options) (IDSet, error) {
	ids := make(IDSet)
	_, err := dump.Scan(ctx, path, 2, opts, func(rec []string) error {
		if rec[1] == platform {
			ids[strings.Clone(rec[0])] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Cached is ByPlatform with its result stored in c. Cache errors are
// logged and otherwise ignored; the table is scanned instead.
func Cached(ctx context.Context, c cache.Cache, path, platform string, opts dump.Options) (IDSet, bool, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	key, err := cache.FilterKey(path, platform)
	if err != nil {
		// Let the scan report the real problem, usually a missing file.
		ids, err := ByPlatform(ctx, path, platform, opts)
		return ids, false, err
	}

	if data, hit, err := c.Get(ctx, key); err != nil {
		logger.Warn("filter cache read failed", "error", err)
	} else if hit {
		observability.Cache().OnCacheHit(ctx, cacheKeyType)
		return decode(data), true, nil
	}
	observability.Cache().OnCacheMiss(ctx, cacheKeyType)

	ids, err := ByPlatform(ctx, path, platform, opts)
	if err != nil {
		return nil, false, err
	}
	data := encode(ids)
	if err := c.Set(ctx, key, data, cacheTTL); err != nil {
		logger.Warn("filter cache write failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
	}
	return ids, false, nil
}

// encode writes one id per line in sorted order so equal sets produce
// equal bytes.
func encode(ids IDSet) []byte {
	sorted := make([]string, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	var buf bytes.Buffer
	for _, id := range sorted {
		buf.WriteString(id)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func decode(data []byte) IDSet {
	ids := make(IDSet)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			ids[line] = struct{}{}
		}
	}
	return ids
}
