// Package dedup tracks which project→project dependency pairs a run has
// already written.
//
// The same (project, dependency) pair shows up once per version of the
// depending project, so a dump with millions of dependency rows collapses
// to far fewer project edges. [MemorySet] keeps the pairs in a Go map and
// is the default. [RedisSet] keeps them in a Redis set for dumps whose
// pair count does not fit in memory.
//
// A PairSet belongs to one run. Sets are never shared between runs and
// never evicted while the run is active.
package dedup

import (
	"context"
	"strings"

	"github.com/matzehuels/licensegraph/pkg/errors"
)

// Backend names accepted by [Parse].
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// PairSet records ordered (from, to) pairs.
type PairSet interface {
	// Add records the pair and reports whether it was new.
	Add(ctx context.Context, from, to string) (bool, error)

	// Len returns the number of distinct pairs recorded.
	Len() int

	// Close releases the set's storage.
	Close() error
}

// Parse validates a backend name.
func Parse(name string) (string, error) {
	switch b := strings.ToLower(strings.TrimSpace(name)); b {
	case "", BackendMemory:
		return BackendMemory, nil
	case BackendRedis:
		return BackendRedis, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown dedup backend %q (want %s or %s)", name, BackendMemory, BackendRedis)
	}
}

type pair struct{ from, to string }

// MemorySet is an in-memory PairSet. It grows with every new pair.
type MemorySet struct {
	seen map[pair]struct{}
}

// NewMemorySet returns an empty in-memory set.
func NewMemorySet() *MemorySet {
	return &MemorySet{seen: make(map[pair]struct{})}
}

// Add records the pair and reports whether it was new.
func (s *MemorySet) Add(_ context.Context, from, to string) (bool, error) {
	p := pair{from, to}
	if _, ok := s.seen[p]; ok {
		return false, nil
	}
	s.seen[pair{strings.Clone(from), strings.Clone(to)}] = struct{}{}
	return true, nil
}

// Len returns the number of distinct pairs.
func (s *MemorySet) Len() int { return len(s.seen) }

// Close drops the stored pairs.
func (s *MemorySet) Close() error {
	s.seen = nil
	return nil
}

var _ PairSet = (*MemorySet)(nil)
