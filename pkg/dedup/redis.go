package dedup

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/licensegraph/pkg/errors"
)

// keyPrefix namespaces every run's set.
const keyPrefix = "licensegraph:pairs:"

// RedisSet is a PairSet stored in a single Redis set. Each Add is one
// SADD round trip.
type RedisSet struct {
	client *redis.Client
	key    string
	n      int
	owned  bool
}

// NewRedisClient connects to addr, which is either host:port or a
// redis:// URL, and checks the connection.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		var err error
		opts, err = redis.ParseURL(addr)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse redis url")
		}
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(errors.ErrCodeIO, err, "connect redis %s", opts.Addr)
	}
	return client, nil
}

// NewRedisSet returns a set stored under a key derived from runID. Any
// leftover key from an earlier run with the same id is removed first.
func NewRedisSet(ctx context.Context, client *redis.Client, runID string) (*RedisSet, error) {
	key := keyPrefix + runID
	if err := client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "reset %s", key)
	}
	return &RedisSet{client: client, key: key}, nil
}

// OpenRedisSet connects to addr and returns a set that closes the
// connection when it is closed.
func OpenRedisSet(ctx context.Context, addr, runID string) (*RedisSet, error) {
	client, err := NewRedisClient(ctx, addr)
	if err != nil {
		return nil, err
	}
	s, err := NewRedisSet(ctx, client, runID)
	if err != nil {
		client.Close()
		return nil, err
	}
	s.owned = true
	return s, nil
}

// Key returns the Redis key backing the set.
func (s *RedisSet) Key() string { return s.key }

// Add records the pair and reports whether it was new.
func (s *RedisSet) Add(ctx context.Context, from, to string) (bool, error) {
	added, err := s.client.SAdd(ctx, s.key, from+","+to).Result()
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeIO, err, "sadd %s", s.key)
	}
	if added == 0 {
		return false, nil
	}
	s.n++
	return true, nil
}

// Len returns the number of pairs this process added.
func (s *RedisSet) Len() int { return s.n }

// Close deletes the set's key and, for sets from OpenRedisSet, closes
// the client.
func (s *RedisSet) Close() error {
	var err error
	if derr := s.client.Del(context.Background(), s.key).Err(); derr != nil {
		err = errors.Wrap(errors.ErrCodeIO, derr, "delete %s", s.key)
	}
	if s.owned {
		if cerr := s.client.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

var _ PairSet = (*RedisSet)(nil)
