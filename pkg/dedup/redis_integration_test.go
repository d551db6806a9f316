//go:build integration

package dedup

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRedisSet_Integration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := OpenRedisSet(ctx, addr, uuid.NewString())
	if err != nil {
		t.Fatalf("OpenRedisSet() error: %v", err)
	}
	key := s.Key()

	for i, st := range []struct {
		from, to string
		want     bool
	}{
		{"1", "7", true},
		{"1", "7", false},
		{"7", "1", true},
	} {
		got, err := s.Add(ctx, st.from, st.to)
		if err != nil {
			t.Fatalf("step %d: Add() error: %v", i, err)
		}
		if got != st.want {
			t.Errorf("step %d: Add(%s, %s) = %v, want %v", i, st.from, st.to, got, st.want)
		}
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	client, err := NewRedisClient(ctx, addr)
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if n, _ := client.Exists(ctx, key).Result(); n != 0 {
		t.Errorf("key %s should be deleted on Close", key)
	}
}
