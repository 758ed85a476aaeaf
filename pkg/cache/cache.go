// Package cache provides key-value caching for solved transcripts.
//
// Three backends implement [Cache]:
//   - [FileCache]: JSON files under a directory, for CLI use
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [NewNullCache]: stores nothing, for --no-cache and tests
//
// Keys are produced by a [Keyer] so that every backend agrees on naming.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Keyer generates cache keys.
type Keyer interface {
	// SolutionKey is the key of the full transcript for n disks.
	SolutionKey(n int) string

	// BoardKey is the key of the rendered board after step moves on n disks.
	BoardKey(n, step int, glyphs string) string
}

// nullCache stores nothing. Every Get is a miss.
type nullCache struct{}

// NewNullCache returns a cache that stores nothing, for --no-cache and tests.
func NewNullCache() Cache { return nullCache{} }

func (nullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (nullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (nullCache) Delete(context.Context, string) error                     { return nil }
func (nullCache) Close() error                                             { return nil }

var _ Cache = nullCache{}
