// Package cache provides caching for computed coordinate tables and
// rendered head maps.
//
// Three backends are available: [FileCache] for CLI usage, [RedisCache]
// for the HTTP server, and [NullCache] to disable caching. Keys are built
// by a [Keyer] so that every option that changes the output participates
// in the key.
package cache

import (
	"context"
	"time"
)

// Default TTLs per artifact type. Tables and maps are pure functions of
// their cache key, so entries stay valid until evicted; the TTL only
// bounds disk growth for the file backend.
const (
	TTLTable = 30 * 24 * time.Hour
	TTLMap   = 30 * 24 * time.Hour
)

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL (0 means no expiration).
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TableKeyOpts are the options that distinguish coordinate tables.
type TableKeyOpts struct {
	Density       string
	Equator       string
	Dimensions    int
	Names         []string
	DropLandmarks bool
	Sort          bool
	Precision     int
	Format        string
}

// MapKeyOpts are the options that distinguish rendered head maps.
type MapKeyOpts struct {
	Density   string
	Equator   string
	Format    string
	ShowNames bool
	Sensors   bool
}

// Keyer generates cache keys for the cacheable artifact types.
type Keyer interface {
	// TableKey generates a key for an exported coordinate table.
	TableKey(opts TableKeyOpts) string

	// MapKey generates a key for a rendered head map.
	MapKey(opts MapKeyOpts) string
}

// DefaultKeyer generates hash-based keys with type prefixes.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TableKey generates a key for an exported coordinate table.
func (k *DefaultKeyer) TableKey(opts TableKeyOpts) string {
	return hashKey("table", opts)
}

// MapKey generates a key for a rendered head map.
func (k *DefaultKeyer) MapKey(opts MapKeyOpts) string {
	return hashKey("map", opts)
}
