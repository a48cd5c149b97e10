// Package cache stores rendered artifacts between runs.
//
// Keys are derived from a content hash of the input file plus every option
// that affects the output, so an unchanged input rendered with unchanged
// options is served from disk instead of being redrawn.
//
// Two implementations are provided: [FileCache] for the CLI and [NullCache]
// when caching is disabled. Both are safe for concurrent use.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// TTLArtifact is the lifetime of a rendered image.
const TTLArtifact = 30 * 24 * time.Hour

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey identifies a rendered image.
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the options that change a rendered image.
type ArtifactKeyOpts struct {
	Format     string            `json:"format"`
	Sheet      string            `json:"sheet"`
	Prefix     string            `json:"prefix"`
	Drop       []string          `json:"drop"`
	Kind       string            `json:"kind"`
	Styles     map[string]string `json:"styles"`
	Fallback   string            `json:"fallback"`
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	DPI        int               `json:"dpi"`
	Wrap       int               `json:"wrap"`
	ShareY     bool              `json:"share_y"`
	BoxColor   string            `json:"box_color"`
	PointColor string            `json:"point_color"`
	PointSize  float64           `json:"point_size"`
	Jitter     float64           `json:"jitter"`
	Seed       uint64            `json:"seed"`
	Group      string            `json:"group"`
	Bins       int               `json:"bins"`
	Title      string            `json:"title"`
}

// DefaultKeyer hashes every option into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return hashKey("png", inputHash, opts)
}
