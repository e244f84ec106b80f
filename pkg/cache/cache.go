// Package cache provides pluggable caching for pipeline stages.
//
// The CLI uses a file-based cache under the XDG cache directory so
// repeated renders of the same stack skip the parse and layout stages.
// A null implementation disables caching without changing call sites.
package cache

import (
	"context"
	"time"
)

// Cache TTLs by content type. Parsed stacks expire quickly since their
// source files change during editing; computed layouts and rendered
// artifacts are pure functions of their inputs and keep longer.
const (
	TTLStack    = 1 * time.Hour
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte-oriented key-value store with TTL expiry.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was
	// found and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer derives cache keys for the pipeline's content types. Keys must
// be deterministic: equal inputs yield equal keys.
type Keyer interface {
	// StackKey keys a parsed stack by its source identifier and raw
	// file content.
	StackKey(source string, content []byte) string

	// LayoutKey keys a computed layout by the stack hash and the
	// layout configuration.
	LayoutKey(stackHash string, config any) string

	// ArtifactKey keys a rendered artifact by the layout hash, output
	// format and render options.
	ArtifactKey(layoutHash, format string, opts any) string
}

// DefaultKeyer hashes all key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// StackKey generates a key for parsed stack caching.
func (k *DefaultKeyer) StackKey(source string, content []byte) string {
	return hashKey("stack", source, Hash(content))
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(stackHash string, config any) string {
	return hashKey("layout", stackHash, config)
}

// ArtifactKey generates a key for rendered artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash, format string, opts any) string {
	return hashKey("artifact", layoutHash, format, opts)
}
