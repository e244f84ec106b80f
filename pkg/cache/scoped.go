package cache

// ScopedKeyer wraps a Keyer with a prefix so multiple projects or
// contexts can share one cache directory without key collisions.
//
// Example usage:
//
//	projectKeyer := NewScopedKeyer(NewDefaultKeyer(), "proj:board-a:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// StackKey generates a prefixed key for parsed stack caching.
func (k *ScopedKeyer) StackKey(source string, content []byte) string {
	return k.prefix + k.inner.StackKey(source, content)
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(stackHash string, config any) string {
	return k.prefix + k.inner.LayoutKey(stackHash, config)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash, format string, opts any) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, format, opts)
}
