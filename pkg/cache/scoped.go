package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation. The
// HTTP server uses it to keep API-generated entries apart from CLI
// entries sharing the same backend.
//
// Example usage:
//
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:v1:")
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

// TableKey generates a prefixed key for coordinate table caching.
func (k *ScopedKeyer) TableKey(opts TableKeyOpts) string {
	return k.prefix + k.inner.TableKey(opts)
}

// MapKey generates a prefixed key for head map caching.
func (k *ScopedKeyer) MapKey(opts MapKeyOpts) string {
	return k.prefix + k.inner.MapKey(opts)
}
