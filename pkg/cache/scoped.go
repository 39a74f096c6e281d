package cache

// ScopedKeyer wraps a Keyer with a prefix. Shared backends (Redis, MongoDB)
// use it so scholarnet entries cannot collide with another application's
// keys.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "scholarnet:")
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

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// ProfileKey generates a prefixed key for profile caching.
func (k *ScopedKeyer) ProfileKey(locator string) string {
	return k.prefix + k.inner.ProfileKey(locator)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(graphHash, opts)
}
