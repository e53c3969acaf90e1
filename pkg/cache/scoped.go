package cache

// ScopedKeyer wraps a Keyer with a prefix so that independent namespaces can
// share one cache directory. The CLI scopes keys by build version, since a
// new release may draw a seed differently.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), buildinfo.Version+":")
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

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(seed string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(seed, opts)
}
