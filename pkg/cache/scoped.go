package cache

// ScopedKeyer prefixes every key of an inner keyer, so that several
// deployments (or a test run) can share one Redis without colliding:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, which defaults to [DefaultKeyer] when nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// DataKey implements [Keyer].
func (k *ScopedKeyer) DataKey(dataHash string) string {
	return k.prefix + k.inner.DataKey(dataHash)
}

// ArtifactKey implements [Keyer].
func (k *ScopedKeyer) ArtifactKey(dataHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(dataHash, opts)
}
