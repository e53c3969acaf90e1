package cache

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key for one rendered artifact of seed.
	ArtifactKey(seed string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds everything besides the seed that changes an
// artifact's bytes.
type ArtifactKeyOpts struct {
	Format  string `json:"format"`
	Variant string `json:"variant,omitempty"`
	Width   int    `json:"width,omitempty"`
	Hour    int    `json:"hour,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(seed string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", seed, opts)
}
