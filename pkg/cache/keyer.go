package cache

// Keyer derives cache keys. Implementations must be deterministic: equal
// inputs give equal keys.
type Keyer interface {
	// DataKey identifies a dataset by content hash.
	DataKey(dataHash string) string
	// ArtifactKey identifies one rendered output of a dataset.
	ArtifactKey(dataHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	View     string  `json:"view"`
	Format   string  `json:"format"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Theme    string  `json:"theme"`
	Scale    float64 `json:"scale,omitempty"`
	Selected int     `json:"selected,omitempty"`
}

// DefaultKeyer produces "data:<hash>" and "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// DataKey implements [Keyer].
func (DefaultKeyer) DataKey(dataHash string) string {
	return "data:" + dataHash
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(dataHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", dataHash, opts)
}

var _ Keyer = DefaultKeyer{}
