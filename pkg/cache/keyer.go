package cache

// Keyer derives cache keys.
type Keyer interface {
	// HTTPKey names a cached HTTP response.
	HTTPKey(namespace, key string) string

	// ProfileKey names a parsed profile page.
	ProfileKey(locator string) string

	// ArtifactKey names a rendered output for a graph.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	Height    string `json:"height,omitempty"`
	Width     string `json:"width,omitempty"`
	BgColor   string `json:"bg_color,omitempty"`
	FontColor string `json:"font_color,omitempty"`
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [DefaultKeyer].
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// HTTPKey returns "http:<namespace>:<key>".
func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// ProfileKey hashes the locator.
func (DefaultKeyer) ProfileKey(locator string) string {
	return hashKey("profile", locator)
}

// ArtifactKey hashes the graph hash together with opts.
func (DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}
