//nolint:revive // types is a standard Go package name pattern
package types

// BuildManifest describes one site build; it is written as build.json next to index.html.
type BuildManifest struct {
	BuildID     string         `json:"build_id"`
	BuiltAt     string         `json:"built_at"` // RFC 3339
	Environment string         `json:"environment"`
	AssetPrefix string         `json:"asset_prefix,omitempty"`
	BlogSource  string         `json:"blog_source"` // "remote" or "fallback"
	BlogError   string         `json:"blog_error,omitempty"`
	Counts      ManifestCounts `json:"counts"`
	Files       []string       `json:"files"` // Slash-separated paths relative to the output directory
}

// ManifestCounts records how many records of each kind were rendered.
type ManifestCounts struct {
	Projects  int `json:"projects"`
	BlogPosts int `json:"blog_posts"`
	Skills    int `json:"skills"`
}
