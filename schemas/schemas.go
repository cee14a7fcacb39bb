// Package schemas embeds the JSON Schema documents used to check external payloads and build artifacts.
package schemas

import "embed"

// Schema file names, relative to FS.
const (
	HashnodePosts = "hashnode_posts.schema.json"
	BuildManifest = "build_manifest.schema.json"
)

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
