package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validManifest = `{
  "build_id": "6f1c1c7e-0f5e-4d8e-9f4c-1b2a3c4d5e6f",
  "built_at": "2025-06-01T12:00:00Z",
  "environment": "production",
  "asset_prefix": "https://example.com",
  "blog_source": "fallback",
  "blog_error": "timeout",
  "counts": {"projects": 4, "blog_posts": 2, "skills": 4},
  "files": ["index.html", "styles.css"]
}`

func TestCheckManifest_Absent(t *testing.T) {
	v, err := CheckManifest(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestCheckManifest_Valid(t *testing.T) {
	dir := writeSite(t, map[string]string{
		ManifestFile: validManifest,
		"index.html": "<html></html>",
		"styles.css": "body{}",
	})

	v, err := CheckManifest(dir)
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestCheckManifest_ListedFileMissing(t *testing.T) {
	dir := writeSite(t, map[string]string{
		ManifestFile: validManifest,
		"index.html": "<html></html>",
	})

	v, err := CheckManifest(dir)
	require.NoError(t, err)
	require.Len(t, v, 1)
	assert.Equal(t, TypeManifestMismatch, v[0].Type)
	assert.Contains(t, v[0].Details, "styles.css")
}

func TestCheckManifest_SchemaViolation(t *testing.T) {
	dir := writeSite(t, map[string]string{
		ManifestFile: `{"build_id": "x", "environment": "staging"}`,
	})

	v, err := CheckManifest(dir)
	require.NoError(t, err)
	require.NotEmpty(t, v)
	for _, violation := range v {
		assert.Equal(t, TypeManifestInvalid, violation.Type)
	}
}

func TestCheckManifest_NotJSON(t *testing.T) {
	dir := writeSite(t, map[string]string{ManifestFile: "not json"})

	v, err := CheckManifest(dir)
	require.NoError(t, err)
	require.Len(t, v, 1)
	assert.Equal(t, TypeManifestInvalid, v[0].Type)
}
