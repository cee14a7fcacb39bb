package schemas

import (
	"os"
	"path/filepath"
	"testing"

	rootschemas "github.com/rohitlokhande/portfolio/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postsPayload = `{
  "data": {
    "publication": {
      "posts": {
        "edges": [
          {"node": {"id": "p1", "title": "One", "brief": "b", "url": "https://blog.example.com/one",
                    "publishedAt": "2025-01-02T03:04:05.000Z", "readTimeInMinutes": 6, "coverImage": null}}
        ]
      }
    }
  }
}`

func TestValidateEmbedded_HashnodePosts_Valid(t *testing.T) {
	err := ValidateEmbedded(rootschemas.HashnodePosts, []byte(postsPayload))
	assert.NoError(t, err)
}

func TestValidateEmbedded_HashnodePosts_EmptyEdges(t *testing.T) {
	doc := `{"data":{"publication":{"posts":{"edges":[]}}}}`
	assert.NoError(t, ValidateEmbedded(rootschemas.HashnodePosts, []byte(doc)))
}

func TestValidateEmbedded_HashnodePosts_MissingPath(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no data", `{"errors":[{"message":"boom"}]}`},
		{"null publication", `{"data":{"publication":null}}`},
		{"no posts", `{"data":{"publication":{}}}`},
		{"edges not array", `{"data":{"publication":{"posts":{"edges":{}}}}}`},
		{"node missing id", `{"data":{"publication":{"posts":{"edges":[{"node":{"title":"t","url":"u"}}]}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmbedded(rootschemas.HashnodePosts, []byte(tt.doc))
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateEmbedded_NotJSON(t *testing.T) {
	err := ValidateEmbedded(rootschemas.HashnodePosts, []byte("<html>oops</html>"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateEmbedded_UnknownSchema(t *testing.T) {
	err := ValidateEmbedded("missing.schema.json", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedded schema not found")
}

func TestValidateFile_Manifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "build.json")
	manifest := `{
	  "build_id": "abc",
	  "built_at": "2026-01-01T00:00:00Z",
	  "environment": "production",
	  "blog_source": "fallback",
	  "counts": {"projects": 4, "blog_posts": 2, "skills": 28},
	  "files": ["index.html"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))

	assert.NoError(t, ValidateFile(rootschemas.BuildManifest, path))
}

func TestValidateFile_NotFound(t *testing.T) {
	err := ValidateFile(rootschemas.BuildManifest, "/nonexistent/build.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type":"object","required":["name"],"properties":{"name":{"type":"string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"name":"x"}`))

	err := ValidateJSONString(schema, `{"name":1}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
