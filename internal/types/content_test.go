//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_Validation(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		wantErr bool
	}{
		{
			name: "valid project without links",
			project: Project{
				ID:          "1",
				Title:       "X",
				Description: "Y",
				Tags:        []string{"A", "B"},
			},
		},
		{
			name: "valid project with links",
			project: Project{
				ID:          "2",
				Title:       "X",
				Description: "Y",
				RepoURL:     "https://github.com/example/x",
				LiveURL:     "https://x.example.com",
			},
		},
		{
			name:    "missing title",
			project: Project{ID: "3", Description: "Y"},
			wantErr: true,
		},
		{
			name: "empty tag",
			project: Project{
				ID:          "4",
				Title:       "X",
				Description: "Y",
				Tags:        []string{"A", ""},
			},
			wantErr: true,
		},
		{
			name: "malformed repo url",
			project: Project{
				ID:          "5",
				Title:       "X",
				Description: "Y",
				RepoURL:     "not a url",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.project.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBlogPost_Validation(t *testing.T) {
	valid := BlogPost{
		ID:    "1",
		Title: "Post",
		URL:   "https://blog.example.com/post",
	}
	assert.NoError(t, valid.Validate())

	noURL := valid
	noURL.URL = ""
	assert.Error(t, noURL.Validate())

	badCover := valid
	badCover.CoverImage = "cover.png"
	assert.Error(t, badCover.Validate())
}

func TestSiteLinks_Validation(t *testing.T) {
	links := SiteLinks{
		Website: "https://example.com",
		GitHub:  "https://github.com/example",
		Blog:    "https://blog.example.com",
		Email:   "me@example.com",
	}
	assert.NoError(t, links.Validate())

	links.Email = "not-an-email"
	assert.Error(t, links.Validate())
}

func TestViolations_HasErrors(t *testing.T) {
	var nilViolations *Violations
	assert.False(t, nilViolations.HasErrors())

	v := &Violations{Violations: []Violation{{Type: "x", Severity: "warning"}}}
	assert.False(t, v.HasErrors())

	v.Violations = append(v.Violations, Violation{Type: "y", Severity: "error"})
	assert.True(t, v.HasErrors())
}
