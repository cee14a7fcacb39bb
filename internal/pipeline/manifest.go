package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/rohitlokhande/portfolio/internal/content"
	"github.com/rohitlokhande/portfolio/internal/schemas"
	"github.com/rohitlokhande/portfolio/internal/types"
	"github.com/rohitlokhande/portfolio/internal/validation"
	rootschemas "github.com/rohitlokhande/portfolio/schemas"
)

func newManifest(c *types.Content, feed content.BlogFeed, opts Options, builtAt time.Time, files []string) *types.BuildManifest {
	m := &types.BuildManifest{
		BuildID:     uuid.NewString(),
		BuiltAt:     builtAt.Format(time.RFC3339),
		Environment: opts.Environment,
		AssetPrefix: opts.AssetPrefix,
		BlogSource:  string(feed.Origin),
		Counts: types.ManifestCounts{
			Projects:  len(c.Projects),
			BlogPosts: len(c.BlogPosts),
			Skills:    countSkills(c.Skills),
		},
		Files: files,
	}
	if feed.Err != nil {
		m.BlogError = feed.Err.Error()
	}
	if m.Files == nil {
		m.Files = []string{}
	}
	return m
}

func countSkills(s *types.SkillSet) int {
	if s == nil {
		return 0
	}
	return len(s.Frontend) + len(s.Backend) + len(s.Cloud) + len(s.Tools)
}

// writeManifest checks m against the manifest schema, then writes it as build.json.
func writeManifest(dir string, m *types.BuildManifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := schemas.ValidateEmbedded(rootschemas.BuildManifest, data); err != nil {
		return fmt.Errorf("manifest does not match schema: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, validation.ManifestFile), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
