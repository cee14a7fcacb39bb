package rendering

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in the source is dropped by goldmark's default (safe) renderer.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
)

// RenderMarkdown converts markdown text to HTML safe for direct inclusion in a page.
func RenderMarkdown(text string) (template.HTML, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return "", &RenderError{
			Message: "failed to convert markdown",
			Cause:   err,
		}
	}

	//nolint:gosec // goldmark output with raw HTML disabled
	return template.HTML(buf.String()), nil
}

// DisplayDate formats RFC 3339 timestamps as "Jan 2, 2006" and returns anything else unchanged.
func DisplayDate(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.Format("Jan 2, 2006")
}
