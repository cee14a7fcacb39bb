// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/rohitlokhande/portfolio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintContentSummary outputs the records that will be rendered.
func (p *Printer) PrintContentSummary(c *types.Content, blogSource string) {
	if c == nil {
		return
	}

	var sb strings.Builder

	if c.Profile != nil {
		sb.WriteString(fmt.Sprintf("Owner:    %s\n", c.Profile.Name))
		sb.WriteString(fmt.Sprintf("Title:    %s\n", c.Profile.Title))
		sb.WriteString("\n")
	}

	if len(c.Projects) > 0 {
		sb.WriteString(fmt.Sprintf("Projects (%d):\n", len(c.Projects)))
		count := min(len(c.Projects), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", c.Projects[i].Title))
		}
		if len(c.Projects) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(c.Projects)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Blog posts: %d (%s)\n", len(c.BlogPosts), blogSource))
	if c.Skills != nil {
		total := len(c.Skills.Frontend) + len(c.Skills.Backend) + len(c.Skills.Cloud) + len(c.Skills.Tools)
		sb.WriteString(fmt.Sprintf("Skills:     %d", total))
	}

	p.printBox("PAGE CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBlogPosts outputs the post titles and dates.
func (p *Printer) PrintBlogPosts(posts []types.BlogPost) {
	if len(posts) == 0 {
		return
	}

	var sb strings.Builder
	for i, post := range posts {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, post.Title))
		meta := post.Date
		if post.ReadTime != "" {
			if meta != "" {
				meta += " · "
			}
			meta += post.ReadTime
		}
		if meta != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", meta))
		}
		if i < len(posts)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("BLOG POSTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintManifest outputs a summary of a finished build.
func (p *Printer) PrintManifest(m *types.BuildManifest) {
	if m == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Build:       %s\n", m.BuildID))
	sb.WriteString(fmt.Sprintf("Built at:    %s\n", m.BuiltAt))
	sb.WriteString(fmt.Sprintf("Environment: %s\n", m.Environment))
	if m.AssetPrefix != "" {
		sb.WriteString(fmt.Sprintf("Assets:      %s\n", m.AssetPrefix))
	}
	sb.WriteString(fmt.Sprintf("Blog:        %s\n", m.BlogSource))
	if m.BlogError != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", m.BlogError))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Files (%d):\n", len(m.Files)))
	count := min(len(m.Files), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", m.Files[i]))
	}
	if len(m.Files) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(m.Files)-maxItemsToShow))
	}

	p.printBox("BUILD SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs any audit violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	for i, v := range violations.Violations {
		details := v.Details
		if len(details) > 45 {
			details = details[:42] + "..."
		}
		marker := "⚠"
		if v.Severity == "error" {
			marker = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s %s", marker, v.Type))
		if v.Section != "" {
			sb.WriteString(fmt.Sprintf(" (#%s)", v.Section))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  %s\n", details))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("AUDIT VIOLATIONS", sb.String())
}
