package rendering

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// layoutTemplate is the entry point that composes every section.
const layoutTemplate = "layout"

// Options configures a Renderer.
type Options struct {
	// TemplateDir replaces the built-in templates when set.
	// It must define "layout" and one template per Section.
	TemplateDir string
}

// Renderer renders pages from a parsed template set.
type Renderer struct {
	tmpl *template.Template
}

// New parses the template set once.
func New(opts Options) (*Renderer, error) {
	var source fs.FS
	if opts.TemplateDir != "" {
		if _, err := os.Stat(opts.TemplateDir); err != nil {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template directory not found: %s", opts.TemplateDir),
				Cause:   err,
			}
		}
		source = os.DirFS(opts.TemplateDir)
	} else {
		sub, err := fs.Sub(embeddedTemplates, "templates")
		if err != nil {
			return nil, &TemplateError{Message: "failed to open built-in templates", Cause: err}
		}
		source = sub
	}

	tmpl, err := parseTemplates(source)
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

func parseTemplates(source fs.FS) (*template.Template, error) {
	tmpl, err := template.New("portfolio").ParseFS(source, "*.html")
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse templates",
			Cause:   err,
		}
	}

	required := append([]string{layoutTemplate}, sectionNames()...)
	for _, name := range required {
		if tmpl.Lookup(name) == nil {
			return nil, &TemplateError{
				Section: name,
				Message: "template not defined",
			}
		}
	}
	return tmpl, nil
}

// RenderPage writes the whole page.
func (r *Renderer) RenderPage(w io.Writer, data *PageData) error {
	view, err := buildPageView(data)
	if err != nil {
		return &RenderError{
			Message: "failed to build template data",
			Cause:   err,
		}
	}

	// Buffer so a failing template never leaves a half-written page behind
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, layoutTemplate, view); err != nil {
		return &TemplateError{
			Section: layoutTemplate,
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	if _, err := buf.WriteTo(w); err != nil {
		return &RenderError{Message: "failed to write page", Cause: err}
	}
	return nil
}

// RenderSection writes a single section, as it would appear inside the page.
func (r *Renderer) RenderSection(w io.Writer, section Section, data *PageData) error {
	view, err := buildPageView(data)
	if err != nil {
		return &RenderError{
			Message: "failed to build template data",
			Cause:   err,
		}
	}

	var sectionData any
	switch section {
	case SectionHero:
		sectionData = view.Hero
	case SectionAbout:
		sectionData = view.About
	case SectionSkills:
		sectionData = view.Skills
	case SectionProjects:
		sectionData = view.Projects
	case SectionBlog:
		sectionData = view.Blog
	case SectionContact:
		sectionData = view.Contact
	case SectionFooter:
		sectionData = view.Footer
	default:
		return &RenderError{Message: fmt.Sprintf("unknown section %q", section)}
	}

	if err := r.tmpl.ExecuteTemplate(w, string(section), sectionData); err != nil {
		return &TemplateError{
			Section: string(section),
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return nil
}

// RenderPageString renders the page into a string.
func (r *Renderer) RenderPageString(data *PageData) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderPage(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func sectionNames() []string {
	sections := Sections()
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = string(s)
	}
	return names
}
