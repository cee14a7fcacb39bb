package validation

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rohitlokhande/portfolio/internal/types"
)

// Violation types reported by the audit.
const (
	TypeMissingSection   = "missing_section"
	TypeSectionOrder     = "section_order"
	TypeMissingTitle     = "missing_title"
	TypeUnsafeLink       = "unsafe_external_link"
	TypeEmptyHref        = "empty_href"
	TypeMissingMailto    = "missing_mailto"
	TypeBrokenAnchor     = "broken_anchor"
	TypeMissingAsset     = "missing_asset"
	TypeManifestInvalid  = "manifest_invalid"
	TypeManifestMismatch = "manifest_file_missing"
)

// Severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// PageSections lists the section ids a page must contain, in order.
var PageSections = []string{"home", "about", "skills", "projects", "blog", "contact", "footer"}

// AuditPage parses a rendered page and checks its structure and links.
func AuditPage(r io.Reader) (*types.Violations, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}
	return auditDocument(doc), nil
}

// AuditFile audits the page at path.
func AuditFile(path string) (*types.Violations, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileReadError{
			Message: fmt.Sprintf("failed to open page: %s", path),
			Cause:   err,
		}
	}
	defer func() { _ = f.Close() }()

	return AuditPage(f)
}

// AuditDir audits index.html in a build directory, then checks that local assets it
// references exist and that build.json, when present, matches its schema and the tree.
func AuditDir(dir string) (*types.Violations, error) {
	indexPath := filepath.Join(dir, "index.html")
	f, err := os.Open(indexPath)
	if err != nil {
		return nil, &FileReadError{
			Message: fmt.Sprintf("failed to open page: %s", indexPath),
			Cause:   err,
		}
	}
	defer func() { _ = f.Close() }()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, &ParseError{Message: "failed to parse HTML", Cause: err}
	}

	violations := auditDocument(doc)
	violations.Violations = append(violations.Violations, checkLocalAssets(doc, dir)...)

	manifestViolations, err := CheckManifest(dir)
	if err != nil {
		return nil, err
	}
	violations.Violations = append(violations.Violations, manifestViolations...)

	return violations, nil
}

func auditDocument(doc *goquery.Document) *types.Violations {
	var all []types.Violation

	if strings.TrimSpace(doc.Find("head title").Text()) == "" {
		all = append(all, types.Violation{
			Type:     TypeMissingTitle,
			Severity: SeverityWarning,
			Details:  "page has no <title>",
			Selector: "head title",
		})
	}

	all = append(all, checkSections(doc)...)
	all = append(all, checkLinks(doc)...)

	if all == nil {
		all = []types.Violation{}
	}
	return &types.Violations{Violations: all}
}

// checkSections verifies every page section is present exactly in PageSections order.
func checkSections(doc *goquery.Document) []types.Violation {
	var violations []types.Violation

	position := make(map[string]int, len(PageSections))
	for i, id := range PageSections {
		position[id] = i
	}

	var found []string
	doc.Find("section[id], footer[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		if _, ok := position[id]; ok {
			found = append(found, id)
		}
	})

	seen := make(map[string]bool, len(found))
	for _, id := range found {
		seen[id] = true
	}
	for _, id := range PageSections {
		if !seen[id] {
			violations = append(violations, types.Violation{
				Type:     TypeMissingSection,
				Severity: SeverityError,
				Details:  fmt.Sprintf("section %q not found", id),
				Section:  id,
				Selector: "#" + id,
			})
		}
	}

	last := -1
	for _, id := range found {
		if position[id] < last {
			violations = append(violations, types.Violation{
				Type:     TypeSectionOrder,
				Severity: SeverityError,
				Details:  fmt.Sprintf("section %q is out of order", id),
				Section:  id,
				Selector: "#" + id,
			})
			continue
		}
		last = position[id]
	}

	return violations
}
