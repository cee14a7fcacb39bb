package validation

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rohitlokhande/portfolio/internal/types"
)

// checkLinks flags unsafe external links, empty hrefs, dangling in-page anchors
// and a missing contact mailto.
func checkLinks(doc *goquery.Document) []types.Violation {
	var violations []types.Violation

	ids := make(map[string]bool)
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		ids[id] = true
	})

	hasMailto := false
	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		section := enclosingSection(s)
		href, exists := s.Attr("href")
		href = strings.TrimSpace(href)

		if !exists || href == "" {
			violations = append(violations, types.Violation{
				Type:     TypeEmptyHref,
				Severity: SeverityError,
				Details:  fmt.Sprintf("link %q has no destination", strings.TrimSpace(s.Text())),
				Section:  section,
				Selector: "a",
			})
			return
		}

		switch {
		case strings.HasPrefix(href, "mailto:"):
			if strings.TrimPrefix(href, "mailto:") != "" {
				hasMailto = true
			}
		case strings.HasPrefix(href, "#"):
			if !ids[strings.TrimPrefix(href, "#")] {
				violations = append(violations, types.Violation{
					Type:     TypeBrokenAnchor,
					Severity: SeverityError,
					Details:  fmt.Sprintf("anchor %s points at no element", href),
					Section:  section,
					Selector: fmt.Sprintf("a[href=%q]", href),
				})
			}
		case isExternal(href):
			target, _ := s.Attr("target")
			rel, _ := s.Attr("rel")
			if target != "_blank" || !hasToken(rel, "noopener") {
				violations = append(violations, types.Violation{
					Type:     TypeUnsafeLink,
					Severity: SeverityError,
					Details:  fmt.Sprintf("external link %s must open in a new tab with rel=noopener", href),
					Section:  section,
					Selector: fmt.Sprintf("a[href=%q]", href),
				})
			}
		}
	})

	if !hasMailto {
		violations = append(violations, types.Violation{
			Type:     TypeMissingMailto,
			Severity: SeverityError,
			Details:  "page has no mailto link",
			Section:  "contact",
			Selector: `a[href^="mailto:"]`,
		})
	}

	return violations
}

// checkLocalAssets verifies that site-relative stylesheet, image and link targets exist under dir.
func checkLocalAssets(doc *goquery.Document, dir string) []types.Violation {
	var violations []types.Violation
	seen := make(map[string]bool)

	check := func(selector, attr string) {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			ref, ok := s.Attr(attr)
			if !ok {
				return
			}
			p, local := localPath(ref)
			if !local || seen[p] {
				return
			}
			seen[p] = true
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(p))); err != nil {
				violations = append(violations, types.Violation{
					Type:     TypeMissingAsset,
					Severity: SeverityWarning,
					Details:  fmt.Sprintf("%s is referenced but not in the output", ref),
					Section:  enclosingSection(s),
					Selector: fmt.Sprintf("%s[%s=%q]", selector, attr, ref),
				})
			}
		})
	}

	check("link", "href")
	check("img", "src")
	check("a", "href")

	return violations
}

// localPath returns the output-relative path of a site-relative reference.
func localPath(ref string) (string, bool) {
	u, err := url.Parse(ref)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return "", false
	}
	return strings.TrimPrefix(u.Path, "/"), true
}

func isExternal(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func hasToken(list, token string) bool {
	for _, field := range strings.Fields(list) {
		if strings.EqualFold(field, token) {
			return true
		}
	}
	return false
}

// enclosingSection returns the id of the page section containing s, if any.
func enclosingSection(s *goquery.Selection) string {
	id, _ := s.Closest("section[id], footer[id]").Attr("id")
	return id
}
