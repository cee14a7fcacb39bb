//nolint:revive // types is a standard Go package name pattern
package types

// Violation represents a single audit failure in a built page
type Violation struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
	Section  string `json:"section,omitempty"`  // Section id the offending node sits in
	Selector string `json:"selector,omitempty"` // e.g. a[href="..."]
}

// Violations represents a collection of audit failures
type Violations struct {
	Violations []Violation `json:"violations"`
}

// HasErrors reports whether any violation has error severity.
func (v *Violations) HasErrors() bool {
	if v == nil {
		return false
	}
	for _, violation := range v.Violations {
		if violation.Severity == "error" {
			return true
		}
	}
	return false
}
